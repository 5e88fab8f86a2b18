package service

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"go-bankist/ledger"
	"go-bankist/model"
	"go-bankist/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService is the transaction engine: a state machine over one Session
// that validates every operation against the directory before mutating it.
// A single mutex serializes all operations, so each one runs to completion
// before the next begins.
type LedgerService struct {
	mu      sync.Mutex
	repo    repository.IAccountRepository
	session Session
	cache   *FigureCache
}

func NewLedgerService(repo repository.IAccountRepository, cache *FigureCache) *LedgerService {
	return &LedgerService{
		repo:  repo,
		cache: cache,
	}
}

// current resolves the session's account. Callers hold s.mu.
func (s *LedgerService) current() (*model.Account, error) {
	id, ok := s.session.Current()
	if !ok {
		return nil, ErrNotLoggedIn
	}
	acc, ok := s.repo.FindByID(id)
	if !ok {
		s.session.Clear()
		return nil, ErrNotLoggedIn
	}
	return acc, nil
}

// figures returns the account's figures, from the cache when possible.
func (s *LedgerService) figures(ctx context.Context, acc *model.Account) model.Figures {
	if f, ok := s.cache.Get(ctx, acc.ID); ok {
		return f
	}
	f := ledger.Compute(acc.Movements, acc.InterestRate)
	s.cache.Set(ctx, acc.ID, f)
	return f
}

// view returns the movements in the order the session asks for.
func (s *LedgerService) view(acc *model.Account) []decimal.Decimal {
	if s.session.Sorted() {
		return ledger.Sorted(acc.Movements)
	}
	out := make([]decimal.Decimal, len(acc.Movements))
	copy(out, acc.Movements)
	return out
}

func (s *LedgerService) summary(ctx context.Context, acc *model.Account) *model.Summary {
	return &model.Summary{
		AccountID: acc.ID,
		Owner:     acc.Owner,
		FirstName: acc.FirstName(),
		Username:  acc.Username,
		Figures:   s.figures(ctx, acc),
		Movements: s.view(acc),
		Sorted:    s.session.Sorted(),
	}
}

// Summary returns the display snapshot of the logged-in account.
func (s *LedgerService) Summary(ctx context.Context) (*model.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.summary(ctx, acc), nil
}

// Movements returns the numbered movement rows of the logged-in account in
// view order.
func (s *LedgerService) Movements(ctx context.Context) ([]model.MovementRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.current()
	if err != nil {
		return nil, err
	}
	return model.MovementRows(s.view(acc)), nil
}

// ToggleSort flips between insertion order and ascending order for the
// movement view. The movements themselves are never reordered.
func (s *LedgerService) ToggleSort(ctx context.Context) (*model.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.current()
	if err != nil {
		observe("sort", err)
		return nil, err
	}
	s.session.ToggleSorted()
	observe("sort", nil)
	return s.summary(ctx, acc), nil
}

// ActiveSession reports whether sessionID names the open session.
func (s *LedgerService) ActiveSession(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.session.Current(); !ok {
		return false
	}
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return false
	}
	return id == s.session.ID()
}

// Accounts returns a deep copy of every account with its figures.
func (s *LedgerService) Accounts() []AccountFigures {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.All()
	out := make([]AccountFigures, len(all))
	for i, acc := range all {
		out[i] = AccountFigures{
			Account: acc,
			Figures: ledger.Compute(acc.Movements, acc.InterestRate),
		}
	}
	return out
}

// AccountFigures pairs an account snapshot with its computed figures.
type AccountFigures struct {
	Account *model.Account
	Figures model.Figures
}

// Amounts carry at most amountMaxScale fractional digits and stay below
// 10^amountMaxIntDigits. Both are checked on the parsed coefficient and
// exponent, before any arithmetic rescales the value.
const (
	amountMaxScale     = 2
	amountMaxIntDigits = 15
)

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	exp := int64(amount.Exponent())
	if exp < -amountMaxScale || int64(amount.NumDigits())+exp > amountMaxIntDigits {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

func parsePin(raw string) (int, bool) {
	pin, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return pin, true
}
