package service

import (
	"context"

	"go-bankist/ledger"
	"go-bankist/logger"
	"go-bankist/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// A loan is granted when some movement is at least this share of the loan.
var loanCoverRatio = decimal.RequireFromString("0.1")

// Transfer moves amount from the logged-in account to the account named
// toUsername. Both movements are appended or neither is.
func (s *LedgerService) Transfer(ctx context.Context, toUsername, amount string) (*model.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, err := s.current()
	if err != nil {
		observe("transfer", err)
		return nil, err
	}

	log := logger.Log.WithFields(logrus.Fields{
		"from_username": from.Username,
		"to_username":   toUsername,
		"amount":        amount,
	})

	if err := s.validateTransfer(from, toUsername, amount); err != nil {
		log.WithField("reason", err.Error()).Warn("Transfer rejected")
		observe("transfer", err)
		return nil, err
	}

	value, _ := parseAmount(amount)
	to, _ := s.repo.FindByUsername(toUsername)
	from.Movements = append(from.Movements, value.Neg())
	to.Movements = append(to.Movements, value)
	s.cache.Invalidate(ctx, from.ID, to.ID)

	log.Info("Transfer completed")
	observe("transfer", nil)
	return s.summary(ctx, from), nil
}

func (s *LedgerService) validateTransfer(from *model.Account, toUsername, amount string) error {
	value, err := parseAmount(amount)
	if err != nil {
		return err
	}
	to, ok := s.repo.FindByUsername(toUsername)
	if !ok {
		return ErrUnknownRecipient
	}
	if ledger.Balance(from.Movements).LessThan(value) {
		return ErrInsufficientFunds
	}
	if to.Username == from.Username {
		return ErrSelfTransferRejected
	}
	return nil
}

// RequestLoan credits amount to the logged-in account when any single
// existing movement, of either sign, is at least 10% of the amount.
func (s *LedgerService) RequestLoan(ctx context.Context, amount string) (*model.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.current()
	if err != nil {
		observe("loan", err)
		return nil, err
	}

	log := logger.Log.WithFields(logrus.Fields{
		"username": acc.Username,
		"amount":   amount,
	})

	value, err := parseAmount(amount)
	if err != nil {
		log.Warn("Loan rejected: invalid amount")
		observe("loan", err)
		return nil, err
	}

	threshold := value.Mul(loanCoverRatio)
	eligible := false
	for _, mov := range acc.Movements {
		if mov.GreaterThanOrEqual(threshold) {
			eligible = true
			break
		}
	}
	if !eligible {
		log.Warn("Loan rejected: no qualifying movement")
		observe("loan", ErrLoanIneligible)
		return nil, ErrLoanIneligible
	}

	acc.Movements = append(acc.Movements, value)
	s.cache.Invalidate(ctx, acc.ID)

	log.Info("Loan granted")
	observe("loan", nil)
	return s.summary(ctx, acc), nil
}
