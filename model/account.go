package model

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is one ledger account. Its balance is never stored; it is always
// the sum of Movements.
type Account struct {
	ID           uuid.UUID         `json:"id"`
	Owner        string            `json:"owner"`
	Username     string            `json:"username"`
	Pin          int               `json:"-"`
	InterestRate decimal.Decimal   `json:"interest_rate"`
	Movements    []decimal.Decimal `json:"movements"`
}

// FirstName returns the first word of the owner's name.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	cp := *a
	cp.Movements = make([]decimal.Decimal, len(a.Movements))
	copy(cp.Movements, a.Movements)
	return &cp
}
