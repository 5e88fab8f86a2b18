package repository

import (
	"go-bankist/ledger"
	"go-bankist/logger"
	"go-bankist/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for the account directory.
type IAccountRepository interface {
	FindByUsername(username string) (*model.Account, bool)
	FindByID(id uuid.UUID) (*model.Account, bool)
	Remove(id uuid.UUID) bool
	All() []*model.Account
}

// AccountDirectory is the ordered, in-memory collection of accounts.
// Lookups return the stored pointer so the caller can append movements;
// it is not safe for concurrent use, callers serialize access.
type AccountDirectory struct {
	accounts []*model.Account
}

// NewAccountDirectory builds a directory from seed accounts, assigning each
// a fresh ID and its derived username.
func NewAccountDirectory(seeds []*model.Account) *AccountDirectory {
	accounts := make([]*model.Account, 0, len(seeds))
	for _, s := range seeds {
		acc := s.Clone()
		acc.ID = uuid.New()
		acc.Username = ledger.DeriveUsername(acc.Owner)
		accounts = append(accounts, acc)
	}
	logger.Log.WithField("accounts", len(accounts)).Info("Account directory built")
	return &AccountDirectory{accounts: accounts}
}

// FindByUsername returns the first account, in directory order, with the
// given username. Owners sharing initials collide; the earlier one wins.
func (d *AccountDirectory) FindByUsername(username string) (*model.Account, bool) {
	for _, acc := range d.accounts {
		if acc.Username == username {
			return acc, true
		}
	}
	return nil, false
}

// FindByID returns the account with the given identity.
func (d *AccountDirectory) FindByID(id uuid.UUID) (*model.Account, bool) {
	for _, acc := range d.accounts {
		if acc.ID == id {
			return acc, true
		}
	}
	return nil, false
}

// Remove deletes the account with the given identity and reports whether it
// was present. Removing an absent account is a no-op.
func (d *AccountDirectory) Remove(id uuid.UUID) bool {
	for i, acc := range d.accounts {
		if acc.ID == id {
			d.accounts = append(d.accounts[:i:i], d.accounts[i+1:]...)
			logger.Log.WithFields(logrus.Fields{
				"account_id": id,
				"username":   acc.Username,
			}).Info("Account removed from directory")
			return true
		}
	}
	return false
}

// All returns deep copies of every account in directory order.
func (d *AccountDirectory) All() []*model.Account {
	out := make([]*model.Account, len(d.accounts))
	for i, acc := range d.accounts {
		out[i] = acc.Clone()
	}
	return out
}
