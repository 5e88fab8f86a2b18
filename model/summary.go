package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Figures are the display figures derived from an account's movements.
type Figures struct {
	Balance     decimal.Decimal `json:"balance"`
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Interest    decimal.Decimal `json:"interest"`
}

// Summary is the read-only snapshot handed to the presentation layer after
// every successful operation.
type Summary struct {
	AccountID uuid.UUID         `json:"account_id"`
	Owner     string            `json:"owner"`
	FirstName string            `json:"first_name"`
	Username  string            `json:"username"`
	Figures   Figures           `json:"figures"`
	Movements []decimal.Decimal `json:"movements"`
	Sorted    bool              `json:"sorted"`
}
