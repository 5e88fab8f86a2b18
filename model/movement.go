package model

import "github.com/shopspring/decimal"

type MovementType string

const (
	MovementDeposit    MovementType = "deposit"
	MovementWithdrawal MovementType = "withdrawal"
)

// MovementRow is one numbered row of the movement history view.
type MovementRow struct {
	Number int             `json:"number"`
	Type   MovementType    `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// MovementRows numbers movements from 1 in the order given.
func MovementRows(movements []decimal.Decimal) []MovementRow {
	rows := make([]MovementRow, len(movements))
	for i, mov := range movements {
		typ := MovementWithdrawal
		if mov.IsPositive() {
			typ = MovementDeposit
		}
		rows[i] = MovementRow{Number: i + 1, Type: typ, Amount: mov}
	}
	return rows
}
