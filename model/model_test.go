package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccount_FirstName(t *testing.T) {
	assert.Equal(t, "Jonas", (&Account{Owner: "Jonas Schmedtmann"}).FirstName())
	assert.Equal(t, "", (&Account{Owner: "  "}).FirstName())
}

func TestAccount_CloneIsDeep(t *testing.T) {
	a := &Account{Owner: "Sarah Smith", Movements: []decimal.Decimal{decimal.NewFromInt(430)}}
	cp := a.Clone()
	cp.Movements[0] = decimal.NewFromInt(1)
	cp.Movements = append(cp.Movements, decimal.NewFromInt(2))

	assert.Len(t, a.Movements, 1)
	assert.True(t, a.Movements[0].Equal(decimal.NewFromInt(430)))
}

func TestMovementRows(t *testing.T) {
	rows := MovementRows([]decimal.Decimal{decimal.NewFromInt(200), decimal.NewFromInt(-400)})

	assert.Equal(t, 1, rows[0].Number)
	assert.Equal(t, MovementDeposit, rows[0].Type)
	assert.Equal(t, 2, rows[1].Number)
	assert.Equal(t, MovementWithdrawal, rows[1].Type)
	assert.True(t, rows[1].Amount.Equal(decimal.NewFromInt(-400)))
}
