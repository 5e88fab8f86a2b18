// Package ledger holds the pure calculations over an account's movements.
// None of these functions modify the slice they are given.
package ledger

import (
	"sort"

	"go-bankist/model"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	// Interest terms below one unit are dropped entirely, not rounded.
	minInterest = decimal.NewFromInt(1)
)

// Balance is the sum of all movements.
func Balance(movements []decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, movements...)
}

// TotalDeposits is the sum of all positive movements.
func TotalDeposits(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, mov := range movements {
		if mov.IsPositive() {
			total = total.Add(mov)
		}
	}
	return total
}

// TotalWithdrawals is the absolute value of the sum of all negative movements.
func TotalWithdrawals(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, mov := range movements {
		if mov.IsNegative() {
			total = total.Add(mov)
		}
	}
	return total.Abs()
}

// QualifyingInterest sums deposit*rate/100 over every deposit whose interest
// is at least 1.
func QualifyingInterest(movements []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, mov := range movements {
		if !mov.IsPositive() {
			continue
		}
		interest := mov.Mul(rate).Div(hundred)
		if interest.GreaterThanOrEqual(minInterest) {
			total = total.Add(interest)
		}
	}
	return total
}

// Compute returns every display figure for the given movements and rate.
func Compute(movements []decimal.Decimal, rate decimal.Decimal) model.Figures {
	return model.Figures{
		Balance:     Balance(movements),
		Deposits:    TotalDeposits(movements),
		Withdrawals: TotalWithdrawals(movements),
		Interest:    QualifyingInterest(movements, rate),
	}
}

// Sorted returns an ascending copy of movements.
func Sorted(movements []decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(movements))
	copy(out, movements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LessThan(out[j])
	})
	return out
}
