package repository

import (
	"fmt"

	"go-bankist/common"
	"go-bankist/config"
	"go-bankist/model"

	"github.com/shopspring/decimal"
)

func amounts(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

// DefaultSeeds returns the four demonstration accounts.
func DefaultSeeds() []*model.Account {
	return []*model.Account{
		{
			Owner:        "Jonas Schmedtmann",
			Pin:          1111,
			InterestRate: decimal.RequireFromString("1.2"),
			Movements:    amounts(200, 450, -400, 3000, -650, -130, 70, 1300),
		},
		{
			Owner:        "Jessica Davis",
			Pin:          2222,
			InterestRate: decimal.RequireFromString("1.5"),
			Movements:    amounts(5000, 3400, -150, -790, -3210, -1000, 8500, -30),
		},
		{
			Owner:        "Steven Thomas Williams",
			Pin:          3333,
			InterestRate: decimal.RequireFromString("0.7"),
			Movements:    amounts(200, -200, 340, -300, -20, 50, 400, -460),
		},
		{
			Owner:        "Sarah Smith",
			Pin:          4444,
			InterestRate: decimal.NewFromInt(1),
			Movements:    amounts(430, 1000, 700, 50, 90),
		},
	}
}

// SeedsFromConfig converts configured seed accounts, falling back to
// DefaultSeeds when none are configured. Invalid entries are an error.
func SeedsFromConfig(cfg []config.SeedAccount) ([]*model.Account, error) {
	if len(cfg) == 0 {
		return DefaultSeeds(), nil
	}

	seeds := make([]*model.Account, 0, len(cfg))
	for i, sa := range cfg {
		if err := common.ValidateStruct(sa); err != nil {
			return nil, fmt.Errorf("invalid seed account %d: %w", i, err)
		}
		movements := make([]decimal.Decimal, len(sa.Movements))
		for j, m := range sa.Movements {
			movements[j] = decimal.NewFromFloat(m)
		}
		seeds = append(seeds, &model.Account{
			Owner:        sa.Owner,
			Pin:          sa.Pin,
			InterestRate: decimal.NewFromFloat(sa.InterestRate),
			Movements:    movements,
		})
	}
	return seeds, nil
}
