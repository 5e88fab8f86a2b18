package repository

import (
	"testing"

	"go-bankist/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountDirectory_DerivesUsernamesAndIDs(t *testing.T) {
	seeds := DefaultSeeds()
	dir := NewAccountDirectory(seeds)

	all := dir.All()
	require.Len(t, all, 4)
	usernames := []string{all[0].Username, all[1].Username, all[2].Username, all[3].Username}
	assert.Equal(t, []string{"js", "jd", "stw", "ss"}, usernames)

	seen := map[uuid.UUID]bool{}
	for _, acc := range all {
		assert.NotEqual(t, uuid.Nil, acc.ID)
		seen[acc.ID] = true
	}
	assert.Len(t, seen, 4)

	// The seed list itself is left untouched.
	assert.Empty(t, seeds[0].Username)
}

func TestFindByUsername(t *testing.T) {
	dir := NewAccountDirectory(DefaultSeeds())

	acc, ok := dir.FindByUsername("stw")
	require.True(t, ok)
	assert.Equal(t, "Steven Thomas Williams", acc.Owner)

	_, ok = dir.FindByUsername("nobody")
	assert.False(t, ok)
}

func TestFindByUsername_FirstMatchWins(t *testing.T) {
	dir := NewAccountDirectory(append(DefaultSeeds(), DefaultSeeds()[0]))
	// Two "js" accounts: the earlier one is returned.
	acc, ok := dir.FindByUsername("js")
	require.True(t, ok)
	assert.Equal(t, dir.All()[0].ID, acc.ID)
}

func TestRemove(t *testing.T) {
	dir := NewAccountDirectory(DefaultSeeds())
	jd, _ := dir.FindByUsername("jd")
	last := dir.All()[3]

	assert.True(t, dir.Remove(jd.ID))
	_, ok := dir.FindByUsername("jd")
	assert.False(t, ok)
	assert.Len(t, dir.All(), 3)

	// Removing again, or removing an unknown id, never touches other accounts.
	assert.False(t, dir.Remove(jd.ID))
	assert.False(t, dir.Remove(uuid.New()))
	assert.Len(t, dir.All(), 3)
	_, ok = dir.FindByID(last.ID)
	assert.True(t, ok)
}

func TestAll_ReturnsCopies(t *testing.T) {
	dir := NewAccountDirectory(DefaultSeeds())
	snapshot := dir.All()
	snapshot[0].Movements[0] = decimal.NewFromInt(-1)

	acc, _ := dir.FindByUsername("js")
	assert.True(t, acc.Movements[0].Equal(decimal.NewFromInt(200)))
}

func TestSeedsFromConfig(t *testing.T) {
	t.Run("defaults when empty", func(t *testing.T) {
		seeds, err := SeedsFromConfig(nil)
		require.NoError(t, err)
		assert.Len(t, seeds, 4)
	})

	t.Run("configured accounts", func(t *testing.T) {
		seeds, err := SeedsFromConfig([]config.SeedAccount{
			{Owner: "Ada Lovelace", Pin: 1815, InterestRate: 1.1, Movements: []float64{100, -20.5}},
		})
		require.NoError(t, err)
		require.Len(t, seeds, 1)
		assert.Equal(t, 1815, seeds[0].Pin)
		assert.True(t, seeds[0].Movements[1].Equal(decimal.RequireFromString("-20.5")))
	})

	t.Run("invalid account is rejected", func(t *testing.T) {
		_, err := SeedsFromConfig([]config.SeedAccount{{Owner: "", Pin: 0}})
		assert.Error(t, err)
	})
}
