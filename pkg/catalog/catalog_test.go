package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validMachine(id string) *models.Machine {
	one := decimal.NewFromInt(1)
	return &models.Machine{
		ID:     id,
		Name:   "Test Machine",
		Active: true,
		Rows:   3,
		Reels: []models.Reel{
			{Symbols: []string{"A", "B"}, Weights: map[string]int{"A": 1, "B": 3}},
			{Symbols: []string{"A", "B"}, Weights: map[string]int{"A": 1, "B": 3}},
			{Symbols: []string{"A", "B"}, Weights: map[string]int{"A": 1, "B": 3}},
		},
		Paylines: []models.Payline{{ID: 1, Active: true, Cells: []models.Cell{
			{Reel: 0, Row: 0}, {Reel: 1, Row: 0}, {Reel: 2, Row: 0},
		}}},
		Symbols: []models.Symbol{
			{ID: "A", Name: "Ace", Multiplier: one},
			{ID: "B", Name: "Bar", Multiplier: one},
		},
		WinConditions: []models.WinCondition{
			{SymbolID: "A", Count: 3, Payout: dec("5")},
		},
		MinBet: dec("0.25"),
		MaxBet: dec("100"),
	}
}

func TestNew(t *testing.T) {
	cat, err := New([]*models.Machine{validMachine("m1"), validMachine("m2")})
	require.NoError(t, err)

	m, ok := cat.Get("m1")
	require.True(t, ok)
	assert.Equal(t, "m1", m.ID)

	_, ok = cat.Get("missing")
	assert.False(t, ok)

	list := cat.List()
	require.Len(t, list, 2)
	assert.Equal(t, "m1", list[0].ID)
	assert.Equal(t, "m2", list[1].ID)
}

func TestNewDuplicateID(t *testing.T) {
	_, err := New([]*models.Machine{validMachine("m1"), validMachine("m1")})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "id", cfgErr.Field)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Machine)
		field  string
	}{
		{
			name:   "empty id",
			mutate: func(m *models.Machine) { m.ID = "" },
			field:  "id",
		},
		{
			name:   "zero rows",
			mutate: func(m *models.Machine) { m.Rows = 0 },
			field:  "rows",
		},
		{
			name:   "no reels",
			mutate: func(m *models.Machine) { m.Reels = nil },
			field:  "reels",
		},
		{
			name:   "no symbols",
			mutate: func(m *models.Machine) { m.Symbols = nil },
			field:  "symbols",
		},
		{
			name:   "zero min bet",
			mutate: func(m *models.Machine) { m.MinBet = decimal.Zero },
			field:  "min_bet",
		},
		{
			name:   "max bet below min bet",
			mutate: func(m *models.Machine) { m.MaxBet = dec("0.10") },
			field:  "max_bet",
		},
		{
			name:   "duplicate symbol id",
			mutate: func(m *models.Machine) { m.Symbols = append(m.Symbols, m.Symbols[0]) },
			field:  "symbols",
		},
		{
			name:   "reel references unknown symbol",
			mutate: func(m *models.Machine) { m.Reels[1].Symbols = append(m.Reels[1].Symbols, "Z") },
			field:  "reels[1]",
		},
		{
			name:   "weight references unknown symbol",
			mutate: func(m *models.Machine) { m.Reels[0].Weights["Z"] = 2 },
			field:  "reels[0].weights",
		},
		{
			name:   "negative weight",
			mutate: func(m *models.Machine) { m.Reels[0].Weights["A"] = -1 },
			field:  "reels[0].weights",
		},
		{
			name: "all weights zero",
			mutate: func(m *models.Machine) {
				m.Reels[2].Weights = map[string]int{"A": 0, "B": 0}
			},
			field: "reels[2]",
		},
		{
			name: "payline cell out of range",
			mutate: func(m *models.Machine) {
				m.Paylines[0].Cells[2] = models.Cell{Reel: 5, Row: 0}
			},
			field: "paylines[0]",
		},
		{
			name: "payline row out of range",
			mutate: func(m *models.Machine) {
				m.Paylines[0].Cells[0] = models.Cell{Reel: 0, Row: 3}
			},
			field: "paylines[0]",
		},
		{
			name:   "empty payline",
			mutate: func(m *models.Machine) { m.Paylines[0].Cells = nil },
			field:  "paylines[0]",
		},
		{
			name: "condition references unknown symbol",
			mutate: func(m *models.Machine) {
				m.WinConditions[0].SymbolID = "Z"
			},
			field: "win_conditions[0]",
		},
		{
			name: "condition with zero count",
			mutate: func(m *models.Machine) {
				m.WinConditions[0].Count = 0
			},
			field: "win_conditions[0]",
		},
		{
			name: "condition with negative payout",
			mutate: func(m *models.Machine) {
				m.WinConditions[0].Payout = dec("-1")
			},
			field: "win_conditions[0]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validMachine("m1")
			tc.mutate(m)

			_, err := New([]*models.Machine{m})

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}
