package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Volatility classifies how spiky a machine's payouts are. It is
// informational: validation and simulation use it, the engine does not.
type Volatility string

const (
	VolatilityLow    Volatility = "low"
	VolatilityMedium Volatility = "medium"
	VolatilityHigh   Volatility = "high"
)

// Cell addresses one position on the grid.
type Cell struct {
	Reel int `json:"reel"`
	Row  int `json:"row"`
}

// Reel holds the ordered symbols of one reel and their draw weights.
// A symbol missing from Weights draws with weight 1.
type Reel struct {
	Symbols []string       `json:"symbols"`
	Weights map[string]int `json:"weights"`
}

// TotalWeight returns the sum of the effective weights of all symbols on the reel.
func (r Reel) TotalWeight() int {
	total := 0
	for _, id := range r.Symbols {
		total += r.Weight(id)
	}
	return total
}

// Weight returns the effective draw weight of a symbol on this reel.
func (r Reel) Weight(symbolID string) int {
	if w, ok := r.Weights[symbolID]; ok {
		return w
	}
	return 1
}

// Payline is a fixed sequence of grid cells checked for a matching run.
type Payline struct {
	ID     int    `json:"id"`
	Cells  []Cell `json:"cells"`
	Active bool   `json:"active"`
}

// Symbol describes one reel symbol and its paytable attributes.
type Symbol struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Payout     decimal.Decimal `json:"payout"`
	Rarity     string          `json:"rarity"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Wild       bool            `json:"wild"`
}

// IsWildNamed reports whether the symbol's name or rarity marks it as a wild.
// Catalog loading uses this to derive the Wild flag for configs that do not
// set it explicitly.
func (s Symbol) IsWildNamed() bool {
	return strings.Contains(strings.ToLower(s.Name), "wild") ||
		strings.EqualFold(s.Rarity, "wild")
}

// WinCondition is one paytable entry: a symbol, a required count and the
// payout expressed as a multiple of the bet. Scatter conditions count the
// symbol anywhere on the grid instead of along a payline.
type WinCondition struct {
	SymbolID string          `json:"symbol_id"`
	Count    int             `json:"count"`
	Payout   decimal.Decimal `json:"payout"`
	Scatter  bool            `json:"scatter"`
}

// Machine is one immutable slot machine configuration. It is built once by
// the catalog loader and never mutated afterwards; concurrent spins always
// see a consistent snapshot.
type Machine struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Active        bool            `json:"active"`
	Rows          int             `json:"rows"`
	Reels         []Reel          `json:"reels"`
	Paylines      []Payline       `json:"paylines"`
	Symbols       []Symbol        `json:"symbols"`
	WinConditions []WinCondition  `json:"win_conditions"`
	MinBet        decimal.Decimal `json:"min_bet"`
	MaxBet        decimal.Decimal `json:"max_bet"`
	TargetRTP     float64         `json:"target_rtp"`
	Volatility    Volatility      `json:"volatility"`
}

// Symbol returns the symbol definition for the given id.
func (m *Machine) Symbol(id string) (Symbol, bool) {
	for _, s := range m.Symbols {
		if s.ID == id {
			return s, true
		}
	}
	return Symbol{}, false
}

// IsWild reports whether the given symbol id is a wild on this machine.
func (m *Machine) IsWild(id string) bool {
	s, ok := m.Symbol(id)
	return ok && s.Wild
}

// IsScatterSymbol reports whether the given symbol id appears in any scatter
// win condition of this machine.
func (m *Machine) IsScatterSymbol(id string) bool {
	for _, wc := range m.WinConditions {
		if wc.Scatter && wc.SymbolID == id {
			return true
		}
	}
	return false
}
