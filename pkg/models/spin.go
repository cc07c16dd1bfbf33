package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency identifies one of the two isolated wallet denominations.
// Gold Coins are the non-redeemable play currency, Sweeps Cash the
// redeemable one. Balances of the two are never commingled.
type Currency string

const (
	CurrencyGold   Currency = "GC"
	CurrencySweeps Currency = "SC"
)

// Valid reports whether the currency is one of the supported denominations.
func (c Currency) Valid() bool {
	return c == CurrencyGold || c == CurrencySweeps
}

// Grid is the drawn symbol matrix, indexed [reel][row]. It is produced fresh
// for every spin and never mutated after creation.
type Grid [][]string

// Count returns how many cells of the grid hold the given symbol id.
func (g Grid) Count(symbolID string) int {
	n := 0
	for _, reel := range g {
		for _, id := range reel {
			if id == symbolID {
				n++
			}
		}
	}
	return n
}

// At returns the symbol id at the given cell.
func (g Grid) At(c Cell) string {
	return g[c.Reel][c.Row]
}

// SpinRequest carries everything needed to execute one spin.
type SpinRequest struct {
	UserID    string
	MachineID string
	Currency  Currency
	Bet       decimal.Decimal
}

// WinLine records one winning combination. Scatter wins carry no payline id.
type WinLine struct {
	PaylineID int             `json:"payline_id"`
	SymbolID  string          `json:"symbol_id"`
	Count     int             `json:"count"`
	Payout    decimal.Decimal `json:"payout"`
	Scatter   bool            `json:"scatter,omitempty"`
}

// SpinResult is the outcome of a settled spin, including the authoritative
// balance after the bet and payout were applied.
type SpinResult struct {
	RecordID       string
	Grid           Grid
	WinLines       []WinLine
	TotalPayout    decimal.Decimal
	BonusTriggered bool
	Balance        decimal.Decimal
}

// SpinRecord is the immutable audit entry appended for every settled spin.
type SpinRecord struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	MachineID      string          `json:"machine_id"`
	Currency       Currency        `json:"currency"`
	Bet            decimal.Decimal `json:"bet"`
	Payout         decimal.Decimal `json:"payout"`
	Grid           Grid            `json:"grid"`
	WinLines       []WinLine       `json:"win_lines"`
	BonusTriggered bool            `json:"bonus_triggered"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Wallet is one (user, currency) account. It is owned exclusively by the
// wallet store; no other component mutates balances directly.
type Wallet struct {
	UserID    string          `json:"user_id"`
	Currency  Currency        `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
}

// MachineStats is a point-in-time snapshot of one machine's aggregate
// counters. RTP is TotalPaid / TotalWagered, zero when nothing was wagered.
type MachineStats struct {
	MachineID     string          `json:"machine_id"`
	TotalSpins    int64           `json:"total_spins"`
	TotalWagered  decimal.Decimal `json:"total_wagered"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	RTP           decimal.Decimal `json:"rtp"`
	BiggestPayout decimal.Decimal `json:"biggest_payout"`
}
