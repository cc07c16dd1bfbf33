// Package api holds the wire types of the HTTP surface. Monetary amounts
// travel as shopspring decimals, which marshal to exact JSON numbers.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Machine is the catalog listing view of one slot machine.
type Machine struct {
	Id         string          `json:"id"`
	Name       string          `json:"name"`
	Active     bool            `json:"active"`
	Reels      int             `json:"reels"`
	Rows       int             `json:"rows"`
	Paylines   int             `json:"paylines"`
	MinBet     decimal.Decimal `json:"min_bet"`
	MaxBet     decimal.Decimal `json:"max_bet"`
	TargetRTP  float64         `json:"target_rtp"`
	Volatility string          `json:"volatility"`
}

// NewSpin is the request body for executing a spin.
type NewSpin struct {
	UserId    string          `json:"user_id"`
	MachineId string          `json:"machine_id"`
	Currency  string          `json:"currency"`
	BetAmount decimal.Decimal `json:"bet_amount"`
}

// WinLine is one winning combination in a spin response.
type WinLine struct {
	PaylineId int             `json:"payline_id"`
	SymbolId  string          `json:"symbol_id"`
	Count     int             `json:"count"`
	Payout    decimal.Decimal `json:"payout"`
	Scatter   bool            `json:"scatter,omitempty"`
}

// SpinResult is the response body for a settled spin.
type SpinResult struct {
	SpinId         string          `json:"spin_id"`
	Grid           [][]string      `json:"grid"`
	WinLines       []WinLine       `json:"win_lines"`
	TotalPayout    decimal.Decimal `json:"total_payout"`
	BonusTriggered bool            `json:"bonus_triggered"`
	Balance        decimal.Decimal `json:"balance"`
}

// Wallet is one (user, currency) account balance.
type Wallet struct {
	UserId   string          `json:"user_id"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// SpinRecord is one spin history entry.
type SpinRecord struct {
	Id             string          `json:"id"`
	UserId         string          `json:"user_id"`
	MachineId      string          `json:"machine_id"`
	Currency       string          `json:"currency"`
	Bet            decimal.Decimal `json:"bet"`
	Payout         decimal.Decimal `json:"payout"`
	Grid           [][]string      `json:"grid"`
	WinLines       []WinLine       `json:"win_lines"`
	BonusTriggered bool            `json:"bonus_triggered"`
	CreatedAt      time.Time       `json:"created_at"`
}

// MachineStats is the aggregate counters snapshot of one machine.
type MachineStats struct {
	MachineId     string          `json:"machine_id"`
	TotalSpins    int64           `json:"total_spins"`
	TotalWagered  decimal.Decimal `json:"total_wagered"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	Rtp           decimal.Decimal `json:"rtp"`
	BiggestPayout decimal.Decimal `json:"biggest_payout"`
}
