package slots

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/audit"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/catalog"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/stats"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/storage"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/websockets"
)

// bigWinMultiplier is the payout-to-bet ratio at which a win is broadcast to
// the live feed.
var bigWinMultiplier = decimal.NewFromInt(10)

// Engine coordinates one spin end to end: request validation, reel sampling,
// payline evaluation, atomic wallet settlement, and the post-settlement
// bookkeeping (stats, audit trail, win feed).
type Engine struct {
	Catalog *catalog.Catalog
	Sampler *Sampler
	Store   storage.SettlementStore
	Stats   *stats.Tracker

	// Auditor and WinFeed are optional; settled spins are published to them
	// best-effort after the settlement has committed.
	Auditor audit.Publisher
	WinFeed websockets.Publisher
}

// NewEngine creates an engine with the required collaborators. Auditor and
// WinFeed may be set on the returned engine afterwards.
func NewEngine(cat *catalog.Catalog, sampler *Sampler, store storage.SettlementStore, tracker *stats.Tracker) *Engine {
	return &Engine{
		Catalog: cat,
		Sampler: sampler,
		Store:   store,
		Stats:   tracker,
	}
}

// Spin executes one spin. It has exactly two terminal states: settled (grid
// produced, wallet debited and credited, record appended, stats updated) or
// rejected with zero side effects. A rejected spin never mutates balances,
// stats, or spin history.
func (e *Engine) Spin(ctx context.Context, req models.SpinRequest) (*models.SpinResult, error) {
	machine, ok := e.Catalog.Get(req.MachineID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMachineNotFound, req.MachineID)
	}
	if !machine.Active {
		return nil, fmt.Errorf("%w: %s", ErrMachineInactive, req.MachineID)
	}
	if !req.Currency.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, req.Currency)
	}
	if req.Bet.LessThan(machine.MinBet) || req.Bet.GreaterThan(machine.MaxBet) {
		return nil, fmt.Errorf("%w: bet %s outside [%s, %s]", ErrBetOutOfRange, req.Bet, machine.MinBet, machine.MaxBet)
	}

	grid := e.Sampler.DrawGrid(machine)
	payout, winLines, bonus := Evaluate(machine, grid, req.Bet)

	record := &models.SpinRecord{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		MachineID:      req.MachineID,
		Currency:       req.Currency,
		Bet:            req.Bet,
		Payout:         payout,
		Grid:           grid,
		WinLines:       winLines,
		BonusTriggered: bonus,
		CreatedAt:      time.Now().UTC(),
	}

	// The bet debit and payout credit apply as one indivisible operation.
	// On any failure the wallet, stats, and spin history are untouched.
	balance, err := e.Store.SettleSpin(ctx, record)
	if err != nil {
		if errors.Is(err, storage.ErrInsufficientFunds) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	e.Stats.Record(req.MachineID, req.Bet, payout)
	e.publish(ctx, record)

	return &models.SpinResult{
		RecordID:       record.ID,
		Grid:           grid,
		WinLines:       winLines,
		TotalPayout:    payout,
		BonusTriggered: bonus,
		Balance:        balance,
	}, nil
}

// publish fans a settled spin out to the audit queue and, for big wins, the
// live feed. Both are best-effort: the spin is already settled, so failures
// are logged rather than surfaced to the player.
func (e *Engine) publish(ctx context.Context, record *models.SpinRecord) {
	if e.Auditor != nil {
		if err := e.Auditor.PublishSpin(ctx, record); err != nil {
			log.Printf("CRITICAL: spin %s settled but failed to enqueue for audit: %v", record.ID, err)
		}
	}

	if e.WinFeed == nil || record.Payout.IsZero() {
		return
	}
	if record.Payout.LessThan(record.Bet.Mul(bigWinMultiplier)) {
		return
	}
	msg := websockets.Message{
		Type: "big_win",
		Payload: websockets.BigWin{
			UserID:    record.UserID,
			MachineID: record.MachineID,
			Currency:  string(record.Currency),
			Payout:    record.Payout.String(),
		},
	}
	if err := e.WinFeed.Publish(ctx, msg); err != nil {
		log.Printf("failed to broadcast big win for spin %s: %v", record.ID, err)
	}
}
