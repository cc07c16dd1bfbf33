// Package stats keeps per-machine aggregate counters: spin count, totals
// wagered and paid, and the biggest single payout. Counters are monotonic
// and only ever updated after a successful settlement.
package stats

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

// rtpPlaces is the scale RTP snapshots are rounded to.
const rtpPlaces = 4

// Tracker is a concurrency-safe aggregate store. Snapshots taken while
// writes are in flight always see consistent, never-decreasing counters.
type Tracker struct {
	mu       sync.RWMutex
	machines map[string]*totals
}

type totals struct {
	spins   int64
	wagered decimal.Decimal
	paid    decimal.Decimal
	biggest decimal.Decimal
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{machines: make(map[string]*totals)}
}

// Record adds one settled spin to the machine's counters.
func (t *Tracker) Record(machineID string, bet, payout decimal.Decimal) {
	t.mu.Lock()
	defer t.mu.Unlock()

	m, ok := t.machines[machineID]
	if !ok {
		m = &totals{}
		t.machines[machineID] = m
	}

	m.spins++
	m.wagered = m.wagered.Add(bet)
	m.paid = m.paid.Add(payout)
	if payout.GreaterThan(m.biggest) {
		m.biggest = payout
	}
}

// Snapshot returns the machine's counters at a point in time. RTP is
// paid/wagered, zero while nothing has been wagered. Unknown machines
// return a zero snapshot.
func (t *Tracker) Snapshot(machineID string) models.MachineStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snap := models.MachineStats{MachineID: machineID}
	m, ok := t.machines[machineID]
	if !ok {
		return snap
	}

	snap.TotalSpins = m.spins
	snap.TotalWagered = m.wagered
	snap.TotalPaid = m.paid
	snap.BiggestPayout = m.biggest
	if m.wagered.IsPositive() {
		snap.RTP = m.paid.DivRound(m.wagered, rtpPlaces)
	}
	return snap
}
