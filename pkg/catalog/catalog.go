// Package catalog loads and validates slot machine configurations.
// Machine definitions are static content supplied as JSON files; once a
// Catalog is built it is read-only, so spins running concurrently with a
// catalog reload always see a consistent snapshot.
package catalog

import (
	"fmt"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

// ConfigError describes a malformed machine definition. Validation happens
// at load time; a machine that passes validation can never fail a draw at
// spin time.
type ConfigError struct {
	MachineID string
	Field     string
	Reason    string
}

func (e *ConfigError) Error() string {
	if e.MachineID == "" {
		return fmt.Sprintf("invalid machine config: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid machine config %q: %s: %s", e.MachineID, e.Field, e.Reason)
}

// Catalog is an immutable, validated collection of machine configurations.
type Catalog struct {
	machines map[string]*models.Machine
	order    []string
}

// New builds a catalog from the given machines, validating each one.
func New(machines []*models.Machine) (*Catalog, error) {
	c := &Catalog{machines: make(map[string]*models.Machine, len(machines))}
	for _, m := range machines {
		if err := validate(m); err != nil {
			return nil, err
		}
		if _, exists := c.machines[m.ID]; exists {
			return nil, &ConfigError{MachineID: m.ID, Field: "id", Reason: "duplicate machine id"}
		}
		c.machines[m.ID] = m
		c.order = append(c.order, m.ID)
	}
	return c, nil
}

// Get returns the machine with the given id.
func (c *Catalog) Get(id string) (*models.Machine, bool) {
	m, ok := c.machines[id]
	return m, ok
}

// List returns all machines in load order.
func (c *Catalog) List() []*models.Machine {
	out := make([]*models.Machine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.machines[id])
	}
	return out
}

// validate enforces the structural invariants of one machine config.
func validate(m *models.Machine) error {
	fail := func(field, reason string) error {
		return &ConfigError{MachineID: m.ID, Field: field, Reason: reason}
	}

	if m.ID == "" {
		return fail("id", "must not be empty")
	}
	if m.Rows <= 0 {
		return fail("rows", "must be positive")
	}
	if len(m.Reels) == 0 {
		return fail("reels", "must not be empty")
	}
	if len(m.Symbols) == 0 {
		return fail("symbols", "must not be empty")
	}
	if !m.MinBet.IsPositive() {
		return fail("min_bet", "must be positive")
	}
	if m.MaxBet.LessThan(m.MinBet) {
		return fail("max_bet", "must be >= min_bet")
	}

	known := make(map[string]bool, len(m.Symbols))
	for _, s := range m.Symbols {
		if s.ID == "" {
			return fail("symbols", "symbol id must not be empty")
		}
		if known[s.ID] {
			return fail("symbols", fmt.Sprintf("duplicate symbol id %q", s.ID))
		}
		known[s.ID] = true
	}

	for i, reel := range m.Reels {
		if len(reel.Symbols) == 0 {
			return fail(fmt.Sprintf("reels[%d]", i), "must hold at least one symbol")
		}
		for _, id := range reel.Symbols {
			if !known[id] {
				return fail(fmt.Sprintf("reels[%d]", i), fmt.Sprintf("unknown symbol %q", id))
			}
		}
		for id, w := range reel.Weights {
			if !known[id] {
				return fail(fmt.Sprintf("reels[%d].weights", i), fmt.Sprintf("unknown symbol %q", id))
			}
			if w < 0 {
				return fail(fmt.Sprintf("reels[%d].weights", i), fmt.Sprintf("negative weight for %q", id))
			}
		}
		if reel.TotalWeight() <= 0 {
			return fail(fmt.Sprintf("reels[%d]", i), "weights must sum to a positive value")
		}
	}

	for i, line := range m.Paylines {
		if len(line.Cells) == 0 {
			return fail(fmt.Sprintf("paylines[%d]", i), "must hold at least one cell")
		}
		for _, c := range line.Cells {
			if c.Reel < 0 || c.Reel >= len(m.Reels) || c.Row < 0 || c.Row >= m.Rows {
				return fail(fmt.Sprintf("paylines[%d]", i), fmt.Sprintf("cell (%d,%d) out of range", c.Reel, c.Row))
			}
		}
	}

	for i, wc := range m.WinConditions {
		if !known[wc.SymbolID] {
			return fail(fmt.Sprintf("win_conditions[%d]", i), fmt.Sprintf("unknown symbol %q", wc.SymbolID))
		}
		if wc.Count <= 0 {
			return fail(fmt.Sprintf("win_conditions[%d]", i), "count must be positive")
		}
		if wc.Payout.IsNegative() {
			return fail(fmt.Sprintf("win_conditions[%d]", i), "payout must not be negative")
		}
	}

	return nil
}
