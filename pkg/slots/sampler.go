// Package slots implements the spin engine: weighted reel sampling, payline
// and scatter evaluation, and the coordinator that settles spins against the
// wallet store.
package slots

import (
	"math/rand/v2"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

// RNG is the source of randomness for reel draws. Production samplers use a
// seeded math/rand/v2 source; tests substitute a fixed sequence.
type RNG interface {
	// IntN returns a uniform random int in [0, n).
	IntN(n int) int
}

type defaultRNG struct{}

func (defaultRNG) IntN(n int) int { return rand.IntN(n) }

// Sampler draws symbols from weighted reels.
type Sampler struct {
	rng RNG
}

// NewSampler creates a sampler backed by the given RNG. A nil RNG falls back
// to the shared math/rand/v2 source.
func NewSampler(rng RNG) *Sampler {
	if rng == nil {
		rng = defaultRNG{}
	}
	return &Sampler{rng: rng}
}

// DrawSymbol draws one symbol from the reel according to its weights.
// A symbol missing from the weight map draws with weight 1. Reels with a
// non-positive total weight are rejected at catalog validation, so the
// fallback return here is unreachable for a validated machine.
func (s *Sampler) DrawSymbol(reel models.Reel) string {
	total := reel.TotalWeight()
	if total <= 0 {
		return ""
	}

	draw := s.rng.IntN(total)
	cumulative := 0
	for _, id := range reel.Symbols {
		cumulative += reel.Weight(id)
		if draw < cumulative {
			return id
		}
	}
	return reel.Symbols[len(reel.Symbols)-1]
}

// DrawGrid produces a fresh grid for the machine, with one independent draw
// per (reel, row) cell. Rows within a reel are independent draws, not a
// window over one linear draw, so cell probabilities match the configured
// weights exactly.
func (s *Sampler) DrawGrid(m *models.Machine) models.Grid {
	grid := make(models.Grid, len(m.Reels))
	for r, reel := range m.Reels {
		grid[r] = make([]string, m.Rows)
		for row := 0; row < m.Rows; row++ {
			grid[r][row] = s.DrawSymbol(reel)
		}
	}
	return grid
}
