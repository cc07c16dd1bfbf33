package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

// stubRNG plays back a fixed sequence of draws.
type stubRNG struct {
	values []int
	pos    int
}

func (s *stubRNG) IntN(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

func TestDrawSymbolWeightFidelity(t *testing.T) {
	// A reel weighted {A:1, B:3} must converge to a 1:3 ratio.
	reel := models.Reel{
		Symbols: []string{"A", "B"},
		Weights: map[string]int{"A": 1, "B": 3},
	}
	sampler := NewSampler(nil)

	const draws = 100000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[sampler.DrawSymbol(reel)]++
	}

	require.Equal(t, draws, counts["A"]+counts["B"])
	assert.InDelta(t, 0.25, float64(counts["A"])/draws, 0.01)
	assert.InDelta(t, 0.75, float64(counts["B"])/draws, 0.01)
}

func TestDrawSymbolDefaultWeight(t *testing.T) {
	// A symbol missing from the weight map draws with weight 1, the same as
	// the least-weighted configured symbol.
	reel := models.Reel{
		Symbols: []string{"A", "B"},
		Weights: map[string]int{"B": 1},
	}
	sampler := NewSampler(nil)

	const draws = 100000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[sampler.DrawSymbol(reel)]++
	}

	assert.InDelta(t, 0.5, float64(counts["A"])/draws, 0.01)
}

func TestDrawSymbolCumulativeBoundaries(t *testing.T) {
	reel := models.Reel{
		Symbols: []string{"A", "B", "C"},
		Weights: map[string]int{"A": 2, "B": 3, "C": 1},
	}

	// Draw values map onto the cumulative ranges [0,2) [2,5) [5,6).
	cases := []struct {
		draw string
		want string
	}{
		{"0", "A"}, {"1", "A"}, {"2", "B"}, {"4", "B"}, {"5", "C"},
	}
	for _, tc := range cases {
		v := int(tc.draw[0] - '0')
		sampler := NewSampler(&stubRNG{values: []int{v}})
		assert.Equal(t, tc.want, sampler.DrawSymbol(reel))
	}
}

func TestDrawGrid(t *testing.T) {
	machine := &models.Machine{
		Rows: 3,
		Reels: []models.Reel{
			{Symbols: []string{"A"}},
			{Symbols: []string{"B"}},
		},
	}
	sampler := NewSampler(&stubRNG{values: []int{0}})

	grid := sampler.DrawGrid(machine)

	require.Len(t, grid, 2)
	for r := range grid {
		require.Len(t, grid[r], 3)
	}
	assert.Equal(t, "A", grid[0][0])
	assert.Equal(t, "B", grid[1][2])
}
