package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePoint(t *testing.T) {
	points := []orb.Point{
		{0, 0},
		{2.3522, 48.8566},
		{-179.9, -89.9},
		{3.80, 43.60},
	}

	for _, p := range points {
		assert.Zero(t, Distance(p, p))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	paris := orb.Point{2.3522, 48.8566}
	marseille := orb.Point{5.3698, 43.2965}
	montpellier := orb.Point{3.8767, 43.6108}

	assert.InDelta(t, Distance(paris, marseille), Distance(marseille, paris), 1e-9)
	assert.InDelta(t, Distance(paris, montpellier), Distance(montpellier, paris), 1e-9)
}

func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		name string
		from orb.Point
		to   orb.Point
		minM float64
		maxM float64
	}{
		{
			name: "paris to marseille",
			from: orb.Point{2.3522, 48.8566},
			to:   orb.Point{5.3698, 43.2965},
			minM: 655000,
			maxM: 665000,
		},
		{
			name: "apiary drift of the reference scenario",
			from: orb.Point{3.80, 43.60},
			to:   orb.Point{4.00, 44.00},
			minM: 45000,
			maxM: 60000,
		},
		{
			name: "one degree of latitude",
			from: orb.Point{0, 0},
			to:   orb.Point{0, 1},
			minM: 111100,
			maxM: 111300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Distance(tt.from, tt.to)
			assert.GreaterOrEqual(t, d, tt.minM)
			assert.LessOrEqual(t, d, tt.maxM)
		})
	}
}

func TestDistanceMeters_MatchesPointForm(t *testing.T) {
	got := DistanceMeters(48.8566, 2.3522, 43.2965, 5.3698)
	want := Distance(orb.Point{2.3522, 48.8566}, orb.Point{5.3698, 43.2965})

	assert.InDelta(t, want, got, 1e-9)
}
