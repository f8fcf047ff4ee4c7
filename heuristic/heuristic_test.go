package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/heuristic"
)

func TestParse(t *testing.T) {
	cases := []struct {
		code string
		want heuristic.Metric
	}{
		{"m", heuristic.Manhattan},
		{"c", heuristic.Chebyshev},
		{"e", heuristic.Euclidean},
		{"b", heuristic.Blind},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			m, err := heuristic.Parse(tc.code)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m)
			assert.Equal(t, tc.code, m.Code())
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, code := range []string{"", "x", "M", "mm", "manhattan"} {
		_, err := heuristic.Parse(code)
		assert.ErrorIs(t, err, heuristic.ErrUnknownMetric, "code %q", code)
	}
}

func TestEstimate(t *testing.T) {
	cases := []struct {
		name   string
		m      heuristic.Metric
		dx, dy int
		want   float64
	}{
		{"ManhattanOrigin", heuristic.Manhattan, 0, 0, 0},
		{"ManhattanMixedSigns", heuristic.Manhattan, -3, 4, 7},
		{"ChebyshevDiagonal", heuristic.Chebyshev, 4, 4, 4},
		{"ChebyshevNegative", heuristic.Chebyshev, -5, 2, 5},
		{"EuclideanTriangle", heuristic.Euclidean, 3, -4, 5},
		{"BlindFar", heuristic.Blind, 100, -100, 0},
		{"InvalidIsBlind", heuristic.Metric('x'), 3, 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.m.Estimate(tc.dx, tc.dy), 1e-9)
		})
	}
}

func TestEstimate_NonNegative(t *testing.T) {
	for _, m := range heuristic.All() {
		for dx := -3; dx <= 3; dx++ {
			for dy := -3; dy <= 3; dy++ {
				assert.GreaterOrEqual(t, m.Estimate(dx, dy), 0.0, "%s(%d,%d)", m, dx, dy)
			}
		}
	}
}

func TestEuclideanIsRealValued(t *testing.T) {
	got := heuristic.Euclidean.Estimate(1, 1)
	assert.InDelta(t, math.Sqrt2, got, 1e-12)
	assert.NotEqual(t, math.Trunc(got), got)
}

func TestAdmissible(t *testing.T) {
	for _, m := range heuristic.All() {
		assert.True(t, m.Admissible(false), "%s on 4-dir grid", m)
	}
	assert.False(t, heuristic.Manhattan.Admissible(true))
	assert.False(t, heuristic.Euclidean.Admissible(true))
	assert.True(t, heuristic.Chebyshev.Admissible(true))
	assert.True(t, heuristic.Blind.Admissible(true))
	assert.False(t, heuristic.Metric('z').Admissible(false))
}

func TestString(t *testing.T) {
	assert.Equal(t, "manhattan", heuristic.Manhattan.String())
	assert.Equal(t, "chebyshev", heuristic.Chebyshev.String())
	assert.Equal(t, "euclidean", heuristic.Euclidean.String())
	assert.Equal(t, "blind", heuristic.Blind.String())
	assert.Equal(t, `metric('q')`, heuristic.Metric('q').String())
}
