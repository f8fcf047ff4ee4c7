package heuristic

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownMetric is returned when a heuristic code is not one of m, c, e, b.
var ErrUnknownMetric = errors.New("heuristic: unknown metric code")

// Metric identifies a distance estimate by its single-character code.
type Metric byte

const (
	// Manhattan is the L1 distance |dx| + |dy|.
	Manhattan Metric = 'm'
	// Chebyshev is the L∞ distance max(|dx|, |dy|).
	Chebyshev Metric = 'c'
	// Euclidean is the L2 distance sqrt(dx² + dy²).
	Euclidean Metric = 'e'
	// Blind always estimates 0.
	Blind Metric = 'b'
)

// All returns every supported metric in canonical order m, c, e, b.
func All() []Metric {
	return []Metric{Manhattan, Chebyshev, Euclidean, Blind}
}

// Parse converts a one-character code into a Metric.
// Returns ErrUnknownMetric for empty, multi-character or unsupported codes.
func Parse(code string) (Metric, error) {
	if len(code) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, code)
	}
	m := Metric(code[0])
	if !m.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, code)
	}

	return m, nil
}

// Valid reports whether m is one of the supported metrics.
func (m Metric) Valid() bool {
	switch m {
	case Manhattan, Chebyshev, Euclidean, Blind:
		return true
	}

	return false
}

// String returns the metric's full name.
func (m Metric) String() string {
	switch m {
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	case Euclidean:
		return "euclidean"
	case Blind:
		return "blind"
	}

	return fmt.Sprintf("metric(%q)", byte(m))
}

// Code returns the single-character selector of m.
func (m Metric) Code() string { return string(rune(m)) }

// Estimate returns the metric applied to the offset (dx, dy).
// An invalid metric estimates 0, like Blind; validate with Parse first.
func (m Metric) Estimate(dx, dy int) float64 {
	switch m {
	case Manhattan:
		return ManhattanDistance(dx, dy)
	case Chebyshev:
		return ChebyshevDistance(dx, dy)
	case Euclidean:
		return EuclideanDistance(dx, dy)
	}

	return BlindDistance(dx, dy)
}

// Admissible reports whether m never overestimates the remaining cost on a
// unit-cost grid. diagonal selects 8-directional movement.
func (m Metric) Admissible(diagonal bool) bool {
	if !m.Valid() {
		return false
	}
	if diagonal {
		return m != Manhattan && m != Euclidean
	}

	return true
}

// ManhattanDistance returns |dx| + |dy|.
func ManhattanDistance(dx, dy int) float64 {
	return float64(abs(dx) + abs(dy))
}

// ChebyshevDistance returns max(|dx|, |dy|).
func ChebyshevDistance(dx, dy int) float64 {
	return float64(max(abs(dx), abs(dy)))
}

// EuclideanDistance returns sqrt(dx² + dy²).
func EuclideanDistance(dx, dy int) float64 {
	return math.Hypot(float64(dx), float64(dy))
}

// BlindDistance returns 0 for every offset.
func BlindDistance(_, _ int) float64 { return 0 }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
