// Package heuristic provides distance estimates between two grid coordinates
// for the heuristic-guided strategies (A*, IDA*).
//
// What
//
//   - A Metric is selected by a single-character code:
//   - 'm' Manhattan  (L1 distance)
//   - 'c' Chebyshev  (L∞ distance)
//   - 'e' Euclidean  (L2 distance, real-valued)
//   - 'b' Blind      (constant 0; guided search degenerates to uninformed best-first)
//   - Every estimate is a non-negative float64 so integer-valued metrics and
//     the Euclidean metric compare consistently against accumulated path cost.
//
// Admissibility
//
//	On a unit-cost 4-directional grid all four metrics are admissible, and
//	Manhattan, Chebyshev and Blind are also consistent. When diagonal moves
//	cost 1, Manhattan overestimates and is no longer admissible; see
//	Metric.Admissible.
//
// Errors
//
//   - ErrUnknownMetric  if Parse receives an unsupported code.
//
// Usage
//
//	m, err := heuristic.Parse("m")
//	if err != nil {
//	    // configuration error
//	}
//	h := m.Estimate(dx, dy)
package heuristic
