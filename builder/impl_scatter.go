// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// impl_scatter.go - seeded random obstacle field.
//
// Contract:
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • Requires cfg.rng (WithSeed/WithRand), else ErrNeedRandSource.
//   • Cells are drawn in row-major order, one Float64 per cell, so the same
//     seed always yields the same field.
//   • Cells listed in keep are never walled.

package builder

import (
	"github.com/katalvlaran/gridsearch/gridgraph"
)

const methodScatter = "Scatter"

// Scatter turns each Free cell into a wall with probability p.
func Scatter(p float64, keep ...gridgraph.Coord) Constructor {
	return func(values [][]int, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return builderErrorf(methodScatter, "p=%v: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return builderErrorf(methodScatter, "%w", ErrNeedRandSource)
		}
		skip := make(map[gridgraph.Coord]bool, len(keep))
		for _, c := range keep {
			skip[c] = true
		}
		for y := range values {
			for x := range values[y] {
				draw := cfg.rng.Float64()
				if values[y][x] != gridgraph.Free || skip[gridgraph.Coord{X: x, Y: y}] {
					continue
				}
				if draw < p {
					values[y][x] = gridgraph.Wall
				}
			}
		}
		return nil
	}
}
