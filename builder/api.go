// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   • One orchestrator: Build(width, height, bopts, cons...). Allocates an open
//     grid, resolves cfg, runs cons in order, then validates via gridgraph.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical grids.
//   • Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

const minGridDim = 1

// Constructor paints cells into values (indexed values[y][x]) using the
// resolved builderConfig. Constructors validate their parameters and return
// sentinel errors; they never panic.
type Constructor func(values [][]int, cfg builderConfig) error

// Build allocates a width×height open grid, applies all constructors in
// order and returns the resulting immutable gridgraph.Grid.
// Any constructor error is wrapped with "Build: %w".
func Build(width, height int, bopts []BuilderOption, cons ...Constructor) (*gridgraph.Grid, error) {
	if width < minGridDim || height < minGridDim {
		return nil, fmt.Errorf("Build: %dx%d (each must be ≥ %d): %w", width, height, minGridDim, ErrTooSmall)
	}
	values := make([][]int, height)
	for y := range values {
		values[y] = make([]int, width)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(values, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return gridgraph.NewGrid(values)
}

// BuildMap is Build plus explicit start and goal cells.
func BuildMap(width, height int, start, goal gridgraph.Coord, bopts []BuilderOption, cons ...Constructor) (*gridgraph.Map, error) {
	g, err := Build(width, height, bopts, cons...)
	if err != nil {
		return nil, err
	}

	return &gridgraph.Map{Grid: g, Start: start, Goal: goal}, nil
}
