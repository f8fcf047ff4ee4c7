// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// impl_walls.go - deterministic wall and zone painters.
//
// Contract:
//   • Every painter validates indices against the grid and returns
//     ErrOutOfRange (wrapped with the method name) on violation.
//   • Later constructors overwrite earlier ones cell by cell.

package builder

import (
	"github.com/katalvlaran/gridsearch/gridgraph"
)

const (
	methodWallRow    = "WallRow"
	methodWallColumn = "WallColumn"
	methodWalls      = "Walls"
	methodEnclose    = "Enclose"
	methodZone       = "Zone"
	methodClear      = "Clear"
)

// WallRow fills row y with walls, leaving the x positions in gaps open.
func WallRow(y int, gaps ...int) Constructor {
	return func(values [][]int, _ builderConfig) error {
		if y < 0 || y >= len(values) {
			return builderErrorf(methodWallRow, "y=%d: %w", y, ErrOutOfRange)
		}
		open := make(map[int]bool, len(gaps))
		for _, x := range gaps {
			if x < 0 || x >= len(values[y]) {
				return builderErrorf(methodWallRow, "gap x=%d: %w", x, ErrOutOfRange)
			}
			open[x] = true
		}
		for x := range values[y] {
			if !open[x] {
				values[y][x] = gridgraph.Wall
			}
		}
		return nil
	}
}

// WallColumn fills column x with walls, leaving the y positions in gaps open.
func WallColumn(x int, gaps ...int) Constructor {
	return func(values [][]int, _ builderConfig) error {
		if x < 0 || x >= len(values[0]) {
			return builderErrorf(methodWallColumn, "x=%d: %w", x, ErrOutOfRange)
		}
		open := make(map[int]bool, len(gaps))
		for _, y := range gaps {
			if y < 0 || y >= len(values) {
				return builderErrorf(methodWallColumn, "gap y=%d: %w", y, ErrOutOfRange)
			}
			open[y] = true
		}
		for y := range values {
			if !open[y] {
				values[y][x] = gridgraph.Wall
			}
		}
		return nil
	}
}

// Walls places individual wall cells.
func Walls(cells ...gridgraph.Coord) Constructor {
	return paint(methodWalls, gridgraph.Wall, cells)
}

// Clear resets individual cells to Free.
func Clear(cells ...gridgraph.Coord) Constructor {
	return paint(methodClear, gridgraph.Free, cells)
}

// Enclose surrounds c with walls on all eight neighbours that lie inside
// the grid. The centre cell itself is left untouched.
func Enclose(c gridgraph.Coord) Constructor {
	return func(values [][]int, _ builderConfig) error {
		if !inside(values, c) {
			return builderErrorf(methodEnclose, "%v: %w", c, ErrOutOfRange)
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				n := gridgraph.Coord{X: c.X + dx, Y: c.Y + dy}
				if (dx != 0 || dy != 0) && inside(values, n) {
					values[n.Y][n.X] = gridgraph.Wall
				}
			}
		}
		return nil
	}
}

// Zone marks the inclusive rectangle [x0..x1]×[y0..y1] as a restricted zone.
func Zone(x0, y0, x1, y1 int) Constructor {
	return func(values [][]int, _ builderConfig) error {
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		if !inside(values, gridgraph.Coord{X: x0, Y: y0}) || !inside(values, gridgraph.Coord{X: x1, Y: y1}) {
			return builderErrorf(methodZone, "[%d..%d]x[%d..%d]: %w", x0, x1, y0, y1, ErrOutOfRange)
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				values[y][x] = gridgraph.Zone
			}
		}
		return nil
	}
}

func paint(method string, v int, cells []gridgraph.Coord) Constructor {
	return func(values [][]int, _ builderConfig) error {
		for _, c := range cells {
			if !inside(values, c) {
				return builderErrorf(method, "%v: %w", c, ErrOutOfRange)
			}
			values[c.Y][c.X] = v
		}
		return nil
	}
}

func inside(values [][]int, c gridgraph.Coord) bool {
	return c.Y >= 0 && c.Y < len(values) && c.X >= 0 && c.X < len(values[c.Y])
}
