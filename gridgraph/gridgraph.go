// Package gridgraph provides utilities to treat a 2D grid of cells as the
// state space of a pathfinding problem. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Static obstacles (walls) and restricted zones closed to Diesel movers
//   - Obstacle density and dead-end queries used by the table-driven IDA*
//   - Region labelling for reachability checks
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed
// values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrCellValue for values
// other than Free, Wall or Zone.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x, v := range values[y] {
			if v != Free && v != Wall && v != Zone {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrCellValue, v, x, y)
			}
			cells[y][x] = v
		}
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// At returns the cell value at c. Out-of-bounds cells read as Wall.
func (g *Grid) At(c Coord) int {
	if !g.InBounds(c) {
		return Wall
	}

	return g.cells[c.Y][c.X]
}

// IsWall reports whether c is an in-bounds static obstacle.
func (g *Grid) IsWall(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Y][c.X] == Wall
}

// Passable reports whether mover m may occupy c.
func (g *Grid) Passable(c Coord, m Mover) bool {
	switch g.At(c) {
	case Free:
		return true
	case Zone:
		return m != Diesel
	}

	return false
}

// Cells returns every non-wall cell in row-major order (y, then x).
func (g *Grid) Cells() []Coord {
	out := make([]Coord, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] != Wall {
				out = append(out, Coord{x, y})
			}
		}
	}

	return out
}

// ObstacleDensity counts walls in the 3×3 neighbourhood centred on c,
// ignoring cells outside the grid.
// Complexity: O(1).
func (g *Grid) ObstacleDensity(c Coord) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if g.IsWall(Coord{c.X + dx, c.Y + dy}) {
				count++
			}
		}
	}

	return count
}

// DeadEnd reports whether every in-bounds cell among the eight neighbours
// of c is a wall. A cell with no in-bounds neighbours is a dead end.
func (g *Grid) DeadEnd(c Coord) bool {
	for _, d := range ring {
		n := c.Add(d)
		if g.InBounds(n) && !g.IsWall(n) {
			return false
		}
	}

	return true
}

// index maps c to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(c Coord) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row‑major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{idx % g.Width, idx / g.Width}
}

// String renders the grid one row per line, y ascending:
// '%' wall, 'z' restricted zone, '.' free.
func (g *Grid) String() string {
	return g.render(nil)
}

// render draws the grid with the given per-cell overrides.
func (g *Grid) render(marks map[Coord]byte) string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Coord{x, y}
			if m, ok := marks[c]; ok {
				b.WriteByte(m)
				continue
			}
			switch g.cells[y][x] {
			case Wall:
				b.WriteByte('%')
			case Zone:
				b.WriteByte('z')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
