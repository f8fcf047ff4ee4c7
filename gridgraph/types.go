// Package gridgraph defines cell values, coordinates, movement models and
// options for grid path-finding problems.
package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/core"
)

// Cell values understood by NewGrid.
const (
	Free = 0 // traversable by every mover
	Wall = 1 // static obstacle
	Zone = 2 // restricted zone, closed to Diesel movers
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, S, W, E.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals: N, S, W, E, NE, NW, SE, SW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}

	return "4"
}

// ParseConnectivity accepts 4 or 8.
func ParseConnectivity(n int) (Connectivity, error) {
	switch n {
	case 4:
		return Conn4, nil
	case 8:
		return Conn8, nil
	}

	return Conn4, fmt.Errorf("gridgraph: connectivity must be 4 or 8, got %d", n)
}

// Mover is the vehicle class moving over the grid.
type Mover int

const (
	// Electric movers may enter restricted zones.
	Electric Mover = iota
	// Diesel movers are kept out of restricted zones.
	Diesel
)

// String returns "electric" or "diesel".
func (m Mover) String() string {
	if m == Diesel {
		return "diesel"
	}

	return "electric"
}

// ParseMover converts a mover class name (case-insensitive).
// The empty string selects Electric.
func ParseMover(name string) (Mover, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "electric":
		return Electric, nil
	case "diesel":
		return Diesel, nil
	}

	return Electric, fmt.Errorf("%w: %q", ErrUnknownMover, name)
}

// Coord is a cell position; X grows east, Y grows north.
type Coord struct {
	X, Y int
}

// String formats c as "(x,y)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord { return Coord{c.X + d.X, c.Y + d.Y} }

// move pairs an action label with its unit offset.
type move struct {
	action core.Action
	delta  Coord
}

// Action labels and offsets. The enumeration order is fixed so successor
// generation is reproducible.
var (
	moves4 = []move{
		{"N", Coord{0, 1}},
		{"S", Coord{0, -1}},
		{"W", Coord{-1, 0}},
		{"E", Coord{1, 0}},
	}
	moves8 = append(append([]move{}, moves4...),
		move{"NE", Coord{1, 1}},
		move{"NW", Coord{-1, 1}},
		move{"SE", Coord{1, -1}},
		move{"SW", Coord{-1, -1}},
	)
	// ring lists all eight neighbor offsets for density and dead-end checks.
	ring = []Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1}}
)

// Offset returns the unit offset of action a.
func Offset(a core.Action) (Coord, bool) {
	for _, m := range moves8 {
		if m.action == a {
			return m.delta, true
		}
	}

	return Coord{}, false
}

// Actions returns the action labels of conn in enumeration order.
func Actions(conn Connectivity) []core.Action {
	ms := moves4
	if conn == Conn8 {
		ms = moves8
	}
	out := make([]core.Action, len(ms))
	for i, m := range ms {
		out[i] = m.action
	}

	return out
}

// GridOptions contains tunable parameters for a PathFinding problem.
type GridOptions struct {
	// Conn chooses 4- or 8-directional movement.
	Conn Connectivity
	// Mover selects the feasibility filter for restricted zones.
	Mover Mover
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn4, Mover=Electric.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:  Conn4,
		Mover: Electric,
	}
}

// Grid is an immutable rectangular world. Width and Height define
// dimensions; cells[y][x] holds Free, Wall or Zone.
type Grid struct {
	Width, Height int
	cells         [][]int
}
