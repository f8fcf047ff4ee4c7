package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/heuristic"
)

// PathFinding is the grid search problem: reach goal from start with unit
// cost moves under a movement model and a mover class. It implements
// core.Problem, core.GoalProblem and the idastar Terrain interface.
// PathFinding is immutable and safe for concurrent searches.
type PathFinding struct {
	grid  *Grid
	start Coord
	goal  Coord
	opts  GridOptions
	moves []move
}

// NewPathFinding validates start and goal against grid and opts.
// Returns ErrOutOfBounds if either lies outside the grid and ErrBlockedCell
// if the mover cannot occupy it.
func NewPathFinding(grid *Grid, start, goal Coord, opts GridOptions) (*PathFinding, error) {
	if grid == nil {
		return nil, ErrEmptyGrid
	}
	for _, c := range []Coord{start, goal} {
		if !grid.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, grid.Width, grid.Height)
		}
		if !grid.Passable(c, opts.Mover) {
			return nil, fmt.Errorf("%w: %v for %s mover", ErrBlockedCell, c, opts.Mover)
		}
	}
	ms := moves4
	if opts.Conn == Conn8 {
		ms = moves8
	}

	return &PathFinding{grid: grid, start: start, goal: goal, opts: opts, moves: ms}, nil
}

// Grid returns the underlying world.
func (p *PathFinding) Grid() *Grid { return p.grid }

// Options returns the movement model and mover class.
func (p *PathFinding) Options() GridOptions { return p.opts }

// Initial returns the start cell.
func (p *PathFinding) Initial() Coord { return p.start }

// Goal returns the goal cell.
func (p *PathFinding) Goal() Coord { return p.goal }

// IsGoal reports whether c is the goal cell.
func (p *PathFinding) IsGoal(c Coord) bool { return c == p.goal }

// Successors returns the feasible unit moves from c in fixed action order.
// Moves that leave the grid, hit a wall or, for Diesel movers, enter a
// restricted zone are filtered out. Every move costs 1, diagonals included.
func (p *PathFinding) Successors(c Coord) []core.Successor[Coord] {
	out := make([]core.Successor[Coord], 0, len(p.moves))
	for _, m := range p.moves {
		next := c.Add(m.delta)
		if !p.grid.Passable(next, p.opts.Mover) {
			continue
		}
		out = append(out, core.Successor[Coord]{Action: m.action, State: next, Cost: 1})
	}

	return out
}

// Heuristic returns metric m measured towards the goal.
func (p *PathFinding) Heuristic(m heuristic.Metric) core.Heuristic[Coord] {
	return Heuristic(m, p.goal)
}

// Reachable reports whether the goal can be reached at all.
func (p *PathFinding) Reachable() bool {
	return p.grid.Connected(p.start, p.goal, p.opts.Conn, p.opts.Mover)
}

// Cells returns every non-wall cell, row-major.
func (p *PathFinding) Cells() []Coord { return p.grid.Cells() }

// ObstacleDensity counts walls in the 3×3 neighbourhood of c.
func (p *PathFinding) ObstacleDensity(c Coord) int { return p.grid.ObstacleDensity(c) }

// DeadEnd reports whether all in-bounds neighbours of c are walls.
func (p *PathFinding) DeadEnd(c Coord) bool { return p.grid.DeadEnd(c) }

// Deviation scores the move from → to by the distance between the move
// vector and the direct vector from → goal. Smaller is better aligned.
func (p *PathFinding) Deviation(from, to Coord) float64 {
	dx, dy := to.X-from.X, to.Y-from.Y
	gx, gy := p.goal.X-from.X, p.goal.Y-from.Y

	return math.Hypot(float64(dx-gx), float64(dy-gy))
}

// Heuristic adapts metric m to a core.Heuristic estimating the distance
// from a cell to goal.
func Heuristic(m heuristic.Metric, goal Coord) core.Heuristic[Coord] {
	return func(c Coord) float64 {
		return m.Estimate(goal.X-c.X, goal.Y-c.Y)
	}
}

// Trace replays actions from start and returns every cell visited,
// start included. Returns ErrUnknownAction for unrecognised labels.
func Trace(start Coord, actions []core.Action) ([]Coord, error) {
	out := make([]Coord, 0, len(actions)+1)
	out = append(out, start)
	cur := start
	for i, a := range actions {
		d, ok := Offset(a)
		if !ok {
			return nil, fmt.Errorf("%w: %q at step %d", ErrUnknownAction, a, i)
		}
		cur = cur.Add(d)
		out = append(out, cur)
	}

	return out, nil
}
