package idastar

import (
	"sort"

	"github.com/katalvlaran/gridsearch/core"
)

// SearchTable runs IDA* over a Terrain with a precomputed, obstacle-biased
// estimate table[s] = h(s) + DensityPenalty·ObstacleDensity(s) for every
// state in p.Cells(). States outside the table fall back to h.
//
// Successors are probed in ascending (Deviation, ObstacleDensity) order,
// ties kept in generation order. Dead-end states other than the goal are
// pruned. The goal test runs when a node is entered, after its bound test.
//
// The density penalty makes the estimate inadmissible near obstacles, so
// plans are not guaranteed to be shortest.
func SearchTable[S comparable](p Terrain[S], h core.Heuristic[S], opts ...core.Option) (*core.Result[S], error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	if h == nil {
		return nil, core.ErrNilHeuristic
	}
	cells := p.Cells()
	table := make(map[S]float64, len(cells))
	for _, c := range cells {
		table[c] = h(c) + DensityPenalty*float64(p.ObstacleDensity(c))
	}
	lookup := func(st S) float64 {
		if v, ok := table[st]; ok {
			return v
		}
		return h(st)
	}

	s, err := newSearcher[S](p, lookup, opts)
	if err != nil {
		return nil, err
	}
	t := &tableProbe[S]{searcher: s, terrain: p}

	return s.run(t.probe)
}

// tableProbe binds the terrain queries to a searcher.
type tableProbe[S comparable] struct {
	*searcher[S]
	terrain Terrain[S]
}

func (t *tableProbe[S]) probe(n *core.Node[S]) (bool, error) {
	if t.exceeds(n.F(t.weight)) {
		return false, nil
	}
	if t.problem.IsGoal(n.State) {
		t.goal = n
		return true, nil
	}
	if t.terrain.DeadEnd(n.State) {
		return false, nil
	}
	defer t.enter(n)()
	if err := t.track.Draw(); err != nil {
		return false, err
	}

	for _, sc := range t.ordered(n.State) {
		if t.onPath(sc.succ.State) {
			continue
		}
		if err := t.track.Expand(sc.succ.State); err != nil {
			return false, err
		}
		found, err := t.probe(n.Child(sc.succ, t.h(sc.succ.State)))
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}

// ordered returns the successors of st sorted by (Deviation, ObstacleDensity).
func (t *tableProbe[S]) ordered(st S) []scored[S] {
	succs := t.problem.Successors(st)
	out := make([]scored[S], len(succs))
	for i, succ := range succs {
		out[i] = scored[S]{
			succ:      succ,
			deviation: t.terrain.Deviation(st, succ.State),
			density:   t.terrain.ObstacleDensity(succ.State),
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].deviation != out[j].deviation {
			return out[i].deviation < out[j].deviation
		}
		return out[i].density < out[j].density
	})

	return out
}
