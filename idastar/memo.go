package idastar

import (
	"math"

	"github.com/katalvlaran/gridsearch/core"
)

// SearchMemo runs IDA* with two refinements over Search:
//
//   - a per-iteration threshold cache: a state already explored in this
//     iteration at f' ≤ f is not explored again;
//   - heuristic relaxation: a child's estimate is raised to
//     h(parent) − cost when that is larger, so a learned floor propagates
//     down the path.
//
// The goal test runs when a node is entered, after its bound test. Outcomes
// and errors are as for Search; ProbeStats.CacheSize reports the cache size.
func SearchMemo[S comparable](p core.Problem[S], h core.Heuristic[S], opts ...core.Option) (*core.Result[S], error) {
	s, err := newSearcher(p, h, opts)
	if err != nil {
		return nil, err
	}
	s.cache = make(map[S]float64)

	return s.run(s.probeMemo)
}

func (s *searcher[S]) probeMemo(n *core.Node[S]) (bool, error) {
	f := n.F(s.weight)
	if s.exceeds(f) {
		return false, nil
	}
	if s.problem.IsGoal(n.State) {
		s.goal = n
		return true, nil
	}
	if best, ok := s.cache[n.State]; ok && best <= f {
		return false, nil
	}
	s.cache[n.State] = f
	defer s.enter(n)()
	if err := s.track.Draw(); err != nil {
		return false, err
	}

	for _, succ := range s.problem.Successors(n.State) {
		if s.onPath(succ.State) {
			continue
		}
		if err := s.track.Expand(succ.State); err != nil {
			return false, err
		}
		h := math.Max(s.h(succ.State), n.H-succ.Cost)
		found, err := s.probeMemo(n.Child(succ, h))
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}
