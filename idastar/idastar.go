// Package idastar implements iterative-deepening A*: repeated depth-first
// probes bounded by f = g + w·h, where each iteration raises the bound to
// the smallest f that exceeded it.
package idastar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridsearch/core"
)

// Search runs baseline IDA* on p guided by h.
//
// Every probe descends recursively, skipping states already on the current
// path; the path set is released on every exit so it is empty between
// iterations. A successor is reported through OnExpand when it is generated
// and is tested for the goal at that moment, before its own bound test.
//
// Returns Found == false with a nil error when no state lies above the
// bound any more. Errors: core.ErrNilProblem, core.ErrNilHeuristic,
// core.ErrOptionViolation, core.ErrCallback, core.ErrExpansionLimit and
// context errors.
func Search[S comparable](p core.Problem[S], h core.Heuristic[S], opts ...core.Option) (*core.Result[S], error) {
	s, err := newSearcher(p, h, opts)
	if err != nil {
		return nil, err
	}

	return s.run(s.probe)
}

// newSearcher validates input and prepares a searcher with an empty path set.
func newSearcher[S comparable](p core.Problem[S], h core.Heuristic[S], opts []core.Option) (*searcher[S], error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	if h == nil {
		return nil, core.ErrNilHeuristic
	}
	cfg, err := core.Configure(opts...)
	if err != nil {
		return nil, err
	}
	track, err := core.NewTracker[S](cfg)
	if err != nil {
		return nil, err
	}

	return &searcher[S]{
		problem: p,
		h:       h,
		weight:  cfg.Weight,
		track:   track,
		onProbe: cfg.OnProbe,
		path:    make(map[S]struct{}),
	}, nil
}

// run drives the bound iterations: bound starts at f(root), each probe
// either records a goal or lowers next, and next becomes the new bound.
// A probe that leaves next at +Inf proves there is no path.
func (s *searcher[S]) run(probe probeFunc[S]) (*core.Result[S], error) {
	res := s.track.Result()
	initial := s.problem.Initial()
	root := core.Root(initial, s.h(initial))
	if s.problem.IsGoal(initial) {
		return core.Finish(res, root), nil
	}

	s.bound = root.F(s.weight)
	for iter := 1; ; iter++ {
		s.next = math.Inf(1)
		if s.cache != nil {
			clear(s.cache)
		}
		found, err := probe(root)
		res.Iterations = iter
		if err != nil {
			return nil, err
		}

		stats := core.ProbeStats{
			Iteration:   iter,
			Bound:       s.bound,
			Next:        s.next,
			Found:       found,
			PathSetSize: len(s.path),
			CacheSize:   len(s.cache),
		}
		if err = s.onProbe(stats); err != nil {
			return nil, fmt.Errorf("%w: OnProbe iteration %d: %w", core.ErrCallback, iter, err)
		}

		if found {
			return core.Finish(res, s.goal), nil
		}
		if math.IsInf(s.next, 1) {
			return res, nil
		}
		s.bound = s.next
	}
}

// exceeds reports whether f lies above the bound and, if so, offers it as
// the next bound. Values at or below the bound are never candidates.
func (s *searcher[S]) exceeds(f float64) bool {
	if f <= s.bound {
		return false
	}
	if f < s.next {
		s.next = f
	}

	return true
}

// enter pushes n onto the path and returns the function that pops it.
func (s *searcher[S]) enter(n *core.Node[S]) func() {
	s.path[n.State] = struct{}{}

	return func() { delete(s.path, n.State) }
}

// onPath reports whether st is on the current root→node path.
func (s *searcher[S]) onPath(st S) bool {
	_, ok := s.path[st]

	return ok
}

// probe is the baseline recursive step.
func (s *searcher[S]) probe(n *core.Node[S]) (bool, error) {
	if s.exceeds(n.F(s.weight)) {
		return false, nil
	}
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
		child := n.Child(succ, s.h(succ.State))
		if s.problem.IsGoal(child.State) {
			s.goal = child
			return true, nil
		}
		found, err := s.probe(child)
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}
