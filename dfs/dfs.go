// Package dfs implements depth‑first search on a core.Problem with an
// explicit LIFO stack, so visualization hooks can run after every pop.
//
// Key features:
//   - Search(p, opts...): pop, report, goal-test, push unreached successors
//   - Hooks: OnExpand per popped state, Draw per step, both abort on error
//   - Limits: WithMaxExpansions ceiling, cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) (each state pushed at most once).
//   - Memory: O(V) for the stack and reached set.
//
// Errors:
//
//   - core.ErrNilProblem       if p is nil.
//   - core.ErrOptionViolation  for invalid options.
//   - core.ErrCallback         wrapping hook failures.
//   - core.ErrExpansionLimit   past WithMaxExpansions.
//   - context.Canceled         if ctx is done.
package dfs

import (
	"github.com/katalvlaran/gridsearch/core"
)

// Search performs depth‑first search on p. The plan it returns is not
// necessarily the shortest; a plan is found whenever the goal is reachable
// in a finite state space. An exhausted stack yields Found=false.
func Search[S comparable](p core.Problem[S], opts ...core.Option) (*core.Result[S], error) {
	// 1. Validate input problem
	if p == nil {
		return nil, core.ErrNilProblem
	}

	// 2. Apply options
	o, err := core.Configure(opts...)
	if err != nil {
		return nil, err
	}
	track, err := core.NewTracker[S](o)
	if err != nil {
		return nil, err
	}

	// 3. Seed the stack with the root, reached from the start
	root := core.Root(p.Initial(), 0)
	w := &dfsWalker[S]{
		problem: p,
		track:   track,
		stack:   []*core.Node[S]{root},
		reached: map[S]struct{}{root.State: {}},
	}

	// 4. Traverse
	goal, err := w.traverse()
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return track.Result(), nil
	}

	return core.Finish(track.Result(), goal), nil
}

// traverse pops nodes until a goal is popped or the stack is exhausted.
func (w *dfsWalker[S]) traverse() (*core.Node[S], error) {
	var node *core.Node[S]
	for len(w.stack) > 0 {
		// 1. Pop
		node = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// 2. Report, then goal test at pop time
		if err := w.track.Expand(node.State); err != nil {
			return nil, err
		}
		if w.problem.IsGoal(node.State) {
			return node, nil
		}

		// 3. Push every unreached successor, marking it reached
		for _, succ := range w.problem.Successors(node.State) {
			if _, seen := w.reached[succ.State]; seen {
				continue
			}
			w.reached[succ.State] = struct{}{}
			w.stack = append(w.stack, node.Child(succ, 0))
		}

		// 4. Draw hook
		if err := w.track.Draw(); err != nil {
			return nil, err
		}
	}

	return nil, nil
}
