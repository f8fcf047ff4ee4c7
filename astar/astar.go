// Package astar implements weighted A* best-first search on a core.Problem.
//
// Nodes are popped in ascending f = g + w·h from a binary heap, ties broken
// by insertion order. A state is marked reached when it is generated, so it
// enters the heap at most once, and the goal test runs at generation time:
// the first goal generated is returned.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridsearch/core"
)

// Search runs A* on p guided by h, which estimates the remaining cost to
// the goal. Use core.WithWeight(w) for w > 1 (bounded-suboptimal search).
//
// Returns:
//
//   - res.Found == true with the reconstructed plan when a goal is generated.
//   - res.Found == false and a nil error when the frontier empties.
//   - err for invalid input (core.ErrNilProblem, core.ErrNilHeuristic,
//     core.ErrOptionViolation) or aborted runs (core.ErrCallback,
//     core.ErrExpansionLimit, ctx.Err()).
//
// Complexity:
//
//   - Time:  O(E log V)   each state is pushed once, each push/pop O(log V).
//   - Space: O(V)         heap, reached set and node tree.
func Search[S comparable](p core.Problem[S], h core.Heuristic[S], opts ...core.Option) (*core.Result[S], error) {
	// 1) Validate input
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

	// 2) Prepare runner and seed the heap with the root
	r := &runner[S]{
		problem: p,
		h:       h,
		weight:  cfg.Weight,
		track:   track,
		pq:      make(nodePQ[S], 0, 64),
		reached: make(map[S]struct{}),
	}
	root := core.Root(p.Initial(), h(p.Initial()))
	r.reached[root.State] = struct{}{}
	if p.IsGoal(root.State) {
		return core.Finish(track.Result(), root), nil
	}
	heap.Init(&r.pq)
	r.push(root)

	// 3) Main loop
	goal, err := r.process()
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return track.Result(), nil
	}

	return core.Finish(track.Result(), goal), nil
}

// push inserts n keyed by its weighted f and the next sequence number.
func (r *runner[S]) push(n *core.Node[S]) {
	heap.Push(&r.pq, &nodeItem[S]{node: n, f: n.F(r.weight), seq: r.seq})
	r.seq++
}

// process repeatedly pops the lowest-f node and generates its successors.
// It stops when a goal is generated or the heap becomes empty.
func (r *runner[S]) process() (*core.Node[S], error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[S])
		goal, err := r.expand(item.node)
		if err != nil || goal != nil {
			return goal, err
		}
		if err = r.track.Draw(); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// expand generates the successors of n. Each unreached successor is marked
// reached, reported, and then returned if it is a goal or pushed otherwise.
func (r *runner[S]) expand(n *core.Node[S]) (*core.Node[S], error) {
	for _, succ := range r.problem.Successors(n.State) {
		if _, seen := r.reached[succ.State]; seen {
			continue
		}
		r.reached[succ.State] = struct{}{}
		if err := r.track.Expand(succ.State); err != nil {
			return nil, err
		}
		child := n.Child(succ, r.h(succ.State))
		if r.problem.IsGoal(child.State) {
			return child, nil
		}
		r.push(child)
	}

	return nil, nil
}
