package bfs

import (
	"github.com/katalvlaran/gridsearch/core"
)

// Search runs breadth-first search on p, applying any number of functional
// Options. Returns core.ErrNilProblem or core.ErrOptionViolation for invalid
// input, a wrapped core.ErrCallback for hook failures, core.ErrExpansionLimit
// or the context error. Exhausting the frontier is not an error: the Result
// reports Found=false.
func Search[S comparable](p core.Problem[S], opts ...core.Option) (*core.Result[S], error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	o, err := core.Configure(opts...)
	if err != nil {
		return nil, err
	}
	track, err := core.NewTracker[S](o)
	if err != nil {
		return nil, err
	}

	w := &walker[S]{
		problem: p,
		track:   track,
		reached: make(map[S]struct{}),
	}
	root := core.Root(p.Initial(), 0)
	// the root is reached before anything is generated
	w.reached[root.State] = struct{}{}
	if p.IsGoal(root.State) {
		return core.Finish(track.Result(), root), nil
	}
	w.queue = append(w.queue, root)

	goal, err := w.loop()
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return track.Result(), nil
	}

	return core.Finish(track.Result(), goal), nil
}

// loop processes the queue until a goal is generated, the queue empties,
// or a hook, limit or cancellation aborts.
func (w *walker[S]) loop() (*core.Node[S], error) {
	for len(w.queue) > 0 {
		node := w.dequeue()
		goal, err := w.enqueueSuccessors(node)
		if err != nil || goal != nil {
			return goal, err
		}
		if err = w.track.Draw(); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// dequeue pops the first node.
func (w *walker[S]) dequeue() *core.Node[S] {
	node := w.queue[0]
	w.queue = w.queue[1:]

	return node
}

// enqueueSuccessors generates the successors of node; each unreached one is
// marked reached and reported, then returned if it is the goal or enqueued.
func (w *walker[S]) enqueueSuccessors(node *core.Node[S]) (*core.Node[S], error) {
	for _, succ := range w.problem.Successors(node.State) {
		if _, seen := w.reached[succ.State]; seen {
			continue
		}
		w.reached[succ.State] = struct{}{}
		if err := w.track.Expand(succ.State); err != nil {
			return nil, err
		}
		child := node.Child(succ, 0)
		if w.problem.IsGoal(child.State) {
			return child, nil
		}
		w.queue = append(w.queue, child)
	}

	return nil, nil
}
