// Package core provides the building blocks shared by every search strategy
// in gridsearch: the Problem abstraction, the search-tree Node, path
// reconstruction, functional Options and the Result type.
//
// The strategies themselves live in sibling packages (bfs, dfs, astar,
// idastar). They depend only on the interfaces declared here, so any
// deterministic, side-effect-free state space can be searched, not just the
// grid provided by package gridgraph.
//
// Problem contract:
//
//	– Initial() S                  the root state.
//	– IsGoal(S) bool               goal predicate.
//	– Successors(S) []Successor[S] (action, state, cost) triples in a fixed order.
//
// Heuristic-guided strategies take an explicit Heuristic[S] estimating the
// remaining cost from a state to the goal. There is no ambient heuristic
// selection; the caller threads the choice into every call.
//
// Node and path reconstruction:
//
//	Nodes form a tree through Parent back-references. Solution walks from a
//	goal node to the root and returns the action sequence and visited states
//	in root→goal order. The ordering key (f = g + w·h) is always computed by
//	the strategy, never stored on the node.
//
// Options:
//
//   - WithContext(ctx)          cancellation between expansions.
//   - WithWeight(w)             weighting factor for f = g + w·h (w ≥ 1).
//   - WithOnExpand(fn)          notification per reached state; error aborts.
//   - WithDraw(fn)              animation/yield callback per expansion step.
//   - WithMaxExpansions(n)      abort with ErrExpansionLimit after n notifications.
//   - WithOnProbe(fn)           IDA* per-iteration statistics.
//
// Errors:
//
//   - ErrNilProblem        problem is nil.
//   - ErrNilHeuristic      guided strategy called without a heuristic.
//   - ErrOptionViolation   invalid option (w < 1, negative limit, hook type mismatch).
//   - ErrCallback          wraps any error returned by a hook.
//   - ErrExpansionLimit    WithMaxExpansions ceiling exceeded.
//   - ErrNoPath            returned by Result.Err when no path exists.
//
// "No path" is a normal outcome: strategies return a Result with Found=false
// and a nil error, so callers can always tell an exhausted search apart from
// a configuration or callback failure.
package core
