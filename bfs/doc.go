// Package bfs provides breadth-first search over a core.Problem, returning
// the plan with the fewest actions.
//
// What
//
//   - FIFO frontier seeded with the initial state.
//   - On each pop, successors are generated in the problem's fixed order;
//     every unreached successor is marked reached, reported through the
//     OnExpand hook, and either returned (goal) or enqueued.
//   - The goal test runs at generation time; the initial state is tested
//     first, so start == goal yields an empty plan.
//   - The Draw hook runs once per dequeued node.
//
// Guarantees
//
//   - With uniform step costs the plan has the fewest actions.
//   - States are reached in non-decreasing depth; none is reached twice.
//   - An exhausted frontier yields Result.Found == false and a nil error.
//
// Complexity (V = reachable states, E = generated transitions)
//
//   - Time:   O(V + E)
//   - Memory: O(V)   (queue and reached set)
//
// Usage
//
//	res, err := bfs.Search[gridgraph.Coord](problem,
//	    core.WithOnExpand(func(c gridgraph.Coord) error { return nil }),
//	)
//	if err != nil {
//	    // configuration, callback, limit or cancellation failure
//	}
//	if !res.Found {
//	    // definitively no path
//	}
//
// Errors
//
//   - core.ErrNilProblem       if the problem is nil.
//   - core.ErrOptionViolation  if an Option is invalid.
//   - core.ErrCallback         wrapping OnExpand or Draw failures.
//   - core.ErrExpansionLimit   if WithMaxExpansions is exceeded.
//   - ctx.Err()                on cancellation.
package bfs
