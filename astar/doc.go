// Package astar provides weighted A* search over a core.Problem.
//
// Overview:
//
//   - The frontier is a min-heap ordered by f = g + w·h with ties broken by
//     insertion order, so runs are reproducible.
//   - w = 1 (default) is standard A*; core.WithWeight(w) with w > 1 trades
//     optimality for fewer expansions.
//   - Reached-before-push: a state is marked reached when generated and is
//     pushed at most once; no decrease-key is needed.
//   - Goal-at-generation: the first goal generated is returned without
//     checking whether a cheaper route could still appear. With w = 1 and an
//     admissible heuristic on a unit-cost grid the returned plan is optimal;
//     with w > 1 or an inadmissible heuristic it may not be.
//
// Heuristics:
//
//	The heuristic is an explicit argument; for grids use
//	gridgraph.Heuristic(metric, goal) or (*gridgraph.PathFinding).Heuristic.
//
// Outcomes:
//
//   - Found plan:   Result.Found == true, Actions/States/Cost filled.
//   - No path:      Result.Found == false, err == nil.
//   - Failures:     core.ErrNilProblem, core.ErrNilHeuristic,
//     core.ErrOptionViolation, core.ErrCallback, core.ErrExpansionLimit,
//     context errors.
package astar
