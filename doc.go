// Package gridsearch is a family of state-space planners for grid worlds:
// breadth-first and depth-first search, weighted A*, and three IDA*
// variants, all running over one generic Problem abstraction.
//
// What is inside?
//
//	• Problem model: generic states, actions with costs, goal test
//	• Grid world: walls, restricted zones, 4/8-directional movement,
//	  electric and diesel movers, ASCII and JSON map formats
//	• Heuristics: Manhattan, Chebyshev, Euclidean and blind estimates
//	• Strategies: BFS, DFS, A* (f = g + w·h), IDA* baseline, memoised and
//	  obstacle-biased table variants
//	• Hooks: per-expansion callback, draw pacing, IDA* iteration stats,
//	  expansion ceiling and context cancellation
//	• Service: HTTP API with Prometheus metrics and OpenTelemetry spans
//
// Packages:
//
//	core/       - Problem, Node, Result, options and the shared expansion tracker
//	heuristic/  - distance metrics selected by a one-letter code (m, c, e, b)
//	gridgraph/  - the grid, its PathFinding problem and map parsers
//	builder/    - deterministic map constructors for tests and demos
//	bfs/, dfs/  - uninformed strategies
//	astar/      - weighted A* over a binary heap
//	idastar/    - iterative-deepening A* (Search, SearchMemo, SearchTable)
//	solver/     - name-keyed registry running any strategy on a map
//	server/     - gin HTTP service (cmd/gridsearchd)
//
// Quick example:
//
//	m, _ := gridgraph.ParseASCII("S..\n.%.\n..G")
//	p, _ := m.Problem(gridgraph.DefaultGridOptions())
//	res, _ := astar.Search[gridgraph.Coord](p, p.Heuristic(heuristic.Manhattan))
//	fmt.Println(res.Actions) // [N N E E]
//
// Unreachable goals are not errors: every strategy returns a Result with
// Found == false, and Result.Err reports core.ErrNoPath for callers that
// prefer one.
package gridsearch
