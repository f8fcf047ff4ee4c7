// Package solver binds the search strategies to grid maps behind a single
// name-keyed registry, so the HTTP service and the CLI select and run them
// the same way.
package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/dfs"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/heuristic"
	"github.com/katalvlaran/gridsearch/idastar"
)

// Algorithm names accepted by Lookup.
const (
	BFS          = "bfs"
	DFS          = "dfs"
	AStar        = "astar"
	IDAStar      = "idastar"
	IDAStarMemo  = "idastar-memo"
	IDAStarTable = "idastar-table"
)

// Strategy runs one search over a grid problem.
type Strategy func(p *gridgraph.PathFinding, h core.Heuristic[gridgraph.Coord], opts ...core.Option) (*core.Result[gridgraph.Coord], error)

// Algorithm describes a registered strategy.
type Algorithm struct {
	Name     string `json:"name"`
	Informed bool   `json:"informed"` // uses the heuristic
	Optimal  bool   `json:"optimal"`  // shortest plan at weight 1 with an admissible heuristic
	Summary  string `json:"summary"`

	run Strategy
}

var registry = []Algorithm{
	{Name: BFS, Optimal: true, Summary: "breadth-first, fewest actions",
		run: func(p *gridgraph.PathFinding, _ core.Heuristic[gridgraph.Coord], opts ...core.Option) (*core.Result[gridgraph.Coord], error) {
			return bfs.Search[gridgraph.Coord](p, opts...)
		}},
	{Name: DFS, Summary: "depth-first, any plan",
		run: func(p *gridgraph.PathFinding, _ core.Heuristic[gridgraph.Coord], opts ...core.Option) (*core.Result[gridgraph.Coord], error) {
			return dfs.Search[gridgraph.Coord](p, opts...)
		}},
	{Name: AStar, Informed: true, Optimal: true, Summary: "weighted A*, binary heap",
		run: func(p *gridgraph.PathFinding, h core.Heuristic[gridgraph.Coord], opts ...core.Option) (*core.Result[gridgraph.Coord], error) {
			return astar.Search[gridgraph.Coord](p, h, opts...)
		}},
	{Name: IDAStar, Informed: true, Optimal: true, Summary: "iterative-deepening A*",
		run: func(p *gridgraph.PathFinding, h core.Heuristic[gridgraph.Coord], opts ...core.Option) (*core.Result[gridgraph.Coord], error) {
			return idastar.Search[gridgraph.Coord](p, h, opts...)
		}},
	{Name: IDAStarMemo, Informed: true, Optimal: true, Summary: "IDA* with threshold cache and heuristic relaxation",
		run: func(p *gridgraph.PathFinding, h core.Heuristic[gridgraph.Coord], opts ...core.Option) (*core.Result[gridgraph.Coord], error) {
			return idastar.SearchMemo[gridgraph.Coord](p, h, opts...)
		}},
	{Name: IDAStarTable, Informed: true, Summary: "IDA* with obstacle-biased table, move ordering and dead-end pruning",
		run: func(p *gridgraph.PathFinding, h core.Heuristic[gridgraph.Coord], opts ...core.Option) (*core.Result[gridgraph.Coord], error) {
			return idastar.SearchTable[gridgraph.Coord](p, h, opts...)
		}},
}

// Algorithms returns every registered algorithm in a fixed order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(registry))
	copy(out, registry)

	return out
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	for _, a := range registry {
		if a.Name == name {
			return a, nil
		}
	}

	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Request is one search over a map.
//   - Algorithm:     registry name; empty means AStar.
//   - Metric:        heuristic; the zero value means Manhattan.
//   - Weight:        w in f = g + w·h; 0 means 1.
//   - Grid:          movement and mover class.
//   - MaxExpansions: expansion ceiling; 0 disables it.
//   - OnExpand:      optional per-state hook.
type Request struct {
	Map           *gridgraph.Map
	Algorithm     string
	Metric        heuristic.Metric
	Weight        float64
	Grid          gridgraph.GridOptions
	MaxExpansions int
	OnExpand      func(gridgraph.Coord) error
}

// Plan is the outcome of Solve.
type Plan struct {
	Algorithm  string
	Found      bool
	Actions    []core.Action
	Path       []gridgraph.Coord
	Cost       float64
	Expanded   int
	Iterations int
	Elapsed    time.Duration
}

// Solve validates req, builds the grid problem and runs the chosen strategy
// under ctx. An unreachable goal yields a Plan with Found == false and a nil
// error; configuration and search failures are returned as errors.
func Solve(ctx context.Context, req Request) (*Plan, error) {
	if req.Map == nil {
		return nil, ErrNilMap
	}
	if req.Algorithm == "" {
		req.Algorithm = AStar
	}
	if req.Metric == 0 {
		req.Metric = heuristic.Manhattan
	}
	if !req.Metric.Valid() {
		return nil, fmt.Errorf("%w: %q", heuristic.ErrUnknownMetric, string(req.Metric))
	}
	if req.Weight == 0 {
		req.Weight = 1
	}
	algo, err := Lookup(req.Algorithm)
	if err != nil {
		return nil, err
	}
	p, err := req.Map.Problem(req.Grid)
	if err != nil {
		return nil, err
	}

	opts := []core.Option{
		core.WithContext(ctx),
		core.WithWeight(req.Weight),
		core.WithMaxExpansions(req.MaxExpansions),
	}
	if req.OnExpand != nil {
		opts = append(opts, core.WithOnExpand(req.OnExpand))
	}

	start := time.Now()
	res, err := algo.run(p, p.Heuristic(req.Metric), opts...)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", algo.Name, err)
	}

	return &Plan{
		Algorithm:  algo.Name,
		Found:      res.Found,
		Actions:    res.Actions,
		Path:       res.States,
		Cost:       res.Cost,
		Expanded:   res.Expanded,
		Iterations: res.Iterations,
		Elapsed:    elapsed,
	}, nil
}
