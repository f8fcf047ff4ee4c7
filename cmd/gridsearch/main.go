// Command gridsearch reads an ASCII map from a file or stdin, plans a route
// and prints the plan together with the rendered map.
//
//	$ printf 'S..\n.%%.\n..G\n' | gridsearch -algo idastar -h m
//	$ gridsearch -json -map city.json -mover diesel
//
// Map legend: '.' free, '#' or '%' wall, 'z' restricted zone, 'S' start,
// 'G' goal. Rows are listed with y ascending.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/gridsearch/builder"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/heuristic"
	"github.com/katalvlaran/gridsearch/solver"
)

type options struct {
	mapPath  string
	json     bool
	algo     string
	metric   string
	weight   float64
	movement int
	mover    string
	max      int
	trace    bool
	random   string
	seed     int64
	density  float64
}

func main() {
	var o options
	flag.StringVar(&o.mapPath, "map", "", "map file (default stdin)")
	flag.BoolVar(&o.json, "json", false, "read the map as a JSON document instead of ASCII")
	flag.StringVar(&o.algo, "algo", solver.AStar, "algorithm: bfs, dfs, astar, idastar, idastar-memo, idastar-table")
	flag.StringVar(&o.metric, "h", "m", "heuristic code: m, c, e, b")
	flag.Float64Var(&o.weight, "w", 1, "heuristic weight (>= 1)")
	flag.IntVar(&o.movement, "moves", 4, "movement: 4 or 8")
	flag.StringVar(&o.mover, "mover", "electric", "mover class: electric or diesel")
	flag.IntVar(&o.max, "max", 0, "expansion ceiling (0 = none)")
	flag.BoolVar(&o.trace, "v", false, "log every expanded cell")
	flag.StringVar(&o.random, "random", "", "generate a WxH map instead of reading one, e.g. 20x10")
	flag.Int64Var(&o.seed, "seed", 1, "seed for -random")
	flag.Float64Var(&o.density, "density", 0.25, "wall probability for -random")
	flag.Parse()

	level := slog.LevelInfo
	if o.trace {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), o, os.Stdin, os.Stdout, log); err != nil {
		log.Error("gridsearch", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	m, err := loadMap(o, stdin)
	if err != nil {
		return err
	}
	metric, err := heuristic.Parse(o.metric)
	if err != nil {
		return err
	}
	conn, err := gridgraph.ParseConnectivity(o.movement)
	if err != nil {
		return err
	}
	mover, err := gridgraph.ParseMover(o.mover)
	if err != nil {
		return err
	}

	req := solver.Request{
		Map:           m,
		Algorithm:     o.algo,
		Metric:        metric,
		Weight:        o.weight,
		Grid:          gridgraph.GridOptions{Conn: conn, Mover: mover},
		MaxExpansions: o.max,
	}
	if o.trace {
		req.OnExpand = func(c gridgraph.Coord) error {
			log.Debug("expand", slog.Int("x", c.X), slog.Int("y", c.Y))
			return nil
		}
	}
	plan, err := solver.Solve(ctx, req)
	if err != nil {
		return err
	}

	if !plan.Found {
		fmt.Fprintf(stdout, "%s: no path (expanded %d)\n", plan.Algorithm, plan.Expanded)
		fmt.Fprint(stdout, m.Render(nil))
		return nil
	}
	actions := make([]string, len(plan.Actions))
	for i, a := range plan.Actions {
		actions[i] = string(a)
	}
	fmt.Fprintf(stdout, "%s: %d actions, cost %g, expanded %d", plan.Algorithm, len(plan.Actions), plan.Cost, plan.Expanded)
	if plan.Iterations > 0 {
		fmt.Fprintf(stdout, ", iterations %d", plan.Iterations)
	}
	fmt.Fprintf(stdout, "\n%s\n", strings.Join(actions, " "))
	fmt.Fprint(stdout, m.Render(plan.Path))

	return nil
}

// loadMap reads the ASCII or JSON map, or generates a scattered one for
// -random.
func loadMap(o options, stdin io.Reader) (*gridgraph.Map, error) {
	if o.random != "" {
		var w, h int
		if _, err := fmt.Sscanf(o.random, "%dx%d", &w, &h); err != nil {
			return nil, fmt.Errorf("-random %q: want WxH", o.random)
		}
		start, goal := gridgraph.Coord{}, gridgraph.Coord{X: w - 1, Y: h - 1}
		return builder.BuildMap(w, h, start, goal,
			[]builder.BuilderOption{builder.WithSeed(o.seed)},
			builder.Scatter(o.density, start, goal),
		)
	}

	r := stdin
	if o.mapPath != "" {
		f, err := os.Open(o.mapPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if o.json {
		return gridgraph.DecodeMap(r)
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return gridgraph.ParseASCII(string(text))
}
