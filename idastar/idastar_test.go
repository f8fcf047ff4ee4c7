package idastar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/builder"
	"github.com/katalvlaran/gridsearch/core"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/heuristic"
	"github.com/katalvlaran/gridsearch/idastar"
)

type Coord = gridgraph.Coord

// searchFunc lets the same scenario run against every variant.
type searchFunc func(p *gridgraph.PathFinding, h core.Heuristic[Coord], opts ...core.Option) (*core.Result[Coord], error)

var variants = []struct {
	name    string
	search  searchFunc
	optimal bool
}{
	{"Baseline", func(p *gridgraph.PathFinding, h core.Heuristic[Coord], opts ...core.Option) (*core.Result[Coord], error) {
		return idastar.Search[Coord](p, h, opts...)
	}, true},
	{"Memo", func(p *gridgraph.PathFinding, h core.Heuristic[Coord], opts ...core.Option) (*core.Result[Coord], error) {
		return idastar.SearchMemo[Coord](p, h, opts...)
	}, true},
	{"Table", func(p *gridgraph.PathFinding, h core.Heuristic[Coord], opts ...core.Option) (*core.Result[Coord], error) {
		return idastar.SearchTable[Coord](p, h, opts...)
	}, false},
}

// problem builds a w×h map from (0,0) to (w-1,h-1).
func problem(t *testing.T, w, h int, cons ...builder.Constructor) *gridgraph.PathFinding {
	t.Helper()
	m, err := builder.BuildMap(w, h, Coord{}, Coord{X: w - 1, Y: h - 1}, nil, cons...)
	require.NoError(t, err)
	p, err := m.Problem(gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	return p
}

func replay(t *testing.T, p *gridgraph.PathFinding, res *core.Result[Coord]) []Coord {
	t.Helper()
	require.True(t, res.Found)
	cells, err := gridgraph.Trace(p.Initial(), res.Actions)
	require.NoError(t, err)
	assert.Equal(t, res.States, cells)
	assert.Equal(t, p.Goal(), cells[len(cells)-1])
	for _, c := range cells {
		assert.False(t, p.Grid().IsWall(c), "plan crosses wall at %v", c)
	}

	return cells
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestValidation(t *testing.T) {
	p := problem(t, 3, 3)
	h := p.Heuristic(heuristic.Manhattan)

	_, err := idastar.Search[Coord](nil, h)
	assert.ErrorIs(t, err, core.ErrNilProblem)
	_, err = idastar.SearchMemo[Coord](nil, h)
	assert.ErrorIs(t, err, core.ErrNilProblem)
	_, err = idastar.SearchTable[Coord](nil, h)
	assert.ErrorIs(t, err, core.ErrNilProblem)

	for _, v := range variants {
		_, err = v.search(p, nil)
		assert.ErrorIs(t, err, core.ErrNilHeuristic, v.name)
		_, err = v.search(p, h, core.WithWeight(0))
		assert.ErrorIs(t, err, core.ErrOptionViolation, v.name)
	}
}

//----------------------------------------------------------------------------//
// Plans
//----------------------------------------------------------------------------//

func TestOpenGrid(t *testing.T) {
	p := problem(t, 5, 5)
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			res, err := v.search(p, p.Heuristic(heuristic.Manhattan))
			require.NoError(t, err)
			replay(t, p, res)
			assert.Equal(t, 8, res.Len())
			assert.Equal(t, 8.0, res.Cost)
			assert.Equal(t, 1, res.Iterations, "Manhattan is exact on an open grid")
		})
	}
}

func TestOpenGrid_BaselineOrder(t *testing.T) {
	p := problem(t, 5, 5)
	res, err := idastar.Search[Coord](p, p.Heuristic(heuristic.Manhattan))
	require.NoError(t, err)
	assert.Equal(t, []core.Action{"N", "N", "N", "N", "E", "E", "E", "E"}, res.Actions)
}

func TestWallWithGap(t *testing.T) {
	p := problem(t, 5, 5, builder.WallRow(2, 2))
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			res, err := v.search(p, p.Heuristic(heuristic.Manhattan))
			require.NoError(t, err)
			cells := replay(t, p, res)
			assert.Contains(t, cells, Coord{X: 2, Y: 2})
			if v.optimal {
				assert.Equal(t, 8.0, res.Cost)
			}
		})
	}
}

// TestOptimal_FourDirections compares plan length with BFS on a snake-like
// map for every metric admissible under 4-directional movement.
func TestOptimal_FourDirections(t *testing.T) {
	p := problem(t, 5, 5, builder.WallRow(1, 4), builder.WallRow(3, 0))
	want, err := bfs.Search[Coord](p)
	require.NoError(t, err)
	require.Equal(t, 16, want.Len())

	for _, v := range variants[:2] {
		for _, m := range []heuristic.Metric{heuristic.Manhattan, heuristic.Chebyshev, heuristic.Blind} {
			res, err := v.search(p, p.Heuristic(m))
			require.NoError(t, err, "%s/%s", v.name, m)
			replay(t, p, res)
			assert.Equal(t, want.Len(), res.Len(), "%s/%s", v.name, m)
		}
	}
}

func TestOptimal_OpenGridEveryMetric(t *testing.T) {
	p := problem(t, 5, 5)
	for _, v := range variants {
		for _, m := range []heuristic.Metric{heuristic.Manhattan, heuristic.Chebyshev, heuristic.Blind} {
			res, err := v.search(p, p.Heuristic(m))
			require.NoError(t, err, "%s/%s", v.name, m)
			replay(t, p, res)
			assert.Equal(t, 8.0, res.Cost, "%s/%s", v.name, m)
		}
	}
}

func TestTable_Snake(t *testing.T) {
	p := problem(t, 5, 5, builder.WallRow(1, 4), builder.WallRow(3, 0))
	res, err := idastar.SearchTable[Coord](p, p.Heuristic(heuristic.Manhattan))
	require.NoError(t, err)
	replay(t, p, res)
	// the corridor admits a single simple path
	assert.Equal(t, 16, res.Len())
}

func TestWeighted(t *testing.T) {
	p := problem(t, 5, 5, builder.WallRow(2, 2))
	for _, v := range variants {
		res, err := v.search(p, p.Heuristic(heuristic.Euclidean), core.WithWeight(2))
		require.NoError(t, err, v.name)
		replay(t, p, res)
	}
}

func TestStartIsGoal(t *testing.T) {
	m, err := builder.BuildMap(3, 3, Coord{X: 1, Y: 1}, Coord{X: 1, Y: 1}, nil)
	require.NoError(t, err)
	p, err := m.Problem(gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	for _, v := range variants {
		res, err := v.search(p, p.Heuristic(heuristic.Manhattan))
		require.NoError(t, err, v.name)
		assert.True(t, res.Found, v.name)
		assert.Empty(t, res.Actions, v.name)
		assert.Zero(t, res.Iterations, v.name)
	}
}

//----------------------------------------------------------------------------//
// Unreachable goals
//----------------------------------------------------------------------------//

func TestNoPath(t *testing.T) {
	p := problem(t, 3, 3, builder.WallRow(1))
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			res, err := v.search(p, p.Heuristic(heuristic.Manhattan))
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.ErrorIs(t, res.Err(), core.ErrNoPath)
			assert.Positive(t, res.Iterations)
		})
	}
}

// TestSeparatedHalves checks that a walled-off goal is never reported as
// found within an expansion ceiling.
func TestSeparatedHalves(t *testing.T) {
	p := problem(t, 5, 5, builder.WallRow(2))
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			res, err := v.search(p, p.Heuristic(heuristic.Manhattan), core.WithMaxExpansions(20000))
			if err != nil {
				assert.ErrorIs(t, err, core.ErrExpansionLimit)
				return
			}
			assert.False(t, res.Found)
		})
	}
}

//----------------------------------------------------------------------------//
// Probe statistics and path-set release
//----------------------------------------------------------------------------//

func TestProbeStats_PathSetReleased(t *testing.T) {
	p := problem(t, 5, 5, builder.WallRow(2, 2))
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			var stats []core.ProbeStats
			res, err := v.search(p, p.Heuristic(heuristic.Euclidean),
				core.WithOnProbe(func(s core.ProbeStats) error {
					stats = append(stats, s)
					return nil
				}))
			require.NoError(t, err)
			require.True(t, res.Found)
			require.Len(t, stats, res.Iterations)
			require.GreaterOrEqual(t, len(stats), 2, "Euclidean underestimates, so the bound must grow")

			for i, s := range stats {
				assert.Equal(t, i+1, s.Iteration)
				assert.Zero(t, s.PathSetSize, "iteration %d leaked path entries", s.Iteration)
				if i > 0 {
					assert.Greater(t, s.Bound, stats[i-1].Bound)
					assert.Equal(t, stats[i-1].Next, s.Bound)
				}
			}
			assert.True(t, stats[len(stats)-1].Found)
			for _, s := range stats[:len(stats)-1] {
				assert.False(t, s.Found)
				assert.Greater(t, s.Next, s.Bound)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Variant-specific behaviour
//----------------------------------------------------------------------------//

// TestTable_DeadEndStart checks that an enclosed start is pruned before it
// is entered, where the baseline enters it once.
func TestTable_DeadEndStart(t *testing.T) {
	start := Coord{X: 2, Y: 2}
	m, err := builder.BuildMap(5, 5, start, Coord{X: 4, Y: 4}, nil, builder.Enclose(start))
	require.NoError(t, err)
	p, err := m.Problem(gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	require.True(t, p.DeadEnd(start))

	draws := 0
	draw := core.WithDraw(func() error { draws++; return nil })

	res, err := idastar.SearchTable[Coord](p, p.Heuristic(heuristic.Manhattan), draw)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Iterations)
	assert.Zero(t, res.Expanded)
	assert.Zero(t, draws, "dead end must not be entered")

	res, err = idastar.Search[Coord](p, p.Heuristic(heuristic.Manhattan), draw)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, 1, draws)
}

// TestTable_ProbesAlignedMoveFirst compares the first generated successor
// with the baseline, which follows the fixed N, S, W, E enumeration.
func TestTable_ProbesAlignedMoveFirst(t *testing.T) {
	cases := []struct {
		name  string
		w, h  int
		goal  Coord
		cons  []builder.Constructor
		table Coord
	}{
		// E points closer to (4,1) than N does
		{"Deviation", 5, 3, Coord{X: 4, Y: 1}, nil, Coord{X: 1, Y: 0}},
		// N and E deviate equally; the wall at (0,2) makes N denser
		{"DensityTie", 5, 5, Coord{X: 4, Y: 4}, []builder.Constructor{builder.Walls(Coord{X: 0, Y: 2})}, Coord{X: 1, Y: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMap(tc.w, tc.h, Coord{}, tc.goal, nil, tc.cons...)
			require.NoError(t, err)
			p, err := m.Problem(gridgraph.DefaultGridOptions())
			require.NoError(t, err)
			h := p.Heuristic(heuristic.Manhattan)

			res, err := idastar.SearchTable[Coord](p, h, core.WithRecordOrder())
			require.NoError(t, err)
			replay(t, p, res)
			require.NotEmpty(t, res.Order)
			assert.Equal(t, tc.table, res.Order[0])
			assert.Equal(t, core.Action("E"), res.Actions[0])

			base, err := idastar.Search[Coord](p, h, core.WithRecordOrder())
			require.NoError(t, err)
			require.NotEmpty(t, base.Order)
			assert.Equal(t, Coord{X: 0, Y: 1}, base.Order[0])
		})
	}
}

// dag is a unit-cost problem over named states with no goal, so a search
// runs until the bound is exhausted.
type dag struct {
	edges map[string][]string
	h     map[string]float64
}

func (d dag) Initial() string { return "R" }
func (d dag) IsGoal(string) bool { return false }
func (d dag) Successors(s string) []core.Successor[string] {
	out := make([]core.Successor[string], 0, len(d.edges[s]))
	for _, to := range d.edges[s] {
		out = append(out, core.Successor[string]{Action: core.Action(s + to), State: to, Cost: 1})
	}

	return out
}
func (d dag) estimate(s string) float64 { return d.h[s] }

// TestMemo_RelaxedFloorReachesCache uses an inconsistent estimate: h(A)=3
// while its child X has h=0. Entering X through A relaxes h(X) to 2, so the
// cache holds f(X)=4 and the cheaper arrival through B (f=2) explores X
// again. With unrelaxed estimates both arrivals have f=2 and the second is
// pruned, losing the last expansion of Y.
func TestMemo_RelaxedFloorReachesCache(t *testing.T) {
	d := dag{
		edges: map[string][]string{"R": {"A", "B"}, "A": {"X"}, "B": {"X"}, "X": {"Y"}},
		h:     map[string]float64{"A": 3},
	}

	var bounds []float64
	res, err := idastar.SearchMemo[string](d, d.estimate, core.WithRecordOrder(),
		core.WithOnProbe(func(s core.ProbeStats) error {
			bounds = append(bounds, s.Bound)
			return nil
		}))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, bounds)
	assert.Equal(t, 19, res.Expanded)
	// last iteration: A X Y, then B X Y
	require.GreaterOrEqual(t, len(res.Order), 6)
	assert.Equal(t, []string{"A", "X", "Y", "B", "X", "Y"}, res.Order[len(res.Order)-6:])

	base, err := idastar.Search[string](d, d.estimate)
	require.NoError(t, err)
	assert.Equal(t, res.Iterations, base.Iterations, "relaxation is path-monotone and keeps the bound sequence")
}

func TestMemo_CacheSize(t *testing.T) {
	p := problem(t, 5, 5, builder.WallRow(2, 2))
	var last core.ProbeStats
	_, err := idastar.SearchMemo[Coord](p, p.Heuristic(heuristic.Euclidean),
		core.WithOnProbe(func(s core.ProbeStats) error {
			last = s
			return nil
		}))
	require.NoError(t, err)
	assert.Positive(t, last.CacheSize)
}

//----------------------------------------------------------------------------//
// Determinism and hooks
//----------------------------------------------------------------------------//

func TestDeterministic(t *testing.T) {
	p := problem(t, 5, 5, builder.WallRow(2, 2))
	for _, v := range variants {
		a, err := v.search(p, p.Heuristic(heuristic.Euclidean), core.WithRecordOrder())
		require.NoError(t, err)
		b, err := v.search(p, p.Heuristic(heuristic.Euclidean), core.WithRecordOrder())
		require.NoError(t, err)
		assert.Equal(t, a.Actions, b.Actions, v.name)
		assert.Len(t, a.Order, a.Expanded, v.name)
		assert.Equal(t, a.Order, b.Order, v.name)
	}
}

// TestOrder_OffByDefault checks that re-expansions across iterations are
// counted but not retained unless asked for.
func TestOrder_OffByDefault(t *testing.T) {
	p := problem(t, 5, 5)
	for _, v := range variants {
		res, err := v.search(p, p.Heuristic(heuristic.Blind))
		require.NoError(t, err, v.name)
		require.True(t, res.Found, v.name)
		assert.Greater(t, res.Iterations, 1, v.name)
		assert.Positive(t, res.Expanded, v.name)
		assert.Empty(t, res.Order, v.name)
	}
}

func TestCallbackErrors(t *testing.T) {
	boom := errors.New("boom")
	p := problem(t, 5, 5)
	h := p.Heuristic(heuristic.Manhattan)
	for _, v := range variants {
		_, err := v.search(p, h, core.WithOnExpand(func(Coord) error { return boom }))
		assert.ErrorIs(t, err, core.ErrCallback, v.name)
		assert.ErrorIs(t, err, boom, v.name)

		_, err = v.search(p, h, core.WithOnProbe(func(core.ProbeStats) error { return boom }))
		assert.ErrorIs(t, err, core.ErrCallback, v.name)
		assert.ErrorIs(t, err, boom, v.name)

		_, err = v.search(p, h, core.WithMaxExpansions(3))
		assert.ErrorIs(t, err, core.ErrExpansionLimit, v.name)
	}
}
