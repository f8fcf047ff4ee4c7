package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/builder"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

func TestBuild_Open(t *testing.T) {
	g, err := builder.Build(3, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "...\n...\n", g.String())
}

func TestBuild_WallRowWithGap(t *testing.T) {
	g, err := builder.Build(5, 5, nil, builder.WallRow(2, 2))
	require.NoError(t, err)
	assert.Equal(t, ".....\n.....\n%%.%%\n.....\n.....\n", g.String())
}

func TestBuild_Composition(t *testing.T) {
	g, err := builder.Build(4, 3, nil,
		builder.WallColumn(1, 0),
		builder.Zone(2, 0, 3, 0),
		builder.Walls(gridgraph.Coord{X: 3, Y: 2}),
		builder.Clear(gridgraph.Coord{X: 1, Y: 2}),
	)
	require.NoError(t, err)
	assert.Equal(t, "..zz\n.%..\n...%\n", g.String())
}

func TestBuild_Enclose(t *testing.T) {
	g, err := builder.Build(3, 3, nil, builder.Enclose(gridgraph.Coord{X: 0, Y: 0}))
	require.NoError(t, err)
	assert.Equal(t, ".%.\n%%.\n...\n", g.String())
	assert.True(t, g.DeadEnd(gridgraph.Coord{}))
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		cons []builder.Constructor
		err  error
	}{
		{"TooSmall", 0, 3, nil, builder.ErrTooSmall},
		{"NilConstructor", 2, 2, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"RowOutOfRange", 2, 2, []builder.Constructor{builder.WallRow(5)}, builder.ErrOutOfRange},
		{"GapOutOfRange", 2, 2, []builder.Constructor{builder.WallRow(0, 9)}, builder.ErrOutOfRange},
		{"ColumnOutOfRange", 2, 2, []builder.Constructor{builder.WallColumn(-1)}, builder.ErrOutOfRange},
		{"ZoneOutOfRange", 2, 2, []builder.Constructor{builder.Zone(0, 0, 2, 2)}, builder.ErrOutOfRange},
		{"WallOutOfRange", 2, 2, []builder.Constructor{builder.Walls(gridgraph.Coord{X: 2})}, builder.ErrOutOfRange},
		{"BadProbability", 2, 2, []builder.Constructor{builder.Scatter(1.5)}, builder.ErrInvalidProbability},
		{"NoRNG", 2, 2, []builder.Constructor{builder.Scatter(0.5)}, builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(tc.w, tc.h, nil, tc.cons...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestScatter_Deterministic(t *testing.T) {
	keep := []gridgraph.Coord{{X: 0, Y: 0}, {X: 9, Y: 9}}
	a, err := builder.Build(10, 10, []builder.BuilderOption{builder.WithSeed(7)}, builder.Scatter(0.3, keep...))
	require.NoError(t, err)
	b, err := builder.Build(10, 10, []builder.BuilderOption{builder.WithSeed(7)}, builder.Scatter(0.3, keep...))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
	assert.False(t, a.IsWall(gridgraph.Coord{}))
	assert.False(t, a.IsWall(gridgraph.Coord{X: 9, Y: 9}))

	full, err := builder.Build(3, 3, []builder.BuilderOption{builder.WithSeed(1)}, builder.Scatter(1))
	require.NoError(t, err)
	assert.Empty(t, full.Cells())
}

func TestBuildMap(t *testing.T) {
	m, err := builder.BuildMap(3, 3, gridgraph.Coord{}, gridgraph.Coord{X: 2, Y: 2}, nil)
	require.NoError(t, err)
	p, err := m.Problem(gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.True(t, p.Reachable())
}
