// Package builder assembles deterministic grid fixtures for tests,
// benchmarks and the command-line tools.
//
// Build(width, height, bopts, cons...) starts from an open grid and applies
// each Constructor in order:
//
//	WallRow(y, gaps...)       full wall row with openings
//	WallColumn(x, gaps...)    full wall column with openings
//	Walls(cells...)           individual walls
//	Clear(cells...)           reset cells to free
//	Enclose(c)                wall off the eight neighbours of c
//	Zone(x0, y0, x1, y1)      restricted-zone rectangle
//	Scatter(p, keep...)       seeded random walls (needs WithSeed/WithRand)
//
// Example: the 5×5 grid with a wall row at y=2 open only at x=2:
//
//	g, err := builder.Build(5, 5, nil, builder.WallRow(2, 2))
package builder
