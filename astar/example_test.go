package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/heuristic"
)

// ExampleSearch plans an 8-connected route under the Chebyshev metric.
func ExampleSearch() {
	m, _ := gridgraph.ParseASCII("S...\n.%%.\n...G")
	p, _ := m.Problem(gridgraph.GridOptions{Conn: gridgraph.Conn8, Mover: gridgraph.Electric})
	res, _ := astar.Search[gridgraph.Coord](p, p.Heuristic(heuristic.Chebyshev))
	fmt.Println(res.Actions, res.Cost)
	fmt.Print(m.Render(res.States))
	// Output:
	// [E E NE N] 4
	// S**.
	// .%%*
	// ...G
}
