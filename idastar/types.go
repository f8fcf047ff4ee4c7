package idastar

import (
	"github.com/katalvlaran/gridsearch/core"
)

// DensityPenalty scales ObstacleDensity in the table variant's estimate:
// table[s] = h(s) + DensityPenalty·ObstacleDensity(s).
const DensityPenalty = 0.2

// Terrain is a Problem that exposes the local geometry SearchTable uses to
// bias and prune its probes.
type Terrain[S comparable] interface {
	core.Problem[S]

	// Cells enumerates every state the heuristic table is built for.
	Cells() []S

	// ObstacleDensity counts obstacles around s.
	ObstacleDensity(s S) int

	// DeadEnd reports whether s is enclosed by obstacles.
	DeadEnd(s S) bool

	// Deviation scores how far the move from → to strays from the goal
	// direction. Smaller is better.
	Deviation(from, to S) float64
}

// probeFunc explores the subtree under n within the current bound and
// reports whether a goal was recorded.
type probeFunc[S comparable] func(n *core.Node[S]) (bool, error)

// searcher holds the state shared by every probe of one IDA* run.
type searcher[S comparable] struct {
	problem core.Problem[S]
	h       core.Heuristic[S]
	weight  float64
	track   *core.Tracker[S]
	onProbe func(core.ProbeStats) error

	path  map[S]struct{} // states on the current root→node path
	cache map[S]float64  // memo variant: lowest f explored this iteration
	bound float64        // current f bound
	next  float64        // smallest f seen above bound
	goal  *core.Node[S]  // set once a probe reaches a goal
}

// scored is a generated successor with its table variant sort keys.
type scored[S comparable] struct {
	succ      core.Successor[S]
	deviation float64
	density   int
}
