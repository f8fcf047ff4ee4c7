// Package dfs defines the mutable state of a depth-first search over a
// core.Problem. Options are shared with the other strategies via core.Option.
package dfs

import (
	"github.com/katalvlaran/gridsearch/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[S comparable] struct {
	problem core.Problem[S]  // state space
	track   *core.Tracker[S] // hooks and result collector
	stack   []*core.Node[S]  // LIFO frontier
	reached map[S]struct{}   // states ever pushed
}
