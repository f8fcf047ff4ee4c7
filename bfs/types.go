package bfs

import (
	"github.com/katalvlaran/gridsearch/core"
)

// walker encapsulates mutable BFS state. The queue holds search nodes in
// generation order.
type walker[S comparable] struct {
	problem core.Problem[S]
	track   *core.Tracker[S]
	queue   []*core.Node[S]
	reached map[S]struct{}
}
