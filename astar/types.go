// Package astar defines the priority queue and runner state for weighted A*
// search over a core.Problem.
package astar

import (
	"github.com/katalvlaran/gridsearch/core"
)

// nodeItem is a frontier entry: the node, its ordering key f = g + w·h and
// the push sequence used to break ties in insertion order.
type nodeItem[S comparable] struct {
	node *core.Node[S]
	f    float64
	seq  int
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by f ascending,
// then by seq ascending.
type nodePQ[S comparable] []*nodeItem[S]

// Len returns the number of items in the heap.
func (pq nodePQ[S]) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority; equal f → earlier push.
func (pq nodePQ[S]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*nodeItem[S])) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns any that must be cast to *nodeItem.
func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// runner holds the mutable state for a single A* execution.
type runner[S comparable] struct {
	problem core.Problem[S]
	h       core.Heuristic[S]
	weight  float64
	track   *core.Tracker[S]
	pq      nodePQ[S]
	reached map[S]struct{}
	seq     int
}
