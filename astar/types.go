// Sentinel errors and the open-list priority queue.

package astar

import (
	"errors"

	"github.com/katalvlaran/lvlplan/core"
)

// Sentinel errors for the A* planner.
var (
	// ErrNotInitialized indicates Plan was called before a problem was
	// bound via Initialize.
	ErrNotInitialized = errors.New("astar: planner has no bound problem")

	// ErrNoPath indicates the search exhausted the open list without
	// reaching the goal node.
	ErrNoPath = errors.New("astar: no path to goal")
)

// nodeItem is one open-list entry: a node and its f = g + w·h priority.
type nodeItem struct {
	node core.Node
	f    float64
}

// nodePQ is a min-heap of *nodeItem ordered by f ascending, operated under
// the lazy-decrease-key strategy: improved nodes are pushed again and
// stale entries are skipped on pop (checked against the visited set).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].f < pq[j].f }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
