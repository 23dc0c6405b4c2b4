package astar

import (
	"container/heap"

	"github.com/katalvlaran/lvlplan/core"
	"github.com/katalvlaran/lvlplan/planner"
)

// Planner runs (weighted) A* on top of the expansion core. Zero heuristic
// weight or a nil heuristic degrade it to uniform-cost search.
//
// Lifecycle: New → Initialize(problem) → Plan → (inspect tree) →
// ClearPlanner/Reset/Plan again. Single-threaded, like the core it embeds.
type Planner struct {
	*planner.SearchPlanner

	cameFrom  core.PredecessorMap
	costSoFar map[core.Node]float64
	visited   map[core.Node]bool
	expanded  int
}

// New returns an A* planner with an unbound expansion core. Call
// Initialize before Plan.
func New() *Planner {
	return &Planner{SearchPlanner: planner.New()}
}

// Plan searches from the bound start to the bound goal and returns the
// reconstructed path.
//
// Steps:
//  1. Seed the search tree: the start node with no parent, cost 0, and an
//     open-list entry with priority w·h(start,goal).
//  2. Repeatedly pop the lowest-f node, skipping entries already
//     finalized (lazy decrease-key).
//  3. On popping the goal, delegate to the core's ReconstructPath.
//  4. Otherwise expand through the core: every valid successor with a
//     strictly better g is (re)recorded and pushed with f = g + w·h.
//
// Errors: ErrNotInitialized before Initialize; ErrNoPath when the open
// list drains.
func (p *Planner) Plan() (core.Path, error) {
	if !p.IsInitialized() {
		return core.Path{}, ErrNotInitialized
	}

	start, goal := p.Start(), p.Goal()
	w := p.HeuristicWeight()

	// 1) Fresh search tree; any previous tree is discarded.
	p.cameFrom = core.PredecessorMap{start: {}}
	p.costSoFar = map[core.Node]float64{start: 0}
	p.visited = make(map[core.Node]bool)
	p.expanded = 0

	pq := make(nodePQ, 0)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{node: start, f: w * p.Heuristic(start, goal)})

	for pq.Len() > 0 {
		// 2) Pop the lowest-f entry; skip stale duplicates.
		item := heap.Pop(&pq).(*nodeItem)
		u := item.node
		if p.visited[u] {
			continue
		}
		p.visited[u] = true
		p.expanded++

		// 3) Goal test on expansion keeps weighted suboptimality bounded.
		if u == goal {
			return p.ReconstructPath(p.cameFrom, start, goal, p.costSoFar)
		}

		// 4) Expand through the core and relax every valid successor.
		ex := p.Successors(u)
		for i, v := range ex.Neighbors {
			if p.visited[v] {
				continue
			}
			g := p.costSoFar[u] + ex.Costs[i]
			if old, seen := p.costSoFar[v]; seen && g >= old {
				continue
			}
			p.costSoFar[v] = g
			p.cameFrom[v] = core.Predecessor{Parent: u, Edge: ex.Valid[i], HasParent: true}
			heap.Push(&pq, &nodeItem{node: v, f: g + w*p.Heuristic(v, goal)})
		}
	}

	return core.Path{}, ErrNoPath
}

// ClearPlanner discards the search tree (predecessor map, accumulated
// costs, visited set, expansion count) while keeping the explored-history
// grid: re-planning continues to see previous coverage.
func (p *Planner) ClearPlanner() error {
	p.cameFrom = nil
	p.costSoFar = nil
	p.visited = nil
	p.expanded = 0

	return nil
}

// ClearAll discards the search tree and resets the explored-history grid
// to just the start node.
func (p *Planner) ClearAll() error {
	if err := p.ClearPlanner(); err != nil {
		return err
	}
	p.ClearHistory()

	return nil
}

// Expanded returns how many nodes the last Plan finalized.
func (p *Planner) Expanded() int {
	return p.expanded
}

// CostTo returns the accumulated cost the last Plan computed for n, and
// whether n was ever reached.
func (p *Planner) CostTo(n core.Node) (float64, bool) {
	c, ok := p.costSoFar[n]

	return c, ok
}

// Tree returns the last Plan's predecessor map (nil after ClearPlanner).
func (p *Planner) Tree() core.PredecessorMap {
	return p.cameFrom
}
