package planner

import (
	"fmt"

	"github.com/katalvlaran/lvlplan/core"
)

// SearchPlanner is the expansion and reconstruction core. It binds one
// Problem at a time and serves collision-validated expansions, heuristic
// adaption and path reconstruction to a driving search algorithm.
//
// Lifecycle: uninitialized → Initialize → (expansion calls by a concrete
// planner) → ReconstructPath; Reset rebinds a new Problem while keeping the
// explored-history grid. Plan and ClearPlanner are base-contract defaults
// that fail with ErrNotImplemented; concrete planners embed *SearchPlanner
// and override them.
//
// All state is mutated only by the single search goroutine; no internal
// locking (see package doc, Concurrency).
type SearchPlanner struct {
	problem   *Problem
	env       core.Environment
	lattice   core.Lattice
	cost      core.CostModel
	heuristic core.Heuristic
	observer  core.Observer

	start, goal     core.Node
	heuristicWeight float64

	// precalc is the lattice's optional fast-path capability, probed once
	// per binding; nil means every expansion queries the lattice directly.
	precalc core.Precomputed

	usePatch  bool
	patchSize int
	history   *exploreHistory

	initialized bool
}

// New returns an unbound SearchPlanner. Call Initialize before anything
// else.
func New() *SearchPlanner {
	return &SearchPlanner{}
}

// bind copies the problem's collaborators into the planner and probes the
// lattice's precomputation capability. Shared by Initialize and Reset.
func (sp *SearchPlanner) bind(p *Problem) error {
	if !p.Initialized() {
		return ErrProblemNotInitialized
	}
	sp.problem = p
	sp.env = p.Env
	sp.lattice = p.Lattice
	sp.cost = p.Cost
	sp.heuristic = p.Heuristic
	sp.observer = p.Observer
	sp.start = p.Start
	sp.goal = p.Goal
	sp.heuristicWeight = p.HeuristicWeight

	sp.precalc = nil
	if pc, ok := p.Lattice.(core.Precomputed); ok {
		sp.precalc = pc
	}

	return nil
}

// Initialize binds a planning problem to the planner.
//
// Steps:
//  1. Require p to be Initialized (ErrProblemNotInitialized otherwise).
//  2. Bind collaborators, endpoints and heuristic weight; probe the
//     lattice's Precomputed capability.
//  3. Probe the heuristic for the PatchFeatureUser capability; when it is
//     present and requests patches, allocate the explored-history grid
//     over the lattice's declared bounds and mark the start node explored.
//     Absence of the capability silently disables the feature.
//  4. Announce the search to the observer, if one is attached.
//
// Complexity: O(W×H) when patch features are enabled (grid allocation),
// O(1) otherwise.
func (sp *SearchPlanner) Initialize(p *Problem) error {
	if err := sp.bind(p); err != nil {
		return err
	}

	sp.usePatch = false
	sp.patchSize = 0
	sp.history = nil
	if pf, ok := sp.heuristic.(core.PatchFeatureUser); ok && pf.UsesImagePatch() {
		sp.usePatch = true
		sp.patchSize = pf.PatchSize()
		xMin, xMax := sp.lattice.XLims()
		yMin, yMax := sp.lattice.YLims()
		sp.history = newExploreHistory(xMin, xMax, yMin, yMax)
		sp.history.set(sp.start, core.TileExplored)
	}

	if sp.observer != nil {
		sp.observer.InitSearch(sp.lattice.NodeToState(sp.start), sp.lattice.NodeToState(sp.goal))
	}
	sp.initialized = true

	return nil
}

// Reset rebinds the planner to a new problem instance while persisting the
// explored-history grid: the same exploration history now applies to the
// new problem. Use it to resolve the same environment with a modified
// start, goal or heuristic. The binding contract is identical to
// Initialize.
func (sp *SearchPlanner) Reset(p *Problem) error {
	if err := sp.bind(p); err != nil {
		return err
	}

	if sp.observer != nil {
		sp.observer.InitSearch(sp.lattice.NodeToState(sp.start), sp.lattice.NodeToState(sp.goal))
	}
	sp.initialized = true

	return nil
}

// IsInitialized reports whether a problem is currently bound.
func (sp *SearchPlanner) IsInitialized() bool {
	return sp.initialized
}

// Problem returns the currently bound problem (nil before Initialize).
func (sp *SearchPlanner) Problem() *Problem {
	return sp.problem
}

// Start returns the bound start node.
func (sp *SearchPlanner) Start() core.Node { return sp.start }

// Goal returns the bound goal node.
func (sp *SearchPlanner) Goal() core.Node { return sp.goal }

// HeuristicWeight returns the problem's heuristic inflation factor. The
// core never applies it; multiplying is the driving algorithm's job.
func (sp *SearchPlanner) HeuristicWeight() float64 { return sp.heuristicWeight }

// Successors expands node n forward: queries the lattice for raw successor
// transitions (precomputed table when available), collision-checks each
// edge, attaches costs (precomputed when available, else the cost model)
// and marks destination cells in the explored-history grid: explored for
// valid edges, obstacle for invalid ones.
//
// Ordering: results preserve the lattice's raw transition order with
// invalid entries filtered out. Repeated calls with identical lattice and
// environment state return identical expansions.
// Complexity: O(d × v) for branching factor d and per-edge validation
// cost v.
func (sp *SearchPlanner) Successors(n core.Node) Expansion {
	return sp.expand(n, true)
}

// Predecessors expands node n backward, mirroring Successors. It does NOT
// mark the explored-history grid: when traversing backward the
// directionality of "this node is bad" is ambiguous, and backward
// expansion serves heuristic precomputation rather than coverage tracking.
func (sp *SearchPlanner) Predecessors(n core.Node) Expansion {
	return sp.expand(n, false)
}

// expand is the shared expansion engine behind Successors and
// Predecessors; forward selects direction and history marking.
func (sp *SearchPlanner) expand(n core.Node, forward bool) Expansion {
	// 1) Obtain the raw transition set: precomputed table first, on-demand
	//    lattice query as fallback.
	var raw []core.Transition
	var preCosts []float64
	var fromTable bool
	if sp.precalc != nil {
		if forward {
			raw, fromTable = sp.precalc.SuccTable(n)
			preCosts, _ = sp.precalc.SuccCosts(n)
		} else {
			raw, fromTable = sp.precalc.PredTable(n)
			preCosts, _ = sp.precalc.PredCosts(n)
		}
	}
	if !fromTable {
		if forward {
			raw = sp.lattice.Successors(n)
		} else {
			raw = sp.lattice.Predecessors(n)
		}
	}

	// 2) Validate every candidate edge, preserving raw order.
	var ex Expansion
	for i, tr := range raw {
		valid, firstColl, known := sp.env.IsEdgeValid(tr.Edge)
		if !valid {
			ex.Invalid = append(ex.Invalid, core.Collision{Edge: tr.Edge, State: firstColl, Known: known})
			if forward {
				sp.setExplored(tr.Node, core.TileObstacle)
			}

			continue
		}

		ex.Neighbors = append(ex.Neighbors, tr.Node)
		ex.Valid = append(ex.Valid, tr.Edge)
		if forward {
			sp.setExplored(tr.Node, core.TileExplored)
		}

		// 3) Attach the edge cost: precomputed table entry when present
		//    (aligned with the raw transition index), cost model otherwise.
		if preCosts != nil && i < len(preCosts) {
			ex.Costs = append(ex.Costs, preCosts[i])
		} else {
			ex.Costs = append(ex.Costs, sp.cost.Cost(tr.Edge))
		}
	}

	// 4) Emit the expansion event. Pure side effect: returned values and
	//    their ordering never depend on the observer.
	if sp.observer != nil {
		sp.observer.Expansion(ex.Valid, ex.Invalid)
	}

	return ex
}

// setExplored writes one explored-history cell. No-op unless patch
// features are enabled; out-of-grid nodes are ignored.
func (sp *SearchPlanner) setExplored(n core.Node, t core.Tile) {
	if !sp.usePatch {
		return
	}
	sp.history.set(n, t)
}

// SetExplored exposes explored-history marking to driving algorithms that
// learn about node validity outside the expansion engine. No-op unless
// patch features are enabled.
func (sp *SearchPlanner) SetExplored(n core.Node, t core.Tile) {
	sp.setExplored(n, t)
}

// UsingImagePatch reports whether the planner collects explored-history
// data for patch features.
func (sp *SearchPlanner) UsingImagePatch() bool {
	return sp.usePatch
}

// ImagePatchFeature extracts the patch-size window of the explored-history
// grid centered on n and returns its 3-channel one-hot encoding. Window
// cells outside the grid encode as unexplored. Returns ErrPatchDisabled
// when the bound heuristic never requested patch features.
// Complexity: O(patchSize²).
func (sp *SearchPlanner) ImagePatchFeature(n core.Node) (core.PatchFeature, error) {
	if !sp.usePatch {
		return core.PatchFeature{}, ErrPatchDisabled
	}

	return feature(sp.history.patch(n, sp.patchSize)), nil
}

// ClearHistory resets every explored-history cell to unexplored and
// re-marks the bound start node. Concrete planners that want a fully fresh
// search (rather than Reset's persistent history) call it from their
// ClearPlanner. No-op unless patch features are enabled.
func (sp *SearchPlanner) ClearHistory() {
	if !sp.usePatch {
		return
	}
	for i := range sp.history.cells {
		sp.history.cells[i] = core.TileUnexplored
	}
	sp.history.set(sp.start, core.TileExplored)
}

// ReconstructPath walks backward from goal through pred, collecting edges
// until the entry with no parent (the start) terminates the chain, then
// reverses the collected edges into start→goal order. The total cost is
// looked up for goal in costSoFar, the driving algorithm's accumulated-cost
// map. The start argument is kept for API symmetry with the expansion
// operations; termination is driven by the no-parent entry.
//
// Returns ErrGoalNotReached when goal is absent from pred; callers must
// check reachability before reconstructing. The predecessor chain must be
// acyclic and terminate at a no-parent entry (driving-algorithm contract);
// a broken chain fails rather than looping forever.
// Complexity: O(path length).
func (sp *SearchPlanner) ReconstructPath(pred core.PredecessorMap, start, goal core.Node, costSoFar map[core.Node]float64) (core.Path, error) {
	_ = start

	if _, ok := pred[goal]; !ok {
		return core.Path{}, fmt.Errorf("%w: %v", ErrGoalNotReached, goal)
	}

	var edges []core.Edge
	curr := goal
	for {
		entry, ok := pred[curr]
		if !ok {
			return core.Path{}, fmt.Errorf("%w: predecessor chain broken at %v", ErrGoalNotReached, curr)
		}
		if !entry.HasParent {
			break
		}
		edges = append(edges, entry.Edge)
		curr = entry.Parent
	}

	// Reverse into start→goal order.
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	if sp.observer != nil {
		sp.observer.FinalPath(edges)
	}

	return core.Path{Edges: edges, Cost: costSoFar[goal]}, nil
}

// Heuristic adapts the problem's heuristic to discrete nodes: both nodes
// are converted to continuous states via the lattice before delegating.
// With no heuristic configured it returns 0, degrading any driving
// algorithm to uniform-cost search. The heuristic weight is NOT applied
// here; see HeuristicWeight.
func (sp *SearchPlanner) Heuristic(a, b core.Node) float64 {
	if sp.heuristic == nil {
		return 0
	}

	return sp.heuristic.Estimate(sp.lattice.NodeToState(a), sp.lattice.NodeToState(b))
}

// Plan is the base contract default: the expansion core is not itself a
// search algorithm. Concrete planners embed *SearchPlanner and override.
func (sp *SearchPlanner) Plan() (core.Path, error) {
	return core.Path{}, fmt.Errorf("%w: Plan", ErrNotImplemented)
}

// ClearPlanner is the base contract default: discarding search-tree state
// is a concrete-planner concern (as is deciding whether the
// explored-history grid resets with it).
func (sp *SearchPlanner) ClearPlanner() error {
	return fmt.Errorf("%w: ClearPlanner", ErrNotImplemented)
}
