// Collaborator contracts consumed by the expansion core. Every interface
// here is implemented elsewhere (lattice/, env/, cost/, heuristic/, viz/,
// astar/ or caller code); package planner consumes them without knowing the
// concrete types behind them.

package core

// Environment is the collision/workspace oracle validating edges against
// obstacles and bounds.
type Environment interface {
	// IsEdgeValid reports whether every state along the edge is free.
	// On rejection it additionally returns the first colliding state
	// encountered and known=true, or the zero State and known=false when
	// the edge merely exited the workspace bounds.
	IsEdgeValid(e Edge) (valid bool, firstCollision State, known bool)
}

// Lattice is the discretization model producing candidate transitions from
// a node and mapping discrete nodes to continuous states.
//
// Successors and Predecessors must return deterministically ordered slices:
// the expansion core guarantees its outputs preserve that order.
type Lattice interface {
	// Successors returns the ordered raw transitions leaving n.
	Successors(n Node) []Transition

	// Predecessors returns the ordered raw transitions entering n.
	Predecessors(n Node) []Transition

	// NodeToState maps a discrete node to its continuous configuration.
	NodeToState(n Node) State

	// XLims returns the inclusive-exclusive [min, max) discrete x bounds.
	XLims() (min, max int)

	// YLims returns the inclusive-exclusive [min, max) discrete y bounds.
	YLims() (min, max int)
}

// Precomputed is an optional Lattice capability exposing pre-built
// transition and cost tables. The expansion core probes for it once at
// problem-binding time; each method reports ok=false when the table has not
// been built, in which case the core falls back to on-demand computation.
type Precomputed interface {
	// SuccTable returns the precomputed successor transitions of n.
	SuccTable(n Node) (ts []Transition, ok bool)

	// PredTable returns the precomputed predecessor transitions of n.
	PredTable(n Node) (ts []Transition, ok bool)

	// SuccCosts returns per-successor costs aligned with SuccTable(n).
	SuccCosts(n Node) (costs []float64, ok bool)

	// PredCosts returns per-predecessor costs aligned with PredTable(n).
	PredCosts(n Node) (costs []float64, ok bool)
}

// CostModel prices a continuous edge.
type CostModel interface {
	// Cost returns the non-negative traversal cost of e.
	Cost(e Edge) float64
}

// Heuristic estimates the remaining cost between two continuous states.
type Heuristic interface {
	// Estimate returns an estimate of the cost from a to b.
	Estimate(a, b State) float64
}

// PatchFeatureUser is an optional Heuristic capability: a heuristic that
// consumes fixed-size explored-history patches (typically a learned model)
// declares it to make the expansion core collect per-cell exploration
// history. Heuristics without this capability silently disable the feature.
type PatchFeatureUser interface {
	// UsesImagePatch reports whether patch features should be collected.
	UsesImagePatch() bool

	// PatchSize returns the requested window side length.
	PatchSize() int
}

// Observer receives structured search events as pure side effects.
// Implementations render, record or log them; the expansion core's returned
// values and their ordering are identical whether or not an observer is
// attached. All calls happen synchronously on the search goroutine, so
// single-owning-thread rendering backends are safe.
type Observer interface {
	// InitSearch announces a (re)bound problem with its start and goal
	// states.
	InitSearch(start, goal State)

	// Expansion delivers the outcome of one node expansion: the edges
	// that validated and the ones that were rejected.
	Expansion(valid []Edge, invalid []Collision)

	// FinalPath delivers the reconstructed start→goal edge sequence.
	FinalPath(edges []Edge)
}

// Planner is the abstract algorithm contract every concrete search
// strategy fulfills on top of the expansion core.
type Planner interface {
	// Plan runs the search to termination and returns the solution path.
	Plan() (Path, error)

	// ClearPlanner discards search-tree state (open/closed sets,
	// predecessor maps) so the planner can solve again. Whether the
	// explored-history grid is also reset is a per-planner decision.
	ClearPlanner() error
}
