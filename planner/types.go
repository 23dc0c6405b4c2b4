// Problem bundle, expansion result type, sentinel errors and functional
// options for problem construction.

package planner

import (
	"errors"

	"github.com/katalvlaran/lvlplan/core"
)

// Sentinel errors for the expansion and reconstruction core.
var (
	// ErrProblemNotInitialized indicates a Problem that was not constructed
	// (and validated) by NewProblem was passed to Initialize or Reset.
	ErrProblemNotInitialized = errors.New("planner: planning problem has not been initialized")

	// ErrNotImplemented indicates Plan or ClearPlanner was invoked directly
	// on the base SearchPlanner; both must be provided by a concrete
	// planner such as astar.Planner.
	ErrNotImplemented = errors.New("planner: operation must be implemented by a concrete planner")

	// ErrGoalNotReached indicates the goal node is absent from the
	// predecessor map handed to ReconstructPath — no path was found, and
	// callers must check reachability before reconstructing.
	ErrGoalNotReached = errors.New("planner: goal node absent from predecessor map")

	// ErrPatchDisabled indicates a patch feature was requested while the
	// bound heuristic never declared the PatchFeatureUser capability.
	ErrPatchDisabled = errors.New("planner: image patch features are disabled")

	// ErrNilEnvironment indicates NewProblem received a nil environment.
	ErrNilEnvironment = errors.New("planner: environment is nil")

	// ErrNilLattice indicates NewProblem received a nil lattice.
	ErrNilLattice = errors.New("planner: lattice is nil")

	// ErrNilCostModel indicates NewProblem received a nil cost model.
	ErrNilCostModel = errors.New("planner: cost model is nil")
)

// Expansion is the outcome of expanding one node: valid neighbors with
// their edges and costs, plus the rejected edges.
//
// Invariants: len(Neighbors) == len(Costs) == len(Valid); entries appear in
// the lattice's raw transition order with invalid candidates filtered out;
// every Invalid entry corresponds to an edge excluded from Valid.
type Expansion struct {
	// Neighbors are the discrete nodes reached through collision-free
	// edges.
	Neighbors []core.Node

	// Costs holds the traversal cost of each valid edge, aligned with
	// Neighbors.
	Costs []float64

	// Valid holds the collision-free edges, aligned with Neighbors.
	Valid []core.Edge

	// Invalid records the rejected edges together with the first colliding
	// state along each (Collision.Known=false when the edge left the
	// workspace instead of colliding).
	Invalid []core.Collision
}

// Problem is an initialized planning-problem bundle: every collaborator a
// SearchPlanner needs to solve one query. The planner holds a non-owning
// reference and may be rebound to another Problem via Reset.
type Problem struct {
	// Env is the collision/workspace oracle.
	Env core.Environment

	// Lattice is the discrete transition model.
	Lattice core.Lattice

	// Cost prices continuous edges.
	Cost core.CostModel

	// Heuristic estimates remaining cost; nil degrades any driving
	// algorithm to uniform-cost search.
	Heuristic core.Heuristic

	// Start and Goal are the query endpoints in lattice coordinates.
	Start, Goal core.Node

	// HeuristicWeight is the inflation factor a driving algorithm applies
	// to heuristic values. The expansion core itself never multiplies by
	// it, since weighting policy (static vs. adaptive) is
	// algorithm-specific.
	HeuristicWeight float64

	// Observer optionally receives expansion and path events; nil disables
	// all emission.
	Observer core.Observer

	initialized bool
}

// ProblemOption configures optional Problem fields at construction.
type ProblemOption func(*Problem)

// WithHeuristic attaches a heuristic to the problem. Without one, driving
// algorithms receive 0 estimates (uniform-cost search).
func WithHeuristic(h core.Heuristic) ProblemOption {
	return func(p *Problem) { p.Heuristic = h }
}

// WithHeuristicWeight sets the inflation factor driving algorithms apply to
// heuristic values. Values below 1 are kept as given; validation is the
// algorithm's concern. Default is 1.
func WithHeuristicWeight(w float64) ProblemOption {
	return func(p *Problem) { p.HeuristicWeight = w }
}

// WithObserver subscribes an observer to expansion and path events.
func WithObserver(o core.Observer) ProblemOption {
	return func(p *Problem) { p.Observer = o }
}

// NewProblem validates the required collaborators and returns an
// initialized Problem ready for SearchPlanner.Initialize.
//
// Errors: ErrNilEnvironment, ErrNilLattice, ErrNilCostModel.
func NewProblem(env core.Environment, lat core.Lattice, cost core.CostModel, start, goal core.Node, opts ...ProblemOption) (*Problem, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}
	if lat == nil {
		return nil, ErrNilLattice
	}
	if cost == nil {
		return nil, ErrNilCostModel
	}
	p := &Problem{
		Env:             env,
		Lattice:         lat,
		Cost:            cost,
		Start:           start,
		Goal:            goal,
		HeuristicWeight: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.initialized = true

	return p, nil
}

// Initialized reports whether the Problem went through NewProblem
// validation. SearchPlanner refuses to bind unvalidated problems.
func (p *Problem) Initialized() bool {
	return p != nil && p.initialized
}
