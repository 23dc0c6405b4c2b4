// Package planner_test validates the expansion and reconstruction core
// against real collaborators: an XY lattice, a polygon environment, the
// unit cost model and patch-capable heuristics.
package planner_test

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvlplan/core"
	"github.com/katalvlaran/lvlplan/cost"
	"github.com/katalvlaran/lvlplan/env"
	"github.com/katalvlaran/lvlplan/heuristic"
	"github.com/katalvlaran/lvlplan/lattice"
	"github.com/katalvlaran/lvlplan/planner"
	"github.com/katalvlaran/lvlplan/viz"
)

// blockCell returns a small square obstacle centered on the continuous
// state of node (x,y) under the default unit-resolution lattice.
func blockCell(x, y int) orb.Polygon {
	cx, cy := float64(x), float64(y)

	return orb.Polygon{orb.Ring{
		{cx - 0.4, cy - 0.4},
		{cx + 0.4, cy - 0.4},
		{cx + 0.4, cy + 0.4},
		{cx - 0.4, cy + 0.4},
		{cx - 0.4, cy - 0.4},
	}}
}

// world5x5 builds the standard test world: a 5×5 unit lattice, a workspace
// bound padded a quarter cell beyond it, and the given obstacles.
func world5x5(t *testing.T, obstacles []orb.Polygon) (*lattice.XYLattice, *env.PolygonEnv) {
	t.Helper()
	lat, err := lattice.New(0, 5, 0, 5)
	if err != nil {
		t.Fatalf("lattice.New error: %v", err)
	}
	bound := orb.Bound{Min: orb.Point{-0.25, -0.25}, Max: orb.Point{4.25, 4.25}}
	pe, err := env.New(bound, obstacles)
	if err != nil {
		t.Fatalf("env.New error: %v", err)
	}

	return lat, pe
}

// newProblem5x5 binds a fresh problem over world5x5.
func newProblem5x5(t *testing.T, obstacles []orb.Polygon, start, goal core.Node, opts ...planner.ProblemOption) *planner.Problem {
	t.Helper()
	lat, pe := world5x5(t, obstacles)
	p, err := planner.NewProblem(pe, lat, cost.Unit{}, start, goal, opts...)
	if err != nil {
		t.Fatalf("NewProblem error: %v", err)
	}

	return p
}

//----------------------------------------------------------------------------//
// Problem construction and binding
//----------------------------------------------------------------------------//

func TestNewProblem_Validation(t *testing.T) {
	lat, pe := world5x5(t, nil)

	cases := []struct {
		name string
		env  core.Environment
		lat  core.Lattice
		cm   core.CostModel
		err  error
	}{
		{"NilEnvironment", nil, lat, cost.Unit{}, planner.ErrNilEnvironment},
		{"NilLattice", pe, nil, cost.Unit{}, planner.ErrNilLattice},
		{"NilCostModel", pe, lat, nil, planner.ErrNilCostModel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := planner.NewProblem(tc.env, tc.lat, tc.cm, core.Node{}, core.Node{X: 4, Y: 4})
			if !errors.Is(err, tc.err) {
				t.Errorf("NewProblem error = %v; want %v", err, tc.err)
			}
		})
	}
}

func TestInitialize_RequiresInitializedProblem(t *testing.T) {
	sp := planner.New()

	// A hand-built Problem never went through NewProblem validation.
	raw := &planner.Problem{}
	if err := sp.Initialize(raw); !errors.Is(err, planner.ErrProblemNotInitialized) {
		t.Fatalf("Initialize error = %v; want ErrProblemNotInitialized", err)
	}
	if sp.IsInitialized() {
		t.Error("planner reports initialized after failed Initialize")
	}

	if err := sp.Reset(raw); !errors.Is(err, planner.ErrProblemNotInitialized) {
		t.Fatalf("Reset error = %v; want ErrProblemNotInitialized", err)
	}
}

func TestInitialize_BindsAndReports(t *testing.T) {
	p := newProblem5x5(t, nil, core.Node{X: 0, Y: 0}, core.Node{X: 4, Y: 4},
		planner.WithHeuristicWeight(2.5))

	sp := planner.New()
	if sp.IsInitialized() {
		t.Fatal("fresh planner reports initialized")
	}
	if err := sp.Initialize(p); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	if !sp.IsInitialized() {
		t.Error("planner not initialized after Initialize")
	}
	if sp.Start() != (core.Node{X: 0, Y: 0}) || sp.Goal() != (core.Node{X: 4, Y: 4}) {
		t.Errorf("bound endpoints = %v→%v; want (0,0)→(4,4)", sp.Start(), sp.Goal())
	}
	if sp.HeuristicWeight() != 2.5 {
		t.Errorf("HeuristicWeight = %v; want 2.5", sp.HeuristicWeight())
	}
	if sp.UsingImagePatch() {
		t.Error("patch features enabled without a patch-capable heuristic")
	}
}

//----------------------------------------------------------------------------//
// Expansion engine
//----------------------------------------------------------------------------//

func TestSuccessors_AlignedAndOrdered(t *testing.T) {
	p := newProblem5x5(t, nil, core.Node{X: 0, Y: 0}, core.Node{X: 4, Y: 4})
	sp := planner.New()
	if err := sp.Initialize(p); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	// Interior node: all four candidates valid, in lattice offset order
	// N, E, S, W.
	ex := sp.Successors(core.Node{X: 2, Y: 2})
	if len(ex.Neighbors) != len(ex.Costs) || len(ex.Costs) != len(ex.Valid) {
		t.Fatalf("misaligned expansion: %d neighbors, %d costs, %d edges",
			len(ex.Neighbors), len(ex.Costs), len(ex.Valid))
	}
	want := []core.Node{{X: 2, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 2}}
	if len(ex.Neighbors) != len(want) {
		t.Fatalf("neighbors = %v; want %v", ex.Neighbors, want)
	}
	for i, n := range want {
		if ex.Neighbors[i] != n {
			t.Errorf("neighbor[%d] = %v; want %v (order must follow the lattice)", i, ex.Neighbors[i], n)
		}
	}
	if len(ex.Invalid) != 0 {
		t.Errorf("interior expansion produced %d invalid edges; want 0", len(ex.Invalid))
	}
	for _, c := range ex.Costs {
		if c != 1 {
			t.Errorf("unit cost = %v; want 1", c)
		}
	}
}

func TestSuccessors_CornerLeavesWorkspace(t *testing.T) {
	p := newProblem5x5(t, nil, core.Node{X: 0, Y: 0}, core.Node{X: 4, Y: 4})
	sp := planner.New()
	if err := sp.Initialize(p); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	// Corner (0,0): edges toward (0,-1) and (-1,0) leave the workspace.
	ex := sp.Successors(core.Node{X: 0, Y: 0})
	if len(ex.Neighbors) != 2 {
		t.Fatalf("corner valid neighbors = %v; want 2 entries", ex.Neighbors)
	}
	if len(ex.Invalid) != 2 {
		t.Fatalf("corner invalid edges = %d; want 2", len(ex.Invalid))
	}
	for _, coll := range ex.Invalid {
		if coll.Known {
			t.Errorf("workspace exit reported a colliding state %v; want Known=false", coll.State)
		}
	}
}

func TestSuccessors_CollisionReportsFirstState(t *testing.T) {
	p := newProblem5x5(t, []orb.Polygon{blockCell(2, 2)},
		core.Node{X: 0, Y: 0}, core.Node{X: 4, Y: 4})
	sp := planner.New()
	if err := sp.Initialize(p); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	// From (2,1), the northward candidate into (2,2) collides. With 5
	// samples per unit edge, the first state inside the 0.4-radius block
	// is (2, 1.75).
	ex := sp.Successors(core.Node{X: 2, Y: 1})
	if len(ex.Invalid) != 1 {
		t.Fatalf("invalid edges = %d; want 1", len(ex.Invalid))
	}
	coll := ex.Invalid[0]
	if !coll.Known {
		t.Fatal("obstacle collision reported Known=false")
	}
	if coll.State[0] != 2 || coll.State[1] != 1.75 {
		t.Errorf("first colliding state = %v; want (2, 1.75)", coll.State)
	}
	for _, n := range ex.Neighbors {
		if n == (core.Node{X: 2, Y: 2}) {
			t.Error("blocked node leaked into valid neighbors")
		}
	}
}

func TestExpansion_Idempotent(t *testing.T) {
	p := newProblem5x5(t, []orb.Polygon{blockCell(2, 2)},
		core.Node{X: 0, Y: 0}, core.Node{X: 4, Y: 4})
	sp := planner.New()
	if err := sp.Initialize(p); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	for _, n := range []core.Node{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 3}} {
		first := sp.Successors(n)
		second := sp.Successors(n)
		if len(first.Neighbors) != len(second.Neighbors) || len(first.Invalid) != len(second.Invalid) {
			t.Fatalf("expansion of %v not idempotent", n)
		}
		for i := range first.Neighbors {
			if first.Neighbors[i] != second.Neighbors[i] || first.Costs[i] != second.Costs[i] {
				t.Errorf("expansion of %v differs between calls at index %d", n, i)
			}
		}

		firstPred := sp.Predecessors(n)
		secondPred := sp.Predecessors(n)
		if len(firstPred.Neighbors) != len(secondPred.Neighbors) {
			t.Fatalf("predecessor expansion of %v not idempotent", n)
		}
	}
}

func TestPredecessors_MirrorSuccessors(t *testing.T) {
	p := newProblem5x5(t, nil, core.Node{X: 0, Y: 0}, core.Node{X: 4, Y: 4})
	sp := planner.New()
	if err := sp.Initialize(p); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	// On a symmetric lattice with a uniform cost model, predecessor and
	// successor expansions of an interior node reach the same neighbor
	// set with the same costs.
	succ := sp.Successors(core.Node{X: 2, Y: 2})
	pred := sp.Predecessors(core.Node{X: 2, Y: 2})
	if len(succ.Neighbors) != len(pred.Neighbors) {
		t.Fatalf("successor/predecessor neighbor counts differ: %d vs %d",
			len(succ.Neighbors), len(pred.Neighbors))
	}
	seen := make(map[core.Node]bool, len(succ.Neighbors))
	for _, n := range succ.Neighbors {
		seen[n] = true
	}
	for i, n := range pred.Neighbors {
		if !seen[n] {
			t.Errorf("predecessor neighbor %v not among successors", n)
		}
		if pred.Costs[i] != 1 {
			t.Errorf("predecessor cost = %v; want 1", pred.Costs[i])
		}
	}

	// Predecessor edges must be oriented neighbor→node.
	for i, e := range pred.Valid {
		last := e[len(e)-1]
		if last[0] != 2 || last[1] != 2 {
			t.Errorf("predecessor edge %d ends at %v; want (2,2)", i, last)
		}
	}
}

func TestExpansion_PrecomputedMatchesOnDemand(t *testing.T) {
	latA, pe := world5x5(t, []orb.Polygon{blockCell(2, 2)})
	latB, _ := world5x5(t, nil)
	latB.PrecomputeEdges()
	latB.PrecomputeCosts(cost.Unit{})

	mk := func(l *lattice.XYLattice) *planner.SearchPlanner {
		p, err := planner.NewProblem(pe, l, cost.Unit{}, core.Node{X: 0, Y: 0}, core.Node{X: 4, Y: 4})
		if err != nil {
			t.Fatalf("NewProblem error: %v", err)
		}
		sp := planner.New()
		if err = sp.Initialize(p); err != nil {
			t.Fatalf("Initialize error: %v", err)
		}

		return sp
	}

	onDemand := mk(latA)
	precomp := mk(latB)

	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			n := core.Node{X: x, Y: y}
			a, b := onDemand.Successors(n), precomp.Successors(n)
			if len(a.Neighbors) != len(b.Neighbors) {
				t.Fatalf("node %v: on-demand %d neighbors, precomputed %d", n, len(a.Neighbors), len(b.Neighbors))
			}
			for i := range a.Neighbors {
				if a.Neighbors[i] != b.Neighbors[i] || a.Costs[i] != b.Costs[i] {
					t.Errorf("node %v index %d: precomputed expansion diverges", n, i)
				}
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Path reconstruction
//----------------------------------------------------------------------------//

func TestReconstructPath_OrdersEdges(t *testing.T) {
	p := newProblem5x5(t, nil, core.Node{X: 0, Y: 0}, core.Node{X: 3, Y: 0})
	sp := planner.New()
	if err := sp.Initialize(p); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	// Hand-built chain (0,0)→(1,0)→(2,0)→(3,0).
	edge := func(ax, bx int) core.Edge {
		return core.Edge{{float64(ax), 0}, {float64(bx), 0}}
	}
	pred := core.PredecessorMap{
		{X: 0, Y: 0}: {},
		{X: 1, Y: 0}: {Parent: core.Node{X: 0, Y: 0}, Edge: edge(0, 1), HasParent: true},
		{X: 2, Y: 0}: {Parent: core.Node{X: 1, Y: 0}, Edge: edge(1, 2), HasParent: true},
		{X: 3, Y: 0}: {Parent: core.Node{X: 2, Y: 0}, Edge: edge(2, 3), HasParent: true},
	}
	costSoFar := map[core.Node]float64{{X: 3, Y: 0}: 3}

	path, err := sp.ReconstructPath(pred, core.Node{X: 0, Y: 0}, core.Node{X: 3, Y: 0}, costSoFar)
	if err != nil {
		t.Fatalf("ReconstructPath error: %v", err)
	}
	if len(path.Edges) != 3 {
		t.Fatalf("path edges = %d; want 3", len(path.Edges))
	}
	if path.Cost != 3 {
		t.Errorf("path cost = %v; want 3", path.Cost)
	}
	// Concatenated edges run start→goal.
	if first := path.Edges[0][0]; first[0] != 0 {
		t.Errorf("path starts at %v; want x=0", first)
	}
	for i := 0; i < len(path.Edges)-1; i++ {
		endOf := path.Edges[i][len(path.Edges[i])-1]
		startOf := path.Edges[i+1][0]
		if endOf != startOf {
			t.Errorf("edge %d ends at %v but edge %d starts at %v", i, endOf, i+1, startOf)
		}
	}
	if last := path.Edges[2][len(path.Edges[2])-1]; last[0] != 3 {
		t.Errorf("path ends at %v; want x=3", last)
	}
}

func TestReconstructPath_GoalAbsent(t *testing.T) {
	p := newProblem5x5(t, nil, core.Node{X: 0, Y: 0}, core.Node{X: 4, Y: 4})
	sp := planner.New()
	if err := sp.Initialize(p); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	pred := core.PredecessorMap{{X: 0, Y: 0}: {}}
	_, err := sp.ReconstructPath(pred, core.Node{X: 0, Y: 0}, core.Node{X: 4, Y: 4}, nil)
	if !errors.Is(err, planner.ErrGoalNotReached) {
		t.Fatalf("ReconstructPath error = %v; want ErrGoalNotReached", err)
	}
}

func TestReconstructPath_BrokenChain(t *testing.T) {
	p := newProblem5x5(t, nil, core.Node{X: 0, Y: 0}, core.Node{X: 2, Y: 0})
	sp := planner.New()
	if err := sp.Initialize(p); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	// (2,0) points at (1,0), which is missing from the map entirely.
	pred := core.PredecessorMap{
		{X: 2, Y: 0}: {Parent: core.Node{X: 1, Y: 0}, Edge: core.Edge{{1, 0}, {2, 0}}, HasParent: true},
	}
	_, err := sp.ReconstructPath(pred, core.Node{X: 0, Y: 0}, core.Node{X: 2, Y: 0}, nil)
	if !errors.Is(err, planner.ErrGoalNotReached) {
		t.Fatalf("broken chain error = %v; want ErrGoalNotReached", err)
	}
}

//----------------------------------------------------------------------------//
// Heuristic adapter and base contract
//----------------------------------------------------------------------------//

func TestHeuristic_NilDegradesToZero(t *testing.T) {
	p := newProblem5x5(t, nil, core.Node{X: 0, Y: 0}, core.Node{X: 4, Y: 4})
	sp := planner.New()
	if err := sp.Initialize(p); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	if h := sp.Heuristic(core.Node{X: 0, Y: 0}, core.Node{X: 4, Y: 4}); h != 0 {
		t.Errorf("nil heuristic estimate = %v; want 0", h)
	}
}

func TestHeuristic_UnweightedDelegation(t *testing.T) {
	// Weight 10 must NOT leak into the adapter's values; applying it is
	// the driving algorithm's job.
	p := newProblem5x5(t, nil, core.Node{X: 0, Y: 0}, core.Node{X: 3, Y: 4},
		planner.WithHeuristic(heuristic.Euclidean{}),
		planner.WithHeuristicWeight(10))
	sp := planner.New()
	if err := sp.Initialize(p); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	if h := sp.Heuristic(core.Node{X: 0, Y: 0}, core.Node{X: 3, Y: 4}); h != 5 {
		t.Errorf("Euclidean estimate = %v; want 5 (unweighted)", h)
	}
	if w := sp.HeuristicWeight(); w != 10 {
		t.Errorf("HeuristicWeight = %v; want 10", w)
	}
}

func TestBaseContract_NotImplemented(t *testing.T) {
	sp := planner.New()

	if _, err := sp.Plan(); !errors.Is(err, planner.ErrNotImplemented) {
		t.Errorf("base Plan error = %v; want ErrNotImplemented", err)
	}
	if err := sp.ClearPlanner(); !errors.Is(err, planner.ErrNotImplemented) {
		t.Errorf("base ClearPlanner error = %v; want ErrNotImplemented", err)
	}
}

//----------------------------------------------------------------------------//
// Observer side effects
//----------------------------------------------------------------------------//

func TestObserver_ReceivesEventsWithoutChangingResults(t *testing.T) {
	rec := viz.NewRecorder()
	obstacles := []orb.Polygon{blockCell(2, 2)}

	silent := planner.New()
	if err := silent.Initialize(newProblem5x5(t, obstacles, core.Node{X: 0, Y: 0}, core.Node{X: 4, Y: 4})); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	observed := planner.New()
	if err := observed.Initialize(newProblem5x5(t, obstacles, core.Node{X: 0, Y: 0}, core.Node{X: 4, Y: 4},
		planner.WithObserver(rec))); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	if len(rec.Inits) != 1 {
		t.Fatalf("init events = %d; want 1", len(rec.Inits))
	}
	if rec.Inits[0].Start != (core.State{0, 0}) || rec.Inits[0].Goal != (core.State{4, 4}) {
		t.Errorf("init event = %+v; want start (0,0), goal (4,4)", rec.Inits[0])
	}

	a := silent.Successors(core.Node{X: 2, Y: 1})
	b := observed.Successors(core.Node{X: 2, Y: 1})
	if len(a.Neighbors) != len(b.Neighbors) || len(a.Invalid) != len(b.Invalid) {
		t.Fatal("observer changed expansion results")
	}
	for i := range a.Neighbors {
		if a.Neighbors[i] != b.Neighbors[i] {
			t.Fatal("observer changed expansion ordering")
		}
	}
	if len(rec.Expansions) != 1 {
		t.Fatalf("expansion events = %d; want 1", len(rec.Expansions))
	}
	if len(rec.Expansions[0].Valid) != len(b.Valid) || len(rec.Expansions[0].Invalid) != len(b.Invalid) {
		t.Error("expansion event does not match returned expansion")
	}
}
