package lattice

import (
	"github.com/katalvlaran/lvlplan/core"
)

// conn4Offsets and conn8Offsets are the fixed neighbor orders; expansion
// determinism depends on them never changing.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// XYLattice is a regular 2D state lattice over the integer box
// [xMin,xMax) × [yMin,yMax). It is immutable after construction except for
// the optional precomputation tables.
type XYLattice struct {
	xMin, xMax int
	yMin, yMax int

	conn        Connectivity
	resolution  float64
	origin      core.State
	edgeSamples int
	offsets     [][2]int

	succTable map[core.Node][]core.Transition
	predTable map[core.Node][]core.Transition
	succCosts map[core.Node][]float64
	predCosts map[core.Node][]float64
}

// New constructs an XYLattice covering x in [xMin,xMax) and y in
// [yMin,yMax). Returns ErrBadLimits when either axis is empty.
// Complexity: O(1); precomputation is separate and optional.
func New(xMin, xMax, yMin, yMax int, opts ...Option) (*XYLattice, error) {
	if xMax <= xMin || yMax <= yMin {
		return nil, ErrBadLimits
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	offsets := conn4Offsets
	if cfg.Conn == Conn8 {
		offsets = conn8Offsets
	}

	return &XYLattice{
		xMin:        xMin,
		xMax:        xMax,
		yMin:        yMin,
		yMax:        yMax,
		conn:        cfg.Conn,
		resolution:  cfg.Resolution,
		origin:      cfg.Origin,
		edgeSamples: cfg.EdgeSamples,
		offsets:     offsets,
	}, nil
}

// XLims returns the inclusive-exclusive discrete x bounds.
func (l *XYLattice) XLims() (min, max int) { return l.xMin, l.xMax }

// YLims returns the inclusive-exclusive discrete y bounds.
func (l *XYLattice) YLims() (min, max int) { return l.yMin, l.yMax }

// InBounds reports whether n lies within the declared box.
// Complexity: O(1).
func (l *XYLattice) InBounds(n core.Node) bool {
	return n.X >= l.xMin && n.X < l.xMax && n.Y >= l.yMin && n.Y < l.yMax
}

// NodeToState maps a discrete node to its continuous configuration:
// origin + (x,y)·resolution.
// Complexity: O(1).
func (l *XYLattice) NodeToState(n core.Node) core.State {
	return core.State{
		l.origin[0] + float64(n.X)*l.resolution,
		l.origin[1] + float64(n.Y)*l.resolution,
	}
}

// edge builds the straight-line trajectory from node a to node b,
// interpolated with edgeSamples states, endpoints included.
func (l *XYLattice) edge(a, b core.Node) core.Edge {
	sa, sb := l.NodeToState(a), l.NodeToState(b)
	e := make(core.Edge, l.edgeSamples)
	step := 1 / float64(l.edgeSamples-1)
	for k := 0; k < l.edgeSamples; k++ {
		t := float64(k) * step
		e[k] = core.State{
			sa[0] + t*(sb[0]-sa[0]),
			sa[1] + t*(sb[1]-sa[1]),
		}
	}

	return e
}

// Successors generates one outgoing transition per connectivity offset, in
// fixed offset order. Out-of-bounds neighbors are NOT filtered here; edges
// leaving the workspace are the environment's to reject.
// Complexity: O(d × edgeSamples) for branching factor d.
func (l *XYLattice) Successors(n core.Node) []core.Transition {
	ts := make([]core.Transition, 0, len(l.offsets))
	for _, d := range l.offsets {
		m := core.Node{X: n.X + d[0], Y: n.Y + d[1]}
		ts = append(ts, core.Transition{Node: m, Edge: l.edge(n, m)})
	}

	return ts
}

// Predecessors mirrors Successors: one incoming transition per offset,
// each edge oriented predecessor→n.
func (l *XYLattice) Predecessors(n core.Node) []core.Transition {
	ts := make([]core.Transition, 0, len(l.offsets))
	for _, d := range l.offsets {
		m := core.Node{X: n.X - d[0], Y: n.Y - d[1]}
		ts = append(ts, core.Transition{Node: m, Edge: l.edge(m, n)})
	}

	return ts
}

// PrecomputeEdges builds the successor and predecessor transition tables
// for every in-bounds node. After it returns, SuccTable and PredTable
// serve lookups and the expansion core stops querying Successors/
// Predecessors for in-bounds nodes.
// Complexity: O(W×H×d×edgeSamples) time and memory.
func (l *XYLattice) PrecomputeEdges() {
	w, h := l.xMax-l.xMin, l.yMax-l.yMin
	l.succTable = make(map[core.Node][]core.Transition, w*h)
	l.predTable = make(map[core.Node][]core.Transition, w*h)
	for x := l.xMin; x < l.xMax; x++ {
		for y := l.yMin; y < l.yMax; y++ {
			n := core.Node{X: x, Y: y}
			l.succTable[n] = l.Successors(n)
			l.predTable[n] = l.Predecessors(n)
		}
	}
}

// PrecomputeCosts prices every precomputed transition with m and stores the
// per-node cost lists aligned with the transition tables. Calls
// PrecomputeEdges first when the tables are missing.
// Complexity: O(W×H×d × cost(m)).
func (l *XYLattice) PrecomputeCosts(m core.CostModel) {
	if l.succTable == nil {
		l.PrecomputeEdges()
	}
	l.succCosts = make(map[core.Node][]float64, len(l.succTable))
	l.predCosts = make(map[core.Node][]float64, len(l.predTable))
	for n, ts := range l.succTable {
		costs := make([]float64, len(ts))
		for i, tr := range ts {
			costs[i] = m.Cost(tr.Edge)
		}
		l.succCosts[n] = costs
	}
	for n, ts := range l.predTable {
		costs := make([]float64, len(ts))
		for i, tr := range ts {
			costs[i] = m.Cost(tr.Edge)
		}
		l.predCosts[n] = costs
	}
}

// SuccTable implements core.Precomputed.
func (l *XYLattice) SuccTable(n core.Node) ([]core.Transition, bool) {
	ts, ok := l.succTable[n]

	return ts, ok
}

// PredTable implements core.Precomputed.
func (l *XYLattice) PredTable(n core.Node) ([]core.Transition, bool) {
	ts, ok := l.predTable[n]

	return ts, ok
}

// SuccCosts implements core.Precomputed.
func (l *XYLattice) SuccCosts(n core.Node) ([]float64, bool) {
	cs, ok := l.succCosts[n]

	return cs, ok
}

// PredCosts implements core.Precomputed.
func (l *XYLattice) PredCosts(n core.Node) ([]float64, bool) {
	cs, ok := l.predCosts[n]

	return cs, ok
}
