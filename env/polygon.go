package env

import (
	"errors"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/lvlplan/core"
)

// Sentinel errors for environment construction.
var (
	// ErrInvalidBound indicates a workspace bound whose min exceeds its
	// max on some axis.
	ErrInvalidBound = errors.New("env: workspace bound min exceeds max")

	// ErrBadPadding indicates a negative broad-phase padding value.
	ErrBadPadding = errors.New("env: padding must be non-negative")
)

// rectEpsilon keeps R-tree rectangles strictly positive in every dimension;
// rtreego rejects degenerate (zero-length) rects.
const rectEpsilon = 1e-9

// Options contains tunable parameters for a PolygonEnv.
type Options struct {
	// Padding grows every broad-phase query box (and each indexed obstacle
	// box) by this margin on all sides.
	Padding float64
}

// Option is a functional option for configuring a PolygonEnv.
type Option func(*Options)

// WithPadding grows broad-phase boxes by pad on all sides. Must be
// non-negative; negative values panic with ErrBadPadding.
func WithPadding(pad float64) Option {
	return func(o *Options) {
		if pad < 0 {
			panic(ErrBadPadding.Error())
		}
		o.Padding = pad
	}
}

// DefaultOptions returns the default environment configuration: no padding.
func DefaultOptions() Options {
	return Options{Padding: 0}
}

// obstacleEntry wraps one obstacle polygon for R-tree storage.
type obstacleEntry struct {
	poly orb.Polygon
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *obstacleEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// PolygonEnv is a 2D workspace with polygonal obstacles. It implements
// core.Environment.
type PolygonEnv struct {
	bound   orb.Bound
	tree    *rtreego.Rtree
	padding float64
}

// New constructs a PolygonEnv over the given workspace bound and obstacle
// set. Returns ErrInvalidBound for an inverted bound. Obstacles whose
// bounding boxes cannot be indexed are skipped (empty polygons).
// Complexity: O(n log n) R-tree construction for n obstacles.
func New(bound orb.Bound, obstacles []orb.Polygon, opts ...Option) (*PolygonEnv, error) {
	if bound.Min[0] > bound.Max[0] || bound.Min[1] > bound.Max[1] {
		return nil, ErrInvalidBound
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	tree := rtreego.NewTree(2, 25, 50)
	for _, poly := range obstacles {
		bbox, err := rectFromBound(poly.Bound(), cfg.Padding)
		if err != nil {
			continue
		}
		tree.Insert(&obstacleEntry{poly: poly, bbox: bbox})
	}

	return &PolygonEnv{
		bound:   bound,
		tree:    tree,
		padding: cfg.Padding,
	}, nil
}

// rectFromBound converts an orb.Bound to a strictly positive rtreego.Rect,
// padded on all sides.
func rectFromBound(b orb.Bound, pad float64) (rtreego.Rect, error) {
	origin := rtreego.Point{b.Min[0] - pad - rectEpsilon, b.Min[1] - pad - rectEpsilon}
	lengths := []float64{
		b.Max[0] - b.Min[0] + 2*(pad+rectEpsilon),
		b.Max[1] - b.Min[1] + 2*(pad+rectEpsilon),
	}

	return rtreego.NewRect(origin, lengths)
}

// Bound returns the workspace bound.
func (pe *PolygonEnv) Bound() orb.Bound {
	return pe.bound
}

// InWorkspace reports whether s lies within the workspace bound.
// Complexity: O(1).
func (pe *PolygonEnv) InWorkspace(s core.State) bool {
	return pe.bound.Contains(s)
}

// InObstacle reports whether s lies inside any obstacle polygon.
// Complexity: O(log n + k) for k broad-phase candidates.
func (pe *PolygonEnv) InObstacle(s core.State) bool {
	query, err := rectFromBound(orb.Bound{Min: s, Max: s}, pe.padding)
	if err != nil {
		return false
	}
	for _, item := range pe.tree.SearchIntersect(query) {
		entry := item.(*obstacleEntry)
		if planar.PolygonContains(entry.poly, s) {
			return true
		}
	}

	return false
}

// IsStateValid reports whether s is inside the workspace and outside every
// obstacle.
func (pe *PolygonEnv) IsStateValid(s core.State) bool {
	return pe.InWorkspace(s) && !pe.InObstacle(s)
}

// IsEdgeValid implements core.Environment. States are checked in
// trajectory order: the first state outside the workspace invalidates the
// edge with known=false (no colliding state to report); the first state
// inside an obstacle invalidates it with that state and known=true.
// Complexity: O(m×(log n + k)) for m edge states.
func (pe *PolygonEnv) IsEdgeValid(e core.Edge) (bool, core.State, bool) {
	for _, s := range e {
		if !pe.InWorkspace(s) {
			return false, core.State{}, false
		}
		if pe.InObstacle(s) {
			return false, s, true
		}
	}

	return true, core.State{}, false
}
