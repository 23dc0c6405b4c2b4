// Package env provides a concrete 2D collision environment for lvlplan: a
// rectangular workspace bound plus a set of polygonal obstacles, with an
// R-tree broad phase so edge validation stays fast when obstacle counts
// grow.
//
// Overview:
//
//   - PolygonEnv validates edges state by state, in trajectory order.
//     A state outside the workspace bound invalidates the edge without a
//     colliding state (Collision.Known=false upstream); the first state
//     inside an obstacle polygon invalidates the edge with that state.
//   - Obstacle membership is checked in two phases: the R-tree
//     (github.com/dhconnelly/rtreego) narrows candidates to polygons whose
//     bounding boxes surround the queried state, then exact containment
//     runs through orb/planar.PolygonContains.
//   - Collision resolution is sampling-based: only the edge's interpolated
//     states are checked, so edge sampling density (see
//     lattice.WithEdgeSamples) bounds the obstacle features that can be
//     detected. WithPadding grows broad-phase query boxes when obstacles
//     sit close to sampled states.
//
// Errors (sentinel):
//
//   - ErrInvalidBound — workspace bound with min beyond max on any axis.
//
// PolygonEnv is read-only after construction and safe for the
// single-threaded search contract defined by package planner.
package env
