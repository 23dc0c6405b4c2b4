// Package env_test validates the polygon environment's workspace and
// collision semantics, in particular the two rejection modes the expansion
// core distinguishes: obstacle collisions (with a first colliding state)
// and workspace exits (without one).
package env_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlplan/core"
	"github.com/katalvlaran/lvlplan/env"
)

// square returns an axis-aligned obstacle with the given center and
// half-width.
func square(cx, cy, r float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{cx - r, cy - r},
		{cx + r, cy - r},
		{cx + r, cy + r},
		{cx - r, cy + r},
		{cx - r, cy - r},
	}}
}

// line samples a straight edge from (ax,ay) to (bx,by) with n states.
func line(ax, ay, bx, by float64, n int) core.Edge {
	e := make(core.Edge, n)
	for k := 0; k < n; k++ {
		t := float64(k) / float64(n-1)
		e[k] = core.State{ax + t*(bx-ax), ay + t*(by-ay)}
	}

	return e
}

func newEnv(t *testing.T, obstacles []orb.Polygon, opts ...env.Option) *env.PolygonEnv {
	t.Helper()
	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}
	pe, err := env.New(bound, obstacles, opts...)
	require.NoError(t, err)

	return pe
}

func TestNew_InvalidBound(t *testing.T) {
	bad := orb.Bound{Min: orb.Point{5, 0}, Max: orb.Point{0, 10}}
	_, err := env.New(bad, nil)
	require.ErrorIs(t, err, env.ErrInvalidBound)
}

func TestWithPadding_PanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { env.WithPadding(-1)(&env.Options{}) })
}

func TestIsStateValid(t *testing.T) {
	pe := newEnv(t, []orb.Polygon{square(5, 5, 1)})

	assert.True(t, pe.IsStateValid(core.State{1, 1}), "free state")
	assert.False(t, pe.IsStateValid(core.State{5, 5}), "state inside obstacle")
	assert.False(t, pe.IsStateValid(core.State{-1, 5}), "state outside workspace")
	assert.True(t, pe.IsStateValid(core.State{0, 0}), "workspace boundary is inside")
}

func TestIsEdgeValid_Free(t *testing.T) {
	pe := newEnv(t, []orb.Polygon{square(5, 5, 1)})

	valid, _, known := pe.IsEdgeValid(line(1, 1, 3, 1, 5))
	assert.True(t, valid)
	assert.False(t, known, "valid edges report no colliding state")
}

func TestIsEdgeValid_ObstacleReportsFirstState(t *testing.T) {
	pe := newEnv(t, []orb.Polygon{square(5, 5, 0.8)})

	// Edge from (2,5) to (8,5) crosses the obstacle spanning x∈[4.2,5.8].
	// With 13 samples (step 0.5) the first state inside is (4.5, 5).
	valid, first, known := pe.IsEdgeValid(line(2, 5, 8, 5, 13))
	require.False(t, valid)
	require.True(t, known, "obstacle collisions carry the colliding state")
	assert.InDelta(t, 4.5, first[0], 1e-12)
	assert.InDelta(t, 5.0, first[1], 1e-12)
}

func TestIsEdgeValid_WorkspaceExit(t *testing.T) {
	pe := newEnv(t, nil)

	valid, _, known := pe.IsEdgeValid(line(9, 5, 11, 5, 5))
	require.False(t, valid)
	assert.False(t, known, "workspace exits report no colliding state")
}

func TestIsEdgeValid_ExitBeatsLaterCollision(t *testing.T) {
	// States are checked in trajectory order: an edge that exits the
	// workspace before reaching an obstacle reports the exit.
	pe := newEnv(t, []orb.Polygon{square(5, 5, 1)})

	valid, _, known := pe.IsEdgeValid(line(-2, 5, 5, 5, 15))
	require.False(t, valid)
	assert.False(t, known)
}

func TestIsEdgeValid_EmptyEdge(t *testing.T) {
	pe := newEnv(t, nil)

	valid, _, known := pe.IsEdgeValid(core.Edge{})
	assert.True(t, valid, "an empty trajectory has nothing to collide")
	assert.False(t, known)
}

func TestInObstacle_ManyObstacles(t *testing.T) {
	// Enough obstacles to make the R-tree broad phase do real narrowing.
	var obstacles []orb.Polygon
	for x := 1; x < 10; x += 2 {
		for y := 1; y < 10; y += 2 {
			obstacles = append(obstacles, square(float64(x), float64(y), 0.3))
		}
	}
	pe := newEnv(t, obstacles)

	assert.True(t, pe.InObstacle(core.State{1, 1}))
	assert.True(t, pe.InObstacle(core.State{7.2, 3.1}))
	assert.False(t, pe.InObstacle(core.State{2, 2}))
	assert.False(t, pe.InObstacle(core.State{0.5, 0.5}))
}
