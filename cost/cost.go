package cost

import (
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/lvlplan/core"
)

// Unit prices every edge at 1, so accumulated path cost counts edges.
type Unit struct{}

// Cost implements core.CostModel.
func (Unit) Cost(_ core.Edge) float64 { return 1 }

// PathLength prices an edge by the planar length of its trajectory.
type PathLength struct{}

// Cost implements core.CostModel.
// Complexity: O(m) for m edge states.
func (PathLength) Cost(e core.Edge) float64 { return planar.Length(e) }
