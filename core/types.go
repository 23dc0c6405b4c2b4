// Central value types shared by every lvlplan package: Node, State, Edge,
// Transition, Collision, Tile, Predecessor/PredecessorMap, Path and
// PatchFeature.

package core

import (
	"fmt"

	"github.com/paulmach/orb"
)

// State is a continuous configuration in the planning workspace.
// It aliases orb.Point so environments, cost models and heuristics can use
// the orb geometry toolkit directly.
type State = orb.Point

// Edge is an ordered continuous-space trajectory connecting two nodes.
// It aliases orb.LineString: index 0 is the source state, the last index is
// the destination state. The expansion core never inspects the interior
// states; only environments and cost models do.
type Edge = orb.LineString

// Node is a discrete lattice coordinate identifying a planner state.
// Nodes are compared by value and may be used as map keys.
type Node struct {
	X, Y int
}

// String renders the node as "(x,y)" for logs and test output.
func (n Node) String() string {
	return fmt.Sprintf("(%d,%d)", n.X, n.Y)
}

// Transition is one candidate move produced by a Lattice: the neighbor node
// reached and the continuous edge that reaches it.
type Transition struct {
	// Node is the discrete neighbor this transition leads to (successor
	// expansion) or comes from (predecessor expansion).
	Node Node

	// Edge is the continuous trajectory realizing the transition.
	Edge Edge
}

// Collision records one edge rejected by the Environment.
//
// Known distinguishes the two rejection modes mandated by the collision
// contract: Known=true means State holds the first colliding configuration
// along the edge; Known=false means the edge left the workspace bounds and
// no colliding state was identified. Callers must check Known before
// reading State (the zero State is a valid point).
type Collision struct {
	Edge  Edge
	State State
	Known bool
}

// Tile is one cell value of the explored-history grid.
type Tile uint8

const (
	// TileUnexplored marks a cell no expansion has touched yet.
	TileUnexplored Tile = 0

	// TileExplored marks a cell reached through a collision-free edge.
	TileExplored Tile = 1

	// TileObstacle marks a cell whose incoming edge collided.
	TileObstacle Tile = 2
)

// PatchChannels is the number of one-hot channels in a PatchFeature,
// one per Tile value.
const PatchChannels = 3

// PatchFeature is a fixed-size, 3-channel one-hot encoding of a local
// window of the explored-history grid. Channels[c][i][j] is 1 when the
// window cell (i,j) holds Tile(c) and 0 otherwise; window cells outside the
// grid encode as unexplored (channel 0).
type PatchFeature struct {
	// Size is the window side length (channels are Size×Size).
	Size int

	// Channels holds the one-hot planes indexed [channel][xOffset][yOffset],
	// channel order: unexplored, explored, obstacle.
	Channels [PatchChannels][][]float64
}

// Predecessor is one entry of a PredecessorMap: the node a search reached
// this node from and the edge it arrived through. HasParent=false marks the
// start node and terminates path reconstruction.
type Predecessor struct {
	Parent    Node
	Edge      Edge
	HasParent bool
}

// PredecessorMap maps each reached node to its search-tree predecessor.
// It is owned by the driving algorithm; the expansion core only reads it
// during path reconstruction.
type PredecessorMap map[Node]Predecessor

// Path is a reconstructed solution: edges ordered start→goal and the total
// accumulated cost of reaching the goal.
type Path struct {
	Edges []Edge
	Cost  float64
}
