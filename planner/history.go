package planner

import (
	"github.com/katalvlaran/lvlplan/core"
)

// exploreHistory is the dense explored-history grid: one Tile per discrete
// (x,y) cell of the lattice's declared bounds, stored row-major and indexed
// by min-offset coordinates. Sized once at allocation; never resizes.
//
// Row-major layout follows the usual grid convention:
// cells[(y-yMin)*width + (x-xMin)].
type exploreHistory struct {
	xMin, yMin    int
	width, height int
	cells         []core.Tile
}

// newExploreHistory allocates a grid covering x in [xMin,xMax) and
// y in [yMin,yMax), all cells TileUnexplored.
// Complexity: O(width×height) time and memory.
func newExploreHistory(xMin, xMax, yMin, yMax int) *exploreHistory {
	w, h := xMax-xMin, yMax-yMin
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return &exploreHistory{
		xMin:   xMin,
		yMin:   yMin,
		width:  w,
		height: h,
		cells:  make([]core.Tile, w*h),
	}
}

// inBounds reports whether offset coordinates (ox,oy) index a real cell.
// Complexity: O(1).
func (h *exploreHistory) inBounds(ox, oy int) bool {
	return ox >= 0 && ox < h.width && oy >= 0 && oy < h.height
}

// set writes one cell. Nodes whose offset coordinates fall outside
// [0,width)×[0,height) are ignored: a node's validity is a static property
// of the environment, so lost writes for out-of-grid nodes are harmless and
// repeated writes for in-grid nodes are idempotent.
// Complexity: O(1).
func (h *exploreHistory) set(n core.Node, t core.Tile) {
	ox, oy := n.X-h.xMin, n.Y-h.yMin
	if !h.inBounds(ox, oy) {
		return
	}
	h.cells[oy*h.width+ox] = t
}

// at reads the cell holding node-space coordinates (x,y); out-of-range
// reads return TileUnexplored, implementing the out-of-bounds-as-unexplored
// rule for patch extraction.
// Complexity: O(1).
func (h *exploreHistory) at(x, y int) core.Tile {
	ox, oy := x-h.xMin, y-h.yMin
	if !h.inBounds(ox, oy) {
		return core.TileUnexplored
	}

	return h.cells[oy*h.width+ox]
}

// patch extracts a size×size window of tiles centered on center.
//
// The window starts (size-1)/2 cells below the center on each axis and
// spans size cells, so odd sizes are symmetric and even sizes carry one
// extra cell on the high side (integer division truncates toward the low
// side). Window cells outside the grid read as TileUnexplored.
// Complexity: O(size²).
func (h *exploreHistory) patch(center core.Node, size int) [][]core.Tile {
	x0 := center.X - (size-1)/2
	y0 := center.Y - (size-1)/2

	out := make([][]core.Tile, size)
	for i := 0; i < size; i++ {
		out[i] = make([]core.Tile, size)
		for j := 0; j < size; j++ {
			out[i][j] = h.at(x0+i, y0+j)
		}
	}

	return out
}

// feature one-hot encodes a tile patch into PatchChannels planes:
// Channels[c][i][j] == 1 exactly when patch[i][j] == Tile(c).
// Complexity: O(size²).
func feature(patch [][]core.Tile) core.PatchFeature {
	size := len(patch)
	f := core.PatchFeature{Size: size}
	for c := 0; c < core.PatchChannels; c++ {
		f.Channels[c] = make([][]float64, size)
		for i := 0; i < size; i++ {
			f.Channels[c][i] = make([]float64, size)
		}
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			f.Channels[int(patch[i][j])][i][j] = 1
		}
	}

	return f
}
