// Connectivity constants, sentinel errors and functional options for
// XYLattice construction.

package lattice

import (
	"errors"

	"github.com/katalvlaran/lvlplan/core"
)

// Sentinel errors for lattice construction.
var (
	// ErrBadLimits indicates x or y limits with max ≤ min (an empty box).
	ErrBadLimits = errors.New("lattice: limits must satisfy min < max")

	// ErrBadResolution indicates a non-positive cell resolution.
	ErrBadResolution = errors.New("lattice: resolution must be positive")

	// ErrBadEdgeSamples indicates fewer than two interpolation samples per
	// edge (an edge needs at least its two endpoint states).
	ErrBadEdgeSamples = errors.New("lattice: edge samples must be at least 2")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for an XYLattice.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity

	// Resolution is the continuous size of one lattice cell.
	Resolution float64

	// Origin is the continuous state of node (0,0).
	Origin core.State

	// EdgeSamples is the number of states interpolated along each edge,
	// endpoints included. More samples mean finer collision checking.
	EdgeSamples int
}

// Option is a functional option for configuring an XYLattice.
type Option func(*Options)

// WithConnectivity selects Conn4 or Conn8 neighbor generation.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithResolution sets the continuous size of one lattice cell.
// Must be positive; non-positive values panic with ErrBadResolution.
func WithResolution(res float64) Option {
	return func(o *Options) {
		if res <= 0 {
			panic(ErrBadResolution.Error())
		}
		o.Resolution = res
	}
}

// WithOrigin sets the continuous state of node (0,0).
func WithOrigin(origin core.State) Option {
	return func(o *Options) { o.Origin = origin }
}

// WithEdgeSamples sets how many states are interpolated along each edge,
// endpoints included. Must be at least 2; smaller values panic with
// ErrBadEdgeSamples.
func WithEdgeSamples(n int) Option {
	return func(o *Options) {
		if n < 2 {
			panic(ErrBadEdgeSamples.Error())
		}
		o.EdgeSamples = n
	}
}

// DefaultOptions returns the default lattice configuration:
// Conn4 connectivity, resolution 1, origin (0,0), 5 samples per edge.
func DefaultOptions() Options {
	return Options{
		Conn:        Conn4,
		Resolution:  1,
		Origin:      core.State{0, 0},
		EdgeSamples: 5,
	}
}
