package heuristic

import (
	"errors"
	"math"

	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/lvlplan/core"
)

// ErrBadPatchSize indicates a non-positive patch window size passed to
// WithPatch.
var ErrBadPatchSize = errors.New("heuristic: patch size must be positive")

// Euclidean estimates remaining cost as straight-line planar distance.
type Euclidean struct{}

// Estimate implements core.Heuristic.
func (Euclidean) Estimate(a, b core.State) float64 {
	return planar.Distance(a, b)
}

// Manhattan estimates remaining cost as L1 distance.
type Manhattan struct{}

// Estimate implements core.Heuristic.
func (Manhattan) Estimate(a, b core.State) float64 {
	return math.Abs(a[0]-b[0]) + math.Abs(a[1]-b[1])
}

// patched decorates a heuristic with the patch-feature capability.
type patched struct {
	core.Heuristic
	size int
}

// UsesImagePatch implements core.PatchFeatureUser.
func (patched) UsesImagePatch() bool { return true }

// PatchSize implements core.PatchFeatureUser.
func (p patched) PatchSize() int { return p.size }

// WithPatch wraps h so it additionally declares the core.PatchFeatureUser
// capability with the given window side length; estimates pass through
// unchanged. Size must be positive; non-positive values panic with
// ErrBadPatchSize.
func WithPatch(h core.Heuristic, size int) core.Heuristic {
	if size <= 0 {
		panic(ErrBadPatchSize.Error())
	}

	return patched{Heuristic: h, size: size}
}
