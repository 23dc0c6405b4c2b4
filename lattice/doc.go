// Package lattice provides a concrete XY state lattice for lvlplan: a
// regular 2D discretization mapping integer nodes to continuous states and
// generating straight-line candidate transitions under four- or
// eight-connectivity.
//
// Overview:
//
//   - XYLattice covers the integer box [xMin,xMax) × [yMin,yMax). Node
//     (x,y) maps to the continuous state origin + (x,y)·resolution.
//   - Successors/Predecessors generate one transition per connectivity
//     offset, each realized as an orb.LineString interpolated with a fixed
//     number of samples (the environment collision-checks those samples).
//     Transitions are emitted in a fixed offset order, so expansion results
//     are deterministic.
//   - The lattice deliberately does not bounds-filter its transitions;
//     edges leaving the workspace are the environment's to reject. That is
//     what produces the "invalid without a colliding state" outcome the
//     expansion core represents with Collision.Known=false.
//
// Precomputation:
//
//   - PrecomputeEdges builds node→transition tables for every in-bounds
//     node; PrecomputeCosts additionally prices each transition with a cost
//     model. Afterwards XYLattice satisfies core.Precomputed and the
//     expansion core uses the tables as fast paths. Results are identical
//     with and without precomputation.
//
// Errors (sentinel):
//
//   - ErrBadLimits — x or y limits define an empty box.
//
// Option constructors panic on invalid arguments (non-positive resolution,
// fewer than two edge samples), mirroring the library's configuration
// idiom.
package lattice
