// Package lvlplan is a lattice-based search planning toolkit: it expands
// discretized configuration-space nodes into collision-validated successors,
// tracks which regions of the space a search has covered, and reconstructs
// final paths — independent of the concrete search algorithm driving it.
//
// 🚀 What is lvlplan?
//
//	A modular, pure-Go motion-planning library built around one primitive:
//		• planner/   — the algorithm-agnostic expansion & reconstruction core
//		• lattice/   — XY lattice discretization with optional precomputation
//		• env/       — 2D polygon environments with R-tree collision checking
//		• cost/      — edge cost models (unit, trajectory length)
//		• heuristic/ — Euclidean & Manhattan estimates, patch-feature support
//		• viz/       — observer sinks for expansion events (recorder, slog)
//		• astar/     — a (weighted) A* planner driving the core
//
// ✨ Why choose lvlplan?
//
//   - Algorithm-agnostic – A*, weighted A*, Dijkstra and friends all share
//     one validated expansion primitive; no search re-derives bookkeeping
//   - Swappable collaborators – lattice, environment, cost model and
//     heuristic meet at small interfaces in core/
//   - Learned-heuristic ready – fixed-size explored-history patches are
//     extracted for models that declare the capability
//   - Deterministic – expansion preserves lattice transition order; repeated
//     calls on the same inputs return identical results
//
// Quick ASCII example (4-connected lattice, one obstacle):
//
//	S···█···
//	··█·█·G·
//	····█···
//
// Bind a Problem, hand it to astar.New, call Plan, get back the ordered
// edge path and its cost. See the package examples for runnable code.
//
// Everything continuous is expressed with github.com/paulmach/orb geometry:
// states are orb.Point, edges are orb.LineString, obstacles are orb.Polygon.
package lvlplan
