// Package heuristic provides distance estimates for lvlplan searches and
// the capability wrapper that lets learned heuristics request
// explored-history patch features.
//
// Estimators:
//
//   - Euclidean — straight-line planar distance; admissible for lattices
//     whose edge costs are trajectory lengths.
//   - Manhattan — L1 distance; admissible on 4-connected lattices with
//     length costs, inadmissible under 8-connectivity.
//
// Patch capability:
//
//   - WithPatch(h, size) wraps any core.Heuristic so it additionally
//     satisfies core.PatchFeatureUser with the given window size. The
//     expansion core probes for that capability at problem binding and
//     starts collecting per-cell exploration history; the wrapped
//     heuristic's estimates are unchanged. Use it for learned models that
//     consume local explored/obstacle patches as input features.
package heuristic
