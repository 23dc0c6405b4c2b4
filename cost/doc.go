// Package cost provides edge cost models for lvlplan.
//
// Two models cover the common cases:
//
//   - Unit       — every edge costs 1; with them, path cost equals edge
//     count (breadth-first-equivalent searches).
//   - PathLength — an edge costs its planar trajectory length, making
//     searches minimize traveled distance.
//
// Both satisfy core.CostModel and are stateless; callers may of course
// supply their own models (clearance-weighted, energy-based, ...).
package cost
