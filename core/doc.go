// Package core defines the shared data model and collaborator contracts for
// the lvlplan planning library: discrete Nodes, continuous States and Edges,
// expansion records, and the small interfaces through which a lattice, an
// environment, a cost model, a heuristic and an observer plug into the
// expansion core.
//
// Overview:
//
//   - A Node is a discrete lattice coordinate: comparable, usable as a map
//     key, equality by value.
//   - A State is a continuous configuration (orb.Point); an Edge is an
//     ordered continuous trajectory (orb.LineString) connecting two nodes.
//     The expansion core treats edges as opaque: it only hands them to the
//     Environment for validation and to the CostModel for pricing.
//   - Collaborators are specified as interfaces only. Concrete
//     implementations live in lattice/, env/, cost/, heuristic/ and viz/;
//     callers may substitute their own.
//
// Capability interfaces:
//
//   - Precomputed:      optional Lattice fast path exposing pre-built
//     transition and cost tables.
//   - PatchFeatureUser: optional Heuristic capability requesting
//     explored-history image patches.
//
// Both are detected once, by type assertion at problem-binding time, never
// per call. A collaborator that does not implement a capability simply does
// not get the associated behavior; nothing fails.
//
// Thread safety:
//
//   - Types in this package are plain values and interfaces; the
//     single-threaded execution contract is defined by package planner.
//
// See also:
//
//   - planner.SearchPlanner: the expansion & reconstruction core consuming
//     these contracts.
//   - astar.Planner: a concrete search algorithm implementing Planner.
package core
