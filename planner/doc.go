// Package planner implements the algorithm-agnostic expansion and
// reconstruction core of lvlplan: the single primitive that fuses a discrete
// transition model (lattice), a continuous collision oracle (environment), a
// cost model and a heuristic, so that any concrete search strategy — A*,
// weighted A*, Dijkstra, ARA*, learned-heuristic search — can drive it
// without re-deriving validation or bookkeeping logic.
//
// Overview:
//
//   - A Problem bundles the collaborators of one planning instance
//     (environment, lattice, cost model, heuristic, start, goal, heuristic
//     weight, optional observer).
//   - SearchPlanner binds a Problem and exposes the four core operations:
//     Successors/Predecessors (collision-filtered expansion with attached
//     costs), ReconstructPath (predecessor-chain walk to an ordered edge
//     path), and Heuristic (node-level heuristic adapter).
//   - When the bound heuristic declares the PatchFeatureUser capability,
//     the planner additionally maintains a dense explored-history grid over
//     the lattice bounds and extracts fixed-size 3-channel patch features
//     for learned models.
//
// Expansion contract:
//
//   - Outputs preserve the lattice's raw transition order; invalid entries
//     are filtered out, never reordered.
//   - len(Neighbors) == len(Costs) == len(Valid) on every expansion, and
//     every Invalid entry corresponds to an edge excluded from Valid.
//   - Successor expansion marks destination cells explored/obstacle in the
//     history grid; predecessor expansion does not mark at all. The
//     asymmetry is deliberate: when traversing backward the directionality
//     of "this node is bad" is ambiguous, and backward expansion is used
//     for heuristic precomputation rather than coverage tracking.
//   - Precomputed transition/cost tables (core.Precomputed capability) are
//     bound once at Initialize and used as fast paths; absence falls back
//     to on-demand lattice queries, with identical results.
//
// Error handling (sentinel):
//
//   - ErrProblemNotInitialized — binding a Problem that was not built by
//     NewProblem (caller contract violation).
//   - ErrNotImplemented       — Plan or ClearPlanner invoked on the base
//     core instead of a concrete planner.
//   - ErrGoalNotReached       — reconstructing a path to a goal absent from
//     the predecessor map.
//   - ErrPatchDisabled        — requesting a patch feature when the bound
//     heuristic never asked for one.
//
// All errors are fatal to the calling operation and propagate unmodified;
// the core performs no retries and no silent recovery.
//
// Concurrency:
//
//   - Single-threaded, synchronous execution: every operation runs to
//     completion on the calling goroutine, and observer side effects are
//     emitted inline. Parallel edge validation across one node's candidate
//     transitions would need a thread-confined grid with post-barrier
//     merging (or a partitioned grid) and is left as a future extension.
//
// See also:
//
//   - core: the collaborator contracts this package consumes.
//   - astar: a concrete planner built on SearchPlanner.
package planner
