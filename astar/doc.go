// Package astar implements a (weighted) A* planner on top of lvlplan's
// expansion core.
//
// Overview:
//
//   - Planner embeds planner.SearchPlanner: problem binding, expansion,
//     heuristic adaption and path reconstruction all come from the core;
//     this package only contributes node selection and ordering.
//   - Plan expands nodes in increasing f = g + w·h order, where g is the
//     accumulated cost, h the core's heuristic adapter and w the problem's
//     heuristic weight. Applying w here (not in the core) is deliberate:
//     weighting policy is algorithm-specific.
//   - With no heuristic bound, h is identically 0 and Plan degrades to
//     uniform-cost search (Dijkstra); with w=1 and an admissible heuristic
//     the result is optimal; with w>1 the search trades optimality for
//     speed, bounded by factor w.
//
// Implementation notes:
//
//   - The open list is a min-heap under the "lazy decrease-key" strategy:
//     improvements push duplicate entries, and stale entries are skipped on
//     pop via the visited set.
//   - The search tree (predecessor map, accumulated costs, visited set)
//     persists on the Planner after Plan returns, so callers can inspect
//     it. ClearPlanner discards it while keeping the explored-history grid
//     (the core's coverage record survives re-planning); ClearAll resets
//     the grid too.
//
// Errors (sentinel):
//
//   - ErrNotInitialized — Plan called before Initialize bound a problem.
//   - ErrNoPath         — the open list drained without reaching the goal.
//
// Complexity: O((V + E) log V) time, O(V + E) space, as for Dijkstra with
// lazy decrease-key.
package astar
