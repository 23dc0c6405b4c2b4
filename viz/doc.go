// Package viz provides observer sinks for lvlplan's structured search
// events. The expansion core emits events (search initialized, node
// expanded, path reconstructed) through the core.Observer interface as
// pure side effects; sinks here consume them without ever influencing
// search results.
//
// Sinks:
//
//   - Recorder — appends every event to in-memory slices. Useful as a test
//     double and for post-run analysis or custom rendering.
//   - SlogSink — summarizes events onto a log/slog logger for tracing
//     searches in live systems.
//
// Both are driven synchronously from the search goroutine (the core's
// single-threaded contract), so rendering backends that require one owning
// thread can be adapted safely on top of them.
package viz
