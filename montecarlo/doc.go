// Package montecarlo drives the reliability estimation: N independent
// failure trials against an immutable source graph, aggregated into a
// single scalar statistic.
//
// What
//
//   - Estimate(g, opts...): sample N node-failure scenarios at a uniform
//     rate, score each induced subgraph against the graph's designated
//     endpoint pair, and return the aggregate with its standard error.
//   - Reachability mode: estimate = (trials still connected) / N — the
//     empirical probability that the endpoints survive connected.
//   - PathCount mode: estimate = mean over trials of (surviving simple-path
//     count ÷ unperturbed baseline count) — a path-redundancy statistic,
//     not a probability, and not bounded by 1 in general.
//
// Semantics of the statistic
//
//   - The endpoints fail at the same rate as every other node. A trial that
//     removes an endpoint scores as disconnected / zero paths. The computed
//     "reliability" therefore folds in the probability that an endpoint
//     itself is the failing component; this is the documented meaning of
//     the statistic, not a bug to fix.
//   - rate=0 degenerates every trial to the full graph, so the estimate is
//     exactly 1.0 or 0.0 (Reachability) or exactly 1.0 (PathCount) for any
//     N ≥ 1; rate=1 empties every trial, giving exactly 0.0.
//   - No retries, no partial results: a structurally degenerate input
//     (PathCount with zero baseline) aborts before any trial runs.
//
// Concurrency
//
//	Trials are embarrassingly parallel: they share only the immutable
//	source graph and each owns its subgraph and its random stream.
//	WithWorkers(k) partitions the trial range into k contiguous blocks,
//	seeds stream w with seed+w, and lets workers write disjoint slots of
//	the outcome vector — the only synchronization is the final reduction.
//	The default single worker runs trials strictly sequentially.
//	Reproducibility requires both a fixed WithSeed and a fixed worker
//	count.
//
// Complexity
//
//	Reachability: O(N · (V + E)). PathCount: O(N · paths · V) worst case —
//	exponential in dense graphs; see the connect package for the cost
//	discussion and the WithMaxPaths escape hatch.
//
// Errors
//
//   - ErrGraphNil          if g is nil.
//   - ErrOptionViolation   for out-of-range rate/samples/workers/cap or an
//     unknown mode.
//   - ErrDegenerateGraph   in PathCount mode when the baseline is zero.
//   - The context's error  if cancellation fires between or inside trials.
package montecarlo
