// Package connect is the connectivity oracle of a reliability trial: given
// a (sub)graph and the designated endpoint pair, it decides path existence
// or counts the simple paths between the endpoints.
//
// What
//
//   - Connected(g, src, dst, opts...): true iff a path exists between src
//     and dst; breadth-first traversal, O(V+E).
//   - CountSimplePaths(g, src, dst, opts...): the number of simple
//     (non-repeating-node) paths between src and dst; depth-first
//     backtracking enumeration.
//
// Why
//
//   - The Monte Carlo estimator evaluates one of these on every trial's
//     induced subgraph. Both treat a missing endpoint as ordinary
//     disconnection — (false, nil) / (0, nil) — because node failure
//     removing an endpoint is a legitimate trial outcome, not an error.
//
// Complexity
//
//   - Connected:        O(V + E) time, O(V) memory.
//   - CountSimplePaths: exponential in the worst case. A dense graph has
//     factorially many simple paths, so exhaustive enumeration governs the
//     practical graph-size limit of path-count analysis. No pruning or
//     memoization is applied beyond the simple-path constraint itself; use
//     WithMaxPaths or WithContext to bound the work explicitly.
//
// Options
//
//   - WithContext(ctx):  abort a long-running enumeration via ctx.
//   - WithMaxPaths(n):   stop counting at n paths (0 = unlimited default).
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrOptionViolation   if an invalid Option is supplied (negative cap).
//   - The context's error  if cancellation fires mid-enumeration.
package connect
