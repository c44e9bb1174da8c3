// Package builder constructs adjacency matrices of canonical topologies for
// reliability analysis: deterministic fixtures for tests and examples, and
// canned inputs for exploratory runs.
//
// What
//
//   - Path(n):                   the simple path P_n.
//   - Cycle(n):                  the cycle C_n.
//   - Complete(n):               the complete graph K_n.
//   - TwoRoute():                the 4-node two-parallel-routes fixture.
//   - RandomSparse(n, p, seed):  Erdős–Rényi G(n,p), reproducible per seed.
//
// All constructors emit a symmetric 0/1 *mat.Dense with zero diagonal,
// ready for core.FromAdjacency. They validate parameters early and return
// sentinel errors; they never panic.
//
// Determinism: every constructor is a pure function of its arguments —
// RandomSparse included, via its explicit seed.
//
// Errors
//
//   - ErrTooFewVertices      n below the topology's minimum.
//   - ErrInvalidProbability  p outside [0,1].
package builder
