// Package failure implements the node-failure sampler of a reliability
// trial: one independent Bernoulli draw per node, at a uniform rate.
//
// What
//
//   - Survivors(g, rate, opts...): draw a uniform value in [0,1) for every
//     node of g and return the IDs of those whose draw was >= rate.
//
// Why
//
//   - Each Monte Carlo trial needs a fresh, independent failure pattern.
//     The sampler is the only stochastic element of a trial; everything
//     downstream (induced subgraph, connectivity) is deterministic in its
//     output.
//
// Randomness
//
//	No package-level generator exists. Inject a *rand.Rand via WithRand for
//	reproducible runs or for independent per-worker streams under parallel
//	estimation; without one, each call seeds a private source from the
//	clock, so repeated runs are statistically independent but not
//	reproducible.
//
// Endpoints are not special-cased: the designated endpoint pair fails at
// the same rate as every other node. A trial that removes an endpoint
// scores as disconnected downstream. This is the documented meaning of the
// statistic — uniform failure on ALL nodes — and is intentional.
//
// Complexity: O(V) time per call.
//
// Errors
//
//   - ErrGraphNil      if g is nil.
//   - ErrInvalidRate   if rate is outside [0,1].
package failure
