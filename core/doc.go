// Package core provides the graph model underlying netrel's reliability
// analysis: an undirected, simple, unweighted Graph built from an adjacency
// matrix, plus induced-subgraph derivation for per-trial failure scenarios.
//
// What
//
//   - FromAdjacency(m, opts...): build a Graph from a square symmetric
//     gonum mat.Matrix; nodes are 0..n-1, an edge exists per nonzero entry.
//   - (*Graph).Induced(survivors): the subgraph on a surviving node subset,
//     keeping exactly the edges whose both endpoints survived.
//   - Read accessors: Order, EdgeCount, Nodes, HasNode, HasEdge,
//     NeighborIDs, Endpoints.
//
// Why
//
//   - Reliability estimation derives thousands of short-lived subgraphs from
//     one source graph. Making Graph immutable after construction lets every
//     trial share it without locks and guarantees no trial can corrupt
//     another's view.
//
// Endpoints
//
//	Each Graph carries a designated (src, dst) pair — the two nodes whose
//	connectivity the analysis measures. The pair defaults to the first and
//	last node (0, n-1) and may be overridden with WithEndpoints. It is fixed
//	once at construction and inherited verbatim by induced subgraphs, even
//	those that no longer contain one or both endpoints.
//
// Complexity (n = matrix dimension, E = |edges|)
//
//   - FromAdjacency: O(n²) time (full matrix consulted for symmetry),
//     O(n + E) memory.
//   - Induced:       O(k · avg degree) time for k survivors.
//
// Errors
//
//   - ErrNilMatrix          nil matrix argument.
//   - ErrNonSquare          rows != cols.
//   - ErrAsymmetry          asymmetric nonzero pattern.
//   - ErrNaNInf             non-finite entry.
//   - ErrEndpointNotFound   WithEndpoints index outside 0..n-1.
package core
