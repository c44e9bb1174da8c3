// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// impl_random_sparse.go - RandomSparse(n, p, seed) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); p in [0,1] (else ErrInvalidProbability).
//   - Erdős–Rényi G(n,p): each pair {i,j}, i<j, becomes an edge with
//     probability p, independently.
//   - Determinism: same (n, p, seed) ⇒ identical matrix; pair order is the
//     fixed upper-triangle sweep.

package builder

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const (
	methodRandomSparse = "RandomSparse"
	minSparseNodes     = 2
)

// RandomSparse returns the adjacency matrix of an Erdős–Rényi random graph
// G(n, p) drawn from a stream seeded with seed.
func RandomSparse(n int, p float64, seed int64) (*mat.Dense, error) {
	if n < minSparseNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrInvalidProbability)
	}

	rng := rand.New(rand.NewSource(seed))
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				setEdge(m, i, j)
			}
		}
	}

	return m, nil
}
