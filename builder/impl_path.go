// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2 (else ErrTooFewVertices); edges (i-1,i) for i=1..n-1.
//   - Cycle: n ≥ 3 (else ErrTooFewVertices); path edges plus (n-1,0).
//   - Output is a symmetric 0/1 matrix with zero diagonal.
//
// Determinism:
//   - Pure function of n; no randomness involved.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	methodPath   = "Path"
	methodCycle  = "Cycle"
	minPathNodes = 2
	minCycleSize = 3
)

// Path returns the adjacency matrix of the simple path P_n
// (0-1-...-(n-1)).
func Path(n int) (*mat.Dense, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	m := mat.NewDense(n, n, nil)
	for i := 1; i < n; i++ {
		setEdge(m, i-1, i)
	}

	return m, nil
}

// Cycle returns the adjacency matrix of the cycle C_n.
func Cycle(n int) (*mat.Dense, error) {
	if n < minCycleSize {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleSize, ErrTooFewVertices)
	}
	m, err := Path(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}
	setEdge(m, n-1, 0)

	return m, nil
}

// setEdge writes the symmetric pair of unit entries for edge {i,j}.
func setEdge(m *mat.Dense, i, j int) {
	m.Set(i, j, 1)
	m.Set(j, i, 1)
}
