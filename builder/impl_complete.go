// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// impl_complete.go - Complete(n) and TwoRoute() constructors.
//
// Contract:
//   - Complete: n ≥ 2 (else ErrTooFewVertices); every pair {i,j}, i≠j, is an edge.
//   - TwoRoute: the fixed 4-node redundancy fixture 0-1-3 / 0-2-3 — two
//     node-disjoint routes between endpoints 0 and 3, the smallest topology
//     whose reliability survives a single interior failure.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
	twoRouteSize     = 4
)

// Complete returns the adjacency matrix of the complete graph K_n.
func Complete(n int) (*mat.Dense, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			setEdge(m, i, j)
		}
	}

	return m, nil
}

// TwoRoute returns the adjacency matrix of the 4-node graph with the two
// parallel routes 0-1-3 and 0-2-3.
func TwoRoute() *mat.Dense {
	m := mat.NewDense(twoRouteSize, twoRouteSize, nil)
	setEdge(m, 0, 1)
	setEdge(m, 0, 2)
	setEdge(m, 1, 3)
	setEdge(m, 2, 3)

	return m
}
