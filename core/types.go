// Package core defines the central Graph and NodeID types for network
// reliability analysis: an undirected, simple, unweighted graph built once
// from an adjacency matrix and immutable thereafter.
//
// This file declares NodeID, Graph, Option, and the sentinel errors shared
// by the constructors in graph.go and subgraph.go.
package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrNilMatrix indicates a nil adjacency matrix was passed to FromAdjacency.
	ErrNilMatrix = errors.New("core: adjacency matrix is nil")

	// ErrNonSquare signals that the adjacency matrix is not square.
	ErrNonSquare = errors.New("core: adjacency matrix is not square")

	// ErrAsymmetry signals an asymmetric nonzero pattern in a matrix that is
	// required to describe an undirected graph.
	ErrAsymmetry = errors.New("core: adjacency matrix is not symmetric")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("core: NaN or Inf entry in adjacency matrix")

	// ErrEndpointNotFound indicates a designated endpoint outside {0..n-1}.
	ErrEndpointNotFound = errors.New("core: endpoint is not a node of the graph")
)

// NodeID identifies a node of the graph. Nodes are dense indices 0..n-1
// assigned in matrix order at construction time.
type NodeID = int

// Graph is an undirected simple graph plus a designated endpoint pair.
//
// A Graph is immutable after construction: FromAdjacency builds it from a
// matrix, Induced derives fresh per-trial subgraphs, and nothing ever writes
// to an existing instance. Immutability is what makes concurrent trials safe
// without locks.
type Graph struct {
	// nodes holds the node IDs in ascending order.
	nodes []NodeID

	// adj maps each node to its neighbor set.
	adj map[NodeID]map[NodeID]struct{}

	// edgeCount is the number of undirected edges.
	edgeCount int

	// src and dst are the designated endpoints, fixed at construction of the
	// source graph and inherited unchanged by every induced subgraph, even
	// when a subgraph no longer contains them.
	src, dst NodeID
}

// Option configures graph construction.
type Option func(*options)

// options holds resolved construction parameters.
type options struct {
	// endpoints, when set, overrides the default (first, last) pair.
	src, dst     NodeID
	endpointsSet bool
}

// WithEndpoints designates src and dst as the endpoint pair whose
// connectivity the reliability analysis targets. Both must be valid node
// indices of the matrix being built, or FromAdjacency returns
// ErrEndpointNotFound. Without this option the pair defaults to the first
// and last node in construction order (0 and n-1).
func WithEndpoints(src, dst NodeID) Option {
	return func(o *options) {
		o.src, o.dst = src, dst
		o.endpointsSet = true
	}
}
