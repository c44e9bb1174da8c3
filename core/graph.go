package core

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// FromAdjacency builds a Graph from a square, symmetric adjacency matrix.
//
// The node set is {0..n-1} where n is the matrix dimension; an undirected
// edge {i,j}, i != j, exists wherever the entry (i,j) is nonzero. Entries are
// interpreted structurally: any nonzero finite value means "edge present",
// the magnitude is ignored. Diagonal entries are ignored (no self-loops).
//
// Validation is strict and fails fast, since a structurally invalid matrix
// invalidates every trial run against it identically:
//   - ErrNilMatrix for a nil matrix,
//   - ErrNonSquare when rows != cols,
//   - ErrNaNInf when an entry is NaN or ±Inf,
//   - ErrAsymmetry when the nonzero pattern of (i,j) and (j,i) disagree,
//   - ErrEndpointNotFound when WithEndpoints names an index outside 0..n-1.
//
// Complexity: O(n²) time, O(n + E) memory.
func FromAdjacency(m mat.Matrix, opts ...Option) (*Graph, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("FromAdjacency: %dx%d: %w", r, c, ErrNonSquare)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.endpointsSet {
		o.src, o.dst = 0, r-1
	}
	if o.src < 0 || o.src >= r || o.dst < 0 || o.dst >= r {
		return nil, fmt.Errorf("FromAdjacency: endpoints (%d,%d) with n=%d: %w",
			o.src, o.dst, r, ErrEndpointNotFound)
	}

	g := &Graph{
		nodes: make([]NodeID, r),
		adj:   make(map[NodeID]map[NodeID]struct{}, r),
		src:   o.src,
		dst:   o.dst,
	}
	for i := 0; i < r; i++ {
		g.nodes[i] = i
		g.adj[i] = make(map[NodeID]struct{})
	}

	// Consult the full matrix so asymmetry cannot slip through; edges are
	// recorded from the upper triangle only.
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromAdjacency: entry (%d,%d)=%v: %w", i, j, v, ErrNaNInf)
			}
			if i >= j {
				continue
			}
			present, mirror := v != 0, m.At(j, i) != 0
			if present != mirror {
				return nil, fmt.Errorf("FromAdjacency: entries (%d,%d) and (%d,%d) disagree: %w",
					i, j, j, i, ErrAsymmetry)
			}
			if present {
				g.adj[i][j] = struct{}{}
				g.adj[j][i] = struct{}{}
				g.edgeCount++
			}
		}
	}

	return g, nil
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Nodes returns the node IDs in ascending order. The returned slice is a
// copy; callers may retain or mutate it freely.
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.adj[id]
	return ok
}

// HasEdge reports whether the undirected edge {u,v} exists.
func (g *Graph) HasEdge(u, v NodeID) bool {
	nbrs, ok := g.adj[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]
	return ok
}

// NeighborIDs returns the neighbors of id in ascending order, or nil when id
// is not a node. Sorted output keeps traversal order deterministic.
func (g *Graph) NeighborIDs(id NodeID) []NodeID {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := make([]NodeID, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}

// Endpoints returns the designated (src, dst) pair. The pair is a property
// of the analysis, not of the node set: an induced subgraph reports the same
// endpoints even when failures removed one or both of them.
func (g *Graph) Endpoints() (src, dst NodeID) { return g.src, g.dst }
