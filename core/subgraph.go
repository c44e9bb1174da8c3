package core

// Induced returns the subgraph induced by survivors: exactly those nodes,
// plus every edge of g whose both endpoints are in the set. Unknown IDs in
// survivors are ignored; duplicates are harmless.
//
// The result is a fresh Graph owned by the caller; g is never mutated, so
// any number of trials may derive subgraphs from the same source graph
// concurrently. The endpoint pair is inherited from g whether or not it
// survived; connectivity queries on a subgraph missing an endpoint simply
// report it unreachable.
//
// Complexity: O(|survivors| · avg degree) time.
func (g *Graph) Induced(survivors []NodeID) *Graph {
	keep := make(map[NodeID]struct{}, len(survivors))
	for _, id := range survivors {
		if g.HasNode(id) {
			keep[id] = struct{}{}
		}
	}

	sub := &Graph{
		nodes: make([]NodeID, 0, len(keep)),
		adj:   make(map[NodeID]map[NodeID]struct{}, len(keep)),
		src:   g.src,
		dst:   g.dst,
	}
	// Walk g.nodes rather than the keep set to preserve ascending node order.
	for _, id := range g.nodes {
		if _, ok := keep[id]; !ok {
			continue
		}
		sub.nodes = append(sub.nodes, id)
		sub.adj[id] = make(map[NodeID]struct{})
	}
	for _, id := range sub.nodes {
		for nbr := range g.adj[id] {
			if _, ok := keep[nbr]; !ok {
				continue
			}
			sub.adj[id][nbr] = struct{}{}
			if id < nbr {
				sub.edgeCount++
			}
		}
	}

	return sub
}
