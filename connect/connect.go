// Package connect decides whether two designated nodes of a graph remain
// connected, either as a boolean reachability test or by counting the
// simple paths between them.
package connect

import (
	"github.com/katalvlaran/netrel/core"
)

// Connected reports whether a path exists between src and dst in g, using
// breadth-first traversal.
//
// A graph missing one or both endpoints, the normal outcome of a failure
// trial that removed them, yields (false, nil), never an error: absence of
// an endpoint is a disconnection, not a fault. src == dst (and present)
// trivially yields true.
//
// Returns ErrGraphNil for a nil graph. Complexity: O(V+E) time, O(V) memory.
func Connected(g *core.Graph, src, dst core.NodeID, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if _, err := gatherOptions(opts); err != nil {
		return false, err
	}
	if !g.HasNode(src) || !g.HasNode(dst) {
		return false, nil
	}
	if src == dst {
		return true, nil
	}

	visited := make(map[core.NodeID]bool, g.Order())
	visited[src] = true
	queue := []core.NodeID{src}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, nbr := range g.NeighborIDs(curr) {
			if visited[nbr] {
				continue
			}
			if nbr == dst {
				return true, nil
			}
			visited[nbr] = true
			queue = append(queue, nbr)
		}
	}

	return false, nil
}
