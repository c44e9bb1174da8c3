package connect

import (
	"github.com/katalvlaran/netrel/core"
)

// pathWalker encapsulates mutable state of a simple-path enumeration.
type pathWalker struct {
	graph *core.Graph
	opts  Options
	dst   core.NodeID
	// onPath marks the nodes of the current partial path, enforcing the
	// simple-path constraint (no node visited twice).
	onPath map[core.NodeID]bool
	count  int
}

// CountSimplePaths counts the simple (non-repeating-node) paths between src
// and dst in g by depth-first backtracking enumeration.
//
// Like Connected, a graph missing one or both endpoints yields (0, nil).
// src == dst (and present) counts as one trivial path.
//
// The enumeration is exhaustive and exponential in the worst case (dense
// graphs carry factorially many simple paths), which in practice limits
// path-count analysis to small graphs. WithMaxPaths bounds the work for
// callers that only need "at least n"; WithContext aborts a long-running
// enumeration with the context's error.
//
// Returns ErrGraphNil for a nil graph and ErrOptionViolation for a negative
// cap. Complexity: O(paths · V) time worst case, O(V) memory.
func CountSimplePaths(g *core.Graph, src, dst core.NodeID, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, err
	}
	if !g.HasNode(src) || !g.HasNode(dst) {
		return 0, nil
	}
	if src == dst {
		return 1, nil
	}

	w := &pathWalker{
		graph:  g,
		opts:   o,
		dst:    dst,
		onPath: make(map[core.NodeID]bool, g.Order()),
	}
	w.onPath[src] = true
	if err = w.extend(src); err != nil && err != errCapReached {
		return 0, err
	}

	return w.count, nil
}

// extend explores every simple continuation of the current path from curr,
// accumulating into w.count. Returns the context error on cancellation and
// capReached as a private stop signal once MaxPaths is hit.
func (w *pathWalker) extend(curr core.NodeID) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	for _, nbr := range w.graph.NeighborIDs(curr) {
		if nbr == w.dst {
			w.count++
			if w.opts.MaxPaths > 0 && w.count >= w.opts.MaxPaths {
				return errCapReached
			}
			continue
		}
		if w.onPath[nbr] {
			continue
		}
		w.onPath[nbr] = true
		err := w.extend(nbr)
		w.onPath[nbr] = false
		if err != nil {
			return err
		}
	}

	return nil
}

// errCapReached is a private control-flow sentinel; CountSimplePaths turns
// it back into a nil error with the capped count.
var errCapReached = capError{}

type capError struct{}

func (capError) Error() string { return "connect: path cap reached" }
