// Package failure draws independent Bernoulli failure trials for every node
// of a graph and reports the surviving subset.
package failure

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/netrel/core"
)

// Survivors draws one uniform value in [0,1) per node of g; a node survives
// iff its draw is >= rate, so rate is the failure probability and 1-rate the
// survival probability. Draws are independent across nodes and across calls.
//
// Every node is subject to the same trial, including the graph's designated
// endpoints. A draw that removes an endpoint is a legitimate outcome (the
// component the endpoint represents failed), so the returned set may lack
// one or both endpoints, and may be empty when rate is high.
//
// Returns ErrGraphNil for a nil graph and ErrInvalidRate when rate is
// outside [0,1]. Complexity: O(V) time, O(survivors) memory.
func Survivors(g *core.Graph, rate float64, opts ...Option) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if rate < 0 || rate > 1 {
		return nil, ErrInvalidRate
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	nodes := g.Nodes()
	out := make([]core.NodeID, 0, len(nodes))
	for _, id := range nodes {
		if rng.Float64() < rate {
			continue // node failed this trial
		}
		out = append(out, id)
	}

	return out, nil
}
