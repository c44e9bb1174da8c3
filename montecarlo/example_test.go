package montecarlo_test

import (
	"fmt"

	"github.com/katalvlaran/netrel/builder"
	"github.com/katalvlaran/netrel/core"
	"github.com/katalvlaran/netrel/montecarlo"
)

// ExampleEstimate demonstrates a deterministic rate-0 run: with no failures
// every trial sees the full graph, so the estimate is exact.
func ExampleEstimate() {
	m, _ := builder.Path(4)
	g, _ := core.FromAdjacency(m)

	res, _ := montecarlo.Estimate(g,
		montecarlo.WithRate(0),
		montecarlo.WithSamples(100))

	fmt.Printf("nodes=%d reliability=%.1f\n", res.Nodes, res.Estimate)
	// Output:
	// nodes=4 reliability=1.0
}

// ExampleEstimate_pathCount scores trials by the surviving simple-path
// ratio against the two-route fixture's baseline of 2 paths.
func ExampleEstimate_pathCount() {
	g, _ := core.FromAdjacency(builder.TwoRoute())

	res, _ := montecarlo.Estimate(g,
		montecarlo.WithMode(montecarlo.PathCount),
		montecarlo.WithRate(0),
		montecarlo.WithSamples(10))

	fmt.Printf("baseline=%d ratio=%.1f\n", res.Baseline, res.Estimate)
	// Output:
	// baseline=2 ratio=1.0
}
