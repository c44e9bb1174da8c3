// Package netrel estimates the connectivity reliability between two
// designated nodes of an undirected network when every node fails
// independently at a uniform rate, by Monte Carlo simulation.
//
// What is netrel?
//
//	A small, deterministic-where-it-matters toolkit:
//		• core/       — immutable Graph built from an adjacency matrix,
//		  induced-subgraph derivation per failure trial
//		• failure/    — per-node Bernoulli survivor sampling with an
//		  injectable random source
//		• connect/    — the connectivity oracle: BFS reachability or
//		  simple-path counting between the designated endpoints
//		• montecarlo/ — the trial driver: N independent samples aggregated
//		  into an estimate with its standard error, sequential or parallel
//		• builder/    — canonical topologies (path, cycle, complete,
//		  two-route, random sparse) as ready-made adjacency matrices
//		• matfile/    — YAML artifacts of named adjacency matrices
//		• cmd/netrel  — the CLI driver tying it all together
//
// Quick ASCII example — the two-route network:
//
//	    1
//	   / \
//	  0   3
//	   \ /
//	    2
//
// Endpoints 0 and 3 stay connected as long as node 1 or node 2 survives,
// so its reliability under node failure is strictly higher than the plain
// path's.
//
//	m := builder.TwoRoute()
//	g, _ := core.FromAdjacency(m)
//	res, _ := montecarlo.Estimate(g,
//	    montecarlo.WithRate(0.1),
//	    montecarlo.WithSamples(10000),
//	    montecarlo.WithSeed(42))
//	fmt.Printf("reliability ≈ %.3f\n", res.Estimate)
//
// The designated endpoints themselves fail like any other node; a trial
// that removes one counts as disconnected. That choice is part of the
// statistic's definition — see the montecarlo package documentation.
package netrel
