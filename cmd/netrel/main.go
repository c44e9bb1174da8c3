// Command netrel estimates the connectivity reliability between the two
// designated endpoints of a network by Monte Carlo simulation of uniform
// node failure.
//
// The network is read from a YAML artifact of named adjacency matrices
// (see the matfile package); everything after loading is delegated to the
// core/failure/connect/montecarlo packages.
//
// Usage:
//
//	netrel graphs.yaml
//	netrel graphs.yaml --name B --rate 0.25 --samples 10000
//	netrel graphs.yaml --count-paths --seed 42 --workers 4
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netrel/core"
	"github.com/katalvlaran/netrel/matfile"
	"github.com/katalvlaran/netrel/montecarlo"
)

// cliConfig collects the flag values of one invocation.
type cliConfig struct {
	matName    string
	rate       float64
	samples    int
	countPaths bool
	seed       int64
	workers    int
	maxPaths   int
	srcNode    int
	dstNode    int
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed usage errors; run errors were logged in run.
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &cliConfig{}

	cmd := &cobra.Command{
		Use:   "netrel FILE",
		Short: "Compute the reliability of a network by MC simulation",
		Long: "netrel estimates the probability that the two designated endpoints of a\n" +
			"network stay connected when every node fails independently at a uniform\n" +
			"rate. FILE is a YAML artifact of named adjacency matrices.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0], cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.matName, "name", "n", "A", "name of the adjacency matrix in the artifact")
	flags.Float64VarP(&cfg.rate, "rate", "r", montecarlo.DefaultRate, "per-node failure rate in [0,1]")
	flags.IntVarP(&cfg.samples, "samples", "s", montecarlo.DefaultSamples, "number of MC samples")
	flags.BoolVarP(&cfg.countPaths, "count-paths", "c", false, "score trials by the surviving simple-path ratio instead of reachability")
	flags.Int64Var(&cfg.seed, "seed", 0, "random seed (0 = non-reproducible clock seeding)")
	flags.IntVar(&cfg.workers, "workers", montecarlo.DefaultWorkers, "goroutines running trials")
	flags.IntVar(&cfg.maxPaths, "max-paths", 0, "cap per-trial simple-path enumeration (0 = unlimited)")
	flags.IntVar(&cfg.srcNode, "src", -1, "source endpoint (default: first node)")
	flags.IntVar(&cfg.dstNode, "dst", -1, "destination endpoint (default: last node)")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

// run loads the graph, estimates, and reports. Any error is logged here and
// propagated so main exits non-zero with no partial estimate printed.
func run(path string, cfg *cliConfig) error {
	logger := newLogger(cfg.verbose)

	m, err := matfile.Load(path, cfg.matName)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Str("name", cfg.matName).
			Msg("loading adjacency matrix")
		return err
	}
	r, c := m.Dims()
	logger.Debug().Int("rows", r).Int("cols", c).Msg("matrix loaded")

	var copts []core.Option
	if cfg.srcNode >= 0 || cfg.dstNode >= 0 {
		src, dst := cfg.srcNode, cfg.dstNode
		if src < 0 {
			src = 0
		}
		if dst < 0 {
			dst = r - 1
		}
		copts = append(copts, core.WithEndpoints(src, dst))
	}
	g, err := core.FromAdjacency(m, copts...)
	if err != nil {
		logger.Error().Err(err).Msg("building graph")
		return err
	}
	src, dst := g.Endpoints()
	logger.Debug().Int("nodes", g.Order()).Int("edges", g.EdgeCount()).
		Int("src", src).Int("dst", dst).Msg("graph built")

	mode := montecarlo.Reachability
	if cfg.countPaths {
		mode = montecarlo.PathCount
	}
	res, err := montecarlo.Estimate(g,
		montecarlo.WithRate(cfg.rate),
		montecarlo.WithSamples(cfg.samples),
		montecarlo.WithMode(mode),
		montecarlo.WithSeed(cfg.seed),
		montecarlo.WithWorkers(cfg.workers),
		montecarlo.WithMaxPaths(cfg.maxPaths),
	)
	if err != nil {
		logger.Error().Err(err).Stringer("mode", mode).Msg("estimation failed")
		return err
	}

	if mode == montecarlo.PathCount {
		logger.Debug().Int("baseline_paths", res.Baseline).Msg("baseline computed")
	}
	fmt.Printf("After %d MC simulations, the network with %d nodes\n", res.Samples, res.Nodes)
	fmt.Printf("has been computed to have reliability %f (std. error %f)\n", res.Estimate, res.StdErr)

	return nil
}

// newLogger builds a console zerolog logger; --verbose lowers the level.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}
