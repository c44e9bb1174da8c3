// Package montecarlo estimates the probabilistic connectivity of two
// designated graph nodes under independent uniform node failure, by
// repeated sampling of failure scenarios.
package montecarlo

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/netrel/connect"
	"github.com/katalvlaran/netrel/core"
	"github.com/katalvlaran/netrel/failure"
)

// Estimate runs Samples independent failure trials against g and aggregates
// their outcomes into a reliability statistic.
//
// Each trial samples a survivor set at the configured rate, derives the
// induced subgraph, and scores it against the graph's designated endpoint
// pair: connected-or-not in Reachability mode, surviving-path ratio in
// PathCount mode. Trials share only the immutable source graph; each draws
// from its own random stream and owns its own subgraph, so with
// WithWorkers(k > 1) trials run concurrently and outcomes merge post-hoc
// with no coordination beyond the final reduction.
//
// In PathCount mode the unperturbed baseline count is computed once before
// any trial; a zero baseline fails fast with ErrDegenerateGraph since the
// per-trial ratio would be undefined.
//
// Returns ErrGraphNil, ErrOptionViolation, ErrDegenerateGraph, or the
// context's error on cancellation. A trial subgraph missing an endpoint is
// not an error: it scores 0.
func Estimate(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	src, dst := g.Endpoints()

	baseline := 0
	if o.Mode == PathCount {
		var err error
		baseline, err = connect.CountSimplePaths(g, src, dst,
			connect.WithContext(o.Ctx), connect.WithMaxPaths(o.MaxPaths))
		if err != nil {
			return nil, fmt.Errorf("montecarlo: baseline path count: %w", err)
		}
		if baseline == 0 {
			return nil, ErrDegenerateGraph
		}
	}

	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	outcomes := make([]float64, o.Samples)
	run := func(rng *rand.Rand, first, last int) error {
		for i := first; i < last; i++ {
			select {
			case <-o.Ctx.Done():
				return o.Ctx.Err()
			default:
			}
			score, err := trial(g, src, dst, baseline, &o, rng)
			if err != nil {
				return err
			}
			outcomes[i] = score
		}
		return nil
	}

	if o.Workers == 1 {
		if err := run(rand.New(rand.NewSource(seed)), 0, o.Samples); err != nil {
			return nil, err
		}
	} else if err := runParallel(run, seed, o.Samples, o.Workers); err != nil {
		return nil, err
	}

	res := &Result{
		Estimate: stat.Mean(outcomes, nil),
		Samples:  o.Samples,
		Nodes:    g.Order(),
		Mode:     o.Mode,
		Baseline: baseline,
	}
	if o.Samples > 1 {
		res.StdErr = stat.StdDev(outcomes, nil) / math.Sqrt(float64(o.Samples))
	}

	return res, nil
}

// trial performs one failure draw and scores the induced subgraph.
func trial(g *core.Graph, src, dst core.NodeID, baseline int, o *Options, rng *rand.Rand) (float64, error) {
	survivors, err := failure.Survivors(g, o.Rate, failure.WithRand(rng))
	if err != nil {
		return 0, fmt.Errorf("montecarlo: sampling survivors: %w", err)
	}
	sub := g.Induced(survivors)

	if o.Mode == PathCount {
		n, cerr := connect.CountSimplePaths(sub, src, dst,
			connect.WithContext(o.Ctx), connect.WithMaxPaths(o.MaxPaths))
		if cerr != nil {
			return 0, fmt.Errorf("montecarlo: counting paths: %w", cerr)
		}
		return float64(n) / float64(baseline), nil
	}

	ok, cerr := connect.Connected(sub, src, dst)
	if cerr != nil {
		return 0, fmt.Errorf("montecarlo: reachability: %w", cerr)
	}
	if ok {
		return 1, nil
	}

	return 0, nil
}

// runParallel partitions the trial index range into contiguous blocks, one
// per worker, each driven by an independently seeded stream derived from
// the base seed. Workers write disjoint outcome slots, so only the first
// error needs synchronization.
func runParallel(run func(*rand.Rand, int, int) error, seed int64, samples, workers int) error {
	if workers > samples {
		workers = samples
	}
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	block := (samples + workers - 1) / workers
	for w := 0; w < workers; w++ {
		first := w * block
		last := first + block
		if last > samples {
			last = samples
		}
		wg.Add(1)
		go func(w, first, last int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(w)))
			if err := run(rng, first, last); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(w, first, last)
	}
	wg.Wait()

	return firstErr
}
