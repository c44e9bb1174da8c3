// Package montecarlo provides tunable options, result types, and error
// definitions for Monte Carlo reliability estimation.
package montecarlo

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for estimation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("montecarlo: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("montecarlo: invalid option supplied")

	// ErrDegenerateGraph is returned in PathCount mode when the endpoints
	// share no simple path even before any failure: the baseline is zero
	// and the per-trial ratio is undefined.
	ErrDegenerateGraph = errors.New("montecarlo: no simple path between endpoints in the source graph")
)

// Mode selects how a trial's subgraph is scored.
type Mode int

const (
	// Reachability scores a trial 1 when the endpoints remain connected,
	// else 0; the estimate is the empirical connection probability.
	Reachability Mode = iota

	// PathCount scores a trial as the ratio of its surviving simple-path
	// count to the unperturbed baseline count; the estimate is the mean
	// ratio, which is not a probability and not bounded by 1 in general.
	PathCount
)

// String returns the mode name for reports and logs.
func (m Mode) String() string {
	switch m {
	case Reachability:
		return "reachability"
	case PathCount:
		return "path-count"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Default configuration of an estimation run.
const (
	// DefaultRate is the per-node failure probability.
	DefaultRate = 0.1

	// DefaultSamples is the number of independent trials.
	DefaultSamples = 2000

	// DefaultWorkers runs trials sequentially.
	DefaultWorkers = 1
)

// Option configures estimation via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when Estimate
// is invoked.
type Option func(*Options)

// Options holds the parameters of one estimation run.
type Options struct {
	// Ctx allows cancellation between trials and inside path enumeration.
	Ctx context.Context

	// Rate is the uniform per-node failure probability in [0,1].
	Rate float64

	// Samples is the number of independent trials (>= 1).
	Samples int

	// Mode selects Reachability or PathCount scoring.
	Mode Mode

	// Seed seeds the random streams. 0 (the default) seeds from the clock,
	// so repeated runs are statistically independent but not reproducible;
	// any other value makes the run deterministic for a fixed worker count.
	Seed int64

	// Workers is the number of goroutines running trials. 1 runs them
	// strictly sequentially; k > 1 partitions the trials
	// across k independently seeded streams and merges outcomes post-hoc.
	Workers int

	// MaxPaths caps each trial's simple-path enumeration in PathCount mode
	// (0 = unlimited). Forwarded to the connectivity oracle.
	MaxPaths int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, rate 0.1,
// 2000 samples, Reachability mode, clock seeding, one worker, no path cap.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Rate:     DefaultRate,
		Samples:  DefaultSamples,
		Mode:     Reachability,
		Seed:     0,
		Workers:  DefaultWorkers,
		MaxPaths: 0,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRate sets the uniform per-node failure probability.
// Values outside [0,1] → ErrOptionViolation.
func WithRate(rate float64) Option {
	return func(o *Options) {
		if rate < 0 || rate > 1 {
			o.err = fmt.Errorf("%w: rate %v outside [0,1]", ErrOptionViolation, rate)
			return
		}
		o.Rate = rate
	}
}

// WithSamples sets the number of independent trials.
// Values below 1 → ErrOptionViolation.
func WithSamples(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: samples must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Samples = n
	}
}

// WithMode selects the scoring mode.
// Unknown modes → ErrOptionViolation.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Reachability && m != PathCount {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithSeed fixes the base seed of the random streams for reproducible runs.
// 0 restores the default clock seeding.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers sets the number of goroutines running trials.
// Values below 1 → ErrOptionViolation.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithMaxPaths caps per-trial simple-path enumeration in PathCount mode
// (0 = unlimited). Negative values → ErrOptionViolation.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// Result holds the outcome of one estimation run.
type Result struct {
	// Estimate is the aggregated statistic: the empirical connection
	// probability in Reachability mode, the mean surviving-path ratio in
	// PathCount mode.
	Estimate float64

	// StdErr is the standard error of Estimate (sample standard deviation
	// of the trial outcomes divided by √Samples); 0 when Samples == 1.
	StdErr float64

	// Samples is the number of trials actually aggregated.
	Samples int

	// Nodes is the order of the source graph.
	Nodes int

	// Mode records the scoring mode of the run.
	Mode Mode

	// Baseline is the unperturbed simple-path count between the endpoints;
	// set in PathCount mode only, 0 otherwise.
	Baseline int
}
