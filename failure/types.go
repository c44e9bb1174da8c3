// Package failure provides tunable options and error definitions for
// Bernoulli node-failure sampling over a core.Graph.
package failure

import (
	"errors"
	"math/rand"
)

// Sentinel errors for survivor sampling.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("failure: graph is nil")

	// ErrInvalidRate is returned when the failure rate is outside [0,1].
	ErrInvalidRate = errors.New("failure: rate must be in [0,1]")
)

// Option configures sampling behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a sampling call.
type Options struct {
	// Rand is the random source consumed by the sampler. Sampling owns no
	// global generator: callers that need reproducibility or per-worker
	// streams inject their own. When nil, Survivors falls back to a
	// time-seeded private source.
	Rand *rand.Rand
}

// DefaultOptions returns Options with no injected random source.
func DefaultOptions() Options {
	return Options{Rand: nil}
}

// WithRand injects the random source used for the per-node trials.
// A nil argument is ignored, keeping the default.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
