// Package connect provides tunable options and error definitions for the
// connectivity queries over a core.Graph.
package connect

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for connectivity evaluation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("connect: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("connect: invalid option supplied")
)

// Option configures connectivity queries via functional arguments.
// An invalid Option (e.g. a negative path cap) is recorded internally and
// surfaced as ErrOptionViolation when the query runs.
type Option func(*Options)

// Options holds parameters customizing a connectivity query.
type Options struct {
	// Ctx allows cancellation of long-running enumerations.
	Ctx context.Context

	// MaxPaths, if > 0, stops simple-path enumeration once that many paths
	// have been found and returns the cap. 0 disables the limit (the
	// default, since an uncapped count is what the reliability ratio is
	// defined over). Ignored by Connected.
	MaxPaths int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no path cap.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
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

// WithMaxPaths caps simple-path enumeration at n paths.
//
//	n > 0:  stop once n paths are found
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// gatherOptions resolves opts and reports any recorded violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
