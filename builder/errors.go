// SPDX-License-Identifier: MIT
// Package builder: sentinel error set.
// Constructors MUST return these sentinels (wrapped with context via %w)
// and never panic on user-triggered conditions.

package builder

import "errors"

var (
	// ErrTooFewVertices is returned when n is below a topology's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability is returned when an edge probability is outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability must be in [0,1]")
)
