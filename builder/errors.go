// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach method context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates a width or height below the allowed minimum.
var ErrTooSmall = errors.New("builder: grid dimension too small")

// ErrOutOfRange indicates a row, column or cell outside the grid.
var ErrOutOfRange = errors.New("builder: coordinate out of range")

// ErrInvalidProbability indicates a density outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an unusable result.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with the constructor name.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
