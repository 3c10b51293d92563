// SPDX-License-Identifier: MIT
// Package steinloss: sentinel error set.
// All entry points return these sentinels (optionally wrapped with
// context via fmt.Errorf("...: %w", ErrX)); callers match with errors.Is.
// Shape and triangularity violations surface the factor package's
// sentinels unchanged.

package steinloss

import "errors"

var (
	// ErrInvalidScale indicates a scale parameter that is not a positive
	// finite number (zero, negative, NaN or ±Inf).
	ErrInvalidScale = errors.New("steinloss: scale parameter must be positive and finite")

	// ErrNumericalInstability indicates a near-zero diagonal pivot in an
	// estimate factor: the triangular solve would amplify rounding error
	// beyond usefulness. Recoverable — callers may retry with a
	// regularized estimate.
	ErrNumericalInstability = errors.New("steinloss: near-zero pivot in estimate factor")

	// ErrBadOptions indicates nonsensical option values (negative pivot
	// tolerance, negative worker count).
	ErrBadOptions = errors.New("steinloss: invalid options")

	// ErrNoDraws indicates that Risk was called with an empty draw slice;
	// the mean loss over nothing is undefined.
	ErrNoDraws = errors.New("steinloss: no draws to evaluate")
)
