// SPDX-License-Identifier: MIT
// Package factor: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// factor package. All constructors and validators MUST return these
// sentinels and tests MUST check them via errors.Is. No constructor
// panics on user-triggered error conditions.

package factor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "factor: ..." for consistency and to
// allow easy grepping across logs. Do not %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will still
// use errors.Is to match.

var (
	// ErrBadDimension is returned when a requested factor order is
	// non-positive. Constructors must validate before allocation.
	ErrBadDimension = errors.New("factor: dimension must be > 0")

	// ErrNilFactor indicates that a nil *ModeFactor (or nil backing
	// matrix) was passed where a constructed factor is required.
	ErrNilFactor = errors.New("factor: nil factor")

	// ErrEmptyCollection indicates a Collection with no modes. The loss
	// is defined for N ≥ 1.
	ErrEmptyCollection = errors.New("factor: collection has no modes")

	// ErrShapeMismatch indicates incompatible shapes: a non-square input,
	// a payload of the wrong length, or two collections that differ in
	// length or in some per-mode dimension.
	ErrShapeMismatch = errors.New("factor: shape mismatch")

	// ErrNotLowerTriangular signals a nonzero entry strictly above the
	// main diagonal where a lower-triangular factor is required. The
	// upper triangle is structurally zero, not conventionally ignored.
	ErrNotLowerTriangular = errors.New("factor: nonzero entry above the main diagonal")

	// ErrNotPositiveDefinite signals that a supplied covariance matrix is
	// not symmetric positive-definite, so its Cholesky factorization
	// failed.
	ErrNotPositiveDefinite = errors.New("factor: matrix is not symmetric positive-definite")
)
