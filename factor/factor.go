// SPDX-License-Identifier: MIT
// Package factor: the ModeFactor entity.
//
// Purpose:
//   - Wrap one per-mode lower-triangular covariance square root in a
//     strongly-typed value whose shape invariants hold by construction.
//   - Keep kernels minimal: a ModeFactor that exists is square and
//     lower-triangular, so downstream code never re-validates structure.
//
// Determinism & Performance:
//   - Constructors validate then copy (or adopt) once; accessors are O(1).
//   - The backing store is gonum's mat.TriDense: reads strictly above the
//     main diagonal return 0 without touching memory.

package factor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// factorErrorf wraps an underlying sentinel with constructor context.
func factorErrorf(method string, err error) error {
	return fmt.Errorf("factor.%s: %w", method, err)
}

// ModeFactor is the lower-triangular Cholesky-style square root of one
// mode's component covariance matrix. The zero value is not usable;
// construct via New, FromTri, FromMatrix or FromCovariance.
type ModeFactor struct {
	tri *mat.TriDense // lower-triangular backing storage, order n
}

// New builds a ModeFactor of order n from a full row-major payload of
// length n*n. Entries strictly above the main diagonal must be exactly
// zero. A nil payload yields the zero factor (valid to construct; any
// loss evaluation will reject its zero pivots).
//
// Errors: ErrBadDimension, ErrShapeMismatch, ErrNotLowerTriangular.
// Complexity: O(n²).
func New(n int, data []float64) (*ModeFactor, error) {
	if n <= 0 {
		return nil, factorErrorf("New", ErrBadDimension)
	}
	if data != nil {
		if len(data) != n*n {
			return nil, factorErrorf("New", ErrShapeMismatch)
		}
		// Structural zero policy: reject upper garbage instead of
		// silently dropping it.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if data[i*n+j] != 0 {
					return nil, factorErrorf("New", ErrNotLowerTriangular)
				}
			}
		}
	}

	return &ModeFactor{tri: mat.NewTriDense(n, mat.Lower, data)}, nil
}

// FromTri adopts an existing lower TriDense as a ModeFactor without
// copying. The caller must not mutate t while any evaluation referencing
// the factor is in flight.
//
// Errors: ErrNilFactor if t is nil, ErrNotLowerTriangular if t stores an
// upper triangle.
// Complexity: O(1).
func FromTri(t *mat.TriDense) (*ModeFactor, error) {
	if t == nil {
		return nil, factorErrorf("FromTri", ErrNilFactor)
	}
	if _, kind := t.Triangle(); kind != mat.Lower {
		return nil, factorErrorf("FromTri", ErrNotLowerTriangular)
	}

	return &ModeFactor{tri: t}, nil
}

// FromMatrix validates that m is square with an exactly-zero strict
// upper triangle and copies its lower triangle into a fresh factor.
//
// Errors: ErrNilFactor, ErrShapeMismatch, ErrNotLowerTriangular.
// Complexity: O(n²).
func FromMatrix(m mat.Matrix) (*ModeFactor, error) {
	if m == nil {
		return nil, factorErrorf("FromMatrix", ErrNilFactor)
	}
	r, c := m.Dims()
	if r != c {
		return nil, factorErrorf("FromMatrix", ErrShapeMismatch)
	}
	if r == 0 {
		return nil, factorErrorf("FromMatrix", ErrBadDimension)
	}

	t := mat.NewTriDense(r, mat.Lower, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if j > i {
				if v != 0 {
					return nil, factorErrorf("FromMatrix", ErrNotLowerTriangular)
				}

				continue
			}
			t.SetTri(i, j, v)
		}
	}

	return &ModeFactor{tri: t}, nil
}

// FromCovariance factors a symmetric positive-definite covariance matrix
// into its lower Cholesky square root Σ = L·Lᵀ and returns L as a
// ModeFactor.
//
// Errors: ErrNilFactor, ErrNotPositiveDefinite when the factorization
// fails (asymmetric inputs cannot be expressed as mat.Symmetric, so only
// definiteness can fail here).
// Complexity: O(n³).
func FromCovariance(sigma mat.Symmetric) (*ModeFactor, error) {
	if sigma == nil {
		return nil, factorErrorf("FromCovariance", ErrNilFactor)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sigma); !ok {
		return nil, factorErrorf("FromCovariance", ErrNotPositiveDefinite)
	}

	var l mat.TriDense
	chol.LTo(&l)

	return &ModeFactor{tri: &l}, nil
}

// Dim returns the order p_k of the factor.
// Complexity: O(1).
func (f *ModeFactor) Dim() int {
	n, _ := f.tri.Triangle()

	return n
}

// At returns the entry at (i, j). Reads strictly above the main diagonal
// return 0 without touching storage (structural zero).
// Complexity: O(1). Panics on out-of-range indices (programmer error,
// mirroring gonum's indexing contract).
func (f *ModeFactor) At(i, j int) float64 {
	return f.tri.At(i, j)
}

// Diag returns the i-th diagonal entry. The diagonal carries the factor's
// determinant: det(L) = Π diag(L).
// Complexity: O(1).
func (f *ModeFactor) Diag(i int) float64 {
	return f.tri.At(i, i)
}

// Tri exposes the backing lower-triangular matrix for use with gonum
// kernels (solves, products). The returned value is a live view, not a
// copy: treat it as read-only.
// Complexity: O(1).
func (f *ModeFactor) Tri() *mat.TriDense {
	return f.tri
}

// Clone returns a deep copy of the factor.
// Complexity: O(n²).
func (f *ModeFactor) Clone() *ModeFactor {
	n := f.Dim()
	t := mat.NewTriDense(n, mat.Lower, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			t.SetTri(i, j, f.tri.At(i, j))
		}
	}

	return &ModeFactor{tri: t}
}
