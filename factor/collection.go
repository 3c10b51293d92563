// SPDX-License-Identifier: MIT
// Package factor: ordered per-mode factor sequences.
//
// Purpose:
//   - Provide a single, canonical source of truth for collection-level
//     validation (non-empty, no nil modes, pairwise shape compatibility).
//   - Return plain sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Mode order is positional and significant: mode k of one collection
//     is compared against mode k of the other.

package factor

// Collection is an ordered sequence of per-mode factors (L_1, …, L_N),
// N ≥ 1, indexed positionally by tensor mode.
type Collection []*ModeFactor

// Validate ensures the collection is non-empty and contains no nil
// factors.
//
// Errors: ErrEmptyCollection, ErrNilFactor.
// Complexity: O(N).
func (c Collection) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCollection
	}
	for _, f := range c {
		if f == nil || f.tri == nil {
			return ErrNilFactor
		}
	}

	return nil
}

// Dims returns the per-mode orders (p_1, …, p_N).
// Assumes Validate has passed (no nil modes).
// Complexity: O(N).
func (c Collection) Dims() []int {
	dims := make([]int, len(c))
	for k, f := range c {
		dims[k] = f.Dim()
	}

	return dims
}

// TotalDim returns the total array size p = Π p_k.
// Assumes Validate has passed.
// Complexity: O(N).
func (c Collection) TotalDim() int {
	p := 1
	for _, f := range c {
		p *= f.Dim()
	}

	return p
}

// SameShape ensures both collections have the same number of modes and
// identical per-mode dimensions. Assumes both collections validated.
//
// Errors: ErrShapeMismatch.
// Complexity: O(N).
func (c Collection) SameShape(other Collection) error {
	if len(c) != len(other) {
		return ErrShapeMismatch
	}
	for k := range c {
		if c[k].Dim() != other[k].Dim() {
			return ErrShapeMismatch
		}
	}

	return nil
}
