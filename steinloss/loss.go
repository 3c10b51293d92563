// SPDX-License-Identifier: MIT
package steinloss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/anstat/arraynorm/factor"
)

// Evaluate — multiway Stein's loss.
//
// Description:
//
//	Scores the estimate decomposition (est, estScale) against the truth
//	(truth, truthScale). Both collections hold one lower-triangular
//	square root per tensor mode; the scalars are the standard-deviation
//	form of the total-variation parameter.
//
// Algorithm Outline:
//  1. Validate: both collections non-empty with matching per-mode
//     dimensions, both scales positive and finite.
//  2. For each mode k, solve the triangular system B_k·M = Ψ_k (never
//     invert explicitly) and accumulate
//     (p/p_k)·[tr(M Mᵀ) − 2·Σᵢ log|m_ii| − p_k],
//     reading the log-determinant off the triangular diagonal, since
//     det(M Mᵀ) = (Π m_ii)².
//  3. Add the total-variation term p·(r² − log r² − 1) with r = ψ/b,
//     the scale pair acting as a degenerate extra mode of dimension one.
//
// The result is zero exactly when every M_k has M_k·M_kᵀ = I and the
// scales agree, i.e. when the estimate recovers the truth up to the
// problem's lower-triangular symmetry group, and is positive otherwise.
// It is generally asymmetric in (est, truth).
//
// Complexity:
//
//	Time   = O(Σ_k p_k³), Memory = O(max_k p_k²) transient.
//
// Errors:
//   - factor.ErrEmptyCollection / factor.ErrNilFactor — malformed input.
//   - factor.ErrShapeMismatch — length or per-mode dimension mismatch.
//   - ErrInvalidScale — estScale or truthScale ≤ 0, NaN or Inf.
//   - ErrNumericalInstability — near-zero pivot in an estimate factor.
//   - ErrBadOptions — nonsensical Options values.
//
// A nil opts uses DefaultOptions. Evaluate is pure: no inputs are
// mutated, no state is retained across calls.
func Evaluate(est, truth factor.Collection, estScale, truthScale float64, opts *Options) (float64, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, err
	}
	if err = validateInputs(est, truth, estScale, truthScale); err != nil {
		return 0, err
	}

	p := float64(est.TotalDim())

	var loss float64
	for k := range est {
		term, err := modeTerm(est[k], truth[k], o.PivotTolerance)
		if err != nil {
			return 0, fmt.Errorf("Evaluate: mode %d: %w", k, err)
		}
		loss += p / float64(est[k].Dim()) * term
	}

	// Total-variation pair as a degenerate mode of dimension one.
	r2 := (truthScale * truthScale) / (estScale * estScale)
	loss += p * (r2 - math.Log(r2) - 1)

	return loss, nil
}

// EvaluateFromCovariances accepts full per-mode covariance matrices
// instead of their Cholesky factors. Each matrix is factored via
// factor.FromCovariance and the result is delegated to Evaluate, so both
// entry points agree up to factorization rounding.
//
// Errors: everything Evaluate returns, plus factor.ErrNotPositiveDefinite
// when a covariance cannot be factored.
// Complexity: O(Σ_k p_k³) for factorization plus the Evaluate cost.
func EvaluateFromCovariances(estCov, truthCov []mat.Symmetric, estScale, truthScale float64, opts *Options) (float64, error) {
	if len(estCov) == 0 || len(truthCov) == 0 {
		return 0, fmt.Errorf("EvaluateFromCovariances: %w", factor.ErrEmptyCollection)
	}
	if len(estCov) != len(truthCov) {
		return 0, fmt.Errorf("EvaluateFromCovariances: %w", factor.ErrShapeMismatch)
	}

	est := make(factor.Collection, len(estCov))
	truth := make(factor.Collection, len(truthCov))
	for k := range estCov {
		var err error
		if est[k], err = factor.FromCovariance(estCov[k]); err != nil {
			return 0, fmt.Errorf("EvaluateFromCovariances: estimate mode %d: %w", k, err)
		}
		if truth[k], err = factor.FromCovariance(truthCov[k]); err != nil {
			return 0, fmt.Errorf("EvaluateFromCovariances: truth mode %d: %w", k, err)
		}
	}

	return Evaluate(est, truth, estScale, truthScale, opts)
}

// validateInputs runs the boundary checks shared by Evaluate and Risk:
// collection well-formedness, pairwise shape compatibility, scale
// positivity. Returns plain sentinels for errors.Is matching.
func validateInputs(est, truth factor.Collection, estScale, truthScale float64) error {
	if err := est.Validate(); err != nil {
		return err
	}
	if err := truth.Validate(); err != nil {
		return err
	}
	if err := est.SameShape(truth); err != nil {
		return err
	}
	if !positiveFinite(estScale) || !positiveFinite(truthScale) {
		return ErrInvalidScale
	}

	return nil
}

// positiveFinite reports whether s is a usable scale parameter.
// NaN fails the comparison, so it needs no separate check.
func positiveFinite(s float64) bool {
	return s > 0 && !math.IsInf(s, 0)
}

// modeTerm computes one mode's Stein core: tr(M Mᵀ) − log det(M Mᵀ) − p_k
// for M = B⁻¹Ψ. B's diagonal is guarded against near-zero pivots before
// the solve so the failure mode is deterministic rather than dependent on
// the solver's condition heuristics.
func modeTerm(b, psi *factor.ModeFactor, pivotTol float64) (float64, error) {
	n := b.Dim()
	for i := 0; i < n; i++ {
		if math.Abs(b.Diag(i)) <= pivotTol {
			return 0, ErrNumericalInstability
		}
	}

	// Triangular solve B·M = Ψ. gonum routes this through trsm; M is
	// lower-triangular with exact zeros above the diagonal.
	var m mat.Dense
	if err := m.Solve(b.Tri(), psi.Tri()); err != nil {
		return 0, fmt.Errorf("triangular solve: %w", ErrNumericalInstability)
	}

	// tr(M Mᵀ) is the squared Frobenius norm.
	fro := mat.Norm(&m, 2)
	trace := fro * fro

	// det(M Mᵀ) = (Π m_ii)²: accumulate logs of the diagonal to stay
	// finite for large p_k. |·| admits factors with negative diagonal
	// entries (still valid square roots).
	var logDet float64
	for i := 0; i < n; i++ {
		logDet += 2 * math.Log(math.Abs(m.At(i, i)))
	}

	return trace - logDet - float64(n), nil
}
