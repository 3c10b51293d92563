// Package arraynorm provides equivariant loss evaluation for
// Kronecker-structured ("array normal") covariance models of multiway
// array (tensor) data.
//
// 🚀 What is arraynorm?
//
//	A small, dependency-light library that scores covariance estimates
//	against a truth under the multiway Stein's loss:
//		• factor/    — typed lower-triangular square-root entities
//		  (one per tensor mode) and Cholesky conversion from full
//		  covariance matrices
//		• steinloss/ — the loss kernel itself, a covariance-matrix
//		  entry point, and a risk functional averaging the loss over
//		  posterior draws
//
// ✨ Why choose arraynorm?
//
//   - Typed inputs – shape and triangularity are checked at the boundary,
//     not deep inside a hot loop
//   - Invariant by construction – the loss is unchanged under independent
//     lower-triangular rescaling of each mode and a common scale factor
//   - Pure functions – no global state, no hidden randomness, safe to call
//     from concurrent samplers
//   - Built on gonum – triangular storage, Cholesky factorization and
//     triangular-aware solves come from gonum.org/v1/gonum/mat
//
// The package scores estimates; it does not produce them. Posterior
// samplers, Bayes-rule extractors and MLE routines are external
// collaborators that hand in factor collections and scale scalars.
//
// Quick sketch, two-mode (matrix-variate) data:
//
//	Σ = σ² · Σ₂ ⊗ Σ₁,   Σₖ = Lₖ Lₖᵀ
//
//	estK, _ := factor.FromCovariance(sigmaHatK) // one per mode
//	loss, _ := steinloss.Evaluate(est, truth, b, psi, nil)
//
// Dive into factor/doc.go and steinloss/doc.go for the full contracts,
// error taxonomy and runnable examples.
package arraynorm
