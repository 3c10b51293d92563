// Package factor defines the typed inputs of the multiway Stein's loss:
// per-mode lower-triangular covariance square roots and ordered
// collections of them.
//
// 🚀 What is a ModeFactor?
//
//	For array-valued data with a Kronecker-structured covariance
//
//		Σ = σ² · Σ_N ⊗ … ⊗ Σ_1,   Σ_k = L_k L_kᵀ
//
//	each mode k carries one lower-triangular square root L_k. ModeFactor
//	wraps exactly that factor, with the strictly-upper triangle
//	structurally zero (backed by gonum's mat.TriDense, which never reads
//	above the main diagonal). A Collection is the ordered sequence
//	(L_1, …, L_N), one entry per tensor mode.
//
// ✨ Key guarantees:
//   - Construction is the only validation point: a ModeFactor that exists
//     is square and lower-triangular, so downstream kernels skip per-call
//     structural checks
//   - FromCovariance factors a symmetric positive-definite matrix via
//     gonum's Cholesky and fails with ErrNotPositiveDefinite otherwise
//   - All errors are package-level sentinels, matched with errors.Is
//   - Factors are treated as immutable values; callers must not mutate a
//     factor while an evaluation that references it is in flight
//
// ⚙️ Usage:
//
//	import "github.com/anstat/arraynorm/factor"
//
//	l, err := factor.New(3, []float64{
//		2, 0, 0,
//		1, 1, 0,
//		0, 1, 1,
//	})
//	// err == nil; the payload is row-major with zeros above the diagonal
//
//	est := factor.Collection{l, l2, l3} // one factor per mode
//
// See example_test.go for runnable examples.
package factor
