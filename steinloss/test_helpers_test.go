package steinloss_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/anstat/arraynorm/factor"
)

// randomLower builds a well-conditioned random lower-triangular factor:
// diagonal in [1, 2), strict lower entries in [-0.5, 0.5).
func randomLower(t *testing.T, n int, rng *rand.Rand) *factor.ModeFactor {
	t.Helper()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1 + rng.Float64()
		for j := 0; j < i; j++ {
			data[i*n+j] = rng.Float64() - 0.5
		}
	}
	f, err := factor.New(n, data)
	require.NoError(t, err, "random lower factor of order %d", n)

	return f
}

// randomCollection builds one random factor per requested mode dimension.
func randomCollection(t *testing.T, dims []int, rng *rand.Rand) factor.Collection {
	t.Helper()
	c := make(factor.Collection, len(dims))
	for k, n := range dims {
		c[k] = randomLower(t, n, rng)
	}

	return c
}

// identityCollection builds identity factors for the given dimensions.
func identityCollection(t *testing.T, dims []int) factor.Collection {
	t.Helper()
	c := make(factor.Collection, len(dims))
	for k, n := range dims {
		data := make([]float64, n*n)
		for i := 0; i < n; i++ {
			data[i*n+i] = 1
		}
		f, err := factor.New(n, data)
		require.NoError(t, err)
		c[k] = f
	}

	return c
}

// scaledIdentity builds (1+eps)·I_n as a factor.
func scaledIdentity(t *testing.T, n int, scale float64) *factor.ModeFactor {
	t.Helper()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = scale
	}
	f, err := factor.New(n, data)
	require.NoError(t, err)

	return f
}

// mulLower left-multiplies b by a (both lower triangular); the product of
// lower-triangular matrices is lower triangular, so the result is a valid
// factor.
func mulLower(t *testing.T, a, b *factor.ModeFactor) *factor.ModeFactor {
	t.Helper()
	var prod mat.Dense
	prod.Mul(a.Tri(), b.Tri())
	f, err := factor.FromMatrix(&prod)
	require.NoError(t, err, "product of lower-triangular factors must stay lower triangular")

	return f
}

// spdFromLower returns L·Lᵀ as a SymDense, the covariance whose Cholesky
// square root is L (given a positive diagonal).
func spdFromLower(t *testing.T, l *factor.ModeFactor) *mat.SymDense {
	t.Helper()
	n := l.Dim()
	var prod mat.Dense
	prod.Mul(l.Tri(), l.Tri().T())
	sigma := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sigma.SetSym(i, j, prod.At(i, j))
		}
	}

	return sigma
}
