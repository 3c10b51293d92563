package steinloss_test

import (
	"math/rand"
	"testing"

	"github.com/anstat/arraynorm/factor"
	"github.com/anstat/arraynorm/steinloss"
)

// benchLower builds a deterministic well-conditioned lower factor for
// benchmarks (no testing.T plumbing in the hot loop setup).
func benchLower(n int, rng *rand.Rand) *factor.ModeFactor {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1 + rng.Float64()
		for j := 0; j < i; j++ {
			data[i*n+j] = rng.Float64() - 0.5
		}
	}
	f, err := factor.New(n, data)
	if err != nil {
		panic(err)
	}

	return f
}

// benchmarkEvaluate runs Evaluate on random factor pairs with the given
// mode dimensions. It resets the timer after setup and fails on
// unexpected errors.
func benchmarkEvaluate(b *testing.B, dims []int) {
	rng := rand.New(rand.NewSource(17))
	est := make(factor.Collection, len(dims))
	truth := make(factor.Collection, len(dims))
	for k, n := range dims {
		est[k] = benchLower(n, rng)
		truth[k] = benchLower(n, rng)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := steinloss.Evaluate(est, truth, 1.1, 0.9, nil); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
}

// BenchmarkEvaluate_TwoModeSmall mirrors a small matrix-variate problem.
func BenchmarkEvaluate_TwoModeSmall(b *testing.B) {
	benchmarkEvaluate(b, []int{5, 5})
}

// BenchmarkEvaluate_TwoModeMedium mirrors a medium matrix-variate problem.
func BenchmarkEvaluate_TwoModeMedium(b *testing.B) {
	benchmarkEvaluate(b, []int{20, 20})
}

// BenchmarkEvaluate_ThreeMode mirrors a three-way array problem.
func BenchmarkEvaluate_ThreeMode(b *testing.B) {
	benchmarkEvaluate(b, []int{8, 8, 8})
}

// benchmarkRisk runs Risk over nDraws random draws with the given worker
// count, the shape of a posterior-sample scoring loop.
func benchmarkRisk(b *testing.B, nDraws, workers int) {
	rng := rand.New(rand.NewSource(23))
	truth := factor.Collection{benchLower(10, rng), benchLower(10, rng)}

	draws := make([]steinloss.Draw, nDraws)
	for i := range draws {
		draws[i] = steinloss.Draw{
			Factors: factor.Collection{benchLower(10, rng), benchLower(10, rng)},
			Scale:   0.5 + rng.Float64(),
		}
	}

	opts := steinloss.DefaultOptions()
	opts.Workers = workers

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := steinloss.Risk(draws, truth, 1.0, &opts); err != nil {
			b.Fatalf("Risk failed: %v", err)
		}
	}
}

// BenchmarkRisk_Sequential scores 64 draws on one worker.
func BenchmarkRisk_Sequential(b *testing.B) {
	benchmarkRisk(b, 64, 1)
}

// BenchmarkRisk_Parallel scores 64 draws on four workers.
func BenchmarkRisk_Parallel(b *testing.B) {
	benchmarkRisk(b, 64, 4)
}
