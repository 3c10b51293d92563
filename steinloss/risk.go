// SPDX-License-Identifier: MIT
package steinloss

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/anstat/arraynorm/factor"
)

// Risk estimates the risk of an estimator at the given truth: the mean
// multiway Stein's loss over a slice of draws (e.g. posterior samples
// from an external MCMC run, one Evaluate per draw).
//
// Draws are independent and evaluations are pure, so Workers > 1 fans the
// loop out over that many goroutines. Results are written to per-draw
// slots, making the parallel and sequential paths numerically identical;
// the mean is taken in draw order either way.
//
// Errors: everything Evaluate returns, plus ErrNoDraws for an empty
// slice. On any failed draw the first error (in draw order) is returned
// and no partial mean is produced.
//
// Complexity: O(len(draws) · Σ_k p_k³) work, O(len(draws)) extra memory.
func Risk(draws []Draw, truth factor.Collection, truthScale float64, opts *Options) (float64, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, err
	}
	if len(draws) == 0 {
		return 0, ErrNoDraws
	}

	losses := make([]float64, len(draws))
	errs := make([]error, len(draws))

	evaluate := func(i int) {
		losses[i], errs[i] = Evaluate(draws[i].Factors, truth, draws[i].Scale, truthScale, &o)
	}

	if o.Workers <= 1 || len(draws) == 1 {
		for i := range draws {
			evaluate(i)
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		wg.Add(o.Workers)
		for w := 0; w < o.Workers; w++ {
			go func() {
				defer wg.Done()
				for i := range jobs {
					evaluate(i)
				}
			}()
		}
		for i := range draws {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	// First failure in draw order wins, so the reported error does not
	// depend on goroutine scheduling.
	for i, err := range errs {
		if err != nil {
			return 0, fmt.Errorf("Risk: draw %d: %w", i, err)
		}
	}

	return stat.Mean(losses, nil), nil
}
