// Package steinloss: options and draw types.
package steinloss

import (
	"math"

	"github.com/anstat/arraynorm/factor"
)

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultPivotTolerance is the threshold below which an estimate
	// factor's diagonal entry is treated as a zero pivot. The solve is
	// refused with ErrNumericalInstability instead of returning a result
	// dominated by rounding error.
	DefaultPivotTolerance = 1e-12

	// DefaultWorkers evaluates draws sequentially. Values > 1 enable the
	// Risk fan-out; Evaluate itself is always sequential (per-mode
	// matrices are small, goroutine churn would outweigh the win).
	DefaultWorkers = 1
)

// Options configures loss evaluation.
//
// Fields:
//   - PivotTolerance — non-negative; diagonal entries of an estimate
//     factor with |d| ≤ PivotTolerance trigger ErrNumericalInstability.
//   - Workers        — number of concurrent draw evaluations in Risk.
//     0 means DefaultWorkers; 1 means sequential.
//
// Example:
//
//	opts := steinloss.DefaultOptions()
//	opts.Workers = 8 // evaluate posterior draws concurrently
//	risk, err := steinloss.Risk(draws, truth, psi, &opts)
type Options struct {
	PivotTolerance float64
	Workers        int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		PivotTolerance: DefaultPivotTolerance,
		Workers:        DefaultWorkers,
	}
}

// Draw is one posterior draw of the estimate side: a factor collection
// plus its total-variation scale, as produced by an external sampler or
// Bayes-rule extractor.
type Draw struct {
	Factors factor.Collection
	Scale   float64
}

// resolveOptions applies defaults for a nil opts and validates values.
// A nil opts is the common "just use the defaults" call shape.
func resolveOptions(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	o := *opts
	if o.PivotTolerance < 0 || math.IsNaN(o.PivotTolerance) || math.IsInf(o.PivotTolerance, 0) {
		return Options{}, ErrBadOptions
	}
	if o.Workers < 0 {
		return Options{}, ErrBadOptions
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}

	return o, nil
}
