// Package sweep runs many independent simulations concurrently.
package sweep

import (
	"context"
	"fmt"
	"runtime"

	"github.com/Luizfelm/CoulombDampedVibration/internal/dynamo"
	"github.com/Luizfelm/CoulombDampedVibration/internal/metrics"
	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

// Outcome is the result of one parameter set. Err holds a validation or
// integration failure for that set alone.
type Outcome struct {
	Params  vibration.Parameters
	Summary metrics.Summary
	Err     error
}

// Vary returns copies of base with the named parameter set to each value.
func Vary(base vibration.Parameters, name string, values []float64) ([]vibration.Parameters, error) {
	out := make([]vibration.Parameters, 0, len(values))
	for _, v := range values {
		p, err := base.With(name, v)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("linspace needs at least one point, got %d: %w", n, dynamo.ErrInvalidParameter)
	}
	if n == 1 {
		return []float64{lo}, nil
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out, nil
}

// Run simulates every parameter set on up to workers goroutines and returns
// outcomes in input order. workers <= 0 uses GOMAXPROCS. Cancellation is
// checked before each simulation; a cancelled sweep returns ctx.Err() and
// no outcomes.
func Run(ctx context.Context, params []vibration.Parameters, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]Outcome, len(params))
	ParallelFor(len(params), workers, func(start, end int) {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				return
			}
			outcomes[i] = simulateOne(params[i])
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func simulateOne(p vibration.Parameters) Outcome {
	tr, err := vibration.Simulate(p)
	if err != nil {
		return Outcome{Params: p, Err: err}
	}
	return Outcome{Params: p, Summary: metrics.Summarize(p, tr)}
}
