package sweep

import (
	"fmt"
	"math"

	"github.com/Luizfelm/CoulombDampedVibration/internal/dynamo"
	"github.com/Luizfelm/CoulombDampedVibration/internal/metrics"
	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

// Grid returns the Cartesian product of ranges applied to base, one range
// per name. The last name varies fastest.
func Grid(base vibration.Parameters, names []string, ranges [][]float64) ([]vibration.Parameters, error) {
	if len(names) != len(ranges) {
		return nil, fmt.Errorf("grid has %d names and %d ranges: %w", len(names), len(ranges), dynamo.ErrInvalidParameter)
	}

	var out []vibration.Parameters
	var err error
	var walk func(depth int, current vibration.Parameters)
	walk = func(depth int, current vibration.Parameters) {
		if err != nil {
			return
		}
		if depth == len(names) {
			out = append(out, current)
			return
		}
		for _, val := range ranges[depth] {
			next, werr := current.With(names[depth], val)
			if werr != nil {
				err = werr
				return
			}
			walk(depth+1, next)
		}
	}
	walk(0, base)

	if err != nil {
		return nil, err
	}
	return out, nil
}

// Best returns the index of the successful outcome with the smallest value
// of the named summary metric, or -1 if none succeeded.
func Best(outcomes []Outcome, metric string) (int, float64, error) {
	if _, ok := (metrics.Summary{}).Metrics()[metric]; !ok {
		return -1, 0, fmt.Errorf("unknown metric %q: %w", metric, dynamo.ErrInvalidParameter)
	}

	best := math.Inf(1)
	idx := -1
	for i, o := range outcomes {
		if o.Err != nil {
			continue
		}
		if val := o.Summary.Metrics()[metric]; val < best {
			best = val
			idx = i
		}
	}
	return idx, best, nil
}
