package ranking

import (
	"errors"
	"fmt"
)

// spreadFactor is the half-gap, in units of the minimum separation, that a violating
// pair is spread to around its midpoint.
const spreadFactor = 0.55

// ErrNoConvergence is returned when a task column still has overlapping values after the
// iteration cap.
var ErrNoConvergence = errors.New("de-overlap did not converge")

// DefaultMaxIterations returns the per-task iteration cap for the given number of
// conditions.
func DefaultMaxIterations(conditions int) int {
	pairs := conditions * (conditions - 1) / 2
	if n := 100 * pairs; n > 100 {
		return n
	}
	return 100
}

// DeOverlap nudges values that share a task index apart until every pair of conditions
// is at least minSep apart. The first violating pair, in lexicographic index-pair order,
// is respread to 1.1*minSep around its midpoint and the scan restarts. Columns are
// handled independently and the input matrix is left untouched.
//
// A non-positive maxIter selects DefaultMaxIterations. When a column exceeds the cap the
// partially adjusted matrix is returned together with ErrNoConvergence.
func DeOverlap(m Matrix, minSep float64, maxIter int) (Matrix, error) {
	out := m.Clone()
	if minSep <= 0 || len(out) < 2 {
		return out, nil
	}
	width := out.Width()
	for i, row := range out {
		if len(row) != width {
			return out, fmt.Errorf("row %d has %d values, want %d", i, len(row), width)
		}
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations(len(out))
	}

	for j := 0; j < width; j++ {
		col := out.Column(j)
		err := spreadColumn(col, minSep, maxIter)
		for i := range out {
			out[i][j] = col[i]
		}
		if err != nil {
			return out, fmt.Errorf("task index %d: %w", j, err)
		}
	}
	return out, nil
}

func spreadColumn(col []float64, minSep float64, maxIter int) error {
	for iter := 0; ; iter++ {
		a, b, ok := firstViolation(col, minSep)
		if !ok {
			return nil
		}
		if iter >= maxIter {
			return fmt.Errorf("%w after %d iterations", ErrNoConvergence, maxIter)
		}
		mid := (col[a] + col[b]) / 2
		half := spreadFactor * minSep
		if col[a] <= col[b] {
			col[a], col[b] = mid-half, mid+half
		} else {
			col[a], col[b] = mid+half, mid-half
		}
	}
}

func firstViolation(col []float64, minSep float64) (int, int, bool) {
	for a := 0; a < len(col); a++ {
		for b := a + 1; b < len(col); b++ {
			d := col[a] - col[b]
			if d < 0 {
				d = -d
			}
			if d < minSep {
				return a, b, true
			}
		}
	}
	return 0, 0, false
}
