// SPDX-License-Identifier: MIT

package loess

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsci/stats"
)

const opSmooth = "Smooth"

// Smooth returns the LOESS fit of y over x, one fitted value per input point.
//
// weights may be nil, meaning all ones. opts may be nil, meaning DefaultOptions().
// For n ∈ {1, 2} a copy of y is returned unchanged.
// Inputs are never mutated.
func Smooth(x, y, weights []float64, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opSmooth, err)
	}

	n := len(x)
	if err := validateInput(x, y, weights); err != nil {
		return nil, fmt.Errorf("%s: %w", opSmooth, err)
	}
	if weights == nil {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1
		}
	}
	if n <= 2 {
		return append([]float64(nil), y...), nil
	}

	bandwidthInPoints := int(math.Floor(o.Bandwidth * float64(n)))
	if bandwidthInPoints < 2 {
		return nil, fmt.Errorf("%s: %d points per neighbourhood: %w", opSmooth, bandwidthInPoints, ErrBandwidthTooSmall)
	}

	var (
		res         = make([]float64, n)
		residuals   = make([]float64, n)
		robustness  = make([]float64, n)
		left, right int
	)
	for i := range robustness {
		robustness[i] = 1
	}

	for iter := 0; iter <= o.RobustnessIters; iter++ {
		left, right = 0, bandwidthInPoints-1
		for i := 0; i < n; i++ {
			if i > 0 {
				left, right = updateInterval(x, weights, i, left, right)
			}
			res[i] = fitAt(x, y, weights, robustness, i, left, right, o.Accuracy)
			residuals[i] = math.Abs(y[i] - res[i])
		}

		// Robustness weights are not needed after the last pass.
		if iter == o.RobustnessIters {
			break
		}

		medianResidual := stats.Median(residuals)
		if math.Abs(medianResidual) < o.Accuracy {
			break
		}
		for i, r := range residuals {
			robustness[i] = bisquare(r / (6 * medianResidual))
		}
	}

	return res, nil
}

// fitAt evaluates the weighted linear least-squares fit over [left, right] at x[i].
func fitAt(x, y, weights, robustness []float64, i, left, right int, accuracy float64) float64 {
	xi := x[i]

	// Farthest neighbour from xi.
	edge := right
	if xi-x[left] > x[right]-xi {
		edge = left
	}
	denom := math.Abs(1 / (x[edge] - xi))

	var sumW, sumX, sumX2, sumY, sumXY, dist, w, xkw float64
	for k := left; k <= right; k++ {
		if k < i {
			dist = xi - x[k]
		} else {
			dist = x[k] - xi
		}
		w = tricube(dist*denom) * robustness[k] * weights[k]
		xkw = x[k] * w
		sumW += w
		sumX += xkw
		sumX2 += x[k] * xkw
		sumY += y[k] * w
		sumXY += y[k] * xkw
	}

	meanX := sumX / sumW
	meanY := sumY / sumW
	meanXY := sumXY / sumW
	meanX2 := sumX2 / sumW

	var beta float64
	if varX := meanX2 - meanX*meanX; math.Sqrt(math.Abs(varX)) >= accuracy {
		beta = (meanXY - meanX*meanY) / varX
	}
	alpha := meanY - beta*meanX

	return beta*xi + alpha
}

// updateInterval slides [left, right] one step to the right when the next
// non-zero-weight point beyond right is closer to x[i] than x[left] is.
func updateInterval(x, weights []float64, i, left, right int) (int, int) {
	nextRight := nextNonzero(weights, right)
	if nextRight < len(x) && x[nextRight]-x[i] < x[i]-x[left] {
		return nextNonzero(weights, left), nextRight
	}

	return left, right
}

// nextNonzero returns the first index > i whose weight is non-zero, or len(weights).
func nextNonzero(weights []float64, i int) int {
	j := i + 1
	for j < len(weights) && weights[j] == 0 {
		j++
	}

	return j
}

// tricube is (1-u³)³ for u ∈ [0, 1].
func tricube(u float64) float64 {
	t := 1 - u*u*u

	return t * t * t
}

// bisquare is (1-u²)² for u < 1 and 0 otherwise.
func bisquare(u float64) float64 {
	if u >= 1 {
		return 0
	}
	t := 1 - u*u

	return t * t
}

func validateInput(x, y, weights []float64) error {
	n := len(x)
	if len(y) != n || (weights != nil && len(weights) != n) {
		return fmt.Errorf("len(x)=%d len(y)=%d len(weights)=%d: %w", n, len(y), len(weights), ErrLengthMismatch)
	}
	if n == 0 {
		return ErrEmpty
	}
	for _, seq := range []struct {
		name string
		vals []float64
	}{{"x", x}, {"y", y}, {"weights", weights}} {
		for i, v := range seq.vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s[%d]=%g: %w", seq.name, i, v, ErrNonFinite)
			}
		}
	}
	for i := 1; i < n; i++ {
		if x[i-1] >= x[i] {
			return fmt.Errorf("x[%d]=%g >= x[%d]=%g: %w", i-1, x[i-1], i, x[i], ErrNotIncreasing)
		}
	}

	return nil
}
