// SPDX-License-Identifier: MIT

package mathx

import "math"

// expm1Cutoff bounds the region where the second-order Taylor expansion is used.
const expm1Cutoff = 1e-5

// Ascending orders a before b when a < b. It is shaped for slices.SortFunc.
// NaN compares equal to everything, so callers must pre-filter NaNs for a total order.
func Ascending(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Expm1 computes exp(x) - 1, using x + x²/2 for |x| < 1e-5 where the direct
// subtraction loses precision.
func Expm1(x float64) float64 {
	if x < expm1Cutoff && x > -expm1Cutoff {
		return x + 0.5*x*x
	}

	return math.Exp(x) - 1
}

// Hypot returns √(x²+y²) without intermediate overflow: max·√(1+(min/max)²).
func Hypot(x, y float64) float64 {
	x, y = math.Abs(x), math.Abs(y)
	hi, lo := x, y
	if y > x {
		hi, lo = y, x
	}
	if hi == 0 {
		return 0
	}
	r := lo / hi

	return hi * math.Sqrt(1+r*r)
}

// SampleFunc maps a sample to a scalar (a bandwidth rule, a statistic, ...).
type SampleFunc func(sample []float64) float64

// Constant wraps v into a SampleFunc that ignores its input.
// It lets a fixed value stand wherever a rule is expected.
func Constant(v float64) SampleFunc {
	return func([]float64) float64 { return v }
}
