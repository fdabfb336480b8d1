// SPDX-License-Identifier: MIT

package stats

import "math"

// Abramowitz & Stegun 7.1.26 coefficients.
const (
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
	erfP  = 0.3275911
)

// Erf approximates the error function with A&S formula 7.1.26
// (max absolute error about 1.5e-7). Odd symmetry is exact: Erf(-x) == -Erf(x).
func Erf(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign, x = -1, -x
	}
	t := 1 / (1 + erfP*x)
	poly := ((((erfA5*t+erfA4)*t+erfA3)*t+erfA2)*t + erfA1) * t

	return sign * (1 - poly*math.Exp(-x*x))
}

// NormalCDF is the standard normal cumulative distribution Φ(x) = ½(1 + erf(x/√2)).
func NormalCDF(x float64) float64 {
	return 0.5 * (1 + Erf(x/math.Sqrt2))
}
