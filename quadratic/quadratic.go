// SPDX-License-Identifier: MIT

package quadratic

import (
	"math"
)

// Roots holds 0, 1 or 2 roots. Real-mode roots always have zero imaginary part.
type Roots []complex128

// Real returns the real parts of r.
func (r Roots) Real() []float64 {
	out := make([]float64, len(r))
	for i, z := range r {
		out[i] = real(z)
	}

	return out
}

// Solver solves quadratics; Complex is fixed at construction and controls
// whether a negative discriminant yields a conjugate pair or nothing.
type Solver struct {
	Complex bool
}

// Solve returns the roots of a·x² + b·x + c. a must be non-zero.
func (s Solver) Solve(a, b, c float64) Roots {
	d := b*b - 4*a*c
	switch {
	case d > 0:
		sq := math.Sqrt(d)

		return Roots{complex(unsigned((-b+sq)/(2*a)), 0), complex(unsigned((-b-sq)/(2*a)), 0)}
	case d == 0:
		return Roots{complex(unsigned(-b/(2*a)), 0)}
	case d < 0 && s.Complex:
		re := unsigned(-b / (2 * a))
		im := math.Sqrt(-d) / (2 * a)

		return Roots{complex(re, im), complex(re, -im)}
	}

	return Roots{}
}

// unsigned maps -0 to +0 so b = 0 does not print as "-0".
func unsigned(x float64) float64 {
	if x == 0 {
		return 0
	}

	return x
}
