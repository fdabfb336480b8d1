// SPDX-License-Identifier: MIT

package kde

import "math"

// Kernel is a symmetric unit kernel K(u).
type Kernel func(u float64) float64

const invSqrt2Pi = 0.3989422804014327 // 1/√(2π)

// Epanechnikov is 3/4·(1-u²) on [-1, 1].
func Epanechnikov(u float64) float64 {
	if math.Abs(u) > 1 {
		return 0
	}

	return 0.75 * (1 - u*u)
}

// Gaussian is the standard normal density.
func Gaussian(u float64) float64 { return invSqrt2Pi * math.Exp(-0.5*u*u) }

// Uniform is 1/2 on [-1, 1].
func Uniform(u float64) float64 {
	if math.Abs(u) > 1 {
		return 0
	}

	return 0.5
}

// Triangular is 1-|u| on [-1, 1].
func Triangular(u float64) float64 {
	a := math.Abs(u)
	if a > 1 {
		return 0
	}

	return 1 - a
}

// Quartic (biweight) is 15/16·(1-u²)² on [-1, 1].
func Quartic(u float64) float64 {
	if math.Abs(u) > 1 {
		return 0
	}
	v := 1 - u*u

	return 15.0 / 16.0 * v * v
}

// Triweight is 35/32·(1-u²)³ on [-1, 1].
func Triweight(u float64) float64 {
	if math.Abs(u) > 1 {
		return 0
	}
	v := 1 - u*u

	return 35.0 / 32.0 * v * v * v
}

// Cosine is π/4·cos(πu/2) on [-1, 1].
func Cosine(u float64) float64 {
	if math.Abs(u) > 1 {
		return 0
	}

	return math.Pi / 4 * math.Cos(math.Pi/2*u)
}

var kernelsByName = map[string]Kernel{
	"epanechnikov": Epanechnikov,
	"gaussian":     Gaussian,
	"uniform":      Uniform,
	"triangular":   Triangular,
	"quartic":      Quartic,
	"triweight":    Triweight,
	"cosine":       Cosine,
}

// KernelByName resolves a lower-case kernel name such as "gaussian".
// Errors: ErrUnknownKernel.
func KernelByName(name string) (Kernel, error) {
	k, ok := kernelsByName[name]
	if !ok {
		return nil, kdeErrorf("KernelByName", name, ErrUnknownKernel)
	}

	return k, nil
}
