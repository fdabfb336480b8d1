// SPDX-License-Identifier: MIT

package distribution

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvsci/stats"
)

// invSqrt2Pi is the normal density normalization 1/√(2π).
const invSqrt2Pi = 0.3989422804014327

// DefaultSeed seeds the random source installed by NewGaussian.
const DefaultSeed = int64(1)

// Uniform draws from [0, 1).
type Uniform func() float64

// Gaussian is N(mean, variance) with a pluggable uniform source.
type Gaussian struct {
	mean     float64
	variance float64
	sigma    float64
	random   Uniform
}

// NewGaussian returns the standard normal N(0, 1) with a source seeded by DefaultSeed.
func NewGaussian() *Gaussian {
	return &Gaussian{
		variance: 1,
		sigma:    1,
		random:   rand.New(rand.NewSource(DefaultSeed)).Float64,
	}
}

// SetMean sets μ.
func (g *Gaussian) SetMean(mean float64) *Gaussian {
	g.mean = mean

	return g
}

// SetVariance sets σ² and derives σ = √σ². A negative variance leaves σ = NaN,
// which then propagates through every method.
func (g *Gaussian) SetVariance(variance float64) *Gaussian {
	g.variance = variance
	g.sigma = math.Sqrt(variance)

	return g
}

// SetRandom installs the uniform source used by Sample. nil restores a
// DefaultSeed source.
func (g *Gaussian) SetRandom(u Uniform) *Gaussian {
	if u == nil {
		u = rand.New(rand.NewSource(DefaultSeed)).Float64
	}
	g.random = u

	return g
}

// Mean returns μ.
func (g *Gaussian) Mean() float64 { return g.mean }

// Variance returns σ².
func (g *Gaussian) Variance() float64 { return g.variance }

// StdDev returns σ.
func (g *Gaussian) StdDev() float64 { return g.sigma }

// Sample draws one value with the polar Box–Muller method:
// x₁, x₂ uniform on (-1, 1), retried until 0 < r = x₁²+x₂² < 1, then
// μ + σ·x₁·√(-2·ln r / r).
func (g *Gaussian) Sample() float64 {
	var x1, x2, rad float64
	for {
		x1 = 2*g.random() - 1
		x2 = 2*g.random() - 1
		rad = x1*x1 + x2*x2
		if rad < 1 && rad != 0 {
			break
		}
	}

	return g.mean + g.sigma*x1*math.Sqrt(-2*math.Log(rad)/rad)
}

// Samples draws n values.
func (g *Gaussian) Samples(n int) []float64 {
	out := make([]float64, max(n, 0))
	for i := range out {
		out[i] = g.Sample()
	}

	return out
}

// PDF is the density at x.
func (g *Gaussian) PDF(x float64) float64 {
	z := (x - g.mean) / g.sigma

	return invSqrt2Pi * math.Exp(-0.5*z*z) / g.sigma
}

// CDF is P(X ≤ x), built on stats.NormalCDF (absolute accuracy about 1e-7).
func (g *Gaussian) CDF(x float64) float64 {
	return stats.NormalCDF((x - g.mean) / g.sigma)
}
