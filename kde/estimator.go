// SPDX-License-Identifier: MIT

package kde

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is one (x, density) pair of an evaluated curve.
type Point struct {
	X       float64 `yaml:"x"`
	Density float64 `yaml:"density"`
}

// Estimator holds a kernel, a bandwidth rule and a sample.
// It is not safe for concurrent mutation.
type Estimator struct {
	kernel    Kernel
	bandwidth Rule
	sample    []float64
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithKernel sets the unit kernel (nil keeps the current one).
func WithKernel(k Kernel) Option {
	return func(e *Estimator) {
		if k != nil {
			e.kernel = k
		}
	}
}

// WithBandwidth sets the bandwidth rule (nil keeps the current one).
func WithBandwidth(r Rule) Option {
	return func(e *Estimator) {
		if r != nil {
			e.bandwidth = r
		}
	}
}

// WithSample sets the sample. The slice is not copied; do not mutate it while evaluating.
func WithSample(sample []float64) Option {
	return func(e *Estimator) { e.sample = sample }
}

// New returns an Estimator with the Epanechnikov kernel and the NRD rule,
// then applies opts in order.
func New(opts ...Option) *Estimator {
	e := &Estimator{kernel: Epanechnikov, bandwidth: NRD}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Configure applies opts to e and returns e for chaining.
func (e *Estimator) Configure(opts ...Option) *Estimator {
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Sample returns the configured sample.
func (e *Estimator) Sample() []float64 { return e.sample }

// Bandwidth evaluates the configured rule on the sample.
// Errors: ErrEmptySample, ErrBadBandwidth.
func (e *Estimator) Bandwidth() (float64, error) {
	if len(e.sample) == 0 {
		return 0, kdeErrorf("Bandwidth", "", ErrEmptySample)
	}
	h := e.bandwidth(e.sample)
	if !(h > 0) || math.IsInf(h, 0) {
		return 0, kdeErrorf("Bandwidth", "", ErrBadBandwidth)
	}

	return h, nil
}

func (e *Estimator) density(x, h float64) float64 {
	var y float64
	for _, s := range e.sample {
		y += e.kernel((x - s) / h)
	}

	return y / h / float64(len(e.sample))
}

// Evaluate returns the density estimate at every query point, in query order.
//
// Implementation:
//   - Stage 1: h = rule(sample), computed once per call.
//   - Stage 2: for every x, f̂(x) = Σ K((x - sᵢ)/h) / h / n.
//
// Errors: ErrEmptySample, ErrBadBandwidth.
// Complexity: O(len(points) · n).
func (e *Estimator) Evaluate(points []float64) ([]Point, error) {
	h, err := e.Bandwidth()
	if err != nil {
		return nil, err
	}
	out := make([]Point, len(points))
	for i, x := range points {
		out[i] = Point{X: x, Density: e.density(x, h)}
	}

	return out, nil
}

// Density is Evaluate for a single point.
func (e *Estimator) Density(x float64) (float64, error) {
	h, err := e.Bandwidth()
	if err != nil {
		return 0, err
	}

	return e.density(x, h), nil
}

// Grid returns n evenly spaced points covering [lo, hi] inclusive (n >= 2).
// For n < 2 it returns []float64{lo}.
func Grid(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}

	return floats.Span(make([]float64, n), lo, hi)
}
