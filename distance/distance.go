// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Func measures the dissimilarity of two vectors.
type Func func(a, b []float64) float64

// ErrUnknownMetric is returned by ByName for unrecognized metric names.
var ErrUnknownMetric = errors.New("distance: unknown metric")

// Euclidean is the L2 distance.
func Euclidean(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}

	return floats.Distance(a, b, 2)
}

// EuclideanSquared is the squared L2 distance (no square root).
func EuclideanSquared(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}
	var s, d float64
	for i := range a {
		d = a[i] - b[i]
		s += d * d
	}

	return s
}

// Manhattan is the L1 distance.
func Manhattan(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}

	return floats.Distance(a, b, 1)
}

// Chebyshev is the L∞ distance.
func Chebyshev(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}

	return floats.Distance(a, b, math.Inf(1))
}

// Minkowski returns the Lp distance for p >= 1.
func Minkowski(p float64) Func {
	return func(a, b []float64) float64 {
		if len(a) != len(b) || p < 1 {
			return math.NaN()
		}

		return floats.Distance(a, b, p)
	}
}

// Cosine is 1 - cos(a, b). Two zero vectors are at distance 0; one zero vector
// against a non-zero one is at distance 1.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	switch {
	case na == 0 && nb == 0:
		return 0
	case na == 0 || nb == 0:
		return 1
	}

	return 1 - floats.Dot(a, b)/(na*nb)
}

// Hamming counts the components that differ.
func Hamming(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}
	var n int
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}

	return float64(n)
}

// Jaccard is the weighted Jaccard distance 1 - Σmin(aᵢ,bᵢ)/Σmax(aᵢ,bᵢ)
// for non-negative vectors. Two all-zero vectors are at distance 0.
func Jaccard(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}
	var lo, hi float64
	for i := range a {
		lo += math.Min(a[i], b[i])
		hi += math.Max(a[i], b[i])
	}
	if hi == 0 {
		return 0
	}

	return 1 - lo/hi
}

// BrayCurtis is Σ|aᵢ-bᵢ| / Σ|aᵢ+bᵢ|. Two all-zero vectors are at distance 0.
func BrayCurtis(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}
	var den float64
	for i := range a {
		den += math.Abs(a[i] + b[i])
	}
	if den == 0 {
		return 0
	}

	return floats.Distance(a, b, 1) / den
}

// ByName resolves a metric name: euclidean, sqeuclidean, manhattan, chebyshev,
// cosine, hamming, jaccard, braycurtis or dtw (with DefaultDTWOptions).
func ByName(name string) (Func, error) {
	switch name {
	case "", "euclidean":
		return Euclidean, nil
	case "sqeuclidean":
		return EuclideanSquared, nil
	case "manhattan":
		return Manhattan, nil
	case "chebyshev":
		return Chebyshev, nil
	case "cosine":
		return Cosine, nil
	case "hamming":
		return Hamming, nil
	case "jaccard":
		return Jaccard, nil
	case "braycurtis":
		return BrayCurtis, nil
	case "dtw":
		return DTW(DefaultDTWOptions()), nil
	}

	return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownMetric)
}
