// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvsci/mathx"
)

// sorted returns an ascending copy of sample. The input is left untouched.
func sorted(sample []float64) []float64 {
	d := slices.Clone(sample)
	slices.SortFunc(d, mathx.Ascending)

	return d
}

// quantileSorted evaluates the type-7 quantile on an already sorted, non-empty slice.
func quantileSorted(d []float64, q float64) float64 {
	n1 := len(d) - 1
	switch {
	case math.IsNaN(q) || q < 0 || q > 1:
		return math.NaN()
	case q == 0:
		return d[0]
	case q == 1:
		return d[n1]
	}

	index := 1 + q*float64(n1) // 1-based position
	lo := int(math.Floor(index))
	h := index - float64(lo)
	a := d[lo-1]
	if h == 0 {
		return a
	}

	return a + h*(d[lo]-a)
}

// Quantile returns the q-th sample quantile (R type 7) for q in [0, 1].
//
// Implementation:
//   - Stage 1: sort a private copy ascending.
//   - Stage 2: q == 0 and q == 1 return min/max directly; otherwise
//     index = 1 + q·(n-1), lo = ⌊index⌋, and the result interpolates linearly
//     between the lo-th and (lo+1)-th order statistics.
//
// Returns NaN for an empty sample or q outside [0, 1].
// Complexity: O(n log n).
func Quantile(sample []float64, q float64) float64 {
	if len(sample) == 0 {
		return math.NaN()
	}

	return quantileSorted(sorted(sample), q)
}

// Quantiles evaluates every q in qs from a single sort of sample.
// The result has len(qs) entries in the order of qs; all NaN for an empty sample.
// Complexity: O(n log n + len(qs)).
func Quantiles(sample []float64, qs []float64) []float64 {
	out := make([]float64, len(qs))
	if len(sample) == 0 {
		for i := range out {
			out[i] = math.NaN()
		}

		return out
	}
	d := sorted(sample)
	for i, q := range qs {
		out[i] = quantileSorted(d, q)
	}

	return out
}

// Median is Quantile(sample, 0.5).
func Median(sample []float64) float64 { return Quantile(sample, 0.5) }

// IQR is the interquartile range Q3 - Q1, computed from one sort.
func IQR(sample []float64) float64 {
	q := Quantiles(sample, []float64{0.25, 0.75})

	return q[1] - q[0]
}
