// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
)

// Fence multipliers and the notch constant used for box plots.
const (
	InnerFenceFactor = 1.5
	OuterFenceFactor = 3.0
	NotchFactor      = 1.57
)

// Bounds is a closed interval [Lower, Upper].
type Bounds struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

// Summary holds the box-plot metrics of one sample.
type Summary struct {
	N      int     `yaml:"n"`
	Min    float64 `yaml:"min"`
	Q1     float64 `yaml:"q1"`
	Median float64 `yaml:"median"`
	Mean   float64 `yaml:"mean"`
	Q3     float64 `yaml:"q3"`
	Max    float64 `yaml:"max"`
	IQR    float64 `yaml:"iqr"`
	// InnerFences are the most extreme observed values that still lie inside
	// [Q1-1.5·IQR, Q3+1.5·IQR] (the whisker ends).
	InnerFences Bounds `yaml:"inner_fences"`
	// OuterFences are the theoretical bounds Q1-3·IQR and Q3+3·IQR.
	OuterFences Bounds `yaml:"outer_fences"`
	// Notch is Median ± 1.57·IQR/√n.
	Notch Bounds `yaml:"notch"`
}

// Summarize computes the box-plot metrics of sample with a single sort.
//
// Implementation:
//   - Stage 1: sort a private copy; min/max are its ends.
//   - Stage 2: quartiles via the type-7 rule, IQR = Q3-Q1, Mean via Welford.
//   - Stage 3: inner fences scan the sorted values from each end for the first
//     observation inside the 1.5·IQR bounds, falling back to min/max.
//
// Errors: ErrEmptySample.
// Complexity: O(n log n).
func Summarize(sample []float64) (Summary, error) {
	n := len(sample)
	if n == 0 {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrEmptySample)
	}
	d := sorted(sample)
	s := Summary{
		N:      n,
		Min:    d[0],
		Q1:     quantileSorted(d, 0.25),
		Median: quantileSorted(d, 0.5),
		Mean:   Mean(sample),
		Q3:     quantileSorted(d, 0.75),
		Max:    d[n-1],
	}
	s.IQR = s.Q3 - s.Q1

	lowerLimit := s.Q1 - InnerFenceFactor*s.IQR
	upperLimit := s.Q3 + InnerFenceFactor*s.IQR
	s.InnerFences = Bounds{Lower: s.Min, Upper: s.Max}
	for _, v := range d {
		if v >= lowerLimit {
			s.InnerFences.Lower = v
			break
		}
	}
	for i := n - 1; i >= 0; i-- {
		if d[i] <= upperLimit {
			s.InnerFences.Upper = d[i]
			break
		}
	}

	s.OuterFences = Bounds{
		Lower: s.Q1 - OuterFenceFactor*s.IQR,
		Upper: s.Q3 + OuterFenceFactor*s.IQR,
	}
	half := NotchFactor * s.IQR / math.Sqrt(float64(n))
	s.Notch = Bounds{Lower: s.Median - half, Upper: s.Median + half}

	return s, nil
}

// Outliers returns the values of sample outside the inner fences, in input order.
func (s Summary) Outliers(sample []float64) []float64 {
	var out []float64
	for _, v := range sample {
		if v < s.InnerFences.Lower || v > s.InnerFences.Upper {
			out = append(out, v)
		}
	}

	return out
}
