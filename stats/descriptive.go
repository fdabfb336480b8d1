// SPDX-License-Identifier: MIT

package stats

import "math"

// Mean returns the arithmetic mean using Welford's running recurrence
// m += (x[i]-m)/(i+1). Empty sample → NaN.
func Mean(sample []float64) float64 {
	if len(sample) == 0 {
		return math.NaN()
	}
	var m float64
	for i, x := range sample {
		m += (x - m) / float64(i+1)
	}

	return m
}

// Variance returns the unbiased sample variance (denominator n-1).
// n == 0 → NaN; n == 1 → exactly 0.
func Variance(sample []float64) float64 {
	n := len(sample)
	switch n {
	case 0:
		return math.NaN()
	case 1:
		return 0
	}
	m := Mean(sample)
	var s, v float64
	for _, x := range sample {
		v = x - m
		s += v * v
	}

	return s / float64(n-1)
}

// StdDev is the square root of Variance.
func StdDev(sample []float64) float64 { return math.Sqrt(Variance(sample)) }

// Mode returns the value with the highest frequency and ok == true, but only when
// exactly one value attains that frequency. Ties and empty samples return (NaN, false);
// ties are reported, not broken.
func Mode(sample []float64) (float64, bool) {
	if len(sample) == 0 {
		return math.NaN(), false
	}
	counts := make(map[float64]int, len(sample))
	var (
		best  float64
		peak  int
		peaks int
	)
	for _, x := range sample {
		counts[x]++
		k := counts[x]
		switch {
		case k > peak:
			peak, best, peaks = k, x, 1
		case k == peak:
			peaks++
		}
	}
	if peaks != 1 {
		return math.NaN(), false
	}

	return best, true
}
