// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"math/rand"
	"testing"

	mstats "github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsci/stats"
)

func TestQuantile_FiveNumbers(t *testing.T) {
	s := []float64{5, 1, 4, 2, 3}
	assert.Equal(t, 3.0, stats.Median(s))
	assert.Equal(t, 2.0, stats.Quantile(s, 0.25))
	assert.Equal(t, 4.0, stats.Quantile(s, 0.75))
	assert.Equal(t, 2.0, stats.IQR(s))
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, s, "input must not be reordered")
}

func TestQuantile_Type7Interpolation(t *testing.T) {
	s := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	cases := []struct {
		q, want float64
	}{
		{0.1, 1.9},
		{0.25, 3.25},
		{0.5, 5.5},
		{0.9, 9.1},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, stats.Quantile(s, tc.q), 1e-12, "q=%g", tc.q)
	}
}

func TestQuantile_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(50)
		s := make([]float64, n)
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := range s {
			s[i] = rng.NormFloat64() * 10
			lo, hi = math.Min(lo, s[i]), math.Max(hi, s[i])
		}
		assert.Equal(t, lo, stats.Quantile(s, 0))
		assert.Equal(t, hi, stats.Quantile(s, 1))
	}
}

func TestQuantiles_AgreesWithQuantile(t *testing.T) {
	s := []float64{3.1, -2, 8, 8, 0.5, 13, 7.25}
	qs := []float64{0, 0.1, 0.25, 0.5, 0.66, 0.75, 1}
	got := stats.Quantiles(s, qs)
	require.Len(t, got, len(qs))
	for i, q := range qs {
		assert.Equal(t, stats.Quantile(s, q), got[i], "q=%g", q)
	}
}

func TestQuantile_Degenerate(t *testing.T) {
	assert.True(t, math.IsNaN(stats.Quantile(nil, 0.5)))
	assert.True(t, math.IsNaN(stats.Median([]float64{})))
	assert.True(t, math.IsNaN(stats.Quantile([]float64{1, 2}, 1.5)))
	assert.True(t, math.IsNaN(stats.Quantile([]float64{1, 2}, -0.1)))
	for _, v := range stats.Quantiles(nil, []float64{0.2, 0.8}) {
		assert.True(t, math.IsNaN(v))
	}
	assert.Equal(t, 4.0, stats.Quantile([]float64{4}, 0.3))
}

func TestMedian_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{1, 2, 5, 10, 101} {
		s := make([]float64, n)
		for i := range s {
			s[i] = rng.Float64() * 100
		}
		want, err := mstats.Median(s)
		require.NoError(t, err)
		assert.InDelta(t, want, stats.Median(s), 1e-12, "n=%d", n)
	}
}
