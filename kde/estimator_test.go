// SPDX-License-Identifier: MIT

package kde_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsci/kde"
)

func TestNRD_Formula(t *testing.T) {
	s := []float64{1, 2, 3, 4, 5}
	// σ = √2.5 ≈ 1.581, IQR/1.34 ≈ 1.4925 → the IQR term wins.
	want := 1.06 * (2 / 1.34) * math.Pow(5, -0.2)
	assert.InDelta(t, want, kde.NRD(s), 1e-12)
	assert.InDelta(t, want*0.9/1.06, kde.NRD0(s), 1e-12)
}

func TestNRD_IQRCollapseFallsBackToStdDev(t *testing.T) {
	s := []float64{0, 5, 5, 5, 5, 5, 5, 10}
	// Q1 == Q3 == 5, so σ is used.
	sd := math.Sqrt(50.0 / 7.0)
	assert.InDelta(t, 1.06*sd*math.Pow(8, -0.2), kde.NRD(s), 1e-12)
}

func TestNRD_Floor(t *testing.T) {
	assert.Equal(t, kde.MinBandwidth, kde.NRD([]float64{3, 3, 3}))
	assert.Equal(t, kde.MinBandwidth, kde.NRD([]float64{3}))
}

func TestRuleByName(t *testing.T) {
	r, err := kde.RuleByName("nrd0")
	require.NoError(t, err)
	assert.Equal(t, kde.NRD0([]float64{1, 2, 3}), r([]float64{1, 2, 3}))

	_, err = kde.RuleByName("scott")
	assert.ErrorIs(t, err, kde.ErrUnknownRule)
}

func TestEvaluate_MatchesDirectSum(t *testing.T) {
	sample := []float64{-1, 0, 0.5, 2}
	e := kde.New(kde.WithSample(sample), kde.WithBandwidth(kde.Fixed(1.5)))
	points := []float64{3, -2, 0.25}

	got, err := e.Evaluate(points)
	require.NoError(t, err)
	require.Len(t, got, len(points))
	for i, x := range points {
		var want float64
		for _, s := range sample {
			want += kde.Epanechnikov((x - s) / 1.5)
		}
		want /= 1.5 * float64(len(sample))
		assert.Equal(t, x, got[i].X, "query order preserved")
		assert.InDelta(t, want, got[i].Density, 1e-15)
	}
}

func TestEvaluate_IntegratesToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	sample := make([]float64, 200)
	for i := range sample {
		sample[i] = rng.NormFloat64()
	}
	for _, k := range []kde.Kernel{kde.Epanechnikov, kde.Gaussian, kde.Triweight} {
		e := kde.New(kde.WithSample(sample), kde.WithKernel(k))
		grid := kde.Grid(-10, 10, 4001)
		curve, err := e.Evaluate(grid)
		require.NoError(t, err)
		var mass float64
		dx := grid[1] - grid[0]
		for _, p := range curve {
			assert.GreaterOrEqual(t, p.Density, 0.0)
			mass += p.Density * dx
		}
		assert.InDelta(t, 1.0, mass, 1e-3)
	}
}

func TestDensity_AgreesWithEvaluate(t *testing.T) {
	e := kde.New(kde.WithSample([]float64{1, 1.5, 4}), kde.WithKernel(kde.Gaussian))
	d, err := e.Density(2)
	require.NoError(t, err)
	curve, err := e.Evaluate([]float64{2})
	require.NoError(t, err)
	assert.Equal(t, curve[0].Density, d)
}

func TestEstimator_Errors(t *testing.T) {
	_, err := kde.New().Evaluate([]float64{0})
	assert.ErrorIs(t, err, kde.ErrEmptySample)

	e := kde.New(kde.WithSample([]float64{1, 2}), kde.WithBandwidth(kde.Fixed(0)))
	_, err = e.Evaluate([]float64{0})
	assert.ErrorIs(t, err, kde.ErrBadBandwidth)

	e.Configure(kde.WithBandwidth(kde.Fixed(math.NaN())))
	_, err = e.Density(0)
	assert.ErrorIs(t, err, kde.ErrBadBandwidth)
}

func TestGrid(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, kde.Grid(0, 1, 3))
	assert.Equal(t, []float64{4}, kde.Grid(4, 9, 1))
}
