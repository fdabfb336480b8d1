// SPDX-License-Identifier: MIT

package mathx_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/lvsci/mathx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAscending(t *testing.T) {
	s := []float64{3, -1, 2, 2, 0}
	slices.SortFunc(s, mathx.Ascending)
	assert.Equal(t, []float64{-1, 0, 2, 2, 3}, s)
}

func TestExpm1(t *testing.T) {
	for _, x := range []float64{-1, -1e-3, -1e-6, 0, 1e-7, 1e-3, 2} {
		assert.InEpsilon(t, math.Expm1(x)+1, mathx.Expm1(x)+1, 1e-12, "x=%g", x)
	}
	assert.Equal(t, 0.0, mathx.Expm1(0))
}

func TestHypot(t *testing.T) {
	assert.Equal(t, 5.0, mathx.Hypot(3, -4))
	assert.Equal(t, 0.0, mathx.Hypot(0, 0))
	assert.InEpsilon(t, math.Sqrt2*1e300, mathx.Hypot(1e300, 1e300), 1e-15)
}

func TestConstant(t *testing.T) {
	f := mathx.Constant(1.5)
	assert.Equal(t, 1.5, f(nil))
	assert.Equal(t, 1.5, f([]float64{1, 2, 3}))
}

func TestZeros(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, mathx.Zeros(3))
	assert.Empty(t, mathx.Zeros(-2))

	z := mathx.Zeros2D(2, 3)
	z[0][0] = 1
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 0, 0}}, z, "rows must not alias")
}

func TestNDArray(t *testing.T) {
	a, err := mathx.NewNDArray(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 24, a.Len())
	assert.Equal(t, []int{2, 3, 4}, a.Shape())

	v, err := a.At(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	require.NoError(t, a.Set(7, 1, 2, 3))
	v, _ = a.At(1, 2, 3)
	assert.Equal(t, 7.0, v)

	_, err = a.At(2, 0, 0)
	assert.ErrorIs(t, err, mathx.ErrIndex)
	_, err = a.At(0, 0)
	assert.ErrorIs(t, err, mathx.ErrIndex)

	_, err = mathx.NewNDArray()
	assert.ErrorIs(t, err, mathx.ErrBadShape)
	_, err = mathx.NewNDArray(2, 0)
	assert.ErrorIs(t, err, mathx.ErrBadShape)
}
