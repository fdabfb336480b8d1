// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvsci/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub_FastAndFallbackAgree(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]float64{{6, 5, 4}, {3, 2, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	sumSlow, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	requireClose(t, sum, sumSlow, 0)
	assert.Equal(t, [][]float64{{7, 7, 7}, {7, 7, 7}}, sum.(*matrix.Dense).ToRows())

	diff, err := matrix.Sub(a, hide{b})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-5, -3, -1}, {1, 3, 5}}, diff.(*matrix.Dense).ToRows())
}

func TestAdd_DimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	b, _ := matrix.NewDense(3, 2)
	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_Product(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, want, got.(*matrix.Dense).ToRows())

	gotSlow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	assert.Equal(t, want, gotSlow.(*matrix.Dense).ToRows())
}

func TestMul_DimensionMismatchMessage(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 3)
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "columns(a)=3 != rows(b)=2")
}

func TestTranspose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	got, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, want, got.(*matrix.Dense).ToRows())

	got, err = matrix.Transpose(hide{a})
	require.NoError(t, err)
	assert.Equal(t, want, got.(*matrix.Dense).ToRows())
}

func TestScaleAndMatVec(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	s, err := matrix.Scale(hide{a}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 4}, {6, 8}}, s.(*matrix.Dense).ToRows())

	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	_, err = matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
