// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsci/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGaussJordan_SingularRowOfZeros(t *testing.T) {
	m := mustRows(t, [][]float64{
		{1, 2, 3, 1},
		{0, 0, 0, 2},
		{4, 5, 6, 3},
	})
	ok, err := matrix.GaussJordan(m, matrix.DefaultEps)
	require.NoError(t, err)
	assert.False(t, ok, "a zero row must be reported as singular")
}

func TestGaussJordan_NeedsPivoting(t *testing.T) {
	// A zero in the top-left corner is only solvable with a row swap.
	m := mustRows(t, [][]float64{
		{0, 1, 2},
		{1, 0, 3},
	})
	ok, err := matrix.GaussJordan(m, matrix.DefaultEps)
	require.NoError(t, err)
	require.True(t, ok)
	// x = 3, y = 2.
	assert.InDeltaSlice(t, []float64{1, 0, 3, 0, 1, 2}, flatten(m), 1e-12)
}

func TestGaussJordan_BadInput(t *testing.T) {
	_, err := matrix.GaussJordan(nil, matrix.DefaultEps)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	wide := mustRows(t, [][]float64{{1}, {2}})
	_, err = matrix.GaussJordan(wide, matrix.DefaultEps)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverse_IdentityIsFixedPoint(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			I := mustIdentity(t, n)
			inv, err := matrix.Inverse(I)
			require.NoError(t, err)
			requireClose(t, I, inv, 0)
		})
	}
}

func TestInverse_ProductIsIdentity(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			A := randomDiagDominant(t, n, int64(n))
			before := A.ToRows()

			inv, err := matrix.Inverse(A)
			require.NoError(t, err)
			assert.Equal(t, before, A.ToRows(), "Inverse must not mutate its input")

			prod, err := matrix.Mul(A, inv)
			require.NoError(t, err)
			requireClose(t, mustIdentity(t, n), prod, 1e-9)

			// Cross-check against gonum.
			var want mat.Dense
			require.NoError(t, want.Inverse(mat.NewDense(n, n, flatten(A))))
			assert.InDeltaSlice(t, want.RawMatrix().Data, flatten(inv.(*matrix.Dense)), 1e-9)
		})
	}
}

func TestInverse_Errors(t *testing.T) {
	_, err := matrix.Inverse(mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Inverse(mustRows(t, [][]float64{{1, 2}, {2, 4}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSolve(t *testing.T) {
	A := mustRows(t, [][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	})
	x, err := matrix.Solve(hide{A}, []float64{8, -11, -3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3, -1}, x, 1e-12)

	_, err = matrix.Solve(A, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// flatten returns the row-major contents of m.
func flatten(m *matrix.Dense) []float64 {
	var out []float64
	for _, row := range m.ToRows() {
		out = append(out, row...)
	}

	return out
}
