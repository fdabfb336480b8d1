// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// TridiagonalSolve solves the n×n tridiagonal system T·x = d with the Thomas algorithm.
//
//	a: sub-diagonal   (a[0] is ignored)
//	b: main diagonal
//	c: super-diagonal (c[n-1] is ignored)
//	d: right-hand side
//
// Implementation:
//   - Stage 1: copy b and d (inputs are never mutated).
//   - Stage 2: forward sweep folding a[i] into b[i] and d[i] with m = a[i]/b[i-1].
//   - Stage 3: back-substitution x[n-1] = d[n-1]/b[n-1], x[i] = (d[i] - c[i]·x[i+1]) / b[i].
//
// No pivoting is performed. Non-zero pivots are a caller precondition, normally met by
// diagonally dominant systems; a zero pivot surfaces as ±Inf/NaN in x rather than an error.
//
// Errors:
//   - ErrInvalidDimensions when n == 0; ErrDimensionMismatch when the four lengths differ.
//
// Complexity: Time O(n), Space O(n).
func TridiagonalSolve(a, b, c, d []float64) ([]float64, error) {
	n := len(b)
	if n == 0 {
		return nil, matrixErrorf(opTridiag, ErrInvalidDimensions)
	}
	if len(a) != n || len(c) != n || len(d) != n {
		return nil, matrixErrorf(opTridiag, fmt.Errorf("len(a)=%d len(b)=%d len(c)=%d len(d)=%d: %w",
			len(a), n, len(c), len(d), ErrDimensionMismatch))
	}

	bb := append([]float64(nil), b...) // private diagonal
	dd := append([]float64(nil), d...) // private right-hand side

	var m float64
	for i := 1; i < n; i++ {
		m = a[i] / bb[i-1]
		bb[i] -= m * c[i-1]
		dd[i] -= m * dd[i-1]
	}

	x := make([]float64, n)
	x[n-1] = dd[n-1] / bb[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = (dd[i] - c[i]*x[i+1]) / bb[i]
	}

	return x, nil
}
