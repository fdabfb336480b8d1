// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Gauss-Jordan elimination with partial pivoting on an exclusively owned *Dense.
//   - Inverse and Solve as thin compositions: augment → eliminate → strip.
//
// Determinism & Policy:
//   - Pivot search scans rows below the pivot row top-down; the first row holding the
//     strictly largest |value| wins.
//   - Singularity (|pivot| <= eps) is a recoverable condition: GaussJordan reports false,
//     Inverse/Solve return ErrSingular. No garbage result is ever returned.

package matrix

import (
	"fmt"
	"math"
)

// DefaultEps is the default singularity tolerance for GaussJordan, Inverse and Solve.
const DefaultEps = 1e-10

// GaussJordan performs in-place Gauss-Jordan elimination on the augmented matrix m
// (h rows, w >= h columns) and reports whether every pivot was usable.
//
// Implementation:
//   - Stage 1 (Forward): for every pivot row y pick the row in [y, h) with the largest
//     |m[row][y]|, swap it into place, fail if |m[y][y]| <= eps, then eliminate column y
//     from all rows below.
//   - Stage 2 (Back-substitute): for y = h-1..0 clear column y from the rows above,
//     then normalize row y so the left h×h block becomes the identity.
//
// Behavior highlights:
//   - On success the right block (columns h..w-1) holds A⁻¹·B for the augmented [A|B].
//   - On a singular pivot the function stops immediately and returns (false, nil);
//     m is left partially reduced and must be treated as scratch.
//
// Inputs:
//   - m  : non-nil *Dense with Cols() >= Rows(); mutated in place.
//   - eps: pivot tolerance (use DefaultEps when unsure); must be finite and >= 0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (w < h), ErrNaNInf (bad eps).
//
// Complexity:
//   - Time O(h^2 * w), Space O(1) extra.
func GaussJordan(m *Dense, eps float64) (bool, error) {
	if m == nil {
		return false, matrixErrorf(opGaussJordan, ErrNilMatrix)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return false, matrixErrorf(opGaussJordan, ErrNaNInf)
	}
	h, w := m.r, m.c
	if w < h {
		return false, matrixErrorf(opGaussJordan, fmt.Errorf("columns=%d < rows=%d: %w", w, h, ErrDimensionMismatch))
	}

	var (
		y, y2, x int     // pivot row, scanned row, column
		maxRow   int     // row holding the best pivot candidate
		c        float64 // elimination factor / pivot value
		data     = m.data
	)
	for y = 0; y < h; y++ {
		// Find max pivot.
		maxRow = y
		for y2 = y + 1; y2 < h; y2++ {
			if math.Abs(data[y2*w+y]) > math.Abs(data[maxRow*w+y]) {
				maxRow = y2
			}
		}
		m.swapRows(y, maxRow)

		// Singular?
		if math.Abs(data[y*w+y]) <= eps {
			return false, nil
		}

		// Eliminate column y below the pivot.
		for y2 = y + 1; y2 < h; y2++ {
			c = data[y2*w+y] / data[y*w+y]
			for x = y; x < w; x++ {
				data[y2*w+x] -= data[y*w+x] * c
			}
		}
	}

	// Back-substitute.
	for y = h - 1; y >= 0; y-- {
		c = data[y*w+y]
		for y2 = 0; y2 < y; y2++ {
			// x runs right-to-left so m[y2][y] is consumed last.
			for x = w - 1; x >= y; x-- {
				data[y2*w+x] -= data[y*w+x] * data[y2*w+y] / c
			}
		}
		data[y*w+y] /= c
		// Normalize row y (right block).
		for x = h; x < w; x++ {
			data[y*w+x] /= c
		}
	}

	return true, nil
}

// augment builds the h×(h+extra) scratch matrix [A | B] where B is produced by fill.
// The scratch buffer is owned by the caller for the lifetime of one operation.
func augment(a Matrix, extra int, fill func(i int, row []float64)) (*Dense, error) {
	src, err := toDense(a)
	if err != nil {
		return nil, err
	}
	n := src.r
	w := n + extra
	aug := &Dense{r: n, c: w, data: make([]float64, n*w)}
	for i := 0; i < n; i++ {
		copy(aug.data[i*w:i*w+n], src.data[i*n:(i+1)*n])
		fill(i, aug.data[i*w+n:(i+1)*w])
	}

	return aug, nil
}

// Inverse returns A⁻¹ computed by Gauss-Jordan elimination on [A | I].
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: build the n×2n scratch [A | I]; the input is never mutated.
//   - Stage 3: GaussJordan with DefaultEps; on failure return ErrSingular.
//   - Stage 4: copy the right n×n block into the result.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	aug, err := augment(m, n, func(i int, row []float64) { row[i] = 1.0 })
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	ok, err := GaussJordan(aug, DefaultEps)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if !ok {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	// Remove the identity block to get A⁻¹.
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	w := 2 * n
	for i := 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug.data[i*w+n:(i+1)*w])
	}

	return inv, nil
}

// Solve returns x such that A·x = b, using Gauss-Jordan elimination on [A | b].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != rows), ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	aug, err := augment(a, 1, func(i int, row []float64) { row[0] = b[i] })
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	ok, err := GaussJordan(aug, DefaultEps)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if !ok {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = aug.data[i*(n+1)+n]
	}

	return x, nil
}
