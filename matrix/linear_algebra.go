// SPDX-License-Identifier: MIT

// Elementwise arithmetic, products and transposition over any Matrix.
//
// Every kernel takes a flat-buffer route when all operands are *Dense and an
// At-based route otherwise. Both routes visit elements in the same order, so
// their results are identical. Inputs are never mutated.

package matrix

import "fmt"

// ZeroSum is the initial value of every accumulation.
const ZeroSum = 0.0

// Operation tags used by matrixErrorf.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMatVec      = "MatVec"
	opGaussJordan = "GaussJordan"
	opInverse     = "Inverse"
	opSolve       = "Solve"
	opDet4        = "Determinant4x4"
	opTridiag     = "TridiagonalSolve"
	opAllClose    = "AllClose"
)

// matrixErrorf prefixes err with the operation tag. err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// at reads m[i][j] and annotates a failure with the coordinates.
func at(m Matrix, i, j int) (float64, error) {
	v, err := m.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, err)
	}

	return v, nil
}

// bothDense returns the *Dense views of a and b when both have that type.
func bothDense(a, b Matrix) (*Dense, *Dense, bool) {
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)

	return da, db, okA && okB
}

// combine computes out = a + sign*b; Add and Sub share it.
func combine(a, b Matrix, sign float64, op string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	rows, cols := a.Rows(), a.Cols()
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}

	if da, db, ok := bothDense(a, b); ok {
		for k, av := range da.data {
			out.data[k] = av + sign*db.data[k]
		}

		return out, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, err := at(a, i, j)
			if err != nil {
				return nil, matrixErrorf(op, err)
			}
			bv, err := at(b, i, j)
			if err != nil {
				return nil, matrixErrorf(op, err)
			}
			out.data[i*cols+j] = av + sign*bv
		}
	}

	return out, nil
}

// Add returns A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (Matrix, error) { return combine(a, b, +1, opAdd) }

// Sub returns A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (Matrix, error) { return combine(a, b, -1, opSub) }

// Mul returns the product A × B.
//
// The *Dense route runs i→k→j over the row-major buffers and skips zero
// entries of A; the generic route runs i→j→k through At.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when cols(A) != rows(B); the message names both.
//
// Complexity: O(r·n·c) time, O(r·c) space.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n, inner, m := a.Rows(), a.Cols(), b.Cols()
	out := &Dense{r: n, c: m, data: make([]float64, n*m)}

	if da, db, ok := bothDense(a, b); ok {
		for i := 0; i < n; i++ {
			dst := out.data[i*m : (i+1)*m]
			for k := 0; k < inner; k++ {
				aik := da.data[i*inner+k]
				if aik == 0 {
					continue
				}
				src := db.data[k*m : (k+1)*m]
				for j := range dst {
					dst[j] += aik * src[j]
				}
			}
		}

		return out, nil
	}

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			sum := ZeroSum
			for k := 0; k < inner; k++ {
				aik, err := at(a, i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if aik == 0 {
					continue
				}
				bkj, err := at(b, k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += aik * bkj
			}
			out.data[i*m+j] = sum
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := src.r, src.c
	out := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}
	for i := 0; i < rows; i++ {
		for j, v := range src.data[i*cols : (i+1)*cols] {
			out.data[j*rows+i] = v
		}
	}

	return out, nil
}

// Scale returns alpha·m. NaN and ±Inf propagate.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Dense{r: src.r, c: src.c, data: make([]float64, len(src.data))}
	for k, v := range src.data {
		out.data[k] = alpha * v
	}

	return out, nil
}

// MatVec returns m·x for a column vector x with len(x) == m.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	for i := range y {
		acc := ZeroSum
		for j, v := range d.data[i*d.c : (i+1)*d.c] {
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
