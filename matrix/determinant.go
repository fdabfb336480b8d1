// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Determinant4x4 returns det(m) for a 4×4 matrix using the closed-form cofactor
// expansion (24 signed products of the flattened row-major entries).
//
// The kernel is intentionally not generalized: any other shape is rejected with
// ErrDimensionMismatch. Use Inverse/Solve for general square systems.
//
// Complexity: O(1) (fixed 24 products).
func Determinant4x4(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDet4, err)
	}
	if m.Rows() != 4 || m.Cols() != 4 {
		return 0, matrixErrorf(opDet4, fmt.Errorf("shape %dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch))
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet4, err)
	}
	a := d.data // a[k] = m[k/4][k%4]

	return a[12]*a[9]*a[6]*a[3] - a[8]*a[13]*a[6]*a[3] -
		a[12]*a[5]*a[10]*a[3] + a[4]*a[13]*a[10]*a[3] +
		a[8]*a[5]*a[14]*a[3] - a[4]*a[9]*a[14]*a[3] -
		a[12]*a[9]*a[2]*a[7] + a[8]*a[13]*a[2]*a[7] +
		a[12]*a[1]*a[10]*a[7] - a[0]*a[13]*a[10]*a[7] -
		a[8]*a[1]*a[14]*a[7] + a[0]*a[9]*a[14]*a[7] +
		a[12]*a[5]*a[2]*a[11] - a[4]*a[13]*a[2]*a[11] -
		a[12]*a[1]*a[6]*a[11] + a[0]*a[13]*a[6]*a[11] +
		a[4]*a[1]*a[14]*a[11] - a[0]*a[5]*a[14]*a[11] -
		a[8]*a[5]*a[2]*a[15] + a[4]*a[9]*a[2]*a[15] +
		a[8]*a[1]*a[6]*a[15] - a[0]*a[9]*a[6]*a[15] -
		a[4]*a[1]*a[10]*a[15] + a[0]*a[5]*a[10]*a[15], nil
}
