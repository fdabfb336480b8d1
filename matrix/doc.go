// SPDX-License-Identifier: MIT

// Package matrix is the linear-algebra kernel of lvsci.
//
// What & Why:
//
//	The package offers a small, deliberately scoped set of dense kernels that the
//	statistical packages (loess, cluster) and callers need: row-major *Dense storage
//	behind the Matrix interface, element-wise Add/Sub/Scale, Mul, Transpose, MatVec,
//	Gauss-Jordan elimination with partial pivoting, Gauss-Jordan Inverse and Solve,
//	a closed-form 4×4 determinant, the Thomas algorithm for tridiagonal systems and
//	a handful of vector helpers (Dot, Cross, Length, Normalize).
//
//	It is NOT a general dense linear-algebra library: no LU/QR/eigen solvers, no
//	sparse formats, no BLAS bindings.
//
// Error policy:
//
//   - Structural problems (nil input, bad shape, dimension mismatch) are returned as
//     package sentinels wrapped with the operation tag ("Mul: matrix: dimension mismatch").
//     Match them with errors.Is.
//   - Numeric degeneracy is recoverable: GaussJordan reports false, Inverse/Solve
//     return ErrSingular, Normalize returns ErrZeroVector. Nothing panics on user input.
//
// Complexity:
//
//	Rows/Cols/At/Set: O(1). Clone/Transpose/Add: O(r*c). Mul: O(r*n*c).
//	GaussJordan/Inverse: O(n^3). TridiagonalSolve: O(n).
package matrix
