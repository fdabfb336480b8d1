// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm returns these sentinels (optionally wrapped with an operation
// tag via matrixErrorf) and tests check them with errors.Is.

package matrix

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch -> numeric degeneracy.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add of different shapes, Mul where a.Cols != b.Rows, ragged rows,
	// Cross on non-3-vectors or Determinant4x4 on anything but 4×4.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf tolerance where a finite value is required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when Gauss-Jordan elimination meets a pivot whose
	// magnitude is within eps of zero (Inverse, Solve).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrZeroVector is returned by Normalize for a vector of zero length.
	ErrZeroVector = errors.New("matrix: zero-length vector")
)
