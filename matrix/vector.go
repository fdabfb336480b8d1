// SPDX-License-Identifier: MIT
// Package matrix: vector helpers.
//
// Vectors are plain []float64 values. Binary helpers require equal lengths and
// report ErrDimensionMismatch otherwise; nothing here silently truncates.

package matrix

import (
	"fmt"
	"math"
)

const (
	opDot       = "Dot"
	opCross     = "Cross"
	opNormalize = "Normalize"
)

// Dot returns Σ a[i]·b[i].
// Errors: ErrDimensionMismatch when len(a) != len(b).
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, matrixErrorf(opDot, fmt.Errorf("len(a)=%d len(b)=%d: %w", len(a), len(b), ErrDimensionMismatch))
	}

	return dot(a, b), nil
}

// dot is the unchecked kernel behind Dot and Length.
func dot(a, b []float64) float64 {
	s := ZeroSum
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// Cross returns the cross product a × b of two 3-vectors.
// Any other dimension is rejected with ErrDimensionMismatch.
func Cross(a, b []float64) ([]float64, error) {
	if len(a) != 3 || len(b) != 3 {
		return nil, matrixErrorf(opCross, fmt.Errorf("len(a)=%d len(b)=%d, want 3: %w", len(a), len(b), ErrDimensionMismatch))
	}

	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}, nil
}

// Length returns the Euclidean norm √(p·p). The empty vector has length 0.
func Length(p []float64) float64 {
	return math.Sqrt(dot(p, p))
}

// Normalize returns p / Length(p) as a new slice.
// Errors: ErrZeroVector when the length is 0 (the caller decides the fallback).
func Normalize(p []float64) ([]float64, error) {
	l := Length(p)
	if l == 0 {
		return nil, matrixErrorf(opNormalize, ErrZeroVector)
	}
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = v / l
	}

	return out, nil
}
