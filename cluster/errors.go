// SPDX-License-Identifier: MIT

package cluster

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates no vectors (or zero-length vectors) were supplied.
	ErrEmptyInput = errors.New("cluster: empty input")

	// ErrDimensionMismatch indicates vectors of different lengths.
	ErrDimensionMismatch = errors.New("cluster: vectors differ in length")

	// ErrTooFewDistinct indicates fewer than k distinct vectors exist, so k-means
	// cannot be seeded. It is a recoverable condition: retry with a smaller k.
	ErrTooFewDistinct = errors.New("cluster: fewer distinct vectors than k")

	// ErrBadConfig indicates K < 1, MaxIterations < 1 or a nil distance function.
	ErrBadConfig = errors.New("cluster: invalid configuration")

	// ErrUnknownLinkage is returned by ParseLinkage.
	ErrUnknownLinkage = errors.New("cluster: unknown linkage")
)

func clusterErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// validateVectors checks that vectors is non-empty and rectangular and
// returns the common dimension.
func validateVectors(vectors [][]float64) (int, error) {
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return 0, ErrEmptyInput
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return 0, fmt.Errorf("vector %d has length %d, want %d: %w", i, len(v), dim, ErrDimensionMismatch)
		}
	}

	return dim, nil
}
