// SPDX-License-Identifier: MIT

package mathx

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when an NDArray shape is empty or has a non-positive extent.
	ErrBadShape = errors.New("mathx: invalid shape")

	// ErrIndex is returned when a multi-index has the wrong rank or is out of range.
	ErrIndex = errors.New("mathx: index out of range")
)

// Zeros returns a zero-filled slice of length n (n < 0 is treated as 0).
func Zeros(n int) []float64 {
	if n < 0 {
		n = 0
	}

	return make([]float64, n)
}

// Zeros2D returns rows independent zero-filled row slices of length cols.
func Zeros2D(rows, cols int) [][]float64 {
	if rows < 0 {
		rows = 0
	}
	out := make([][]float64, rows)
	for i := range out {
		out[i] = Zeros(cols)
	}

	return out
}

// NDArray is a zero-initialized N-dimensional array over a flat row-major buffer.
// The last axis varies fastest, matching matrix.Dense for the 2-D case.
type NDArray struct {
	shape   []int
	strides []int
	data    []float64
}

// NewNDArray allocates an array with the given extents, all elements zero.
// Errors: ErrBadShape when no extent is given or any extent is <= 0.
func NewNDArray(shape ...int) (*NDArray, error) {
	if len(shape) == 0 {
		return nil, ErrBadShape
	}
	strides := make([]int, len(shape))
	size := 1
	for k := len(shape) - 1; k >= 0; k-- {
		if shape[k] <= 0 {
			return nil, fmt.Errorf("axis %d extent %d: %w", k, shape[k], ErrBadShape)
		}
		strides[k] = size
		size *= shape[k]
	}

	return &NDArray{
		shape:   append([]int(nil), shape...),
		strides: strides,
		data:    make([]float64, size),
	}, nil
}

// Shape returns a copy of the extents.
func (a *NDArray) Shape() []int { return append([]int(nil), a.shape...) }

// Len returns the total number of elements.
func (a *NDArray) Len() int { return len(a.data) }

func (a *NDArray) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("rank %d, want %d: %w", len(idx), len(a.shape), ErrIndex)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, fmt.Errorf("axis %d index %d: %w", k, i, ErrIndex)
		}
		off += i * a.strides[k]
	}

	return off, nil
}

// At returns the element at the multi-index idx.
func (a *NDArray) At(idx ...int) (float64, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, err
	}

	return a.data[off], nil
}

// Set stores v at the multi-index idx.
func (a *NDArray) Set(v float64, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}
