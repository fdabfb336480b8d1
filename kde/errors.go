// SPDX-License-Identifier: MIT

package kde

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySample is returned when the estimator has no sample to smooth.
	ErrEmptySample = errors.New("kde: empty sample")

	// ErrBadBandwidth is returned when a Rule yields a non-positive or non-finite width.
	ErrBadBandwidth = errors.New("kde: bandwidth must be finite and > 0")

	// ErrUnknownKernel is returned by KernelByName for unrecognized names.
	ErrUnknownKernel = errors.New("kde: unknown kernel")

	// ErrUnknownRule is returned by RuleByName for unrecognized names.
	ErrUnknownRule = errors.New("kde: unknown bandwidth rule")
)

func kdeErrorf(op, detail string, err error) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s(%s): %w", op, detail, err)
}
