// SPDX-License-Identifier: MIT

package loess

import (
	"errors"
	"fmt"
	"math"
)

// Default configuration values.
const (
	DefaultBandwidth       = 0.3
	DefaultRobustnessIters = 2
	DefaultAccuracy        = 1e-12
)

var (
	// ErrLengthMismatch indicates x, y (and weights when given) differ in length.
	ErrLengthMismatch = errors.New("loess: mismatched sequence lengths")

	// ErrEmpty indicates no points were supplied.
	ErrEmpty = errors.New("loess: at least one point required")

	// ErrNonFinite indicates a NaN or ±Inf in x, y or weights.
	ErrNonFinite = errors.New("loess: non-finite value")

	// ErrNotIncreasing indicates x is not strictly increasing.
	ErrNotIncreasing = errors.New("loess: x must be strictly increasing")

	// ErrBandwidthTooSmall indicates ⌊Bandwidth·n⌋ < 2.
	ErrBandwidthTooSmall = errors.New("loess: bandwidth too small")

	// ErrBadOptions indicates an invalid Options value.
	ErrBadOptions = errors.New("loess: invalid options")
)

// Options configures a LOESS fit. The zero value is not valid; use DefaultOptions.
type Options struct {
	// Bandwidth is the fraction of points in each local neighbourhood, in (0, 1].
	Bandwidth float64 `yaml:"bandwidth"`

	// RobustnessIters is the number of reweighting passes after the initial fit.
	RobustnessIters int `yaml:"robustness_iters"`

	// Accuracy is the threshold below which the x spread or the median residual
	// is treated as zero.
	Accuracy float64 `yaml:"accuracy"`
}

// DefaultOptions returns {Bandwidth: 0.3, RobustnessIters: 2, Accuracy: 1e-12}.
func DefaultOptions() Options {
	return Options{
		Bandwidth:       DefaultBandwidth,
		RobustnessIters: DefaultRobustnessIters,
		Accuracy:        DefaultAccuracy,
	}
}

// Validate reports ErrBadOptions for out-of-range fields.
func (o Options) Validate() error {
	switch {
	case !(o.Bandwidth > 0 && o.Bandwidth <= 1):
		return fmt.Errorf("bandwidth=%g: %w", o.Bandwidth, ErrBadOptions)
	case o.RobustnessIters < 0:
		return fmt.Errorf("robustness iterations=%d: %w", o.RobustnessIters, ErrBadOptions)
	case !(o.Accuracy >= 0) || math.IsInf(o.Accuracy, 0):
		return fmt.Errorf("accuracy=%g: %w", o.Accuracy, ErrBadOptions)
	}

	return nil
}
