// SPDX-License-Identifier: MIT

// Package loess implements robust locally weighted linear regression (LOESS)
// over strictly increasing abscissae.
//
// Algorithm Outline:
//  1. bandwidthInPoints = ⌊Bandwidth·n⌋ neighbours form a sliding interval that
//     advances monotonically with i (zero-weight points are skipped).
//  2. For each i, fit y ≈ α + βx by least squares weighted with
//     tricube(dist/maxDist) · robustness weight · user weight.
//     If the weighted spread of x is below Accuracy, β is forced to 0.
//  3. Between passes, robustness weights become bisquare(rᵢ / (6·median|r|)).
//     A median residual below Accuracy means a perfect fit and stops early.
//  4. RobustnessIters+1 passes run in total; the first uses unit robustness weights.
//
// Complexity:
//
//	Time   = O(passes · n · bandwidthInPoints)
//	Memory = O(n)
//
// Errors:
//   - ErrLengthMismatch, ErrEmpty, ErrNonFinite, ErrNotIncreasing: structural input problems.
//   - ErrBandwidthTooSmall: fewer than two points per neighbourhood.
//   - ErrBadOptions: Bandwidth ∉ (0, 1], negative RobustnessIters, bad Accuracy.
package loess
