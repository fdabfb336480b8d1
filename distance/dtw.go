// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"math"
)

// DTW: Dynamic Time Warping
//
// Algorithm Outline:
//  1. Let n = len(a), m = len(b). D[0][0] = 0, D[i][0] = D[0][j] = +∞.
//  2. For i = 1..n, j = 1..m with |i-j| ≤ Window (when Window >= 0):
//     D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j]+SlopePenalty,
//     D[i][j-1]+SlopePenalty, D[i-1][j-1]).
//  3. distance = D[n][m]; +∞ when the window makes (n, m) unreachable.
//
// Memory:
//   - TwoRows keeps only the previous and current row: O(m).
//   - FullMatrix keeps D and allows path recovery: O(n·m).
var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("distance: dtw input sequences must be non-empty")

	// ErrBadWindow indicates Window < -1.
	ErrBadWindow = errors.New("distance: dtw window must be >= -1")

	// ErrPathNeedsMatrix indicates ReturnPath was requested without FullMatrix.
	ErrPathNeedsMatrix = errors.New("distance: dtw path recovery requires FullMatrix")
)

// MemoryMode selects how DTWDistance stores its DP table.
type MemoryMode int

const (
	// TwoRows keeps two rows; the warping path cannot be recovered.
	TwoRows MemoryMode = iota

	// FullMatrix keeps the whole (n+1)×(m+1) table.
	FullMatrix
)

// DTWOptions configures Dynamic Time Warping.
//
// Fields:
//   - Window: Sakoe–Chiba band |i-j| ≤ Window; -1 disables the band.
//   - SlopePenalty: added to every insertion/deletion step.
//   - ReturnPath: backtrack the optimal alignment (needs FullMatrix).
//   - MemoryMode: TwoRows or FullMatrix.
type DTWOptions struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultDTWOptions returns an unconstrained, penalty-free, distance-only configuration.
func DefaultDTWOptions() DTWOptions {
	return DTWOptions{Window: -1, MemoryMode: TwoRows}
}

// DTW adapts DTWDistance to a Func for clustering. Invalid inputs yield NaN.
func DTW(opts DTWOptions) Func {
	opts.ReturnPath = false
	opts.MemoryMode = TwoRows

	return func(a, b []float64) float64 {
		d, _, err := DTWDistance(a, b, &opts)
		if err != nil {
			return math.NaN()
		}

		return d
	}
}

// DTWDistance computes the DTW distance between a and b and, when requested,
// the optimal warping path as (i, j) index pairs from (0, 0) to (n-1, m-1).
// A nil opts means DefaultDTWOptions().
//
// Errors: ErrEmptySequence, ErrBadWindow, ErrPathNeedsMatrix.
// Complexity: Time O(n·m); Memory O(m) or O(n·m).
func DTWDistance(a, b []float64, opts *DTWOptions) (float64, [][2]int, error) {
	o := DefaultDTWOptions()
	if opts != nil {
		o = *opts
	}
	n, m := len(a), len(b)
	switch {
	case n == 0 || m == 0:
		return 0, nil, ErrEmptySequence
	case o.Window < -1:
		return 0, nil, ErrBadWindow
	case o.ReturnPath && o.MemoryMode != FullMatrix:
		return 0, nil, ErrPathNeedsMatrix
	}

	inf := math.Inf(1)
	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for r := range dp {
		dp[r] = make([]float64, m+1)
	}
	row := func(i int) []float64 {
		if o.MemoryMode == FullMatrix {
			return dp[i]
		}

		return dp[i%2]
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		curr, prev := row(i), row(i-1)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if o.Window >= 0 && absInt(i-j) > o.Window {
				curr[j] = inf
				continue
			}
			best := math.Min(math.Min(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty), prev[j-1])
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}
	dist := row(n)[m]
	if !o.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	return dist, backtrack(dp, n, m, o.SlopePenalty), nil
}

// backtrack walks the full DP table from (n, m) to (1, 1), preferring the
// diagonal on ties, and returns the path in forward order.
func backtrack(dp [][]float64, n, m int, penalty float64) [][2]int {
	path := make([][2]int, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, [2]int{i - 1, j - 1})
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
