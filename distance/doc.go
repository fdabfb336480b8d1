// SPDX-License-Identifier: MIT

// Package distance provides dissimilarity functions between real vectors,
// used by the clustering algorithms.
//
// Every Func is pure and symmetric. Vectors of different length are a caller
// error and yield NaN (DTW excepted: it aligns sequences of any length).
//
// Metrics:
//   - Euclidean (default), EuclideanSquared, Manhattan, Chebyshev, Minkowski(p).
//   - Cosine, Hamming, Jaccard (weighted, non-negative data), BrayCurtis.
//   - DTW: Dynamic Time Warping with Sakoe–Chiba window and slope penalty.
package distance
