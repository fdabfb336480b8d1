// SPDX-License-Identifier: MIT

// Package lvsci is a small numerical toolkit for exploring one-dimensional
// samples and low-dimensional point sets.
//
// The module is split into flat packages that depend only downwards:
//
//	mathx         comparators, expm1/hypot, zero-filled N-dimensional arrays
//	matrix        row-major Dense, Gauss-Jordan inverse/solve, tridiagonal solver
//	stats         quantiles, moments, mode, erf/normal CDF, box-plot summaries
//	kde           kernel density estimation with pluggable kernels and bandwidth rules
//	loess         robust locally weighted linear regression
//	distance      vector metrics and dynamic time warping
//	cluster       k-means and agglomerative hierarchical clustering
//	distribution  a seedable Gaussian distribution
//	quadratic     real and complex roots of a·x² + b·x + c
//
// The cmd/lvsci binary exposes the same algorithms over YAML datasets.
//
// Every library call is synchronous and owns its scratch memory. Configured
// values (estimators, clusterers, distributions) must not be mutated
// concurrently with their use. Degenerate numeric input is reported with
// sentinel errors or NaN, never with a panic; only option constructors
// panic, on programmer errors such as k < 1.
package lvsci
