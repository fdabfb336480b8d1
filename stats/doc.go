// SPDX-License-Identifier: MIT

// Package stats provides order statistics and descriptive statistics over
// plain []float64 samples.
//
// What:
//   - Quantile / Quantiles: R type-7 interpolation on a sorted private copy.
//   - Median, IQR, Mean (Welford), Variance (n-1), StdDev, Mode.
//   - Erf (Abramowitz–Stegun 7.1.26) and NormalCDF.
//   - Summarize: the box-plot metrics a chart needs (quartiles, fences, notch).
//
// Contracts:
//   - Inputs are never reordered or retained; sorting always happens on a copy.
//   - Empty samples yield NaN for scalar results. Summarize, which returns a
//     struct, reports ErrEmptySample instead.
//   - NaN and ±Inf are not filtered. Callers pre-validate when that matters.
//   - Erf is accurate to about 1.5e-7 absolute; do not rely on more.
//
// Determinism:
//   - All results depend only on the multiset of input values, never on input order,
//     except Mean whose rounding follows input order.
package stats
