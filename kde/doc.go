// SPDX-License-Identifier: MIT

// Package kde implements univariate kernel density estimation.
//
// Factoring:
//   - A Kernel is a pure unit kernel K(u) that integrates to 1 over its support.
//     It never carries a scale of its own.
//   - A Rule maps the sample to a bandwidth h > 0. The estimate at x is
//     f̂(x) = 1/(n·h) · Σ K((x - sᵢ)/h).
//
// Defaults:
//   - Kernel: Epanechnikov, 0.75·(1-u²) on |u| ≤ 1.
//   - Rule: NRD, 1.06 · min(σ, IQR/1.34) · n^(-1/5), floored at MinBandwidth.
//
// Behavior:
//   - Evaluate returns one Point per query, in query order.
//   - NaN/Inf samples are not filtered; callers pre-validate.
//   - Nothing is cached: changing the kernel, rule or sample recomputes from scratch.
package kde
