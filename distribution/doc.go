// SPDX-License-Identifier: MIT

// Package distribution models the Gaussian (normal) distribution: density,
// cumulative distribution and sampling with the polar Box–Muller method.
//
// A Gaussian is a small mutable configuration object. Setters return the
// receiver so calls chain; it is not safe for concurrent use, and sampling
// advances the configured random source.
package distribution
