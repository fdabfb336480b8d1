// SPDX-License-Identifier: MIT

// Package quadratic solves a·x² + b·x + c = 0.
//
// The discriminant d = b² - 4ac selects the result:
//   - d > 0: two real roots, (-b+√d)/(2a) first, then (-b-√d)/(2a).
//   - d = 0: one real root -b/(2a).
//   - d < 0: no roots in real mode; in complex mode the conjugate pair
//     (-b + i√-d)/(2a) first, then (-b - i√-d)/(2a).
//
// a = 0 is not guarded: the equation is not quadratic and the result is ±Inf/NaN.
package quadratic
