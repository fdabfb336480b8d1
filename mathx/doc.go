// SPDX-License-Identifier: MIT

// Package mathx holds the small numeric helpers shared by the rest of lvsci:
// an ascending comparator, an accurate expm1 for tiny arguments, an overflow-safe
// hypot, constant-function adapters and zero-filled N-dimensional arrays.
package mathx
