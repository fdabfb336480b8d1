// SPDX-License-Identifier: MIT

package stats

import "errors"

// ErrEmptySample is returned by functions that need at least one observation
// and cannot express "no answer" as NaN.
var ErrEmptySample = errors.New("stats: empty sample")
