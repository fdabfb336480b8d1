// SPDX-License-Identifier: MIT

package loess_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvsci/loess"
)

var sink []float64

func BenchmarkSmooth(b *testing.B) {
	for _, n := range []int{100, 1000} {
		x := make([]float64, n)
		y := make([]float64, n)
		for i := range x {
			x[i] = float64(i)
			y[i] = math.Sin(float64(i) / 10)
		}
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sink, _ = loess.Smooth(x, y, nil, nil)
			}
		})
	}
}
