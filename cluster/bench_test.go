// SPDX-License-Identifier: MIT

package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsci/cluster"
)

var sinkNode *cluster.Node

func randomVectors(n, dim int) [][]float64 {
	rng := rand.New(rand.NewSource(1))
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, dim)
		for j := range out[i] {
			out[i][j] = rng.NormFloat64()
		}
	}

	return out
}

func BenchmarkKMeans(b *testing.B) {
	vectors := randomVectors(1000, 4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := cluster.NewKMeans(cluster.WithK(8), cluster.WithSeed(int64(i))).Run(vectors); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHierarchical(b *testing.B) {
	vectors := randomVectors(200, 4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkNode, _ = cluster.Hierarchical{Linkage: cluster.Average}.Run(vectors)
	}
}
