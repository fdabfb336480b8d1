// SPDX-License-Identifier: MIT

package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/lvsci/cluster"
)

// ExampleKMeans_Run splits two obvious groups.
func ExampleKMeans_Run() {
	vectors := [][]float64{{1, 1}, {1.2, 0.8}, {9, 9}, {8.8, 9.2}}
	res, err := cluster.NewKMeans(cluster.WithK(2), cluster.WithSeed(42)).Run(vectors)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Labels[0] == res.Labels[1], res.Labels[2] == res.Labels[3], res.Labels[0] != res.Labels[2])
	fmt.Println(res.Sizes())
	// Output:
	// true true true
	// [2 2]
}

// ExampleHierarchical_Run builds an average-linkage dendrogram and cuts it.
func ExampleHierarchical_Run() {
	root, _ := cluster.Hierarchical{Linkage: cluster.Average}.Run([][]float64{{0}, {1}, {5}, {6}, {20}})
	fmt.Println(root.Distance, root.Size, root.CutLabels(3))
	// Output: 17 5 [0 0 1 1 2]
}
