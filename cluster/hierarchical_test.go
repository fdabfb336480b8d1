// SPDX-License-Identifier: MIT

package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsci/cluster"
	"github.com/katalvlaran/lvsci/distance"
)

func TestHierarchical_TwoPoints(t *testing.T) {
	a, b := []float64{0, 0}, []float64{3, 4}
	for _, f := range []distance.Func{distance.Euclidean, distance.Manhattan} {
		root, err := cluster.Hierarchical{Distance: f}.Run([][]float64{a, b})
		require.NoError(t, err)

		require.NotNil(t, root.Left)
		require.NotNil(t, root.Right)
		assert.True(t, root.Left.IsLeaf())
		assert.True(t, root.Right.IsLeaf())
		assert.Equal(t, f(a, b), root.Distance)
		assert.Equal(t, 2, root.Size)
		assert.Equal(t, 1, root.Depth)
		assert.InDeltaSlice(t, []float64{1.5, 2}, root.Centroid, 1e-12)
		assert.ElementsMatch(t, []int{0, 1}, root.Leaves())
	}
}

func TestHierarchical_Linkages(t *testing.T) {
	vectors := [][]float64{{0}, {1}, {5}, {6}, {20}}
	cases := []struct {
		linkage     cluster.Linkage
		inner, root float64
	}{
		{cluster.Single, 4, 14},
		{cluster.Complete, 6, 20},
		{cluster.Average, 5, 17},
	}
	for _, tc := range cases {
		t.Run(tc.linkage.String(), func(t *testing.T) {
			root, err := cluster.Hierarchical{Linkage: tc.linkage}.Run(vectors)
			require.NoError(t, err)

			assert.InDelta(t, tc.root, root.Distance, 1e-12)
			assert.Equal(t, 5, root.Size)
			assert.Equal(t, 3, root.Depth)
			assert.InDeltaSlice(t, []float64{6.4}, root.Centroid, 1e-12)
			require.Equal(t, 4, root.Left.Size)
			assert.InDelta(t, tc.inner, root.Left.Distance, 1e-12)
			assert.Equal(t, []int{0, 1, 2, 3, 4}, root.Leaves())

			assert.Equal(t, []int{0, 0, 0, 0, 1}, root.CutLabels(2))
			assert.Equal(t, []int{0, 0, 1, 1, 2}, root.CutLabels(3))
			assert.Len(t, root.Cut(10), 5)
			assert.Len(t, root.Cut(0), 1)
		})
	}
}

func TestHierarchical_SingleVectorIsLeaf(t *testing.T) {
	root, err := cluster.Hierarchical{}.Run([][]float64{{7, 7}})
	require.NoError(t, err)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, 0, root.Index)
	assert.Equal(t, 0.0, root.Distance)
}

func TestHierarchical_InputErrors(t *testing.T) {
	_, err := cluster.Hierarchical{}.Run(nil)
	assert.ErrorIs(t, err, cluster.ErrEmptyInput)

	_, err = cluster.Hierarchical{}.Run([][]float64{{1}, {1, 2}})
	assert.ErrorIs(t, err, cluster.ErrDimensionMismatch)
}

func TestHierarchical_DTWSequences(t *testing.T) {
	seqs := [][]float64{
		{0, 1, 2, 3, 2, 1},
		{0, 0, 1, 2, 3, 2},
		{5, 5, 5, 5, 5, 5},
	}
	root, err := cluster.Hierarchical{
		Distance: distance.DTW(distance.DefaultDTWOptions()),
		Linkage:  cluster.Complete,
	}.Run(seqs)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1}, root.CutLabels(2))
}

func TestParseLinkage(t *testing.T) {
	for _, l := range []cluster.Linkage{cluster.Single, cluster.Complete, cluster.Average} {
		got, err := cluster.ParseLinkage(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	_, err := cluster.ParseLinkage("ward")
	assert.ErrorIs(t, err, cluster.ErrUnknownLinkage)
}
