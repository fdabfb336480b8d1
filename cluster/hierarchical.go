// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvsci/distance"
	"github.com/katalvlaran/lvsci/matrix"
)

// Linkage selects how the distance from a merged cluster to the others is derived.
type Linkage int

const (
	// Single uses the smaller of the two pre-merge distances.
	Single Linkage = iota
	// Complete uses the larger of the two pre-merge distances.
	Complete
	// Average uses the size-weighted mean of the two pre-merge distances.
	Average
)

// String returns the lower-case linkage name.
func (l Linkage) String() string {
	switch l {
	case Single:
		return "single"
	case Complete:
		return "complete"
	case Average:
		return "average"
	}

	return fmt.Sprintf("Linkage(%d)", int(l))
}

// ParseLinkage is the inverse of Linkage.String (case-insensitive).
func ParseLinkage(s string) (Linkage, error) {
	switch strings.ToLower(s) {
	case "single":
		return Single, nil
	case "complete":
		return Complete, nil
	case "average":
		return Average, nil
	}

	return 0, fmt.Errorf("ParseLinkage(%q): %w", s, ErrUnknownLinkage)
}

const opHierarchical = "Hierarchical.Run"

// Hierarchical configures agglomerative clustering.
// The zero value uses Euclidean distance and Single linkage.
type Hierarchical struct {
	Distance distance.Func
	Linkage  Linkage
}

// proximity is the working state of one Run: the symmetric distance matrix
// (inactive rows/columns hold +Inf) and the nearest-neighbour cache.
type proximity struct {
	d       *matrix.Dense
	nearest []int
}

// at and set index an n×n matrix with in-range indices only.
func (p *proximity) at(i, j int) float64 {
	v, _ := p.d.At(i, j)

	return v
}

func (p *proximity) set(i, j int, v float64) {
	_ = p.d.Set(i, j, v)
	_ = p.d.Set(j, i, v)
}

// scan recomputes the nearest neighbour of row i; the lowest index wins ties.
func (p *proximity) scan(i int) {
	row, _ := p.d.Row(i)
	best := 0
	for j := 1; j < len(row); j++ {
		if row[j] < row[best] {
			best = j
		}
	}
	p.nearest[i] = best
}

// Run builds the dendrogram of vectors and returns its root.
// A single vector yields a leaf root.
//
// Implementation:
//   - Stage 1: fill the distance matrix (diagonal = +Inf) and cache every row's nearest column.
//   - Stage 2: n-1 times, pick the row c1 whose cached distance is smallest, c2 = nearest[c1];
//     create the merged node, rewrite row c1 by the linkage rule from snapshots of rows
//     c1 and c2, retire c2 with +Inf, then refresh the cache entries that pointed at c1 or c2.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch.
// Complexity: Time O(n²·dim + n²) for the matrix plus O(n²) per merge in the worst case; Space O(n²).
func (h Hierarchical) Run(vectors [][]float64) (*Node, error) {
	if _, err := validateVectors(vectors); err != nil {
		return nil, clusterErrorf(opHierarchical, err)
	}
	dist := h.Distance
	if dist == nil {
		dist = distance.Euclidean
	}

	n := len(vectors)
	nodes := make([]*Node, n)
	for i, v := range vectors {
		nodes[i] = &Node{Centroid: slices.Clone(v), Size: 1, Index: i}
	}
	if n == 1 {
		return nodes[0], nil
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, clusterErrorf(opHierarchical, err)
	}
	p := &proximity{d: d, nearest: make([]int, n)}
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		_ = d.Set(i, i, inf)
		for j := i + 1; j < n; j++ {
			p.set(i, j, dist(vectors[i], vectors[j]))
		}
	}
	for i := 0; i < n; i++ {
		p.scan(i)
	}

	var root *Node
	for merge := 0; merge < n-1; merge++ {
		c1 := -1
		for i := 0; i < n; i++ {
			if nodes[i] == nil {
				continue
			}
			if c1 < 0 || p.at(i, p.nearest[i]) < p.at(c1, p.nearest[c1]) {
				c1 = i
			}
		}
		c2 := p.nearest[c1]
		if c2 == c1 || nodes[c2] == nil { // only reachable with NaN distances
			c2 = firstActive(nodes, c1)
		}
		left, right := nodes[c1], nodes[c2]

		root = merged(left, right, p.at(c1, c2))
		nodes[c1], nodes[c2] = root, nil

		row1, _ := d.Row(c1)
		row2, _ := d.Row(c2)
		for j := 0; j < n; j++ {
			if j == c1 || j == c2 || nodes[j] == nil {
				continue
			}
			p.set(c1, j, h.Linkage.combine(row1[j], row2[j], left.Size, right.Size))
		}
		for j := 0; j < n; j++ {
			p.set(c2, j, inf)
		}

		for j := 0; j < n; j++ {
			if nodes[j] == nil || j == c1 {
				continue
			}
			switch {
			case p.nearest[j] == c1 || p.nearest[j] == c2:
				p.scan(j)
			case p.at(j, c1) < p.at(j, p.nearest[j]):
				p.nearest[j] = c1
			}
		}
		p.scan(c1)
	}

	return root, nil
}

// firstActive returns the lowest active index other than skip.
func firstActive(nodes []*Node, skip int) int {
	for i, nd := range nodes {
		if nd != nil && i != skip {
			return i
		}
	}

	return skip
}

// combine applies the linkage rule to the pre-merge distances a (from c1) and b (from c2).
func (l Linkage) combine(a, b float64, sizeA, sizeB int) float64 {
	switch l {
	case Complete:
		return math.Max(a, b)
	case Average:
		return (float64(sizeA)*a + float64(sizeB)*b) / float64(sizeA+sizeB)
	default:
		return math.Min(a, b)
	}
}

// merged builds the parent of left and right with the size-weighted centroid.
func merged(left, right *Node, d float64) *Node {
	size := left.Size + right.Size
	centroid := make([]float64, len(left.Centroid))
	floats.AddScaled(centroid, float64(left.Size)/float64(size), left.Centroid)
	floats.AddScaled(centroid, float64(right.Size)/float64(size), right.Centroid)

	return &Node{
		Left:     left,
		Right:    right,
		Distance: d,
		Centroid: centroid,
		Size:     size,
		Depth:    1 + max(left.Depth, right.Depth),
		Index:    -1,
	}
}
