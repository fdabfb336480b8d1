// SPDX-License-Identifier: MIT

package cluster

import "slices"

// Node is a dendrogram node. Leaves have nil children, Distance 0, Depth 0 and
// Index set to the input position; internal nodes have Index -1.
// Nodes are immutable once Run returns.
type Node struct {
	Left     *Node     `yaml:"left,omitempty"`
	Right    *Node     `yaml:"right,omitempty"`
	Distance float64   `yaml:"distance"`
	Centroid []float64 `yaml:"centroid,flow"`
	Size     int       `yaml:"size"`
	Depth    int       `yaml:"depth"`
	Index    int       `yaml:"index"`
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Leaves returns the input indices under n, left to right.
func (n *Node) Leaves() []int {
	out := make([]int, 0, n.Size)
	stack := []*Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.IsLeaf() {
			out = append(out, top.Index)
			continue
		}
		stack = append(stack, top.Right, top.Left)
	}

	return out
}

// Cut splits the tree into at most k clusters by repeatedly opening the
// internal node with the largest merge distance (earliest found wins ties).
// k < 1 is treated as 1.
func (n *Node) Cut(k int) []*Node {
	parts := []*Node{n}
	for len(parts) < k {
		widest := -1
		for i, p := range parts {
			if p.IsLeaf() {
				continue
			}
			if widest < 0 || p.Distance > parts[widest].Distance {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		p := parts[widest]
		parts = slices.Replace(parts, widest, widest+1, p.Left, p.Right)
	}

	return parts
}

// CutLabels is Cut followed by labelling: the result maps every input index
// to the position of its subtree in Cut(k). n must be the root returned by Run.
func (n *Node) CutLabels(k int) []int {
	labels := make([]int, n.Size)
	for c, part := range n.Cut(k) {
		for _, idx := range part.Leaves() {
			labels[idx] = c
		}
	}

	return labels
}
