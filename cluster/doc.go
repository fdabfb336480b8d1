// SPDX-License-Identifier: MIT

// Package cluster groups real vectors with k-means and agglomerative
// hierarchical clustering.
//
// k-means:
//   - Seeds k distinct input vectors uniformly at random without replacement
//     (one pass over a random permutation, so the retry count is bounded by n).
//   - Assignment: every vector joins the nearest centroid; ties go to the lowest
//     cluster index (strict < comparison).
//   - Update: each centroid becomes the component-wise mean of its members.
//     A cluster that loses all members keeps its previous centroid and reports
//     size 0 in Assignment.Sizes.
//   - Stops at a fixed point (an assignment pass that changes no label) or after
//     MaxIterations updates.
//
// Hierarchical:
//   - Keeps an n×n distance matrix (self distance = +Inf) and a nearest-neighbour
//     cache per row; every step merges the globally closest pair.
//   - Linkage: Single (min), Complete (max), Average (size-weighted mean of the
//     two pre-merge distances).
//   - Produces a binary dendrogram of immutable *Node values.
//
// Determinism:
//   - With a fixed seed (WithSeed) every run is reproducible. Hierarchical
//     clustering uses no randomness; ties go to the lowest row index.
package cluster
