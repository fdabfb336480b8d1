// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvsci/distance"
)

// Defaults for NewKMeans.
const (
	DefaultK             = 1
	DefaultMaxIterations = 1000
	DefaultSeed          = int64(1)
)

const opKMeans = "KMeans.Run"

// KMeans configures k-means clustering. Build it with NewKMeans or fill the
// fields directly; a KMeans must not be mutated while Run executes.
type KMeans struct {
	K             int
	Distance      distance.Func
	MaxIterations int
	Rand          *rand.Rand
}

// KMeansOption customizes a KMeans built by NewKMeans.
// Option constructors panic on meaningless arguments; Run itself never panics.
type KMeansOption func(*KMeans)

// WithK sets the number of clusters. Panics if k < 1.
func WithK(k int) KMeansOption {
	if k < 1 {
		panic(fmt.Sprintf("cluster: WithK(%d)", k))
	}

	return func(c *KMeans) { c.K = k }
}

// WithDistance sets the distance function. Panics on nil.
func WithDistance(f distance.Func) KMeansOption {
	if f == nil {
		panic("cluster: WithDistance(nil)")
	}

	return func(c *KMeans) { c.Distance = f }
}

// WithMaxIterations caps the number of update steps. Panics if n < 1.
func WithMaxIterations(n int) KMeansOption {
	if n < 1 {
		panic(fmt.Sprintf("cluster: WithMaxIterations(%d)", n))
	}

	return func(c *KMeans) { c.MaxIterations = n }
}

// WithRand sets the random source used for seeding. Panics on nil.
func WithRand(r *rand.Rand) KMeansOption {
	if r == nil {
		panic("cluster: WithRand(nil)")
	}

	return func(c *KMeans) { c.Rand = r }
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) KMeansOption {
	return func(c *KMeans) { c.Rand = rand.New(rand.NewSource(seed)) }
}

// NewKMeans returns K=1, Euclidean distance, 1000 iterations and a source
// seeded with DefaultSeed, then applies opts in order.
func NewKMeans(opts ...KMeansOption) *KMeans {
	c := &KMeans{
		K:             DefaultK,
		Distance:      distance.Euclidean,
		MaxIterations: DefaultMaxIterations,
		Rand:          rand.New(rand.NewSource(DefaultSeed)),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Assignment is the result of a k-means run.
type Assignment struct {
	// Labels[i] is the cluster of vector i, in [0, K).
	Labels []int `yaml:"labels"`
	// Centroids[j] is the mean of the vectors labelled j.
	Centroids [][]float64 `yaml:"centroids"`
	// Iterations counts the update steps performed.
	Iterations int `yaml:"iterations"`
	// Converged is false when MaxIterations was reached before a fixed point.
	Converged bool `yaml:"converged"`
}

// Sizes returns the member count of every cluster.
func (a *Assignment) Sizes() []int {
	sizes := make([]int, len(a.Centroids))
	for _, l := range a.Labels {
		sizes[l]++
	}

	return sizes
}

// Run clusters vectors. Inputs are never mutated.
//
// Implementation:
//   - Stage 1: validate (non-empty, rectangular, sane config) and seed K distinct centroids.
//   - Stage 2: up to MaxIterations times: assign; stop if no label changed;
//     otherwise update the centroids from the new labels.
//
// Errors: ErrBadConfig, ErrEmptyInput, ErrDimensionMismatch, ErrTooFewDistinct.
// Complexity: O(iterations · n · K · dim).
func (c *KMeans) Run(vectors [][]float64) (*Assignment, error) {
	if c.K < 1 || c.MaxIterations < 1 || c.Distance == nil {
		return nil, clusterErrorf(opKMeans, ErrBadConfig)
	}
	dim, err := validateVectors(vectors)
	if err != nil {
		return nil, clusterErrorf(opKMeans, err)
	}
	rng := c.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(DefaultSeed))
	}
	centroids, err := seedDistinct(c.K, vectors, rng)
	if err != nil {
		return nil, clusterErrorf(opKMeans, err)
	}

	n := len(vectors)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	res := &Assignment{Labels: labels}
	sizes := make([]int, c.K)
	for res.Iterations < c.MaxIterations {
		if !c.assign(vectors, centroids, labels) {
			res.Converged = true
			break
		}
		updateCentroids(vectors, labels, centroids, sizes, dim)
		res.Iterations++
	}
	res.Centroids = centroids

	return res, nil
}

// assign relabels every vector with its nearest centroid and reports whether any
// label changed. Ties keep the lowest cluster index.
func (c *KMeans) assign(vectors, centroids [][]float64, labels []int) bool {
	changed := false
	for i, v := range vectors {
		best, bestD := 0, math.Inf(1)
		for j, ctr := range centroids {
			if d := c.Distance(ctr, v); d < bestD {
				bestD, best = d, j
			}
		}
		if labels[i] != best {
			labels[i] = best
			changed = true
		}
	}

	return changed
}

// updateCentroids recomputes every non-empty centroid as the mean of its members.
// Empty clusters keep their previous centroid.
func updateCentroids(vectors [][]float64, labels []int, centroids [][]float64, sizes []int, dim int) {
	sums := make([][]float64, len(centroids))
	for j := range sizes {
		sizes[j] = 0
	}
	for i, v := range vectors {
		j := labels[i]
		if sums[j] == nil {
			sums[j] = make([]float64, dim)
		}
		floats.Add(sums[j], v)
		sizes[j]++
	}
	for j, s := range sums {
		if sizes[j] == 0 {
			continue
		}
		floats.Scale(1/float64(sizes[j]), s)
		centroids[j] = s
	}
}

// seedDistinct picks k pairwise-distinct vectors in random order. Every index is
// examined at most once, so the search is bounded by n.
func seedDistinct(k int, vectors [][]float64, rng *rand.Rand) ([][]float64, error) {
	n := len(vectors)
	if k > n {
		return nil, fmt.Errorf("k=%d > n=%d: %w", k, n, ErrTooFewDistinct)
	}
	selected := make([][]float64, 0, k)
	for _, idx := range rng.Perm(n) {
		v := vectors[idx]
		if slices.ContainsFunc(selected, func(s []float64) bool { return slices.Equal(s, v) }) {
			continue
		}
		selected = append(selected, slices.Clone(v))
		if len(selected) == k {
			return selected, nil
		}
	}

	return nil, fmt.Errorf("k=%d, distinct=%d: %w", k, len(selected), ErrTooFewDistinct)
}
