// SPDX-License-Identifier: MIT

package commands

import (
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli"

	"github.com/katalvlaran/lvsci/cluster"
	"github.com/katalvlaran/lvsci/internal/config"
)

// ClusterCommand groups the clustering subcommands.
var ClusterCommand = cli.Command{
	Name:  "cluster",
	Usage: "Clusters the dataset points",
	Subcommands: []cli.Command{
		{
			Name:      "kmeans",
			Usage:     "k-means with random distinct seeding",
			ArgsUsage: "[dataset file]",
			Flags:     config.KMeansFlags,
			Action:    kmeansAction,
		},
		{
			Name:      "hierarchical",
			Usage:     "agglomerative clustering, cut into --cut groups",
			ArgsUsage: "[dataset file]",
			Flags:     config.HierarchicalFlags,
			Action:    hierarchicalAction,
		},
	},
}

// Dendrogram is the hierarchical clustering result.
type Dendrogram struct {
	Linkage string        `yaml:"linkage"`
	Labels  []int         `yaml:"labels,flow"`
	Root    *cluster.Node `yaml:"root"`
}

func kmeansAction(ctx *cli.Context) error {
	start := time.Now()

	conf, ds, err := setup(ctx)
	if err != nil {
		return err
	}
	if err := ds.RequirePoints(); err != nil {
		return err
	}
	dist, err := conf.DistanceFunc()
	if err != nil {
		return err
	}

	km := cluster.NewKMeans(
		cluster.WithK(conf.Cluster.K),
		cluster.WithDistance(dist),
		cluster.WithMaxIterations(conf.Cluster.MaxIterations),
		cluster.WithSeed(conf.Cluster.Seed),
	)
	res, err := km.Run(ds.Points)
	if err != nil {
		return err
	}
	if !res.Converged {
		log.Warnf("kmeans: no fixed point after %s", english.Plural(res.Iterations, "iteration", "iterations"))
	}
	for j, size := range res.Sizes() {
		if size == 0 {
			log.Warnf("kmeans: cluster %d is empty", j)
		}
	}

	log.Infof("kmeans: assigned %s to %s in %s",
		english.Plural(len(res.Labels), "point", "points"),
		english.Plural(len(res.Centroids), "cluster", "clusters"),
		time.Since(start))

	return writeYAML(ctx.App.Writer, res)
}

func hierarchicalAction(ctx *cli.Context) error {
	start := time.Now()

	conf, ds, err := setup(ctx)
	if err != nil {
		return err
	}
	if err := ds.RequirePoints(); err != nil {
		return err
	}
	dist, err := conf.DistanceFunc()
	if err != nil {
		return err
	}
	linkage, err := conf.Linkage()
	if err != nil {
		return err
	}

	root, err := cluster.Hierarchical{Distance: dist, Linkage: linkage}.Run(ds.Points)
	if err != nil {
		return err
	}

	log.Infof("hierarchical: merged %s in %s", english.Plural(root.Size, "point", "points"), time.Since(start))

	return writeYAML(ctx.App.Writer, Dendrogram{
		Linkage: linkage.String(),
		Labels:  root.CutLabels(conf.Cluster.Cut),
		Root:    root,
	})
}
