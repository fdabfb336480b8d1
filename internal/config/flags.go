// SPDX-License-Identifier: MIT

package config

import (
	"github.com/urfave/cli"
)

// Flag names shared by the commands.
const (
	FlagConfig        = "config"
	FlagDataset       = "dataset"
	FlagLogLevel      = "log-level"
	FlagKernel        = "kernel"
	FlagBandwidth     = "bandwidth"
	FlagPoints        = "points"
	FlagSpan          = "span"
	FlagIterations    = "iterations"
	FlagAccuracy      = "accuracy"
	FlagK             = "k"
	FlagSeed          = "seed"
	FlagMaxIterations = "max-iterations"
	FlagDistance      = "distance"
	FlagLinkage       = "linkage"
	FlagCut           = "cut"
)

// GlobalFlags are accepted before any command.
var GlobalFlags = []cli.Flag{
	cli.StringFlag{
		Name:   FlagConfig + ", c",
		Usage:  "YAML configuration `FILE`",
		EnvVar: "LVSCI_CONFIG",
	},
	cli.StringFlag{
		Name:   FlagDataset + ", d",
		Usage:  "YAML dataset `FILE`",
		EnvVar: "LVSCI_DATASET",
	},
	cli.StringFlag{
		Name:   FlagLogLevel,
		Usage:  "log `LEVEL` (trace, debug, info, warning, error)",
		EnvVar: "LVSCI_LOG_LEVEL",
	},
}

// DensityFlags configure the density command.
var DensityFlags = []cli.Flag{
	cli.StringFlag{Name: FlagKernel, Usage: "kernel `NAME`, e.g. epanechnikov or gaussian"},
	cli.StringFlag{Name: FlagBandwidth, Usage: "bandwidth rule (nrd, nrd0) or fixed `WIDTH`"},
	cli.IntFlag{Name: FlagPoints, Usage: "number of evaluation `POINTS`"},
}

// SmoothFlags configure the smooth command.
var SmoothFlags = []cli.Flag{
	cli.Float64Flag{Name: FlagSpan, Usage: "neighbourhood `FRACTION` in (0, 1]"},
	cli.IntFlag{Name: FlagIterations, Usage: "robustness `ITERATIONS`"},
	cli.Float64Flag{Name: FlagAccuracy, Usage: "zero threshold `EPS`"},
}

// KMeansFlags configure the cluster kmeans command.
var KMeansFlags = []cli.Flag{
	cli.IntFlag{Name: FlagK, Usage: "number of `CLUSTERS`"},
	cli.Int64Flag{Name: FlagSeed, Usage: "random `SEED`"},
	cli.IntFlag{Name: FlagMaxIterations, Usage: "iteration `LIMIT`"},
	cli.StringFlag{Name: FlagDistance, Usage: "distance `METRIC`"},
}

// HierarchicalFlags configure the cluster hierarchical command.
var HierarchicalFlags = []cli.Flag{
	cli.StringFlag{Name: FlagLinkage, Usage: "single, complete or average"},
	cli.StringFlag{Name: FlagDistance, Usage: "distance `METRIC`"},
	cli.IntFlag{Name: FlagCut, Usage: "cut the tree into `N` clusters"},
}

// NewConfig resolves defaults, then the --config file, then global and
// command flags that were set explicitly.
func NewConfig(ctx *cli.Context) (*Config, error) {
	c := Default()
	if path := ctx.GlobalString(FlagConfig); path != "" {
		if err := c.LoadFile(path); err != nil {
			return nil, err
		}
	}
	c.applyFlags(ctx)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// applyFlags overlays flags the user actually passed.
func (c *Config) applyFlags(ctx *cli.Context) {
	if ctx.GlobalIsSet(FlagLogLevel) {
		c.LogLevel = ctx.GlobalString(FlagLogLevel)
	}
	if ctx.IsSet(FlagKernel) {
		c.KDE.Kernel = ctx.String(FlagKernel)
	}
	if ctx.IsSet(FlagBandwidth) {
		c.KDE.Bandwidth = ctx.String(FlagBandwidth)
	}
	if ctx.IsSet(FlagPoints) {
		c.KDE.Points = ctx.Int(FlagPoints)
	}
	if ctx.IsSet(FlagSpan) {
		c.Loess.Bandwidth = ctx.Float64(FlagSpan)
	}
	if ctx.IsSet(FlagIterations) {
		c.Loess.RobustnessIters = ctx.Int(FlagIterations)
	}
	if ctx.IsSet(FlagAccuracy) {
		c.Loess.Accuracy = ctx.Float64(FlagAccuracy)
	}
	if ctx.IsSet(FlagK) {
		c.Cluster.K = ctx.Int(FlagK)
	}
	if ctx.IsSet(FlagSeed) {
		c.Cluster.Seed = ctx.Int64(FlagSeed)
	}
	if ctx.IsSet(FlagMaxIterations) {
		c.Cluster.MaxIterations = ctx.Int(FlagMaxIterations)
	}
	if ctx.IsSet(FlagDistance) {
		c.Cluster.Distance = ctx.String(FlagDistance)
	}
	if ctx.IsSet(FlagLinkage) {
		c.Cluster.Linkage = ctx.String(FlagLinkage)
	}
	if ctx.IsSet(FlagCut) {
		c.Cluster.Cut = ctx.Int(FlagCut)
	}
}
