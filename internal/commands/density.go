// SPDX-License-Identifier: MIT

package commands

import (
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli"

	"github.com/katalvlaran/lvsci/internal/config"
	"github.com/katalvlaran/lvsci/kde"
	"github.com/katalvlaran/lvsci/stats"
)

// DensityCommand prints a kernel density curve for every group.
var DensityCommand = cli.Command{
	Name:      "density",
	Usage:     "Estimates a density curve per group",
	ArgsUsage: "[dataset file]",
	Flags:     config.DensityFlags,
	Action:    densityAction,
}

// Curve is one evaluated density curve.
type Curve struct {
	Bandwidth float64     `yaml:"bandwidth"`
	Points    []kde.Point `yaml:"points"`
}

func densityAction(ctx *cli.Context) error {
	start := time.Now()

	conf, ds, err := setup(ctx)
	if err != nil {
		return err
	}
	if err := ds.RequireGroups(); err != nil {
		return err
	}
	kernel, err := conf.KernelFunc()
	if err != nil {
		return err
	}
	rule, err := conf.BandwidthRule()
	if err != nil {
		return err
	}

	est := kde.New(kde.WithKernel(kernel), kde.WithBandwidth(rule))
	out := make(map[string]Curve, len(ds.Groups))
	for _, name := range ds.GroupNames() {
		values := ds.Groups[name]
		est.Configure(kde.WithSample(values))
		h, err := est.Bandwidth()
		if err != nil {
			return err
		}

		// Pad the sample range by three bandwidths so the tails are visible.
		q := stats.Quantiles(values, []float64{0, 1})
		grid := kde.Grid(q[0]-3*h, q[1]+3*h, conf.KDE.Points)
		points, err := est.Evaluate(grid)
		if err != nil {
			return err
		}
		out[name] = Curve{Bandwidth: h, Points: points}
		log.Debugf("density: %s bandwidth %.4g", name, h)
	}

	log.Infof("density: evaluated %s in %s", english.Plural(len(out), "curve", "curves"), time.Since(start))

	return writeYAML(ctx.App.Writer, out)
}
