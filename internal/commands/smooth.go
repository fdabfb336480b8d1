// SPDX-License-Identifier: MIT

package commands

import (
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli"

	"github.com/katalvlaran/lvsci/internal/config"
	"github.com/katalvlaran/lvsci/loess"
)

// SmoothCommand prints the LOESS fit of the x/y series.
var SmoothCommand = cli.Command{
	Name:      "smooth",
	Usage:     "Fits a robust LOESS curve through x/y",
	ArgsUsage: "[dataset file]",
	Flags:     config.SmoothFlags,
	Action:    smoothAction,
}

// Fit is the smoothing result.
type Fit struct {
	Options loess.Options `yaml:"options"`
	X       []float64     `yaml:"x,flow"`
	Y       []float64     `yaml:"y,flow"`
	Fitted  []float64     `yaml:"fitted,flow"`
}

func smoothAction(ctx *cli.Context) error {
	start := time.Now()

	conf, ds, err := setup(ctx)
	if err != nil {
		return err
	}
	if err := ds.RequireSeries(); err != nil {
		return err
	}

	fitted, err := loess.Smooth(ds.X, ds.Y, ds.Weights, &conf.Loess)
	if err != nil {
		return err
	}

	log.Infof("smooth: fitted %s in %s", english.Plural(len(fitted), "point", "points"), time.Since(start))

	return writeYAML(ctx.App.Writer, Fit{Options: conf.Loess, X: ds.X, Y: ds.Y, Fitted: fitted})
}
