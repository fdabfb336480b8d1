// SPDX-License-Identifier: MIT

package commands

import (
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli"

	"github.com/katalvlaran/lvsci/stats"
)

// SummaryCommand prints box-plot metrics for every group.
var SummaryCommand = cli.Command{
	Name:      "summary",
	Usage:     "Computes quartiles, fences and notch bounds per group",
	ArgsUsage: "[dataset file]",
	Action:    summaryAction,
}

// GroupSummary is the summary of one group plus its outliers.
type GroupSummary struct {
	stats.Summary `yaml:",inline"`
	Mode          *float64  `yaml:"mode,omitempty"`
	StdDev        float64   `yaml:"stddev"`
	Outliers      []float64 `yaml:"outliers,flow,omitempty"`
}

func summaryAction(ctx *cli.Context) error {
	start := time.Now()

	_, ds, err := setup(ctx)
	if err != nil {
		return err
	}
	if err := ds.RequireGroups(); err != nil {
		return err
	}

	out := make(map[string]GroupSummary, len(ds.Groups))
	for _, name := range ds.GroupNames() {
		values := ds.Groups[name]
		s, err := stats.Summarize(values)
		if err != nil {
			return err
		}
		gs := GroupSummary{Summary: s, StdDev: stats.StdDev(values), Outliers: s.Outliers(values)}
		if m, ok := stats.Mode(values); ok {
			gs.Mode = &m
		}
		out[name] = gs
	}

	log.Infof("summary: summarized %s in %s", english.Plural(len(out), "group", "groups"), time.Since(start))

	return writeYAML(ctx.App.Writer, out)
}
