// SPDX-License-Identifier: MIT

/*
Lvsci computes descriptive statistics, kernel density curves, LOESS fits and
clusterings for numeric datasets stored as YAML.

	lvsci --dataset data.yml summary
	lvsci -d data.yml density --kernel gaussian --points 128
	lvsci -d data.yml smooth --span 0.4
	lvsci -d data.yml cluster kmeans --k 3 --seed 42
	lvsci -d data.yml cluster hierarchical --linkage single --cut 4

Settings are resolved from built-in defaults, then the --config file, then flags.
*/
package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/katalvlaran/lvsci/internal/commands"
	"github.com/katalvlaran/lvsci/internal/config"
	"github.com/katalvlaran/lvsci/internal/event"
)

var version = "development"

func main() {
	app := cli.NewApp()
	app.Name = "lvsci"
	app.Usage = "Numeric statistics, density estimation, smoothing and clustering"
	app.Version = version
	app.EnableBashCompletion = true
	app.Flags = config.GlobalFlags
	app.Commands = commands.Commands

	if err := app.Run(os.Args); err != nil {
		event.Log.Error(err)
		os.Exit(1)
	}
}
