// SPDX-License-Identifier: MIT

// Package commands implements the lvsci command-line actions.
package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsci/internal/config"
	"github.com/katalvlaran/lvsci/internal/dataset"
	"github.com/katalvlaran/lvsci/internal/event"
)

var log = event.Log

// ErrNoDataset is returned when neither --dataset nor a file argument was given.
var ErrNoDataset = errors.New("commands: no dataset file given")

// Commands lists every command of the lvsci app.
var Commands = []cli.Command{
	SummaryCommand,
	DensityCommand,
	SmoothCommand,
	ClusterCommand,
}

// setup resolves the configuration and loads the dataset named by --dataset
// or by the first positional argument.
func setup(ctx *cli.Context) (*config.Config, *dataset.Dataset, error) {
	conf, err := config.NewConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := event.SetLevel(conf.LogLevel); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	path := ctx.GlobalString(config.FlagDataset)
	if path == "" {
		path = ctx.Args().First()
	}
	if path == "" {
		return nil, nil, ErrNoDataset
	}
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("dataset: read %s from %s (%s, %s)", humanize.Bytes(uint64(ds.Size)), path,
		english.Plural(len(ds.Groups), "group", "groups"),
		english.Plural(len(ds.Points), "point", "points"))

	return conf, ds, nil
}

// writeYAML encodes v to the app writer.
func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
