// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/katalvlaran/lvsci/cluster"
	"github.com/katalvlaran/lvsci/internal/config"
	"github.com/katalvlaran/lvsci/kde"
	"github.com/katalvlaran/lvsci/loess"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvsci.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, loess.DefaultOptions(), c.Loess)
	assert.Equal(t, cluster.DefaultMaxIterations, c.Cluster.MaxIterations)
}

func TestLoadFile_OverlaysOnlyGivenKeys(t *testing.T) {
	path := writeFile(t, `
kde:
  kernel: gaussian
  bandwidth: 0.75
loess:
  robustness_iters: 4
cluster:
  k: 3
  linkage: complete
`)
	c := config.Default()
	require.NoError(t, c.LoadFile(path))
	require.NoError(t, c.Validate())

	assert.Equal(t, "gaussian", c.KDE.Kernel)
	assert.Equal(t, config.DefaultGridPoints, c.KDE.Points)
	assert.Equal(t, 4, c.Loess.RobustnessIters)
	assert.Equal(t, loess.DefaultBandwidth, c.Loess.Bandwidth)
	assert.Equal(t, 3, c.Cluster.K)

	rule, err := c.BandwidthRule()
	require.NoError(t, err)
	assert.Equal(t, 0.75, rule([]float64{1, 2, 3}))

	l, err := c.Linkage()
	require.NoError(t, err)
	assert.Equal(t, cluster.Complete, l)
}

func TestLoadFile_Errors(t *testing.T) {
	c := config.Default()
	assert.Error(t, c.LoadFile(filepath.Join(t.TempDir(), "missing.yml")))
	assert.Error(t, c.LoadFile(writeFile(t, "kde: [unclosed")))
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*config.Config)
		want error
	}{
		{"kernel", func(c *config.Config) { c.KDE.Kernel = "box" }, kde.ErrUnknownKernel},
		{"rule", func(c *config.Config) { c.KDE.Bandwidth = "scott" }, kde.ErrUnknownRule},
		{"fixed width", func(c *config.Config) { c.KDE.Bandwidth = "-1" }, config.ErrInvalid},
		{"points", func(c *config.Config) { c.KDE.Points = 1 }, config.ErrInvalid},
		{"loess", func(c *config.Config) { c.Loess.Bandwidth = 0 }, loess.ErrBadOptions},
		{"k", func(c *config.Config) { c.Cluster.K = 0 }, config.ErrInvalid},
		{"linkage", func(c *config.Config) { c.Cluster.Linkage = "ward" }, cluster.ErrUnknownLinkage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			tc.mut(c)
			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}
}

func TestNewConfig_FlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "kde:\n  kernel: gaussian\n  points: 10\ncluster:\n  k: 3\n")

	var got *config.Config
	app := cli.NewApp()
	app.Flags = config.GlobalFlags
	app.Commands = []cli.Command{{
		Name:  "density",
		Flags: append(config.DensityFlags, config.KMeansFlags...),
		Action: func(ctx *cli.Context) error {
			var err error
			got, err = config.NewConfig(ctx)
			return err
		},
	}}

	err := app.Run([]string{"lvsci", "--config", path, "--log-level", "debug", "density", "--points", "32", "--k", "5"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "gaussian", got.KDE.Kernel, "from file")
	assert.Equal(t, 32, got.KDE.Points, "flag wins")
	assert.Equal(t, 5, got.Cluster.K, "flag wins")
	assert.Equal(t, "debug", got.LogLevel)
}
