// SPDX-License-Identifier: MIT

// Package config resolves the lvsci command configuration: built-in defaults,
// overlaid by an optional YAML file, overlaid by command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsci/cluster"
	"github.com/katalvlaran/lvsci/distance"
	"github.com/katalvlaran/lvsci/kde"
	"github.com/katalvlaran/lvsci/loess"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Default values.
const (
	DefaultKernel     = "epanechnikov"
	DefaultRule       = "nrd"
	DefaultGridPoints = 64
	DefaultDistance   = "euclidean"
	DefaultLinkage    = "average"
	DefaultCut        = 2
)

// KDE configures the density command.
type KDE struct {
	Kernel string `yaml:"kernel"`
	// Bandwidth is a rule name ("nrd", "nrd0") or a fixed positive number.
	Bandwidth string `yaml:"bandwidth"`
	Points    int    `yaml:"points"`
}

// Cluster configures the cluster commands.
type Cluster struct {
	K             int    `yaml:"k"`
	Seed          int64  `yaml:"seed"`
	MaxIterations int    `yaml:"max_iterations"`
	Distance      string `yaml:"distance"`
	Linkage       string `yaml:"linkage"`
	Cut           int    `yaml:"cut"`
}

// Config is the complete command configuration.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	KDE      KDE           `yaml:"kde"`
	Loess    loess.Options `yaml:"loess"`
	Cluster  Cluster       `yaml:"cluster"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		KDE: KDE{
			Kernel:    DefaultKernel,
			Bandwidth: DefaultRule,
			Points:    DefaultGridPoints,
		},
		Loess: loess.DefaultOptions(),
		Cluster: Cluster{
			K:             cluster.DefaultK,
			Seed:          cluster.DefaultSeed,
			MaxIterations: cluster.DefaultMaxIterations,
			Distance:      DefaultDistance,
			Linkage:       DefaultLinkage,
			Cut:           DefaultCut,
		},
	}
}

// LoadFile overlays the YAML file at path onto c. Keys absent from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	return nil
}

// Validate checks every field that a command may use.
func (c *Config) Validate() error {
	if _, err := c.KernelFunc(); err != nil {
		return err
	}
	if _, err := c.BandwidthRule(); err != nil {
		return err
	}
	if c.KDE.Points < 2 {
		return fmt.Errorf("kde.points=%d: %w", c.KDE.Points, ErrInvalid)
	}
	if err := c.Loess.Validate(); err != nil {
		return fmt.Errorf("loess: %w", err)
	}
	if c.Cluster.K < 1 || c.Cluster.MaxIterations < 1 || c.Cluster.Cut < 1 {
		return fmt.Errorf("cluster k=%d max_iterations=%d cut=%d: %w",
			c.Cluster.K, c.Cluster.MaxIterations, c.Cluster.Cut, ErrInvalid)
	}
	if _, err := c.DistanceFunc(); err != nil {
		return err
	}
	if _, err := c.Linkage(); err != nil {
		return err
	}

	return nil
}

// KernelFunc resolves KDE.Kernel.
func (c *Config) KernelFunc() (kde.Kernel, error) {
	return kde.KernelByName(c.KDE.Kernel)
}

// BandwidthRule resolves KDE.Bandwidth to a rule name or a fixed width.
func (c *Config) BandwidthRule() (kde.Rule, error) {
	if h, err := strconv.ParseFloat(c.KDE.Bandwidth, 64); err == nil {
		if !(h > 0) {
			return nil, fmt.Errorf("kde.bandwidth=%g: %w", h, ErrInvalid)
		}

		return kde.Fixed(h), nil
	}

	return kde.RuleByName(c.KDE.Bandwidth)
}

// DistanceFunc resolves Cluster.Distance.
func (c *Config) DistanceFunc() (distance.Func, error) {
	return distance.ByName(c.Cluster.Distance)
}

// Linkage resolves Cluster.Linkage.
func (c *Config) Linkage() (cluster.Linkage, error) {
	return cluster.ParseLinkage(c.Cluster.Linkage)
}
