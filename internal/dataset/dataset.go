// SPDX-License-Identifier: MIT

// Package dataset reads the YAML input files of the lvsci command.
//
// File layout (every section optional):
//
//	groups:              # named samples for summary and density
//	  control: [1.2, 3.4, 2.2]
//	points:              # vectors for clustering
//	  - [0, 0]
//	  - [1, 0.5]
//	x: [1, 2, 3]         # strictly increasing abscissae for smoothing
//	y: [2.1, 3.9, 6.2]
//	weights: [1, 1, 0.5] # optional smoothing weights
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissing indicates that the section a command needs is absent or empty.
	ErrMissing = errors.New("dataset: section missing or empty")

	// ErrNonFinite indicates a NaN or ±Inf value in a sample.
	ErrNonFinite = errors.New("dataset: non-finite value")
)

// Dataset is one parsed input file.
type Dataset struct {
	Groups  map[string][]float64 `yaml:"groups"`
	Points  [][]float64          `yaml:"points"`
	X       []float64            `yaml:"x"`
	Y       []float64            `yaml:"y"`
	Weights []float64            `yaml:"weights"`

	// Size is the number of bytes read.
	Size int `yaml:"-"`
}

// Read decodes a dataset from r.
func Read(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	ds := &Dataset{Size: len(data)}
	if err := yaml.Unmarshal(data, ds); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return ds, nil
}

// Load reads the dataset file at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// GroupNames returns the group names in lexical order.
func (d *Dataset) GroupNames() []string {
	names := make([]string, 0, len(d.Groups))
	for name := range d.Groups {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// RequireGroups checks that at least one group exists and every group holds
// at least one finite value.
func (d *Dataset) RequireGroups() error {
	if len(d.Groups) == 0 {
		return fmt.Errorf("groups: %w", ErrMissing)
	}
	for _, name := range d.GroupNames() {
		values := d.Groups[name]
		if len(values) == 0 {
			return fmt.Errorf("groups.%s: %w", name, ErrMissing)
		}
		if err := finite("groups."+name, values); err != nil {
			return err
		}
	}

	return nil
}

// RequirePoints checks that the points section is present.
// Shape checks are left to the clustering algorithms.
func (d *Dataset) RequirePoints() error {
	if len(d.Points) == 0 {
		return fmt.Errorf("points: %w", ErrMissing)
	}

	return nil
}

// RequireSeries checks that x and y are present. Length, finiteness and
// ordering checks are left to the smoother.
func (d *Dataset) RequireSeries() error {
	if len(d.X) == 0 || len(d.Y) == 0 {
		return fmt.Errorf("x/y: %w", ErrMissing)
	}

	return nil
}

func finite(section string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s[%d]=%g: %w", section, i, v, ErrNonFinite)
		}
	}

	return nil
}
