package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reinshift/imagecompress/svd"
)

// SolverConfig is the YAML surface over solver tuning. Every field is
// optional: zero values keep the defaults already present in the options.
//
// Example file:
//
//	tolerance: 1e-5
//	max_iterations: 2000
//	large_pixel_count: 500000
//	loose_tolerance: 5e-2
type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	MaxComponents int     `yaml:"max_components"`

	LargePixelCount    int     `yaml:"large_pixel_count"`
	LooseTolerance     float64 `yaml:"loose_tolerance"`
	LooseMaxIterations int     `yaml:"loose_max_iterations"`
	LooseMaxComponents int     `yaml:"loose_max_components"`

	Seed int64 `yaml:"seed"`
}

// LoadSolverConfig reads and parses a YAML solver configuration file.
func LoadSolverConfig(path string) (*SolverConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read solver config: %w", err)
	}
	var cfg SolverConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse solver YAML: %w", err)
	}
	return &cfg, nil
}

// Apply overlays the configured fields onto base, leaving unset (zero)
// fields untouched.
func (c *SolverConfig) Apply(base svd.Options) svd.Options {
	out := base
	if c.Tolerance > 0 {
		out.Tolerance = c.Tolerance
	}
	if c.MaxIterations > 0 {
		out.MaxIterations = c.MaxIterations
	}
	if c.MaxComponents > 0 {
		out.MaxComponents = c.MaxComponents
	}
	if c.LargePixelCount > 0 {
		out.LargePixelCount = c.LargePixelCount
	}
	if c.LooseTolerance > 0 {
		out.LooseTolerance = c.LooseTolerance
	}
	if c.LooseMaxIterations > 0 {
		out.LooseMaxIterations = c.LooseMaxIterations
	}
	if c.LooseMaxComponents > 0 {
		out.LooseMaxComponents = c.LooseMaxComponents
	}
	if c.Seed != 0 {
		out.Seed = c.Seed
	}
	return out
}
