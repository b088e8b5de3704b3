// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlfield/grid"
	"github.com/katalvlaran/lvlfield/spectral"
)

// Config mirrors the lvlfield.yaml layout. Domain slices share one length,
// the space dimension; validation happens in grid.NewDomain, not here.
type Config struct {
	Domain     DomainConfig     `yaml:"domain"`
	Truncation TruncationConfig `yaml:"truncation"`

	// Kernel selects the covariance function by name; empty selects the
	// squared-exponential kernel.
	Kernel string `yaml:"kernel"`

	// Mean shifts every realization by a constant.
	Mean float64 `yaml:"mean"`

	// Workers caps the covariance fill parallelism; 0 means one per CPU.
	Workers int `yaml:"workers"`

	// Seed drives the sampling stream; 0 selects the fixed default.
	Seed uint64 `yaml:"seed"`

	// Output is the cache root; empty means the working directory.
	Output string `yaml:"output"`
}

// DomainConfig is the yaml shape of a grid.Domain.
type DomainConfig struct {
	Lower    []float64 `yaml:"lower"`
	Upper    []float64 `yaml:"upper"`
	Points   []int     `yaml:"points"`
	Periodic []bool    `yaml:"periodic"`
}

// TruncationConfig is the yaml shape of a spectral.Truncation.
type TruncationConfig struct {
	Modes       int     `yaml:"modes"`
	LengthScale float64 `yaml:"lengthScale"`
}

// loadConfig reads and parses the yaml file at path.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// domain builds the grid.Domain described by the config.
func (c *Config) domain() (*grid.Domain, error) {
	dom, err := grid.NewDomain(
		c.Domain.Lower, c.Domain.Upper, c.Domain.Points, c.Domain.Periodic,
	)
	if err != nil {
		return nil, fmt.Errorf("domain: %w", err)
	}

	return dom, nil
}

// truncation builds the spectral.Truncation described by the config.
func (c *Config) truncation() spectral.Truncation {
	return spectral.Truncation{
		NumEigenvals: c.Truncation.Modes,
		LengthScale:  c.Truncation.LengthScale,
	}
}

// kernel resolves the configured kernel name; empty means the default.
func (c *Config) kernel() (spectral.Kernel, error) {
	if c.Kernel == "" {
		return spectral.SquaredExponential, nil
	}
	kern, err := spectral.KernelByName(c.Kernel)
	if err != nil {
		return nil, fmt.Errorf("kernel %q: %w", c.Kernel, err)
	}

	return kern, nil
}
