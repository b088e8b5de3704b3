// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlfield/field"
)

// buildGenerator assembles a Generator from a validated config.
func buildGenerator(cfg *Config, hooks ...field.Option) (*field.Generator, error) {
	if math.IsNaN(cfg.Mean) || math.IsInf(cfg.Mean, 0) {
		return nil, fmt.Errorf("config: mean must be finite")
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("config: workers must not be negative")
	}

	dom, err := cfg.domain()
	if err != nil {
		return nil, err
	}
	kern, err := cfg.kernel()
	if err != nil {
		return nil, err
	}

	genOpts := []field.Option{
		field.WithResolver(field.OutputRoot(cfg.Output)),
		field.WithKernel(kern),
		field.WithWorkers(cfg.Workers),
		field.WithMean(cfg.Mean),
	}
	genOpts = append(genOpts, hooks...)

	return field.New(dom, cfg.truncation(), genOpts...)
}

// newGenerateCmd computes, or confirms, the cached eigendecomposition for
// the configured parameter set.
func newGenerateCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Compute or refresh the cached eigendecomposition",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := opts.loadAndMerge()
			if err != nil {
				return err
			}

			start := time.Now()
			g, err := buildGenerator(cfg)
			if err != nil {
				return err
			}

			pairs := g.EigenPairs()
			total := g.Domain().TotalPoints()
			opts.log.WithFields(logrus.Fields{
				"key":      g.CacheKey(),
				"warm":     g.Warm(),
				"points":   total,
				"modes":    pairs.NumModes(),
				"variance": fmt.Sprintf("%.4f", pairs.FractionOfTotal(total)),
				"elapsed":  time.Since(start).Round(time.Millisecond),
			}).Info("generator ready")

			return nil
		},
	}
}
