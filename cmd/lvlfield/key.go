// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlfield/cache"
)

// newKeyCmd prints the cache key of the configured parameter set without
// computing anything; plain output so scripts can consume it.
func newKeyCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Short: "Print the cache key for the configured parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadAndMerge()
			if err != nil {
				return err
			}
			dom, err := cfg.domain()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cache.Key(dom, cfg.truncation()))

			return nil
		},
	}
}
