// SPDX-License-Identifier: MIT
package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootOpts carries the persistent flag values shared by all subcommands.
type rootOpts struct {
	configPath string
	output     string
	logLevel   string
	log        *logrus.Logger
}

// newRootCmd wires the command tree and the shared logger.
func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "lvlfield",
		Short:         "Correlated random fields on uniform grids, with a binary disk cache",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.log = newLogger(opts.logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c",
		"lvlfield.yaml", "path to the yaml configuration file")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o",
		"", "cache root directory (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level",
		"info", "log verbosity: debug, info, warn, error")

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newSampleCmd(opts))
	rootCmd.AddCommand(newKeyCmd(opts))

	return rootCmd
}

// newLogger builds the shared logger at the requested verbosity.
func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}

// loadAndMerge reads the config and applies flag overrides.
func (o *rootOpts) loadAndMerge() (*Config, error) {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.output != "" {
		cfg.Output = o.output
	}

	return cfg, nil
}
