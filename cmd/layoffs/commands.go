// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/layoffgraph/config"
	"github.com/katalvlaran/layoffgraph/logger"
	"github.com/katalvlaran/layoffgraph/logger/console"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	debug      bool
	sorted     bool
	workers    int
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "layoffs",
		Short:         "Summarize layoffs per industry and cluster related companies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML configuration file")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.BoolVar(&flags.sorted, "sorted", false, "render industries and clusters in a deterministic order")
	pf.IntVar(&flags.workers, "workers", 0, "bound on concurrent per-industry workers (0 = unbounded)")

	root.AddCommand(newStatsCmd(&flags), newClustersCmd(&flags))

	return root
}

// setup loads configuration, applies flags that were set explicitly and
// installs the console logger on the command's stderr.
func setup(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}

	pf := cmd.Flags()
	if pf.Changed("debug") {
		cfg.Log.Debug = flags.debug
	}
	if pf.Changed("sorted") {
		cfg.Report.Sorted = flags.sorted
	}
	if pf.Changed("workers") {
		cfg.Report.Workers = flags.workers
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  cfg.Log.Debug,
		Output: cmd.ErrOrStderr(),
	}))
	logger.Debug("configuration loaded", "path", flags.configPath, "workers", cfg.Report.Workers, "sorted", cfg.Report.Sorted)

	return cfg, nil
}
