// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/layoffgraph/ledger"
	"github.com/katalvlaran/layoffgraph/loader"
	"github.com/katalvlaran/layoffgraph/report"
)

func newStatsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print per-industry statistics and average layoffs per year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			l, _, err := loader.LoadLedgerFile(cmd.Context(), args[0], cfg.Input)
			if err != nil {
				return err
			}

			opts := []ledger.ReportOption{ledger.WithWorkers(cfg.Report.Workers)}
			if cfg.Report.Sorted {
				opts = append(opts, ledger.WithSortedIndustries())
			}
			rows, err := l.Report(cmd.Context(), opts...)
			if err != nil {
				return err
			}

			return report.Industries(cmd.OutOrStdout(), rows, l.AverageLayoffsPerYear())
		},
	}
}
