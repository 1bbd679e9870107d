// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/layoffgraph/core"
	"github.com/katalvlaran/layoffgraph/loader"
	"github.com/katalvlaran/layoffgraph/logger"
	"github.com/katalvlaran/layoffgraph/report"
)

func newClustersCmd(flags *rootFlags) *cobra.Command {
	var degrees bool

	cmd := &cobra.Command{
		Use:   "clusters FILE",
		Short: "Print clusters of companies connected by relation rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			g, _, err := loader.LoadGraphFile(cmd.Context(), args[0], cfg.Input)
			if err != nil {
				return err
			}

			var opts []core.ClusterOption
			if cfg.Report.Sorted {
				opts = append(opts, core.WithSortedClusters())
			}
			clusters := g.Clusters(opts...)
			logger.Info("clusters found", "clusters", len(clusters), "companies", g.VertexCount(), "relations", g.EdgeCount())

			var deg map[string]int
			if degrees {
				deg = g.Degrees()
			}

			return report.Clusters(cmd.OutOrStdout(), clusters, deg)
		},
	}
	cmd.Flags().BoolVar(&degrees, "degrees", false, "print each company's degree")

	return cmd
}
