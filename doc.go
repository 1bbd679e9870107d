// SPDX-License-Identifier: MIT
// Package layoffgraph ingests layoff records, summarizes them per industry and
// groups companies that share layoff events into clusters.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        RelationGraph: undirected company graph, clusters, degree centrality
//	ledger/      IndustryLedger: industry membership, per-company facts, aggregations
//	stats/       sum, mean, median, mode and population standard deviation helpers
//	loader/      CSV ingestion into a ledger or a graph, with skipped-row reporting
//	report/      lipgloss console rendering of statistics and clusters
//	config/      defaults < YAML file < LAYOFFS_* environment configuration
//	logger/      logging facade with charmbracelet/log console and in-memory backends
//	cmd/layoffs  cobra CLI: `layoffs stats FILE`, `layoffs clusters FILE`
//
// Quick ASCII example:
//
//	Acme───Globex───Initech      Umbrella───Hooli
//
// yields two clusters: {Acme, Globex, Initech} and {Hooli, Umbrella}.
//
//	go install github.com/katalvlaran/layoffgraph/cmd/layoffs@latest
package layoffgraph
