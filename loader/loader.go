// SPDX-License-Identifier: MIT

package loader

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/layoffgraph/config"
	"github.com/katalvlaran/layoffgraph/core"
	"github.com/katalvlaran/layoffgraph/ledger"
)

// LoadLedger reads (company, industry, date, layoffs) rows from r into a new
// Ledger. Column positions come from in.Columns.
func LoadLedger(ctx context.Context, r io.Reader, in config.Input) (*ledger.Ledger, Result, error) {
	l := ledger.New()
	cols := in.Columns

	res, err := scan(ctx, r, in, in.MinFields(), func(fields []string) string {
		rec := companyRecord{
			Company:  fields[cols.Company],
			Industry: fields[cols.Industry],
			Year:     parseYear(fields[cols.Date]),
			Layoffs:  parseLayoffs(fields[cols.Layoffs]),
		}
		if err := validate.Struct(rec); err != nil {
			return validationReason(err)
		}
		l.AddCompany(rec.Company, rec.Industry, rec.Year, rec.Layoffs)

		return ""
	})
	if err != nil {
		return nil, res, err
	}

	return l, res, nil
}

// LoadGraph reads (company, peer) rows from r into a new relation Graph.
// Column positions come from in.Columns.Company and in.Columns.Peer.
func LoadGraph(ctx context.Context, r io.Reader, in config.Input) (*core.Graph, Result, error) {
	g := core.NewGraph()
	cols := in.Columns

	res, err := scan(ctx, r, in, in.MinEdgeFields(), func(fields []string) string {
		rec := edgeRecord{Company: fields[cols.Company], Peer: fields[cols.Peer]}
		if err := validate.Struct(rec); err != nil {
			return validationReason(err)
		}
		g.AddEdge(rec.Company, rec.Peer)

		return ""
	})
	if err != nil {
		return nil, res, err
	}

	return g, res, nil
}

// LoadLedgerFile opens path and calls LoadLedger.
func LoadLedgerFile(ctx context.Context, path string, in config.Input) (*ledger.Ledger, Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Result{}, fmt.Errorf("loader: open %q: %w", path, err)
	}
	defer f.Close()

	return LoadLedger(ctx, f, in)
}

// LoadGraphFile opens path and calls LoadGraph.
func LoadGraphFile(ctx context.Context, path string, in config.Input) (*core.Graph, Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Result{}, fmt.Errorf("loader: open %q: %w", path, err)
	}
	defer f.Close()

	return LoadGraph(ctx, f, in)
}
