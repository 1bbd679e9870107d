// SPDX-License-Identifier: MIT

package ledger

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/layoffgraph/stats"
)

// Report computes every per-industry statistic in one pass, one goroutine
// per industry.
//
// Implementation:
//   - Stage 1: Apply options; hold the read lock for the whole fan-out so the
//     workers can read membership and facts without further locking.
//   - Stage 2: errgroup fan-out, bounded by WithWorkers; each worker writes
//     only its own slot of the result slice.
//   - Stage 3: Optionally sort rows by industry name.
//
// Rows follow industry insertion order unless WithSortedIndustries is given.
// The only error is the context's, when it is cancelled before completion.
//
// Complexity: O(total memberships · log) work, spread across workers.
func (l *Ledger) Report(ctx context.Context, opts ...ReportOption) ([]IndustryStats, error) {
	var o reportOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	names := l.industriesLocked()
	rows := make([]IndustryStats, len(names))

	g, gctx := errgroup.WithContext(ctx)
	if o.workers > 0 {
		g.SetLimit(o.workers)
	}
	for i, name := range names {
		i, name := i, name
		companies, _ := l.membership.Get(name)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = l.industryStats(name, companies)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if o.sorted {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Industry < rows[j].Industry })
	}

	return rows, nil
}

// industryStats computes the full statistics row for one industry.
// Caller holds mu.
func (l *Ledger) industryStats(industry string, companies map[string]struct{}) IndustryStats {
	known := l.knownLayoffs(companies)

	return IndustryStats{
		Industry:     industry,
		Summary:      l.summarize(companies),
		Median:       stats.Median(known),
		Mode:         stats.Mode(known),
		StdDeviation: stats.PopulationStdDev(known, len(companies)),
	}
}
