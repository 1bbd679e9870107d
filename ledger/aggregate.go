// SPDX-License-Identifier: MIT
// File: aggregate.go
// Role: Read-only aggregation queries over membership and facts.
//
// Divisor policy:
//   - Averages of layoffs and the standard deviation divide by the number of
//     companies listed under the industry, so a member without facts pulls the
//     average toward zero.
//   - Median and mode use only members with facts.
//   - Year averages use only known non-zero years.

package ledger

import "github.com/katalvlaran/layoffgraph/stats"

// IndustrySummary returns company count, total layoffs, average layoffs and
// average year for every industry in the ledger.
// Complexity: O(total memberships).
func (l *Ledger) IndustrySummary() map[string]Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]Summary, l.membership.Len())
	for pair := l.membership.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = l.summarize(pair.Value)
	}

	return out
}

// AverageLayoffsPerYear returns the mean layoffs per known year, plus key 0
// holding the mean over every company with a non-zero year.
//
// Companies with year 0 are skipped entirely. When no company has a known
// year the result is empty.
// Complexity: O(companies).
func (l *Ledger) AverageLayoffsPerYear() map[uint32]float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sums := make(map[uint32]uint64)
	counts := make(map[uint32]int)
	var total uint64
	var n int
	for _, f := range l.facts {
		if f.Year == 0 {
			continue
		}
		sums[f.Year] += uint64(f.Layoffs)
		counts[f.Year]++
		total += uint64(f.Layoffs)
		n++
	}

	out := make(map[uint32]float64, len(sums)+1)
	for year, s := range sums {
		out[year] = stats.Mean(float64(s), counts[year])
	}
	if n > 0 {
		out[0] = stats.Mean(float64(total), n)
	}

	return out
}

// AverageYearPerIndustry returns the mean known year per industry; 0 for an
// industry whose companies have no known year.
func (l *Ledger) AverageYearPerIndustry() map[string]float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]float64, l.membership.Len())
	for pair := l.membership.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = l.averageYear(pair.Value)
	}

	return out
}

// MedianPerIndustry returns the median layoffs of each industry in view.
// Companies without facts are excluded; an empty sample yields 0.
func (l *Ledger) MedianPerIndustry(view Membership) map[string]float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]float64, len(view))
	for industry, companies := range view {
		out[industry] = stats.Median(l.knownLayoffs(companies))
	}

	return out
}

// ModePerIndustry returns the most frequent layoff value of each industry in
// view, ties broken toward the smallest value. An empty sample yields 0.
func (l *Ledger) ModePerIndustry(view Membership) map[string]uint32 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]uint32, len(view))
	for industry, companies := range view {
		out[industry] = stats.Mode(l.knownLayoffs(companies))
	}

	return out
}

// StdDeviationPerIndustry returns the population standard deviation of
// layoffs per industry in view. Both mean and variance divide by the number of
// companies listed in the view entry; an empty entry yields 0.
func (l *Ledger) StdDeviationPerIndustry(view Membership) map[string]float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]float64, len(view))
	for industry, companies := range view {
		out[industry] = stats.PopulationStdDev(l.knownLayoffs(companies), len(companies))
	}

	return out
}

// summarize builds the Summary of one industry. Caller holds mu.
func (l *Ledger) summarize(companies map[string]struct{}) Summary {
	total := stats.Sum(l.knownLayoffs(companies))

	return Summary{
		CompanyCount:   len(companies),
		TotalLayoffs:   total,
		AverageLayoffs: stats.Mean(float64(total), len(companies)),
		AverageYear:    l.averageYear(companies),
	}
}

// averageYear averages the known non-zero years of companies. Caller holds mu.
func (l *Ledger) averageYear(companies map[string]struct{}) float64 {
	var sum uint64
	var n int
	for c := range companies {
		f, ok := l.facts[c]
		if !ok || f.Year == 0 {
			continue
		}
		sum += uint64(f.Year)
		n++
	}

	return stats.Mean(float64(sum), n)
}
