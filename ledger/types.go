// SPDX-License-Identifier: MIT

package ledger

// Fact is the (layoffs, year) pair recorded for one company.
// Year 0 means the year is unknown.
type Fact struct {
	Layoffs uint32
	Year    uint32
}

// Membership maps an industry to the set of companies assigned to it.
// It is the view type accepted by the per-industry statistics queries.
type Membership map[string]map[string]struct{}

// Summary aggregates one industry.
type Summary struct {
	// CompanyCount is the number of companies listed under the industry.
	CompanyCount int

	// TotalLayoffs sums the known layoffs of those companies.
	TotalLayoffs uint64

	// AverageLayoffs is TotalLayoffs / CompanyCount (0 for an empty industry).
	AverageLayoffs float64

	// AverageYear is the mean of the known non-zero years (0 when none).
	AverageYear float64
}

// IndustryStats bundles every per-industry statistic produced by Report.
type IndustryStats struct {
	Industry     string
	Summary      Summary
	Median       float64
	Mode         uint32
	StdDeviation float64
}

// ReportOption configures Report.
type ReportOption func(o *reportOptions)

type reportOptions struct {
	workers int  // max concurrent industry computations; <= 0 means unbounded
	sorted  bool // order rows by industry name instead of insertion order
}

// WithWorkers bounds the number of industries computed concurrently.
// n <= 0 leaves the fan-out unbounded.
func WithWorkers(n int) ReportOption {
	return func(o *reportOptions) { o.workers = n }
}

// WithSortedIndustries orders Report rows by industry name ascending.
func WithSortedIndustries() ReportOption {
	return func(o *reportOptions) { o.sorted = true }
}
