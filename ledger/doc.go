// SPDX-License-Identifier: MIT
// Package ledger implements the IndustryLedger: company membership per
// industry plus per-company layoff facts, and the aggregation queries that
// summarize them by industry and by year.
//
// Lifecycle:
//
//   - Build: repeated AddCompany(company, industry, year, layoffs) calls.
//   - Query: IndustrySummary, AverageLayoffsPerYear, AverageYearPerIndustry,
//     MedianPerIndustry, ModePerIndustry, StdDeviationPerIndustry, Report.
//
// Re-adding a company overwrites its Fact but keeps it listed under every
// industry it was ever added to (additive membership, last-write facts).
//
// Every query is total: an empty ledger or an empty industry yields empty maps
// or zero values, never an error or a division by zero. Report only fails
// when its context is cancelled.
//
// Determinism:
//
//   - Industries() and Report() follow first-insertion order of industries.
//   - ModePerIndustry breaks frequency ties toward the smallest value.
package ledger
