// SPDX-License-Identifier: MIT
// Package loader turns delimited text into a ledger.Ledger or a core.Graph.
//
// It is the untrusted-input boundary of the module:
//
//   - the header row is skipped when configured; blank lines are ignored;
//   - fields are trimmed before they reach the core;
//   - rows with too few fields, or failing validation, are skipped, logged at
//     WARN with their 1-based line number and raw text, and reported in
//     Result.Skipped; ingestion continues;
//   - an unparseable layoff count becomes 0;
//   - an unparseable or missing date becomes year 0 (unknown).
//
// Only I/O failures (missing or unreadable input) and context cancellation
// are returned as errors.
package loader
