// SPDX-License-Identifier: MIT

package loader

// Result reports what happened during one ingestion.
type Result struct {
	// Lines is the number of physical lines read, header included.
	Lines int

	// Loaded is the number of rows handed to the core.
	Loaded int

	// Skipped lists rejected rows in input order.
	Skipped []SkippedRow
}

// SkippedRow describes one rejected input line.
type SkippedRow struct {
	Line   int    // 1-based line number
	Raw    string // line text as read
	Reason string
}

// companyRecord is a validated ledger row.
type companyRecord struct {
	Company  string `validate:"required"`
	Industry string `validate:"required"`
	Year     uint32
	Layoffs  uint32
}

// edgeRecord is a validated relation row.
type edgeRecord struct {
	Company string `validate:"required"`
	Peer    string `validate:"required"`
}
