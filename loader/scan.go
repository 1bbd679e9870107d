// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/layoffgraph/config"
	"github.com/katalvlaran/layoffgraph/logger"
)

const maxLineBytes = 1 << 20

// rowFunc consumes the trimmed fields of one data row. A non-empty return is
// the reason the row was rejected.
type rowFunc func(fields []string) string

// scan walks r line by line, splitting each data line into fields and
// passing rows with at least minFields fields to fn.
//
// Steps:
//  1. Check ctx before every line.
//  2. Skip blank lines and the header (first non-blank line) if configured.
//  3. Parse the line with encoding/csv (lazy quotes, variable field count).
//  4. Reject short or malformed rows; otherwise trim and hand off to fn.
func scan(ctx context.Context, r io.Reader, in config.Input, minFields int, fn rowFunc) (Result, error) {
	var res Result

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	headerPending := in.HasHeader
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		res.Lines++
		raw := sc.Text()
		if res.Lines == 1 {
			raw = strings.TrimPrefix(raw, "\ufeff")
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if headerPending {
			headerPending = false
			continue
		}

		fields, err := splitLine(raw, in.Comma())
		if err != nil {
			res.skip(res.Lines, raw, "malformed row: "+err.Error())
			continue
		}
		if len(fields) < minFields {
			res.skip(res.Lines, raw, fmt.Sprintf("too few fields: got %d, need %d", len(fields), minFields))
			continue
		}

		if reason := fn(fields); reason != "" {
			res.skip(res.Lines, raw, reason)
			continue
		}
		res.Loaded++
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("loader: read line %d: %w", res.Lines+1, err)
	}

	logger.Info("ingestion complete", "lines", res.Lines, "loaded", res.Loaded, "skipped", len(res.Skipped))

	return res, nil
}

// skip records and logs a rejected row.
func (res *Result) skip(line int, raw, reason string) {
	res.Skipped = append(res.Skipped, SkippedRow{Line: line, Raw: raw, Reason: reason})
	logger.Warn("skipping row", "line", line, "raw", raw, "reason", reason)
}

// splitLine parses one delimited line and trims every field.
func splitLine(raw string, comma rune) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(raw))
	cr.Comma = comma
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	fields, err := cr.Read()
	if err != nil {
		return nil, err
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields, nil
}
