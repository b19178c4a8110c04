package parser

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Warning represents a non-fatal issue encountered while reading a table.
type Warning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Table is a loaded tabular source: the header row plus one map per data row
// (header -> cell value). Source identifies the file for diagnostics.
type Table struct {
	Source   string              `json:"source"`
	Headers  []string            `json:"headers"`
	Rows     []map[string]string `json:"rows"`
	Warnings []Warning           `json:"warnings"`
}

// Options controls how a table is located inside a file.
type Options struct {
	// PreferredSheet is tried first for workbook inputs; when absent, the
	// first sheet is used. Ignored for CSV inputs.
	PreferredSheet string
	// MarkerColumns identify the header row: the first row containing any of
	// these values (folded) is treated as the header. When empty, the first
	// row is the header.
	MarkerColumns []string
	// HeaderScanLimit caps how many leading rows are scanned for a marker.
	// Zero means DefaultHeaderScanLimit.
	HeaderScanLimit int
}

// DefaultHeaderScanLimit bounds the marker scan; marketplace exports put the
// header within the first few rows, after banner/instruction rows.
const DefaultHeaderScanLimit = 10

// detectHeaderRow returns the index of the header row within rows. With no
// markers the header is row 0. Otherwise the first row (within the scan
// limit) containing a cell that folds to one of the markers wins; if none
// does, row 0 is assumed.
func detectHeaderRow(rows [][]string, opts Options) int {
	if len(opts.MarkerColumns) == 0 {
		return 0
	}

	limit := opts.HeaderScanLimit
	if limit <= 0 {
		limit = DefaultHeaderScanLimit
	}
	if limit > len(rows) {
		limit = len(rows)
	}

	markers := make(map[string]bool, len(opts.MarkerColumns))
	for _, m := range opts.MarkerColumns {
		markers[foldCell(m)] = true
	}

	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if markers[foldCell(cell)] {
				return i
			}
		}
	}
	return 0
}

// foldCell normalizes a cell for marker comparison: NFKC, trim, lower.
func foldCell(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}

// buildTable converts a raw row matrix into a Table. The header row is
// located per opts; mismatched column counts in data rows are padded or
// truncated with a warning, matching how real-world exports drift.
func buildTable(source string, rows [][]string, opts Options) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file, no header row found", source)
	}

	headerIdx := detectHeaderRow(rows, opts)
	headers := make([]string, len(rows[headerIdx]))
	for i, h := range rows[headerIdx] {
		headers[i] = strings.TrimSpace(h)
	}
	headerCount := len(headers)

	table := &Table{Source: source, Headers: headers}

	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if rowEmpty(row) {
			continue
		}

		rowNum := i + 1 // 1-indexed for humans
		if len(row) != headerCount {
			if len(row) < headerCount {
				table.Warnings = append(table.Warnings, Warning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; padding with empty values", len(row), headerCount),
				})
				padded := make([]string, headerCount)
				copy(padded, row)
				row = padded
			} else {
				table.Warnings = append(table.Warnings, Warning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; truncating extra columns", len(row), headerCount),
				})
				row = row[:headerCount]
			}
		}

		record := make(map[string]string, headerCount)
		for j, h := range headers {
			record[h] = row[j]
		}
		table.Rows = append(table.Rows, record)
	}

	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("%s: file contains no data rows", source)
	}

	return table, nil
}

// rowEmpty reports whether every cell in a row is blank.
func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
