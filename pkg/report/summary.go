package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// WriteExecutiveSummary emits the cross-platform executive summary workbook:
// total promo input, duplicates removed, then one audit block per platform.
func WriteExecutiveSummary(path string, sum RunSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Executive Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	rows := [][]interface{}{
		{"Metric", "Count"},
		{"Total SKUs in promo file", sum.TotalPromoInput},
		{"Duplicate SKUs removed (promo)", sum.PromoDuplicates},
		{"Duplicate SKUs removed (master)", sum.MasterDuplicates},
		{"SKUs matched against master catalog", sum.Matched},
		{"Price advisories", sum.Anomalies},
	}

	for _, p := range sum.Platforms {
		rows = append(rows,
			[]interface{}{},
			[]interface{}{fmt.Sprintf("--- %s AUDIT ---", p.Name), ""},
		)
		if p.Error != "" {
			rows = append(rows, []interface{}{"Processing failed", p.Error})
			continue
		}
		rows = append(rows,
			[]interface{}{"Products processed (safe)", p.Counts.Safe},
			[]interface{}{"Products not found in platform catalog", p.Counts.NotFound},
			[]interface{}{"Products needing review (price warning)", p.Counts.Review},
		)
	}

	if err := setRows(f, sheet, rows); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := f.SaveAs(path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// ExportJSON writes the run summary as indented JSON for machine consumers.
func ExportJSON(path string, sum RunSummary) error {
	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
