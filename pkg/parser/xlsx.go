package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadTable loads one tabular file into a Table. Workbooks (.xlsx/.xlsm) are
// read with excelize; .csv falls back to the CSV loader with encoding
// detection. Both paths produce the same Table shape.
func ReadTable(path string, opts Options) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return readCSV(path, opts)
	}
	return readWorkbook(path, opts)
}

// readWorkbook reads the catalog sheet of a workbook into a Table. The
// preferred sheet is used when present; otherwise the first sheet.
func readWorkbook(path string, opts Options) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet, err := pickSheet(f, opts.PreferredSheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}

	return buildTable(path, rows, opts)
}

// pickSheet returns the preferred sheet name when it exists, else the first
// sheet of the workbook.
func pickSheet(f *excelize.File, preferred string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if preferred != "" {
		for _, s := range sheets {
			if strings.EqualFold(s, preferred) {
				return s, nil
			}
		}
	}
	return sheets[0], nil
}

// ReadHeaderRow returns the first non-empty row of a workbook's first sheet.
// Upload templates are read this way: only their header row matters, and they
// typically carry no data rows at all.
func ReadHeaderRow(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open template %s: %w", path, err)
	}
	defer f.Close()

	sheet, err := pickSheet(f, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}

	for _, row := range rows {
		if !rowEmpty(row) {
			headers := make([]string, len(row))
			for i, h := range row {
				headers[i] = strings.TrimSpace(h)
			}
			return headers, nil
		}
	}
	return nil, fmt.Errorf("%s: template has no header row", path)
}
