package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WriteError reports a failure to emit one output file. Remaining report
// emissions continue; the run is marked completed-with-errors.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write report %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Audit sheet names.
const (
	sheetSummary  = "Summary"
	sheetSafe     = "Safe"
	sheetReview   = "Needs Review"
	sheetNotFound = "Not Found"
)

// WriteAudit emits one platform's audit workbook: a summary sheet with bucket
// counts and anomaly advisories, the safe rows, the review rows with reasons
// and a formatted discount percentage, and the not-found rows with the
// original identifier and offline price for manual reconciliation.
func WriteAudit(path string, rep *PlatformReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeAuditSummary(f, rep); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := writeAuditSafe(f, rep.Safe); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if len(rep.Review) > 0 {
		if err := writeAuditReview(f, rep.Review); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	if len(rep.NotFound) > 0 {
		if err := writeAuditNotFound(f, rep.NotFound); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func writeAuditSummary(f *excelize.File, rep *PlatformReport) error {
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return err
	}

	counts := rep.Counts()
	rows := [][]interface{}{
		{"Metric", "Count"},
		{"Products processed (safe)", counts.Safe},
		{"Products not found in platform catalog", counts.NotFound},
		{"Products needing review (price warning)", counts.Review},
	}

	if len(rep.Anomalies) > 0 {
		rows = append(rows, []interface{}{}, []interface{}{"Advisories", ""})
		for _, a := range rep.Anomalies {
			rows = append(rows, []interface{}{a.Key, a.Detail})
		}
	}

	return setRows(f, sheetSummary, rows)
}

func writeAuditSafe(f *excelize.File, safe []Row) error {
	if _, err := f.NewSheet(sheetSafe); err != nil {
		return err
	}

	rows := [][]interface{}{{"SKU (Normalized)", "Product Name", "Final Promo Price"}}
	for _, r := range safe {
		rows = append(rows, []interface{}{r.Entry.Key, r.Entry.Identity.ProductName, r.Entry.FinalPrice})
	}
	return setRows(f, sheetSafe, rows)
}

func writeAuditReview(f *excelize.File, review []Row) error {
	if _, err := f.NewSheet(sheetReview); err != nil {
		return err
	}

	rows := [][]interface{}{{"SKU", "Product Name", "Original Price", "Final Promo Price", "Discount", "Reasons"}}
	for _, r := range review {
		rows = append(rows, []interface{}{
			r.Entry.Key,
			r.Entry.Identity.ProductName,
			r.Entry.OnlineList,
			r.Entry.FinalPrice,
			fmt.Sprintf("%.2f%%", r.Entry.DiscountRatio*100),
			strings.Join(r.Classification.Reasons, ", "),
		})
	}
	return setRows(f, sheetReview, rows)
}

func writeAuditNotFound(f *excelize.File, notFound []Row) error {
	if _, err := f.NewSheet(sheetNotFound); err != nil {
		return err
	}

	rows := [][]interface{}{{"SKU Not Found (Normalized)", "Original SKU (From Promo File)", "Offline List Price", "Closest Catalog SKU"}}
	for _, r := range notFound {
		rows = append(rows, []interface{}{r.Entry.Key, r.Entry.RawSKU, r.Entry.OfflineList, r.Suggestion})
	}
	return setRows(f, sheetNotFound, rows)
}

// setRows writes rows starting at A1 of a sheet.
func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
