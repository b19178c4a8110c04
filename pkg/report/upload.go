package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"promoset/pkg/parser"
	"promoset/pkg/platform"
	"promoset/pkg/schema"
)

// WriteUpload emits one upload-ready price file for a platform channel. The
// output mirrors the user-supplied template: its exact column set in its
// original order, with only the product id, variant id (for variant-granular
// channels), and final price columns populated; every other template column
// is left blank. Product-granular channels are deduplicated by product id,
// first occurrence wins, collapsing variant-level fan-out to one row per
// product.
func WriteUpload(path, templatePath string, ch platform.Channel, platformName string, safe []Row) error {
	headers, err := parser.ReadHeaderRow(templatePath)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	label := uploadLabel(platformName, ch)
	productCol, err := schema.ResolveColumn(headers, ch.ProductIDColumns, label)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	priceCol, err := schema.ResolveColumn(headers, ch.PriceColumns, label)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	variantCol := ""
	if ch.Granularity == platform.GranularityVariant && len(ch.VariantIDColumns) > 0 {
		variantCol, err = schema.ResolveColumn(headers, ch.VariantIDColumns, label)
		if err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	rows := safe
	if ch.Granularity == platform.GranularityProduct {
		rows = dedupeByProduct(safe)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	for i, r := range rows {
		out := make([]interface{}, len(headers))
		for j, h := range headers {
			switch {
			case h == productCol:
				out[j] = r.Entry.Identity.ProductID
			case h == priceCol:
				out[j] = r.Entry.FinalPrice
			case variantCol != "" && h == variantCol:
				out[j] = r.Entry.Identity.VariantID
			default:
				out[j] = ""
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return &WriteError{Path: path, Err: err}
		}
		if err := f.SetSheetRow(sheet, cell, &out); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// dedupeByProduct keeps the first row per product id.
func dedupeByProduct(rows []Row) []Row {
	seen := make(map[string]bool, len(rows))
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		id := r.Entry.Identity.ProductID
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, r)
	}
	return out
}

func uploadLabel(platformName string, ch platform.Channel) string {
	if ch.Name == "" {
		return fmt.Sprintf("Template %s", platformName)
	}
	return fmt.Sprintf("Template %s %s", platformName, ch.Name)
}
