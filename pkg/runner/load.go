package runner

import (
	"fmt"

	"promoset/pkg/parser"
	"promoset/pkg/platform"
	"promoset/pkg/schema"
)

// Column candidates for the two mandatory shared sources, in priority order.
// These are the header spellings the internal systems emit; the promo
// template renamed its discount column between versions, hence two variants.
var (
	promoSKUColumns      = []string{"Kode Barang"}
	promoListColumns     = []string{"Harga Jual"}
	promoDiscountColumns = []string{"Harga Diskon", "HARGA PROMO"}

	masterSKUColumns  = []string{"KodeBarang"}
	masterListColumns = []string{"HargaJual"}
)

// loadPromo reads the offline promo list and resolves it into typed entries.
// Rows whose identifier normalizes to the empty key cannot participate in any
// join and are skipped; the skip count is returned for reporting.
func loadPromo(path string, sink Sink) ([]schema.PromoEntry, int, error) {
	table, err := parser.ReadTable(path, parser.Options{})
	if err != nil {
		return nil, 0, err
	}
	forwardWarnings(sink, "load", table)

	skuCol, err := schema.ResolveColumn(table.Headers, promoSKUColumns, "Promo")
	if err != nil {
		return nil, 0, err
	}
	listCol, err := schema.ResolveColumn(table.Headers, promoListColumns, "Promo")
	if err != nil {
		return nil, 0, err
	}
	discountCol, err := schema.ResolveColumn(table.Headers, promoDiscountColumns, "Promo")
	if err != nil {
		return nil, 0, err
	}

	entries := make([]schema.PromoEntry, 0, len(table.Rows))
	skipped := 0
	for _, row := range table.Rows {
		raw := row[skuCol]
		key := schema.NormalizeSKU(raw)
		if key == "" {
			skipped++
			continue
		}
		entries = append(entries, schema.PromoEntry{
			RawSKU:          raw,
			Key:             key,
			OfflineList:     schema.ParsePrice(row[listCol]),
			OfflineDiscount: schema.ParsePrice(row[discountCol]),
		})
	}
	return entries, skipped, nil
}

// loadMaster reads the online master catalog.
func loadMaster(path string, sink Sink) ([]schema.MasterEntry, error) {
	table, err := parser.ReadTable(path, parser.Options{})
	if err != nil {
		return nil, err
	}
	forwardWarnings(sink, "load", table)

	skuCol, err := schema.ResolveColumn(table.Headers, masterSKUColumns, "DB Master")
	if err != nil {
		return nil, err
	}
	listCol, err := schema.ResolveColumn(table.Headers, masterListColumns, "DB Master")
	if err != nil {
		return nil, err
	}

	entries := make([]schema.MasterEntry, 0, len(table.Rows))
	for _, row := range table.Rows {
		key := schema.NormalizeSKU(row[skuCol])
		if key == "" {
			continue
		}
		entries = append(entries, schema.MasterEntry{
			Key:        key,
			OnlineList: schema.ParsePrice(row[listCol]),
		})
	}
	return entries, nil
}

// loadCatalog reads and concatenates one platform's product database files.
// Columns are resolved per file, so a platform's files may come from
// different template versions.
func loadCatalog(def platform.Definition, paths []string, sink Sink) ([]schema.CatalogEntry, error) {
	opts := parser.Options{
		PreferredSheet: def.CatalogSheet,
		MarkerColumns:  def.MarkerColumns,
	}
	label := fmt.Sprintf("DB %s", def.Name)

	var entries []schema.CatalogEntry
	for _, path := range paths {
		table, err := parser.ReadTable(path, opts)
		if err != nil {
			return nil, err
		}
		forwardWarnings(sink, "platform", table)

		productCol, err := schema.ResolveColumn(table.Headers, def.ProductIDColumns, label)
		if err != nil {
			return nil, err
		}
		skuCol, err := schema.ResolveColumn(table.Headers, def.SellerSKUColumns, label)
		if err != nil {
			return nil, err
		}
		nameCol, err := schema.ResolveColumn(table.Headers, def.ProductNameColumns, label)
		if err != nil {
			return nil, err
		}
		variantCol := ""
		if def.HasVariants() {
			variantCol, err = schema.ResolveColumn(table.Headers, def.VariantIDColumns, label)
			if err != nil {
				return nil, err
			}
		}

		for _, row := range table.Rows {
			key := schema.NormalizeSKU(row[skuCol])
			if key == "" {
				continue
			}
			entry := schema.CatalogEntry{
				Key:         key,
				ProductID:   row[productCol],
				ProductName: row[nameCol],
			}
			if variantCol != "" {
				entry.VariantID = row[variantCol]
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func forwardWarnings(sink Sink, stage string, table *parser.Table) {
	for _, w := range table.Warnings {
		warn(sink, stage, fmt.Sprintf("%s row %d: %s", table.Source, w.Row, w.Message))
	}
}
