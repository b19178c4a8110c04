// Package platform describes how each marketplace's product database and
// upload templates are shaped: which sheet carries the catalog, how to locate
// the header row, and which header variants name each semantic field.
// Built-in definitions cover Shopee and TikTok; a YAML file can override or
// extend them when a marketplace changes its export format.
package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Granularity says whether an upload channel takes one row per variant or one
// row per product.
type Granularity string

const (
	GranularityVariant Granularity = "variant"
	GranularityProduct Granularity = "product"
)

// Channel is one upload-ready output format for a platform. Column candidate
// lists refer to the user-supplied template file's headers, in priority order.
type Channel struct {
	// Name distinguishes channels of one platform in output filenames and in
	// the template-path configuration. Empty for a platform's only channel.
	Name        string      `yaml:"name"`
	Granularity Granularity `yaml:"granularity"`

	ProductIDColumns []string `yaml:"product_id_columns"`
	VariantIDColumns []string `yaml:"variant_id_columns,omitempty"`
	PriceColumns     []string `yaml:"price_columns"`
}

// Definition describes one marketplace.
type Definition struct {
	Name string `yaml:"name"`

	// CatalogSheet is preferred when reading catalog workbooks; the first
	// sheet is used when absent.
	CatalogSheet string `yaml:"catalog_sheet,omitempty"`
	// MarkerColumns locate the header row inside catalog exports whose header
	// is not the first row. Empty means the header is row 0.
	MarkerColumns []string `yaml:"marker_columns,omitempty"`

	// Column candidates for the catalog's semantic fields, in priority order.
	ProductIDColumns   []string `yaml:"product_id_columns"`
	VariantIDColumns   []string `yaml:"variant_id_columns,omitempty"`
	SellerSKUColumns   []string `yaml:"seller_sku_columns"`
	ProductNameColumns []string `yaml:"product_name_columns"`

	Channels []Channel `yaml:"channels"`
}

// HasVariants reports whether the platform catalog carries a variant id.
func (d *Definition) HasVariants() bool {
	return len(d.VariantIDColumns) > 0
}

// Defaults returns the built-in platform definitions. Candidate strings are
// the header spellings the marketplaces actually emit, including localized
// template variants.
func Defaults() []Definition {
	return []Definition{
		{
			Name:               "Shopee",
			ProductIDColumns:   []string{"et_title_product_id", "ID Produk"},
			VariantIDColumns:   []string{"et_title_variation_id", "ID Variasi"},
			SellerSKUColumns:   []string{"et_title_variation_sku", "SKU"},
			ProductNameColumns: []string{"et_title_product_name"},
			Channels: []Channel{
				{
					Granularity:      GranularityVariant,
					ProductIDColumns: []string{"ID Produk", "Kode Produk"},
					VariantIDColumns: []string{"ID Variasi", "Kode Variasi"},
					PriceColumns:     []string{"Harga Diskon"},
				},
			},
		},
		{
			Name:               "TikTok",
			CatalogSheet:       "Template",
			MarkerColumns:      []string{"product_id", "seller_sku"},
			ProductIDColumns:   []string{"product_id"},
			VariantIDColumns:   []string{"sku_id"},
			SellerSKUColumns:   []string{"seller_sku"},
			ProductNameColumns: []string{"product_name"},
			Channels: []Channel{
				{
					Name:             "method1",
					Granularity:      GranularityVariant,
					ProductIDColumns: []string{"Product_id (wajib) diisi", "Product_id (wajib)"},
					VariantIDColumns: []string{"SKU_id (wajib) diisi", "SKU_id (wajib)"},
					PriceColumns:     []string{"Harga Penawaran (wajib) diisi", "Harga Penawaran (wajib)"},
				},
				{
					Name:             "method2",
					Granularity:      GranularityProduct,
					ProductIDColumns: []string{"Product_id (wajib) diisi", "Product_id (wajib)"},
					PriceColumns:     []string{"Harga Penawaran (wajib) diisi", "Harga Penawaran (wajib)"},
				},
			},
		},
	}
}

// Load reads platform definitions from a YAML file. An empty path returns the
// built-in defaults.
func Load(path string) ([]Definition, error) {
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read platform definitions: %w", err)
	}

	var defs []Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse platform definitions %s: %w", path, err)
	}

	for i := range defs {
		if err := validate(&defs[i]); err != nil {
			return nil, fmt.Errorf("invalid platform definition %s: %w", path, err)
		}
	}

	return defs, nil
}

// validate checks that a definition is usable.
func validate(d *Definition) error {
	if d.Name == "" {
		return fmt.Errorf("platform name is required")
	}
	if len(d.ProductIDColumns) == 0 {
		return fmt.Errorf("platform %s: product_id_columns is required", d.Name)
	}
	if len(d.SellerSKUColumns) == 0 {
		return fmt.Errorf("platform %s: seller_sku_columns is required", d.Name)
	}
	if len(d.ProductNameColumns) == 0 {
		return fmt.Errorf("platform %s: product_name_columns is required", d.Name)
	}
	if len(d.Channels) == 0 {
		return fmt.Errorf("platform %s: at least one upload channel is required", d.Name)
	}
	for _, ch := range d.Channels {
		switch ch.Granularity {
		case GranularityVariant, GranularityProduct:
		default:
			return fmt.Errorf("platform %s channel %q: granularity must be %q or %q",
				d.Name, ch.Name, GranularityVariant, GranularityProduct)
		}
		if len(ch.ProductIDColumns) == 0 || len(ch.PriceColumns) == 0 {
			return fmt.Errorf("platform %s channel %q: product_id_columns and price_columns are required", d.Name, ch.Name)
		}
		if ch.Granularity == GranularityVariant && d.HasVariants() && len(ch.VariantIDColumns) == 0 {
			return fmt.Errorf("platform %s channel %q: variant_id_columns is required for variant granularity", d.Name, ch.Name)
		}
	}
	return nil
}
