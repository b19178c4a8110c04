package cfg

import "testing"

func TestLoad_Defaults(t *testing.T) {
	c, err := Load([]string{"--promo", "promo.xlsx", "--master", "master.xlsx"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.MinPrice != 1000 {
		t.Errorf("default min price = %d, want 1000", c.MinPrice)
	}
	if c.MaxDiscountRatio != 0.90 {
		t.Errorf("default max discount ratio = %f, want 0.90", c.MaxDiscountRatio)
	}
	if c.OutputDir != "." {
		t.Errorf("default output dir = %q, want .", c.OutputDir)
	}
}

func TestLoad_RequiredFlags(t *testing.T) {
	if _, err := Load([]string{"--promo", "promo.xlsx"}); err == nil {
		t.Error("expected error when --master is missing")
	}
	if _, err := Load(nil); err == nil {
		t.Error("expected error when both required flags are missing")
	}
}

func TestLoad_RepeatableCatalogFlags(t *testing.T) {
	c, err := Load([]string{
		"--promo", "p.xlsx", "--master", "m.xlsx",
		"--shopee-db", "a.xlsx", "--shopee-db", "b.xlsx",
		"--tiktok-db", "c.xlsx",
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.ShopeeCatalogs) != 2 {
		t.Errorf("expected 2 shopee catalogs, got %v", c.ShopeeCatalogs)
	}
	if len(c.TikTokCatalogs) != 1 {
		t.Errorf("expected 1 tiktok catalog, got %v", c.TikTokCatalogs)
	}
}

func TestLoad_Overrides(t *testing.T) {
	c, err := Load([]string{
		"--promo", "p.xlsx", "--master", "m.xlsx",
		"--min-price", "2500", "--max-discount-ratio", "0.75",
		"--out-dir", "/tmp/out", "--summary-json", "run.json", "--debug",
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.MinPrice != 2500 || c.MaxDiscountRatio != 0.75 {
		t.Errorf("thresholds not overridden: %d / %f", c.MinPrice, c.MaxDiscountRatio)
	}
	if c.OutputDir != "/tmp/out" || c.SummaryJSON != "run.json" || !c.Debug {
		t.Errorf("overrides not applied: %+v", c)
	}
}
