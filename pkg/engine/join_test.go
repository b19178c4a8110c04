package engine

import (
	"testing"

	"promoset/pkg/schema"
)

func TestJoinMaster_InnerJoin(t *testing.T) {
	promo := BuildPromoIndex([]schema.PromoEntry{
		{Key: "K1", OfflineList: 100, OfflineDiscount: 80},
		{Key: "K2", OfflineList: 300, OfflineDiscount: 250},
	})
	master := BuildMasterIndex([]schema.MasterEntry{
		{Key: "K1", OnlineList: 120},
	})

	got := JoinMaster(promo, master)

	if len(got) != 1 {
		t.Fatalf("expected exactly 1 reconciled entry, got %d", len(got))
	}
	if got[0].Key != "K1" {
		t.Errorf("expected K1, got %q", got[0].Key)
	}
	// K2 has no master row, no online price basis: it must be excluded here
	// and never reach platform classification.
	for _, e := range got {
		if e.Key == "K2" {
			t.Error("K2 should have been dropped by the inner join")
		}
	}
}

func TestJoinMaster_ComputesPricing(t *testing.T) {
	promo := BuildPromoIndex([]schema.PromoEntry{
		{RawSKU: "a1", Key: "A1", OfflineList: 100, OfflineDiscount: 80},
	})
	master := BuildMasterIndex([]schema.MasterEntry{
		{Key: "A1", OnlineList: 120},
	})

	got := JoinMaster(promo, master)

	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	e := got[0]
	if e.DiscountAmount != 20 || e.FinalPrice != 100 {
		t.Errorf("expected amount 20 / final 100, got %d / %d", e.DiscountAmount, e.FinalPrice)
	}
	if e.Identity != nil {
		t.Error("identity must be absent before the platform join")
	}
	if e.RawSKU != "a1" {
		t.Errorf("original SKU must be carried through, got %q", e.RawSKU)
	}
}

func TestJoinPlatform_LeftJoinKeepsUnmatched(t *testing.T) {
	reconciled := []schema.ReconciledEntry{
		{Key: "K1", FinalPrice: 100},
		{Key: "K2", FinalPrice: 200},
	}
	catalog := BuildCatalogIndex([]schema.CatalogEntry{
		{Key: "K1", ProductID: "P1", ProductName: "Widget"},
	})

	got := JoinPlatform(reconciled, catalog)

	if len(got) != 2 {
		t.Fatalf("left join must retain every entry, got %d", len(got))
	}
	if got[0].Identity == nil {
		t.Error("K1 should carry a platform identity")
	} else if got[0].Identity.ProductID != "P1" {
		t.Errorf("expected product P1, got %q", got[0].Identity.ProductID)
	}
	if got[1].Identity != nil {
		t.Error("K2 has no catalog row; identity must be absent")
	}
}

func TestReconcileScenario(t *testing.T) {
	promo := BuildPromoIndex([]schema.PromoEntry{
		{RawSKU: "A1", Key: "A1", OfflineList: 100, OfflineDiscount: 80},
	})
	master := BuildMasterIndex([]schema.MasterEntry{
		{Key: "A1", OnlineList: 120},
	})
	catalog := BuildCatalogIndex([]schema.CatalogEntry{
		{Key: "A1", ProductID: "P1", ProductName: "Widget"},
	})

	joined := JoinPlatform(JoinMaster(promo, master), catalog)
	if len(joined) != 1 {
		t.Fatalf("expected 1 joined entry, got %d", len(joined))
	}

	e := joined[0]
	if e.DiscountAmount != 20 || e.FinalPrice != 100 {
		t.Errorf("expected amount 20 / final 100, got %d / %d", e.DiscountAmount, e.FinalPrice)
	}
	if e.DiscountRatio < 0.166 || e.DiscountRatio > 0.167 {
		t.Errorf("expected ratio near 0.1667, got %f", e.DiscountRatio)
	}

	c := Classify(e, 100, DefaultMaxDiscountRatio)
	if c.Outcome != OutcomeSafe {
		t.Errorf("expected SAFE, got %s (%v)", c.Outcome, c.Reasons)
	}
}

func TestJoinPlatform_MultiVariantFanOut(t *testing.T) {
	reconciled := []schema.ReconciledEntry{
		{Key: "K1", FinalPrice: 100},
	}
	catalog := BuildCatalogIndex([]schema.CatalogEntry{
		{Key: "K1", ProductID: "P1", VariantID: "V1"},
		{Key: "K1", ProductID: "P1", VariantID: "V2"},
	})

	got := JoinPlatform(reconciled, catalog)

	if len(got) != 2 {
		t.Fatalf("expected fan-out to 2 rows, got %d", len(got))
	}
	if got[0].Identity.VariantID == got[1].Identity.VariantID {
		t.Error("fan-out rows must carry distinct variant ids")
	}
	for _, e := range got {
		if e.FinalPrice != 100 {
			t.Errorf("fan-out rows inherit the same price calculation, got %d", e.FinalPrice)
		}
	}
}
