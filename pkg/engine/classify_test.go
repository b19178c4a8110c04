package engine

import (
	"testing"

	"promoset/pkg/schema"
)

func matched(final int64, ratio float64) schema.ReconciledEntry {
	return schema.ReconciledEntry{
		Key:           "K1",
		FinalPrice:    final,
		DiscountRatio: ratio,
		Identity:      &schema.PlatformIdentity{ProductID: "P1"},
	}
}

func TestClassify_Safe(t *testing.T) {
	c := Classify(matched(5000, 0.5), DefaultMinPrice, DefaultMaxDiscountRatio)
	if c.Outcome != OutcomeSafe {
		t.Errorf("expected SAFE, got %s (%v)", c.Outcome, c.Reasons)
	}
	if len(c.Reasons) != 0 {
		t.Errorf("safe entries carry no reasons, got %v", c.Reasons)
	}
}

func TestClassify_PriceBoundary(t *testing.T) {
	// Exactly at the threshold passes; one below does not.
	if c := Classify(matched(1000, 0.5), DefaultMinPrice, DefaultMaxDiscountRatio); c.Outcome != OutcomeSafe {
		t.Errorf("final price 1000 at threshold should be SAFE, got %s", c.Outcome)
	}
	c := Classify(matched(999, 0.5), DefaultMinPrice, DefaultMaxDiscountRatio)
	if c.Outcome != OutcomeNeedsReview {
		t.Fatalf("final price 999 should need review, got %s", c.Outcome)
	}
	if len(c.Reasons) != 1 || c.Reasons[0] != ReasonPriceBelowThreshold {
		t.Errorf("expected only the price reason, got %v", c.Reasons)
	}
}

func TestClassify_RatioBoundary(t *testing.T) {
	if c := Classify(matched(5000, 0.90), DefaultMinPrice, DefaultMaxDiscountRatio); c.Outcome != OutcomeSafe {
		t.Errorf("ratio exactly 0.90 should be SAFE, got %s", c.Outcome)
	}
	c := Classify(matched(5000, 0.901), DefaultMinPrice, DefaultMaxDiscountRatio)
	if c.Outcome != OutcomeNeedsReview {
		t.Fatalf("ratio 0.901 should need review, got %s", c.Outcome)
	}
	if len(c.Reasons) != 1 || c.Reasons[0] != ReasonDiscountAboveMax {
		t.Errorf("expected only the ratio reason, got %v", c.Reasons)
	}
}

func TestClassify_BothReasonsInOrder(t *testing.T) {
	c := Classify(matched(500, 0.95), DefaultMinPrice, DefaultMaxDiscountRatio)
	if c.Outcome != OutcomeNeedsReview {
		t.Fatalf("expected NEEDS_REVIEW, got %s", c.Outcome)
	}
	if len(c.Reasons) != 2 {
		t.Fatalf("expected both reasons, got %v", c.Reasons)
	}
	if c.Reasons[0] != ReasonPriceBelowThreshold || c.Reasons[1] != ReasonDiscountAboveMax {
		t.Errorf("reasons out of order: %v", c.Reasons)
	}
}

func TestClassify_NotFoundWinsOverPriceRules(t *testing.T) {
	// An unmatched entry is NOT_FOUND even when its prices would also fail
	// every review rule.
	e := schema.ReconciledEntry{Key: "K1", FinalPrice: 1, DiscountRatio: 0.99}
	c := Classify(e, DefaultMinPrice, DefaultMaxDiscountRatio)
	if c.Outcome != OutcomeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", c.Outcome)
	}
	if len(c.Reasons) != 0 {
		t.Errorf("not-found entries carry no review reasons, got %v", c.Reasons)
	}
}

func TestClassify_CustomThresholds(t *testing.T) {
	c := Classify(matched(1500, 0.5), 2000, 0.40)
	if c.Outcome != OutcomeNeedsReview {
		t.Fatalf("expected NEEDS_REVIEW under tightened thresholds, got %s", c.Outcome)
	}
	if len(c.Reasons) != 2 {
		t.Errorf("expected both rules to fire, got %v", c.Reasons)
	}
}
