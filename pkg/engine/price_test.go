package engine

import (
	"math"
	"testing"
)

func TestComputePrice(t *testing.T) {
	p := ComputePrice(100, 80, 120)

	if p.DiscountAmount != 20 {
		t.Errorf("expected discount amount 20, got %d", p.DiscountAmount)
	}
	if p.FinalPrice != 100 {
		t.Errorf("expected final price 100, got %d", p.FinalPrice)
	}
	if math.Abs(p.DiscountRatio-20.0/120.0) > 1e-9 {
		t.Errorf("expected discount ratio %f, got %f", 20.0/120.0, p.DiscountRatio)
	}
}

func TestComputePrice_ZeroOnlineList(t *testing.T) {
	p := ComputePrice(100, 80, 0)

	if p.DiscountRatio != 0 {
		t.Errorf("expected ratio 0 when online list price is 0, got %f", p.DiscountRatio)
	}
	if p.FinalPrice != -20 {
		t.Errorf("expected final price -20, got %d", p.FinalPrice)
	}
}

func TestComputePrice_NegativeDiscountPreserved(t *testing.T) {
	// Offline discount above offline list: the negative amount is kept, not
	// clamped, and raises the final price above the online list.
	p := ComputePrice(100, 150, 200)

	if p.DiscountAmount != -50 {
		t.Errorf("expected discount amount -50, got %d", p.DiscountAmount)
	}
	if p.FinalPrice != 250 {
		t.Errorf("expected final price 250, got %d", p.FinalPrice)
	}
	if p.DiscountRatio >= 0 {
		t.Errorf("expected negative ratio, got %f", p.DiscountRatio)
	}
}
