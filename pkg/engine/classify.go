package engine

import (
	"promoset/pkg/schema"
)

// Outcome is the terminal classification of one reconciled item.
type Outcome string

const (
	OutcomeSafe        Outcome = "SAFE"
	OutcomeNeedsReview Outcome = "NEEDS_REVIEW"
	OutcomeNotFound    Outcome = "NOT_FOUND"
)

// Review reason strings, in rule-declaration order.
const (
	ReasonPriceBelowThreshold = "price below threshold"
	ReasonDiscountAboveMax    = "discount above allowed maximum"
)

// Default thresholds. These are configuration, not business law; every caller
// can override them.
const (
	DefaultMinPrice         int64   = 1000
	DefaultMaxDiscountRatio float64 = 0.90
)

// Classification is the outcome plus, for NEEDS_REVIEW, the ordered list of
// reasons that fired.
type Classification struct {
	Outcome Outcome  `json:"outcome"`
	Reasons []string `json:"reasons,omitempty"`
}

// Classify applies the business rules to one reconciled entry. An entry with
// no platform identity is NOT_FOUND regardless of its price values. Otherwise
// both price rules are evaluated independently and every firing rule
// contributes a reason, in declaration order; an entry exactly at a threshold
// passes. Pure function, cannot fail.
func Classify(e schema.ReconciledEntry, minPrice int64, maxRatio float64) Classification {
	if e.Identity == nil {
		return Classification{Outcome: OutcomeNotFound}
	}

	var reasons []string
	if e.FinalPrice < minPrice {
		reasons = append(reasons, ReasonPriceBelowThreshold)
	}
	if e.DiscountRatio > maxRatio {
		reasons = append(reasons, ReasonDiscountAboveMax)
	}

	if len(reasons) > 0 {
		return Classification{Outcome: OutcomeNeedsReview, Reasons: reasons}
	}
	return Classification{Outcome: OutcomeSafe}
}
