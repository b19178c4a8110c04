package engine

import (
	"fmt"

	"promoset/pkg/schema"
)

// Anomaly flags a price relationship worth a human look. Anomalies are
// advisory: they appear in the audit summary but never change pricing or
// classification.
type Anomaly struct {
	Key    string `json:"key"`
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

// AnomalyNegativeDiscount marks a promo row whose offline discount price
// exceeds its offline list price. The resulting negative discount amount
// pushes the final price above the online list price.
const AnomalyNegativeDiscount = "negative_discount"

// DetectAnomalies scans master-joined entries (one per key, before any
// platform fan-out) for negative discount amounts.
func DetectAnomalies(entries []schema.ReconciledEntry) []Anomaly {
	var anomalies []Anomaly
	for _, e := range entries {
		if e.DiscountAmount < 0 {
			anomalies = append(anomalies, Anomaly{
				Key:  e.Key,
				Kind: AnomalyNegativeDiscount,
				Detail: fmt.Sprintf("offline discount %d exceeds offline list %d; final price %d is above online list %d",
					e.OfflineDiscount, e.OfflineList, e.FinalPrice, e.OnlineList),
			})
		}
	}
	return anomalies
}
