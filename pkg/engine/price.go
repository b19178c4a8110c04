package engine

// Price is the derived pricing for one reconciled item.
type Price struct {
	// DiscountAmount is the offline list minus the offline discount price.
	// It may be negative and is never clamped: a promo row whose discount
	// price exceeds its list price surfaces as an effective price increase.
	DiscountAmount int64
	// FinalPrice is the online list price with the discount amount applied.
	FinalPrice int64
	// DiscountRatio is DiscountAmount relative to the online list price, or 0
	// when the online list price is 0 (no discernible discount).
	DiscountRatio float64
}

// ComputePrice derives the final promotional price from the offline price
// pair and the online list price.
func ComputePrice(offlineList, offlineDiscount, onlineList int64) Price {
	amount := offlineList - offlineDiscount
	p := Price{
		DiscountAmount: amount,
		FinalPrice:     onlineList - amount,
	}
	if onlineList != 0 {
		p.DiscountRatio = float64(amount) / float64(onlineList)
	}
	return p
}
