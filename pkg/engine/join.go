package engine

import (
	"promoset/pkg/schema"
)

// JoinMaster inner-joins the deduplicated promo list against the master
// index. Promo keys absent from the master are dropped here: without a master
// row there is no online price basis, so the item cannot be priced at all.
// That exclusion is distinct from "not found on platform", which is handled
// by the later left join. Pricing is computed as part of the join.
func JoinMaster(promo *PromoIndex, master *MasterIndex) []schema.ReconciledEntry {
	out := make([]schema.ReconciledEntry, 0, len(promo.Entries))

	for _, p := range promo.Entries {
		m, ok := master.ByKey[p.Key]
		if !ok {
			continue
		}
		price := ComputePrice(p.OfflineList, p.OfflineDiscount, m.OnlineList)
		out = append(out, schema.ReconciledEntry{
			RawSKU:          p.RawSKU,
			Key:             p.Key,
			OfflineList:     p.OfflineList,
			OfflineDiscount: p.OfflineDiscount,
			OnlineList:      m.OnlineList,
			DiscountAmount:  price.DiscountAmount,
			FinalPrice:      price.FinalPrice,
			DiscountRatio:   price.DiscountRatio,
		})
	}

	return out
}

// JoinPlatform left-joins reconciled entries against one platform's catalog.
// Every entry is retained: a missing catalog row is itself a reportable
// outcome ("not found on platform") and must reach the audit output rather
// than silently vanish. When the catalog has several rows for one key the
// join fans out, producing one entry per catalog row, each inheriting the
// same price calculation.
func JoinPlatform(reconciled []schema.ReconciledEntry, catalog *CatalogIndex) []schema.ReconciledEntry {
	out := make([]schema.ReconciledEntry, 0, len(reconciled))

	for _, r := range reconciled {
		matches := catalog.ByKey[r.Key]
		if len(matches) == 0 {
			r.Identity = nil
			out = append(out, r)
			continue
		}
		for _, c := range matches {
			entry := r
			entry.Identity = &schema.PlatformIdentity{
				ProductID:   c.ProductID,
				VariantID:   c.VariantID,
				ProductName: c.ProductName,
			}
			out = append(out, entry)
		}
	}

	return out
}
