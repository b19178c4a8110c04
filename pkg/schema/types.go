package schema

// PromoEntry is one row of the offline promo list after column resolution and
// key normalization. Key is the normalized join key; RawSKU preserves the
// identifier exactly as it appeared in the source file.
type PromoEntry struct {
	RawSKU          string `json:"rawSku"`
	Key             string `json:"key"`
	OfflineList     int64  `json:"offlineList"`
	OfflineDiscount int64  `json:"offlineDiscount"`
}

// MasterEntry is one row of the online master catalog.
type MasterEntry struct {
	Key        string `json:"key"`
	OnlineList int64  `json:"onlineList"`
}

// CatalogEntry is one row of a marketplace product database. A catalog may
// hold several rows per key (multi-variant products); they are never
// deduplicated before the join.
type CatalogEntry struct {
	Key         string `json:"key"`
	ProductID   string `json:"productId"`
	VariantID   string `json:"variantId,omitempty"`
	ProductName string `json:"productName"`
}

// PlatformIdentity carries the catalog-side identity of a matched entry.
type PlatformIdentity struct {
	ProductID   string `json:"productId"`
	VariantID   string `json:"variantId,omitempty"`
	ProductName string `json:"productName"`
}

// ReconciledEntry is the result of joining a promo entry with the master
// catalog and, in a second pass, a platform catalog. Identity is nil until the
// platform join runs, and stays nil when the catalog has no row for the key.
type ReconciledEntry struct {
	RawSKU          string            `json:"rawSku"`
	Key             string            `json:"key"`
	OfflineList     int64             `json:"offlineList"`
	OfflineDiscount int64             `json:"offlineDiscount"`
	OnlineList      int64             `json:"onlineList"`
	DiscountAmount  int64             `json:"discountAmount"`
	FinalPrice      int64             `json:"finalPrice"`
	DiscountRatio   float64           `json:"discountRatio"`
	Identity        *PlatformIdentity `json:"identity,omitempty"`
}
