package engine

import (
	"promoset/pkg/schema"
)

// PromoIndex holds the deduplicated promo list in input order. Duplicates
// counts how many later occurrences of an already-seen key were dropped.
type PromoIndex struct {
	Entries    []schema.PromoEntry
	Total      int
	Duplicates int
}

// BuildPromoIndex deduplicates promo entries by normalized key. First
// occurrence wins; later duplicates are dropped and counted. Input order is
// preserved so downstream output is reproducible.
func BuildPromoIndex(entries []schema.PromoEntry) *PromoIndex {
	index := &PromoIndex{Total: len(entries)}
	seen := make(map[string]bool, len(entries))

	for _, e := range entries {
		if seen[e.Key] {
			index.Duplicates++
			continue
		}
		seen[e.Key] = true
		index.Entries = append(index.Entries, e)
	}

	return index
}

// MasterIndex provides lookup of master catalog entries by normalized key.
type MasterIndex struct {
	ByKey      map[string]schema.MasterEntry
	Total      int
	Duplicates int
}

// BuildMasterIndex indexes master entries by key with the same
// first-occurrence-wins dedup rule as the promo side.
func BuildMasterIndex(entries []schema.MasterEntry) *MasterIndex {
	index := &MasterIndex{
		ByKey: make(map[string]schema.MasterEntry, len(entries)),
		Total: len(entries),
	}

	for _, e := range entries {
		if _, exists := index.ByKey[e.Key]; exists {
			index.Duplicates++
			continue
		}
		index.ByKey[e.Key] = e
	}

	return index
}

// CatalogIndex groups platform catalog rows by normalized key. Duplicates are
// preserved: several rows per key are genuine multi-variant products, and all
// of them participate in the platform join.
type CatalogIndex struct {
	ByKey map[string][]schema.CatalogEntry
	Total int
}

// BuildCatalogIndex groups catalog entries by key without deduplication.
func BuildCatalogIndex(entries []schema.CatalogEntry) *CatalogIndex {
	index := &CatalogIndex{
		ByKey: make(map[string][]schema.CatalogEntry, len(entries)),
		Total: len(entries),
	}

	for _, e := range entries {
		index.ByKey[e.Key] = append(index.ByKey[e.Key], e)
	}

	return index
}
