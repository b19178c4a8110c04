package report

import (
	"promoset/pkg/engine"
	"promoset/pkg/schema"
)

// Row is one classified reconciled entry as it appears in a report.
type Row struct {
	Entry          schema.ReconciledEntry `json:"entry"`
	Classification engine.Classification  `json:"classification"`
	// Suggestion is the closest catalog key for not-found rows, as a manual
	// reconciliation hint. Empty when nothing similar enough exists.
	Suggestion string `json:"suggestion,omitempty"`
}

// PlatformReport holds one platform's three disjoint row sets.
type PlatformReport struct {
	Platform  string           `json:"platform"`
	Safe      []Row            `json:"safe"`
	Review    []Row            `json:"review"`
	NotFound  []Row            `json:"notFound"`
	Anomalies []engine.Anomaly `json:"anomalies,omitempty"`
}

// BucketCounts are the per-platform aggregate counts.
type BucketCounts struct {
	Safe     int `json:"safe"`
	Review   int `json:"review"`
	NotFound int `json:"notFound"`
}

// Counts returns the bucket sizes.
func (r *PlatformReport) Counts() BucketCounts {
	return BucketCounts{
		Safe:     len(r.Safe),
		Review:   len(r.Review),
		NotFound: len(r.NotFound),
	}
}

// Assemble classifies every platform-joined entry into the Safe / Review /
// NotFound buckets, attaching catalog-key suggestions to not-found rows.
// Input order is preserved within each bucket.
func Assemble(platformName string, entries []schema.ReconciledEntry, catalog *engine.CatalogIndex, minPrice int64, maxRatio float64) *PlatformReport {
	rep := &PlatformReport{Platform: platformName}

	for _, e := range entries {
		row := Row{
			Entry:          e,
			Classification: engine.Classify(e, minPrice, maxRatio),
		}

		switch row.Classification.Outcome {
		case engine.OutcomeSafe:
			rep.Safe = append(rep.Safe, row)
		case engine.OutcomeNeedsReview:
			rep.Review = append(rep.Review, row)
		case engine.OutcomeNotFound:
			if suggestion, ok := engine.SuggestClosest(e.Key, catalog); ok {
				row.Suggestion = suggestion
			}
			rep.NotFound = append(rep.NotFound, row)
		}
	}

	return rep
}

// PlatformSummary is the per-platform slice of the run summary.
type PlatformSummary struct {
	Name    string       `json:"name"`
	Counts  BucketCounts `json:"counts"`
	Error   string       `json:"error,omitempty"`
	Uploads []string     `json:"uploads,omitempty"`
}

// RunSummary aggregates one run's counts across platforms, for the executive
// summary workbook and the JSON export.
type RunSummary struct {
	TotalPromoInput  int               `json:"totalPromoInput"`
	PromoDuplicates  int               `json:"promoDuplicates"`
	MasterDuplicates int               `json:"masterDuplicates"`
	Matched          int               `json:"matched"`
	Anomalies        int               `json:"anomalies"`
	Platforms        []PlatformSummary `json:"platforms"`
	Errors           []string          `json:"errors,omitempty"`
}
