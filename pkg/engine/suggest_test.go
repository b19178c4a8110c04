package engine

import (
	"testing"

	"promoset/pkg/schema"
)

func catalogOf(keys ...string) *CatalogIndex {
	entries := make([]schema.CatalogEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, schema.CatalogEntry{Key: k, ProductID: "P-" + k})
	}
	return BuildCatalogIndex(entries)
}

func TestSuggestClosest_NearMiss(t *testing.T) {
	catalog := catalogOf("ABC-12345", "XYZ-99999")

	got, ok := SuggestClosest("ABC-12346", catalog)
	if !ok {
		t.Fatal("expected a suggestion for a one-character difference")
	}
	if got != "ABC-12345" {
		t.Errorf("expected ABC-12345, got %q", got)
	}
}

func TestSuggestClosest_BelowThreshold(t *testing.T) {
	catalog := catalogOf("ABC-12345")

	if got, ok := SuggestClosest("QQQQ", catalog); ok {
		t.Errorf("expected no suggestion for an unrelated key, got %q", got)
	}
}

func TestSuggestClosest_EmptyInputs(t *testing.T) {
	if _, ok := SuggestClosest("", catalogOf("ABC")); ok {
		t.Error("empty key must not produce a suggestion")
	}
	if _, ok := SuggestClosest("ABC", catalogOf()); ok {
		t.Error("empty catalog must not produce a suggestion")
	}
}

func TestSuggestClosest_StableTieBreak(t *testing.T) {
	// Both candidates are one edit away; the lexicographically smaller key
	// must win no matter the map iteration order.
	catalog := catalogOf("ABCDEFGHIA", "ABCDEFGHIB")

	for i := 0; i < 20; i++ {
		got, ok := SuggestClosest("ABCDEFGHIC", catalog)
		if !ok {
			t.Fatal("expected a suggestion")
		}
		if got != "ABCDEFGHIA" {
			t.Fatalf("tie-break unstable: got %q", got)
		}
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"kitten", "sitting", 3},
		{"AB12", "AB21", 2},
	}
	for _, tt := range tests {
		if got := levenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
