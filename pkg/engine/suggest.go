package engine

// suggestionThreshold is the minimum normalized similarity for a catalog key
// to be offered as a reconciliation hint for a not-found SKU.
const suggestionThreshold = 0.85

// SuggestClosest returns the catalog key most similar to key, for attaching
// to not-found audit rows as a manual-reconciliation hint. Returns false when
// no key clears the similarity threshold. Ties break lexicographically so
// output is stable across runs. Suggestions never influence joins or
// classification.
func SuggestClosest(key string, catalog *CatalogIndex) (string, bool) {
	if key == "" {
		return "", false
	}

	best := ""
	bestScore := 0.0
	for candidate := range catalog.ByKey {
		score := similarity(key, candidate)
		if score > bestScore || (score == bestScore && bestScore > 0 && candidate < best) {
			best = candidate
			bestScore = score
		}
	}

	if bestScore < suggestionThreshold {
		return "", false
	}
	return best, true
}

// similarity computes a normalized similarity score between two strings.
// Returns a value between 0.0 (completely different) and 1.0 (identical):
// 1.0 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	aLen := len([]rune(a))
	bLen := len([]rune(b))
	maxLen := aLen
	if bLen > maxLen {
		maxLen = bLen
	}
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(levenshteinDistance(a, b))/float64(maxLen)
}

// levenshteinDistance computes the minimum number of single-character edits
// (insertions, deletions, or substitutions) required to transform a into b.
// Two rolling rows keep space at O(min(m,n)).
func levenshteinDistance(a, b string) int {
	aRunes := []rune(a)
	bRunes := []rune(b)
	aLen := len(aRunes)
	bLen := len(bRunes)

	if aLen == 0 {
		return bLen
	}
	if bLen == 0 {
		return aLen
	}

	if aLen > bLen {
		aRunes, bRunes = bRunes, aRunes
		aLen, bLen = bLen, aLen
	}

	prevRow := make([]int, aLen+1)
	currRow := make([]int, aLen+1)
	for i := 0; i <= aLen; i++ {
		prevRow[i] = i
	}

	for j := 1; j <= bLen; j++ {
		currRow[0] = j
		for i := 1; i <= aLen; i++ {
			cost := 1
			if aRunes[i-1] == bRunes[j-1] {
				cost = 0
			}
			currRow[i] = min3(prevRow[i]+1, currRow[i-1]+1, prevRow[i-1]+cost)
		}
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[aLen]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
