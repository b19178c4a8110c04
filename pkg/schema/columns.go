package schema

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ColumnNotFoundError reports that none of the candidate headers for a
// semantic field exist in a source's header row. It carries the full observed
// header list so the user can see what the file actually contains.
type ColumnNotFoundError struct {
	Source     string
	Candidates []string
	Headers    []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("source %q: column %q not found (tried %v); available columns: %v",
		e.Source, e.Candidates[0], e.Candidates, e.Headers)
}

// foldHeader produces the comparison form of a header: NFKC normalization
// (turns non-breaking spaces and width variants into their plain forms),
// trim, lower-case.
func foldHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(h)))
}

// ResolveColumn finds the actual header matching one of candidates, trying
// candidates in priority order and returning on the first hit. Matching is
// case-insensitive and tolerant of non-breaking spaces and surrounding
// whitespace. The header is returned in its original spelling so it can be
// used for row lookups. Header names vary by spreadsheet template version and
// by marketplace, which is why callers pass a candidate list instead of one
// fixed name.
func ResolveColumn(headers []string, candidates []string, sourceLabel string) (string, error) {
	byFold := make(map[string]string, len(headers))
	for _, h := range headers {
		f := foldHeader(h)
		if _, ok := byFold[f]; !ok {
			byFold[f] = h
		}
	}

	for _, cand := range candidates {
		if actual, ok := byFold[foldHeader(cand)]; ok {
			return actual, nil
		}
	}

	return "", &ColumnNotFoundError{
		Source:     sourceLabel,
		Candidates: candidates,
		Headers:    headers,
	}
}
