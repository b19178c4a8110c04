package schema

import (
	"strconv"
	"strings"
)

// NormalizeSKU canonicalizes a raw SKU string into a comparable join key:
// trim surrounding whitespace, upper-case, replace every letter O with the
// digit 0 (a recurring confusion in hand-entered codes), then cut at the first
// '.' (spreadsheets append ".0" to codes they mistake for numbers).
// Total and idempotent; the empty input maps to the empty key.
func NormalizeSKU(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "O", "0")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return s
}

// ParsePrice coerces free-form price text into integer minor units. Every
// non-digit byte is dropped first, so currency symbols, thousand separators,
// and stray text are tolerated. Empty or unparsable remainders become 0.
func ParsePrice(raw string) int64 {
	var digits strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits.WriteByte(raw[i])
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
