package schema

import "testing"

func TestNormalizeSKU(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"trims and uppercases", "  ab12 ", "AB12"},
		{"letter O becomes zero", "aOb1", "A0B1"},
		{"uppercase O becomes zero", "a0B1", "A0B1"},
		{"numeric suffix dropped", "12345.0", "12345"},
		{"everything after first dot dropped", "AB.CD.EF", "AB"},
		{"non-breaking space trimmed", " AB12 ", "AB12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSKU(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeSKU(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSKU_Idempotent(t *testing.T) {
	inputs := []string{"", "  ab12 ", "aOb1", "12345.0", "A0B1", "Kode-123.0", "  o.o  "}
	for _, in := range inputs {
		once := NormalizeSKU(in)
		twice := NormalizeSKU(once)
		if once != twice {
			t.Errorf("NormalizeSKU not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeSKU_CaseAndOCRInsensitive(t *testing.T) {
	a := NormalizeSKU("a0b1")
	b := NormalizeSKU("a0B1")
	c := NormalizeSKU("aOb1")
	if a != b || b != c {
		t.Errorf("expected identical keys, got %q, %q, %q", a, b, c)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{"empty", "", 0},
		{"plain number", "15000", 15000},
		{"currency prefix", "Rp 15.000", 15000},
		{"thousand separators", "1,500,000", 1500000},
		{"stray text", "sekitar 2000an", 2000},
		{"no digits at all", "t.b.d.", 0},
		{"negative sign is stripped", "-500", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePrice(tt.in)
			if got != tt.want {
				t.Errorf("ParsePrice(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePrice_NeverNegative(t *testing.T) {
	inputs := []string{"", "abc", "-1", "Rp -2.000", "999999999999999999999999"}
	for _, in := range inputs {
		if got := ParsePrice(in); got < 0 {
			t.Errorf("ParsePrice(%q) = %d, want >= 0", in, got)
		}
	}
}
