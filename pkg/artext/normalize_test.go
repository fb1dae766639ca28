package artext

import "testing"

func TestNormalizeSearch(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"أحمد", "احمد"},
		{"إصلاح", "اصلاح"},
		{"آمال", "امال"},
		{"حكومة", "حكومه"},
		{"مستشفى", "مستشفي"},
		{"الموازنة العامة", "الموازنه العامه"},
		{"Budget 2025", "budget 2025"},
		{"خطة، وطنية!", "خطه وطنيه"},
		{"  نص   متباعد  ", "نص متباعد"},
		{"", ""},
	}
	for _, tt := range tests {
		got := NormalizeSearch(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeSearch(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"رئيس", "رييس"},
		{"مؤتمر", "موتمر"},
		{"هناء", "هنا"},
		{"مُحَمَّد", "محمد"},
		{"حَويلة", "حويله"},
		{"عبد الإله", "عبد الاله"},
		{"د.", "د"},
		{"", ""},
	}
	for _, tt := range tests {
		got := NormalizeName(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Both normalizers must be idempotent: reapplying them never changes the result.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"النائب الدكتور خميس عطية",
		"مُحَمَّد بن عبد الإله",
		"وزير المالية (مقرر اللجنة)",
		"Budget 2025 والموازنة",
		"",
	}
	for _, in := range inputs {
		if s := NormalizeSearch(in); NormalizeSearch(s) != s {
			t.Errorf("NormalizeSearch not idempotent for %q: %q != %q", in, NormalizeSearch(s), s)
		}
		if n := NormalizeName(in); NormalizeName(n) != n {
			t.Errorf("NormalizeName not idempotent for %q: %q != %q", in, NormalizeName(n), n)
		}
	}
}

func TestGetNormalizer(t *testing.T) {
	tests := []struct {
		mode  string
		input string
		want  string
	}{
		{"search", "حكومة", "حكومه"},
		{"name", "مؤتمر", "موتمر"},
		{"none", "حكومة!", "حكومة!"},
		{"", "حكومة", "حكومه"},             // default = search
		{"unknown_mode", "حكومة", "حكومه"}, // fallback = search
	}
	for _, tt := range tests {
		fn := GetNormalizer(tt.mode)
		got := fn(tt.input)
		if got != tt.want {
			t.Errorf("GetNormalizer(%q)(%q) = %q, want %q", tt.mode, tt.input, got, tt.want)
		}
	}
}
