package prefilter

import "testing"

func TestCaseVariantFilter_MayContain(t *testing.T) {
	f, err := NewCaseVariantFilter([]byte("Brown"))
	if err != nil {
		t.Fatalf("NewCaseVariantFilter: %v", err)
	}

	tests := []struct {
		name     string
		haystack string
		want     bool
	}{
		{"exact case", "the quick Brown fox", true},
		{"lowercase", "the quick brown fox", true},
		{"uppercase", "THE QUICK BROWN FOX", true},
		{"absent", "the quick red fox", false},
		{"empty haystack", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.MayContain([]byte(tt.haystack)); got != tt.want {
				t.Errorf("MayContain(%q) = %v, want %v", tt.haystack, got, tt.want)
			}
		})
	}
}

func TestCaseVariantFilter_FindVariant(t *testing.T) {
	f, err := NewCaseVariantFilter([]byte("fox"))
	if err != nil {
		t.Fatalf("NewCaseVariantFilter: %v", err)
	}

	_, start, ok := f.FindVariant([]byte("the quick brown FOX jumps"), 0)
	if !ok {
		t.Fatal("FindVariant: expected a match")
	}
	if start != 16 {
		t.Errorf("start = %d, want 16", start)
	}

	_, _, ok = f.FindVariant([]byte("no match here"), 0)
	if ok {
		t.Error("FindVariant: expected no match")
	}
}

func TestCaseVariantFilter_NoLetters(t *testing.T) {
	// A pattern with no ASCII letters collapses to a single variant; the
	// filter must still build and behave like an exact single-literal check.
	f, err := NewCaseVariantFilter([]byte("123"))
	if err != nil {
		t.Fatalf("NewCaseVariantFilter: %v", err)
	}
	if !f.MayContain([]byte("id: 123")) {
		t.Error("MayContain(\"id: 123\") = false, want true")
	}
	if f.MayContain([]byte("id: 456")) {
		t.Error("MayContain(\"id: 456\") = true, want false")
	}
}
