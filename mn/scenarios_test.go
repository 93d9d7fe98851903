package mn

import (
	"testing"

	"github.com/coregx/musserlib/mn/trait"
)

// TestScenarios_EndToEnd runs the worked end-to-end scenarios: fixed
// corpus/pattern pairs with known expected (first, last) offsets, covering
// a KMP-shift-heavy case (C), an empty-corpus miss (D), and an
// empty-pattern match (E). Scenario F, a DNA corpus search, is
// TestScenarios_DNACorpus below.
func TestScenarios_EndToEnd(t *testing.T) {
	tests := []struct {
		name      string
		corpus    string
		pattern   string
		wantFirst int
		wantLast  int
	}{
		{"A: trailing match after repeats", "ABCABCABCD", "ABCD", 6, 10},
		{"B: near-miss self-overlap, no match", "AAAAAA", "AAB", 6, 6},
		{"C: KMP shift after partial self-overlap", "AAAAAB", "AAAAB", 1, 6},
		{"D: empty corpus", "", "X", 0, 0},
		{"E: empty pattern", "anything", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := search(t, []byte(tt.corpus), []byte(tt.pattern))
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("Search(%q, %q) = (%d, %d), want (%d, %d)",
					tt.corpus, tt.pattern, first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

// TestScenarios_DNACorpus covers scenario F: a packed-DNA corpus and
// pattern searched with the DNA2 trait.
func TestScenarios_DNACorpus(t *testing.T) {
	corpus := trait.EncodeDNA([]byte("ACGTACGTACGT"))
	pattern := trait.EncodeDNA([]byte("CGTAC"))

	e, err := NewEngine(pattern, trait.DNA2)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	first, last := e.Search(corpus, 0)
	if first != 1 || last != 6 {
		t.Errorf("Search = (%d, %d), want (1, 6)", first, last)
	}
}
