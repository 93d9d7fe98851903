// Package bench compares mn.Engine against bytes.Index and a naive
// quadratic scanner, the same three-way comparison the original
// algorithm's benchmarks ran against std::search and Boyer-Moore.
package bench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/coregx/musserlib/mn"
	"github.com/coregx/musserlib/mn/trait"
)

// naiveIndex is the textbook O(nm) scan, the baseline every search
// algorithm in this space measures itself against.
func naiveIndex(corpus, pattern []byte) int {
	n, m := len(corpus), len(pattern)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if bytes.Equal(corpus[i:i+m], pattern) {
			return i
		}
	}
	return -1
}

type benchCase struct {
	name    string
	corpus  []byte
	pattern []byte
}

func benchCases() []benchCase {
	repeated := bytes.Repeat([]byte("abcabcabcabcabd"), 2000)
	english := []byte(strings.Repeat(
		"the quick brown fox jumps over the lazy dog while the lazy dog watches quietly ", 400))
	return []benchCase{
		{"no-match-repetitive", repeated, []byte("abcabcabce")},
		{"match-at-end-repetitive", repeated, []byte("abcabcabcabd")},
		{"english-common-word", english, []byte("lazy dog watches")},
		{"english-short-pattern", english, []byte("fox")},
	}
}

func BenchmarkEngineSearch(b *testing.B) {
	for _, c := range benchCases() {
		e, err := mn.NewEngine(c.pattern, trait.Identity)
		if err != nil {
			b.Fatalf("NewEngine: %v", err)
		}
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(c.corpus)))
			for i := 0; i < b.N; i++ {
				e.Search(c.corpus, 0)
			}
		})
	}
}

func BenchmarkBytesIndex(b *testing.B) {
	for _, c := range benchCases() {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(c.corpus)))
			for i := 0; i < b.N; i++ {
				bytes.Index(c.corpus, c.pattern)
			}
		})
	}
}

func BenchmarkNaiveIndex(b *testing.B) {
	for _, c := range benchCases() {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(c.corpus)))
			for i := 0; i < b.N; i++ {
				naiveIndex(c.corpus, c.pattern)
			}
		})
	}
}

// BenchmarkEngineConstruction isolates the one-time cost of NewEngine
// (KMP table construction) from the cost of repeated Search calls; the
// HAL skip table itself builds lazily on first Search, not here.
func BenchmarkEngineConstruction(b *testing.B) {
	pattern := []byte("abcabcabcabcabd")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := mn.NewEngine(pattern, trait.Identity); err != nil {
			b.Fatalf("NewEngine: %v", err)
		}
	}
}
