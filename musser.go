// Package musserlib implements the Musser-Nishanov family of exact
// single-pattern search algorithms for byte slices: Accelerated Linear
// (AL), a Knuth-Morris-Pratt-style scanner whose outer loop fast-forwards
// to the next candidate start, and Hashed Accelerated Linear (HAL), which
// augments AL with a skip table keyed by a short hash of a fixed-width
// window, giving sublinear average-case behavior on large alphabets.
//
// mn.Engine is the generic core, parameterized over any comparable element
// type and a search trait describing the hash family; this package wraps
// it for the common case of searching []byte with the byte-identity trait.
//
// Basic usage:
//
//	i := musserlib.Index([]byte("the quick brown fox"), []byte("brown"))
//	fmt.Println(i) // 10
//
// For repeated searches of the same pattern against many corpora, build an
// Engine once and reuse it:
//
//	e := musserlib.NewEngine([]byte("brown"))
//	first, last := e.Search(corpus1, 0)
//	first, last = e.Search(corpus2, 0)
package musserlib

import (
	"github.com/coregx/musserlib/mn"
	"github.com/coregx/musserlib/mn/trait"
)

// Engine searches []byte corpora for one fixed byte pattern.
type Engine struct {
	inner *mn.Engine[byte]
}

// NewEngine builds an Engine for pattern using the byte-identity trait
// (w=1, H=256). pattern is borrowed for the Engine's lifetime.
func NewEngine(pattern []byte) *Engine {
	return &Engine{inner: mn.MustNewEngine(pattern, trait.Identity)}
}

// Search scans corpus starting at corpus[from:] and returns the half-open
// match range (first, last) as absolute byte offsets into corpus. On a
// miss, first == last == len(corpus). On an empty pattern, first == last
// == from.
func (e *Engine) Search(corpus []byte, from int) (int, int) {
	return e.inner.Search(corpus, from)
}

// Index returns the index of the first instance of pattern in corpus, or
// -1 if pattern is not present. Unlike Search, which reports the full
// half-open range, Index mirrors the conventional bytes.Index signature.
func Index(corpus, pattern []byte) int {
	first, last := NewEngine(pattern).Search(corpus, 0)
	if first == last && len(pattern) > 0 {
		return -1
	}
	return first
}

// Contains reports whether corpus contains pattern.
func Contains(corpus, pattern []byte) bool {
	return Index(corpus, pattern) >= 0
}
