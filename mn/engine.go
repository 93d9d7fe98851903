package mn

import (
	"sync"

	"github.com/coregx/musserlib/mn/trait"
)

// Engine searches corpora of element type E for one fixed pattern, using
// the Accelerated Linear scanner for forward-only corpora and the Hashed
// Accelerated Linear scanner (skip-table augmented) for random-access ones.
//
// An Engine is built once from a pattern and reused across any number of
// searches. Construction always computes the KMP failure table; the HAL
// skip table is built lazily, the first time a search needs it, via a
// sync.Once, and is never mutated afterward -- so an *Engine, once its
// skip table is built (or if it is built eagerly with a throwaway warm-up
// Search), is safe to share by read-only reference across any number of
// concurrent Search/SearchSeq calls, including on overlapping corpora.
type Engine[E comparable] struct {
	pattern []E
	next    []int
	trait   trait.Trait[E]
	config  Config

	skipOnce sync.Once
	skip     skipTable
	// halCapable is false when m < w or m == 1: HAL degrades to AL in both
	// cases (a one-element hash window can't discriminate, and a one-wide
	// skip table buys nothing over direct comparison), so Search never
	// builds the skip table for these patterns.
	halCapable bool
}

// NewEngine builds an Engine for pattern using tr as its search trait.
// pattern is borrowed: the Engine keeps the slice header, not a copy, for
// its lifetime, so callers must not mutate pattern afterward.
//
// Returns an error if pattern is non-empty and shorter than tr's suffix
// width -- there is then no w-wide window that ever fits in it, and HAL
// could never be armed. AL alone can still search such a pattern in
// principle, but an Engine that could never use the trait it was given is
// more likely a caller mistake than a deliberate choice, so construction
// rejects it rather than silently degrading.
func NewEngine[E comparable](pattern []E, tr trait.Trait[E]) (*Engine[E], error) {
	return NewEngineWithConfig(pattern, tr, DefaultConfig())
}

// MustNewEngine is like NewEngine but panics instead of returning an error.
func MustNewEngine[E comparable](pattern []E, tr trait.Trait[E]) *Engine[E] {
	e, err := NewEngine(pattern, tr)
	if err != nil {
		panic("mn: NewEngine: " + err.Error())
	}
	return e
}

// NewEngineWithConfig is NewEngine with explicit Config.
func NewEngineWithConfig[E comparable](pattern []E, tr trait.Trait[E], config Config) (*Engine[E], error) {
	m := len(pattern)
	w := tr.SuffixSize()
	if m > 0 && m < w {
		return nil, &EngineError{
			Kind:    TraitTooWide,
			Message: "mn: pattern shorter than trait suffix width",
		}
	}

	return &Engine[E]{
		pattern:    pattern,
		next:       Next(pattern),
		trait:      tr,
		config:     config,
		halCapable: m >= w && m >= 2,
	}, nil
}

// Len returns the length of the engine's pattern.
func (e *Engine[E]) Len() int {
	return len(e.pattern)
}

// Search scans a random-access corpus starting at corpus[from:] and returns
// the half-open match range (first, last) as absolute indices into corpus.
// On a miss, first == last == len(corpus). On an empty pattern, first ==
// last == from.
//
// Search dispatches to HAL, building the skip table on first use, unless
// the pattern is too short or too small for hashing to help (m < w or m ==
// 1), in which case it dispatches to AL -- the same AL that SearchSeq uses,
// just over a slice-backed Sequence instead of a caller-supplied one.
func (e *Engine[E]) Search(corpus []E, from int) (int, int) {
	m := len(e.pattern)
	if m == 0 {
		return from, from
	}
	if !e.halCapable {
		return e.searchAL(corpus, from)
	}

	e.skipOnce.Do(func() {
		e.skip = buildSkip(e.pattern, e.trait)
	})
	return halSearch(e.pattern, e.next, e.trait, e.skip, corpus, from)
}

// SearchSeq scans a forward-only Sequence and returns the half-open match
// range as absolute positions, counted from zero at the Sequence's first
// element. It always uses AL: a Sequence offers no random access, so HAL's
// skip table (which must peek at a window's last w elements before
// deciding whether to consume any of it) cannot apply.
func (e *Engine[E]) SearchSeq(seq Sequence[E]) (int, int) {
	m := len(e.pattern)
	if m == 0 {
		return 0, 0
	}
	p := newPuller(seq)
	return alSearch(e.pattern, e.next, p)
}

func (e *Engine[E]) searchAL(corpus []E, from int) (int, int) {
	p := newPuller[E](newSliceSequence(corpus[from:]))
	first, last := alSearch(e.pattern, e.next, p)
	return from + first, from + last
}
