// Package prefilter provides optional accelerators that sit in front of an
// mn.Engine: cheap checks that can reject a corpus, or narrow down which of
// several literal variants is actually present, before paying for an exact
// scan.
//
// CaseVariantFilter is the one accelerator here: mn.Engine always matches
// case-sensitively (the search trait has no notion of case folding), so a
// caller wanting "does this corpus contain pattern in any ASCII case" would
// otherwise have to run a full mn.Engine scan per case variant. Folding all
// variants into one Aho-Corasick automaton turns that into one multi-pattern
// scan that rejects non-matching corpora in a single pass.
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"
)

// CaseVariantFilter tests a corpus for any of a small set of ASCII case
// variants of one pattern: as given, all-lowercase, and all-uppercase.
// Patterns with no ASCII letters collapse to a single variant.
type CaseVariantFilter struct {
	auto     *ahocorasick.Automaton
	variants [][]byte
}

// NewCaseVariantFilter builds a filter for pattern's case variants.
func NewCaseVariantFilter(pattern []byte) (*CaseVariantFilter, error) {
	variants := caseVariants(pattern)

	builder := ahocorasick.NewBuilder()
	for _, v := range variants {
		builder.AddPattern(v)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &CaseVariantFilter{auto: auto, variants: variants}, nil
}

// MayContain reports whether haystack contains any case variant of the
// filter's pattern. A false result means no variant is present -- the
// caller can skip the exact mn.Engine scans entirely. A true result only
// narrows the search; the caller still needs an exact scan to know which
// variant matched and where.
func (f *CaseVariantFilter) MayContain(haystack []byte) bool {
	return f.auto.IsMatch(haystack)
}

// FindVariant returns the start of the first matching case variant in
// haystack at or after from, and which variant index matched, or ok=false
// if none of the variants occur.
func (f *CaseVariantFilter) FindVariant(haystack []byte, from int) (variant int, start int, ok bool) {
	m := f.auto.Find(haystack, from)
	if m == nil {
		return 0, 0, false
	}
	for i, v := range f.variants {
		if bytes.Equal(haystack[m.Start:m.End], v) {
			return i, m.Start, true
		}
	}
	return 0, m.Start, true
}

// caseVariants returns pattern, its all-lowercase form, and its
// all-uppercase form, deduplicated.
func caseVariants(pattern []byte) [][]byte {
	lower := bytes.ToLower(pattern)
	upper := bytes.ToUpper(pattern)

	out := [][]byte{pattern}
	if !bytes.Equal(lower, pattern) {
		out = append(out, lower)
	}
	if !bytes.Equal(upper, pattern) && !bytes.Equal(upper, lower) {
		out = append(out, upper)
	}
	return out
}
