// Package trait defines the SearchTrait contract used by the Hashed
// Accelerated Linear scanner to key its skip table, along with the built-in
// trait families (byte identity, packed DNA k-mers, and UTF-8 runes).
//
// A trait fixes three facts about the hash family: the suffix width w (how
// many consecutive elements feed one hash), the hash domain size H (the
// skip table has exactly H slots), and the hash function itself. Widening w
// sharpens the skip table on small alphabets where single-element hashes
// are degenerate, at the cost of a larger H.
package trait

// Trait fixes the hash family a HashedAcceleratedLinear engine uses to key
// its skip table.
//
// Hash must read exactly SuffixSize() consecutive elements from window
// (window is always sliced to that length by the caller) and return a value
// in [0, HashRangeMax()).
type Trait[E any] interface {
	// SuffixSize returns w, the number of elements combined into one hash.
	SuffixSize() int

	// HashRangeMax returns H, the number of distinct hash values.
	HashRangeMax() int

	// Hash returns a value in [0, HashRangeMax()) for the w-element window.
	Hash(window []E) int
}
