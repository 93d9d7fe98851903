package trait

// runeTrait extends the trait family to UTF-8 text searched rune-by-rune,
// something the original C++ algorithm (fixed to 8-bit units) never
// addressed. w=1, H=1<<16: the upper 16 bits of a Knuth multiplicative hash
// of the rune value, wide enough to keep the skip table useful across the Basic
// Multilingual Plane without ballooning H to 0x110000.
type runeTrait struct{}

func (runeTrait) SuffixSize() int   { return 1 }
func (runeTrait) HashRangeMax() int { return 1 << 16 }
func (runeTrait) Hash(window []rune) int {
	v := uint32(window[0])
	v *= 2654435761 // Knuth multiplicative hash constant
	return int((v >> 16) & 0xFFFF)
}

// Rune hashes a single rune per window (w=1, H=65536), for engines over
// []rune corpora.
var Rune Trait[rune] = runeTrait{}
