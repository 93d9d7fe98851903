package trait

// identityTrait is the default byte trait: w=1, H=256, hash is the byte
// itself. Degenerate on small alphabets (every slot in the skip table gets
// hit about as often as every other), but the natural default for text and
// binary corpora.
type identityTrait struct{}

func (identityTrait) SuffixSize() int   { return 1 }
func (identityTrait) HashRangeMax() int { return 256 }
func (identityTrait) Hash(window []byte) int {
	return int(window[0])
}

// Identity is the byte-identity trait (w=1, H=256).
var Identity Trait[byte] = identityTrait{}
