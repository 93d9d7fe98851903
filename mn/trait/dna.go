package trait

// The DNA traits assume each element E (a byte) already holds a packed
// 2-bit nucleotide code in its low bits (0=A, 1=C, 2=G, 3=T — see
// EncodeDNA). Widening the suffix from 2 to 4 codes sharpens the skip table
// on the 4-letter alphabet, where a single-code hash (H=4) would barely
// discriminate at all.

type dna2Trait struct{}

func (dna2Trait) SuffixSize() int   { return 2 }
func (dna2Trait) HashRangeMax() int { return 16 }
func (dna2Trait) Hash(window []byte) int {
	return int(window[0])<<2 | int(window[1])
}

// DNA2 packs 2 nucleotide codes per hash (w=2, H=16).
var DNA2 Trait[byte] = dna2Trait{}

type dna3Trait struct{}

func (dna3Trait) SuffixSize() int   { return 3 }
func (dna3Trait) HashRangeMax() int { return 64 }
func (dna3Trait) Hash(window []byte) int {
	return int(window[0])<<4 | int(window[1])<<2 | int(window[2])
}

// DNA3 packs 3 nucleotide codes per hash (w=3, H=64).
var DNA3 Trait[byte] = dna3Trait{}

type dna4Trait struct{}

func (dna4Trait) SuffixSize() int   { return 4 }
func (dna4Trait) HashRangeMax() int { return 256 }
func (dna4Trait) Hash(window []byte) int {
	return int(window[0])<<6 | int(window[1])<<4 | int(window[2])<<2 | int(window[3])
}

// DNA4 packs 4 nucleotide codes per hash (w=4, H=256).
var DNA4 Trait[byte] = dna4Trait{}

// EncodeDNA maps an ASCII nucleotide sequence ('A','C','G','T', either case)
// into packed 2-bit codes (0=A, 1=C, 2=G, 3=T) suitable for use with DNA2,
// DNA3, or DNA4. Any other byte maps to code 0; callers that need to reject
// malformed input should validate before calling EncodeDNA.
func EncodeDNA(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[i] = dnaCode(b)
	}
	return out
}

func dnaCode(b byte) byte {
	switch b {
	case 'A', 'a':
		return 0
	case 'C', 'c':
		return 1
	case 'G', 'g':
		return 2
	case 'T', 't':
		return 3
	default:
		return 0
	}
}
