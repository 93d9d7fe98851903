package mn

import "github.com/coregx/musserlib/simd"

// Sequence is a forward-only pull source of corpus elements, the Go
// analogue of the original algorithm's forward iterator requirement. AL can
// scan any Sequence; HAL additionally requires random access (a slice) and
// is offered only through Engine.Search.
type Sequence[E any] interface {
	// Next returns the next element and true, or the zero value and false
	// once the sequence is exhausted. Once Next returns false it must keep
	// returning false.
	Next() (E, bool)
}

// fastFinder is optionally implemented by a Sequence that can locate the
// next occurrence of a target element faster than driving Next() one
// element at a time -- the accelerated half of AL's "fast find" outer loop
// (spec 4.2 step 3a). findFirstEq checks for it via a type assertion and
// falls back to the plain Next() loop when a Sequence doesn't offer one.
type fastFinder[E any] interface {
	// fastFind reports the absolute index of the next element equal to
	// target at or after the sequence's current (unconsumed) position. On
	// ok == true it leaves the sequence positioned so the next Next() call
	// returns that element; on ok == false it leaves the sequence exhausted
	// and idx is the sequence's length.
	fastFind(target E) (idx int, ok bool)
}

// sliceSequence adapts a slice to Sequence, used internally so the AL
// scanner has one implementation shared by Engine.Search's AL fallback and
// Engine.SearchSeq.
type sliceSequence[E any] struct {
	s []E
	i int
}

func newSliceSequence[E any](s []E) *sliceSequence[E] {
	return &sliceSequence[E]{s: s}
}

func (c *sliceSequence[E]) Next() (E, bool) {
	if c.i >= len(c.s) {
		var zero E
		return zero, false
	}
	v := c.s[c.i]
	c.i++
	return v, true
}

// fastFind implements fastFinder for the one element type with a real
// accelerated primitive behind it: []byte, via simd.Memchr. For any other
// E this type assertion on c.s fails and findFirstEq falls back to driving
// Next() one element at a time.
func (c *sliceSequence[E]) fastFind(target E) (int, bool) {
	bs, isByteSlice := any(c.s).([]byte)
	if !isByteSlice {
		return -1, false
	}
	b, isByte := any(target).(byte)
	if !isByte {
		return -1, false
	}
	rel := simd.Memchr(bs[c.i:], b)
	if rel < 0 {
		c.i = len(bs)
		return len(bs), false
	}
	c.i += rel
	return c.i, true
}

// puller holds the "current" element of a Sequence alongside its absolute
// position, giving AL a stand-in for the original's dereferenceable
// iterator. pos always equals the number of elements consumed so far, so it
// doubles as the corpus length once the sequence is exhausted -- exactly
// the "end" position the search result protocol requires on a miss.
type puller[E any] struct {
	seq Sequence[E]
	cur E
	pos int
	ok  bool
}

func newPuller[E any](seq Sequence[E]) *puller[E] {
	p := &puller[E]{seq: seq}
	p.cur, p.ok = seq.Next()
	return p
}

func (p *puller[E]) advance() {
	if !p.ok {
		return
	}
	p.pos++
	p.cur, p.ok = p.seq.Next()
}

// findFirstEq advances until cur equals target (without consuming it) or
// the sequence is exhausted, mirroring std::find's semantics of testing the
// current element before advancing. When the underlying Sequence offers a
// fastFinder (true for []byte corpora, backed by simd.Memchr), it is used
// in place of the one-at-a-time Next() loop.
func (p *puller[E]) findFirstEq(target E, eq func(a, b E) bool) bool {
	for p.ok {
		if eq(p.cur, target) {
			return true
		}
		if ff, ok := p.seq.(fastFinder[E]); ok {
			idx, found := ff.fastFind(target)
			if idx >= 0 {
				p.pos = idx
				if !found {
					p.ok = false
					return false
				}
				p.cur, p.ok = p.seq.Next()
				return true
			}
		}
		p.advance()
	}
	return false
}
