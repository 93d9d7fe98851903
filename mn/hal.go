package mn

import "github.com/coregx/musserlib/mn/trait"

// skipTable is the Hashed Accelerated Linear skip table plus the one value
// compute_skip carves out of it: mismatchShift, the shift that would have
// occupied the pattern's own tail-hash slot before it was overwritten with
// the sentinel.
type skipTable struct {
	skip          []int
	mismatchShift int
}

// buildSkip constructs the skip table:
//
//  1. every slot starts at m-w+1, the maximum safe shift;
//  2. for each w-wide window of pattern before its final window, the slot
//     for that window's hash is set to the distance from the window's end
//     to the end of pattern (later, closer-to-end windows win on collision);
//  3. mismatchShift is read off the slot the pattern's own final window
//     hashes to, before that slot is overwritten;
//  4. that slot is then forced to 0, the sentinel that tells the scan loop
//     "this window's tail matches the pattern's tail -- stop skipping, go
//     verify" without any separate bounds or equality check.
func buildSkip[E comparable](pattern []E, tr trait.Trait[E]) skipTable {
	m := len(pattern)
	w := tr.SuffixSize()
	skip := make([]int, tr.HashRangeMax())
	def := m - w + 1
	for i := range skip {
		skip[i] = def
	}
	for j := w - 1; j < m-1; j++ {
		h := tr.Hash(pattern[j-w+1 : j+1])
		skip[h] = m - 1 - j
	}

	tailHash := tr.Hash(pattern[m-w:])
	mismatchShift := skip[tailHash]
	skip[tailHash] = 0
	return skipTable{skip: skip, mismatchShift: mismatchShift}
}

// halSearch runs the Hashed Accelerated Linear scanner over a random-access
// corpus, starting the first candidate window at corpus[from:]. It returns
// the half-open match range as absolute positions into corpus, or
// (len(corpus), len(corpus)) on a miss.
//
// Callers (Engine.Search) are responsible for routing m < w or m == 1
// patterns to alSearch instead; halSearch assumes m >= w and w >= 1.
func halSearch[E comparable](pattern []E, next []int, tr trait.Trait[E], st skipTable, corpus []E, from int) (int, int) {
	n := len(corpus)
	m := len(pattern)
	w := tr.SuffixSize()
	eq := func(a, b E) bool { return a == b }

	s := from
outer:
	for {
		if s+m > n {
			return n, n
		}
		windowEnd := s + m
		h := tr.Hash(corpus[windowEnd-w : windowEnd])
		sk := st.skip[h]
		if sk != 0 {
			s += sk
			continue
		}

		// Sentinel hit: the window's tail hash matches the pattern's tail
		// hash. Verify from the front.
		if !eq(corpus[s], pattern[0]) {
			s += st.mismatchShift
			continue
		}
		j := 1
		for j < m && eq(corpus[s+j], pattern[j]) {
			j++
		}
		if j == m {
			return s, s + m
		}
		if j < st.mismatchShift {
			s += st.mismatchShift - j
			continue
		}

		// Fall into the KMP failure-function tail: pos is the corpus
		// position that mismatched against pattern[j]. The pattern index
		// shifts according to next while pos, the corpus position, holds
		// still until a comparison actually succeeds or fails against it.
		pos := s + j
		for {
			j = next[j]
			if j < 0 {
				s = pos + 1
				continue outer
			}
			if j == 0 {
				s = pos
				continue outer
			}
			if pos >= n {
				return n, n
			}
			if !eq(corpus[pos], pattern[j]) {
				continue
			}
			for {
				pos++
				j++
				if j == m {
					return pos - m, pos
				}
				if pos >= n {
					return n, n
				}
				if !eq(corpus[pos], pattern[j]) {
					break
				}
			}
		}
	}
}
