// Package mn implements the Musser-Nishanov family of exact single-pattern
// search algorithms: Accelerated Linear (AL), a KMP-style scanner whose
// outer loop uses a fast "find first matching element" primitive, and
// Hashed Accelerated Linear (HAL), which augments AL with a skip table
// keyed by a short hash of a fixed-width suffix of the current window.
//
// Engine[E] is constructed once from a pattern and searches any number of
// corpora of the same element type E. Construction always builds the KMP
// failure table; the HAL skip table is built lazily, on the first call that
// needs it, and only once (see the Engine docs for the sharing discipline
// this implies under concurrent use).
//
// Two entry points cover the two corpus shapes the algorithm distinguishes:
// Search takes a random-access slice and may dispatch to HAL; SearchSeq
// takes a Sequence, a forward-only pull iterator, and always uses AL.
package mn
