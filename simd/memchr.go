// Package simd provides accelerated byte-search primitives. Memchr backs
// the "find first matching element" outer loop of the Accelerated Linear
// scanner (mn.Engine's AL, via mn/sequence.go's fastFinder hook) whenever
// its corpus element type is byte; HAL's outer loop skips ahead using its
// own hash-keyed skip table instead and has no use for Memchr.
//
// There is no CPU-feature-gated assembly path here: we deliberately stick to
// the portable SWAR (SIMD Within A Register) implementation rather than add
// an AVX2 path we cannot ground on a real assembly source. See DESIGN.md.
package simd

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Uses SWAR (SIMD Within A Register) technique, processing 8 bytes at a
// time via uint64 bitwise operations.
//
// Performance characteristics:
//   - Small inputs (< 8 bytes): byte-by-byte comparison
//   - Medium/large inputs: 2-5x faster than naive byte-by-byte
//
// See memchrGeneric for implementation details.
func Memchr(haystack []byte, needle byte) int {
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or needle2
// in haystack, or -1 if neither is present.
//
// Checks both needles in parallel within 8-byte chunks.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	return memchr2Generic(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first instance of needle1, needle2, or needle3
// in haystack, or -1 if none are present.
//
// Checks all three needles in parallel within 8-byte chunks.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	return memchr3Generic(haystack, needle1, needle2, needle3)
}
