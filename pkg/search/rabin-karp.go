package search

import "bytes"

// RabinKarp is inferior for single pattern searching to Knuth-Morris-Pratt or Boyer-Moore
// because of its slow worst case behavior. It only works on bytes, since it needs to hash
// the elements, so it is kept here as a baseline to measure the other two against.

// PrimeRK is the prime base used in Rabin-Karp algorithm.
const PrimeRK = 16777619

// IndexRabinKarp uses the Rabin-Karp search algorithm to return the index of the
// first occurrence of pattern in haystack, or NotFound if not present.
func IndexRabinKarp(haystack, pattern []byte) int {
	n := len(pattern)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return NotFound
	}
	hashsep, pow := hashBytes(pattern)
	var h uint32
	for i := 0; i < n; i++ {
		h = h*PrimeRK + uint32(haystack[i])
	}
	if h == hashsep && bytes.Equal(haystack[:n], pattern) {
		return 0
	}
	for i := n; i < len(haystack); {
		h *= PrimeRK
		h += uint32(haystack[i])
		h -= pow * uint32(haystack[i-n])
		i++
		if h == hashsep && bytes.Equal(haystack[i-n:i], pattern) {
			return i - n
		}
	}
	return NotFound
}

// IndexRabinKarpString is IndexRabinKarp for strings. Neither argument is copied.
func IndexRabinKarpString(haystack, pattern string) int {
	return IndexRabinKarp(Bytes(haystack), Bytes(pattern))
}

// hashBytes returns the hash and the appropriate multiplicative
// factor for use in Rabin-Karp algorithm.
func hashBytes(sep []byte) (uint32, uint32) {
	hash := uint32(0)
	for i := 0; i < len(sep); i++ {
		hash = hash*PrimeRK + uint32(sep[i])
	}
	var pow, sq uint32 = 1, PrimeRK
	for i := len(sep); i > 0; i >>= 1 {
		if i&1 != 0 {
			pow *= sq
		}
		sq *= sq
	}
	return hash, pow
}
