package search

// boyerMooreTable holds the two shift heuristics for a pattern. Both are
// expressed as distances to advance the haystack index at which the mismatch
// happened, not the alignment itself.
type boyerMooreTable[T comparable] struct {
	// badChar.get(v) is the distance between the last element of the pattern
	// and the rightmost occurrence of v in pattern[:last]. Values that do not
	// occur there shift by the full pattern length.
	//
	// The last element is left out so it never has a zero distance to itself;
	// finding it out of place implies it is not in the last position.
	badChar *shiftTable[T]

	// goodSuffix[j] is how far the index may move given that pattern[j+1:]
	// matched and pattern[j] did not. Either the matched suffix occurs again
	// earlier in the pattern (preceded by a different element) and the frame
	// moves to line up with it, or it does not, and the frame moves so that the
	// longest pattern prefix that is also a suffix of the matched part lines up.
	//
	// For "mississi" the suffix "issi" occurs again at index 1, so
	// goodSuffix[3] == shift+len(suffix) == 3+4 == 7. For "abcxxxabc" a
	// mismatch at 3 leaves "xxabc" which does not recur, but its tail "abc" is
	// a prefix, so goodSuffix[3] == 6+5 == 11.
	goodSuffix []int
}

// NewBoyerMoore builds a Boyer-Moore Searcher for pattern.
func NewBoyerMoore[T comparable](pattern []T) *Searcher[T] {
	return &Searcher[T]{
		algorithm: BoyerMoore,
		pattern:   pattern,
		bm:        buildBoyerMooreTable(pattern),
	}
}

// NewBoyerMooreString builds a Boyer-Moore Searcher over a view of pattern.
func NewBoyerMooreString(pattern string) *Searcher[byte] {
	return NewBoyerMoore(Bytes(pattern))
}

func buildBoyerMooreTable[T comparable](pattern []T) *boyerMooreTable[T] {
	return &boyerMooreTable[T]{
		badChar:    buildBadCharTable(pattern),
		goodSuffix: buildGoodSuffixTable(pattern),
	}
}

func buildBadCharTable[T comparable](pattern []T) *shiftTable[T] {
	last := len(pattern) - 1
	st := newShiftTable[T](len(pattern))
	for i := 0; i < last; i++ {
		st.set(pattern[i], last-i)
	}
	return st
}

func buildGoodSuffixTable[T comparable](pattern []T) []int {
	last := len(pattern) - 1
	table := make([]int, len(pattern))
	// first pass: point each slot at the next index which starts a prefix of
	// the pattern
	lastPrefix := last
	for i := last; i >= 0; i-- {
		if hasPrefix(pattern, pattern[i+1:]) {
			lastPrefix = i + 1
		}
		// lastPrefix is the shift, and (last-i) is len(suffix)
		table[i] = lastPrefix + last - i
	}
	// second pass: find repeats of the pattern's suffix starting from the front
	for i := 0; i < last; i++ {
		lenSuffix := longestCommonSuffix(pattern, pattern[1:i+1])
		if pattern[i-lenSuffix] != pattern[last-lenSuffix] {
			// (last-i) is the shift, and lenSuffix is len(suffix)
			table[last-lenSuffix] = lenSuffix + last - i
		}
	}
	return table
}

// BadCharShift returns the bad character distance for v. Searchers that are
// not Boyer-Moore report the pattern length.
func (s *Searcher[T]) BadCharShift(v T) int {
	if s.algorithm != BoyerMoore {
		return len(s.pattern)
	}
	return s.bm.badChar.get(v)
}

// GoodSuffixTable returns a copy of the good suffix distances, indexed by the
// pattern position of the mismatch. It is nil for searchers that are not
// Boyer-Moore.
func (s *Searcher[T]) GoodSuffixTable() []int {
	if s.algorithm != BoyerMoore {
		return nil
	}
	return append([]int(nil), s.bm.goodSuffix...)
}

// index expects 0 < len(pattern) <= len(haystack).
func (t *boyerMooreTable[T]) index(haystack, pattern []T) int {
	last := len(pattern) - 1
	for at := 0; at <= len(haystack)-len(pattern); {
		j := last
		for j >= 0 && haystack[at+j] == pattern[j] {
			j--
		}
		if j < 0 {
			return at
		}
		// goodSuffix[j] always exceeds the matched length, so the frame
		// moves forward by at least one
		matched := last - j
		at += max(t.badChar.get(haystack[at+j]), t.goodSuffix[j]) - matched
	}
	return NotFound
}
