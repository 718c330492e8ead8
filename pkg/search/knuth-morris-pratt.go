package search

// KnuthMorrisPratt is oftentimes only the best performing when it's used on shorter texts or
// if you are pre-computing the search tables beforehand. Otherwise, Boyer-Moore will beat it
// most of the time. Its advantage is that it never backs up in the text, so the worst case
// stays linear no matter how repetitive the input is.

// failureTable holds, for every prefix pattern[:i+1], the length of its longest
// proper border (a prefix that is also a suffix).
type failureTable []int

// NewKnuthMorrisPratt builds a Knuth-Morris-Pratt Searcher for pattern.
func NewKnuthMorrisPratt[T comparable](pattern []T) *Searcher[T] {
	return &Searcher[T]{
		algorithm: KnuthMorrisPratt,
		pattern:   pattern,
		kmp:       buildFailureTable(pattern),
	}
}

// NewKnuthMorrisPrattString builds a Knuth-Morris-Pratt Searcher over a view of pattern.
func NewKnuthMorrisPrattString(pattern string) *Searcher[byte] {
	return NewKnuthMorrisPratt(Bytes(pattern))
}

func buildFailureTable[T comparable](pattern []T) failureTable {
	table := make(failureTable, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = table[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		table[i] = k
	}
	return table
}

// FailureTable returns a copy of the failure function. It is nil for
// searchers that are not Knuth-Morris-Pratt.
func (s *Searcher[T]) FailureTable() []int {
	if s.algorithm != KnuthMorrisPratt {
		return nil
	}
	return append([]int(nil), s.kmp...)
}

// indexKnuthMorrisPratt expects 0 < len(pattern) <= len(haystack).
func indexKnuthMorrisPratt[T comparable](haystack, pattern []T, table failureTable) int {
	m, q := len(pattern), 0
	for i, v := range haystack {
		for q > 0 && v != pattern[q] {
			q = table[q-1]
		}
		if v == pattern[q] {
			q++
		}
		if q == m {
			return i - m + 1
		}
	}
	return NotFound
}
