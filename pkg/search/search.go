// Package search implements single pattern substring search over slices of any
// comparable element type.
//
// Two algorithms are provided and share one entry point, Search. The choice of
// algorithm is made when the Searcher is constructed; callers that only search
// never need to know which one is running.
//
// Boyer-Moore:
// Works by pre-analyzing the pattern and comparing from right-to-left. If a mismatch occurs, the
// initial analysis is used to determine how far the pattern can be shifted w.r.t. the text being
// searched. This works particularly well for long search patterns. In particular, it can be
// sublinear, as you do not need to read every single element of your text.
//
// Knuth-Morris-Pratt:
// Also works by pre-analyzing the pattern, but tries to re-use whatever was already matched in the
// initial part of the pattern to avoid having to rematch that. This can work quite well if your
// alphabet is small (f.ex. DNA bases), as you get a higher chance that your search patterns
// contain re-usable sub-patterns. The text is read exactly once, front to back.
//
// A Searcher is immutable once built and may be shared by any number of
// goroutines. It keeps a view of the pattern rather than a copy, so the pattern
// must not be modified while the Searcher is in use.
package search

import (
	"errors"
	"strings"
)

// NotFound is returned by Search when the pattern does not occur in the haystack.
const NotFound = -1

var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm identifies which search routine a Searcher is bound to.
type Algorithm uint8

const (
	KnuthMorrisPratt Algorithm = iota
	BoyerMoore
)

func (a Algorithm) String() string {
	switch a {
	case KnuthMorrisPratt:
		return "KNUTH-MORRIS-PRATT"
	case BoyerMoore:
		return "BOYER-MOORE"
	default:
		return "UNKNOWN"
	}
}

// ParseAlgorithm maps a short or long algorithm name onto an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kmp", "knuth-morris-pratt":
		return KnuthMorrisPratt, nil
	case "bm", "boyer-moore":
		return BoyerMoore, nil
	}
	return 0, ErrUnknownAlgorithm
}

// Searcher binds a pattern to the tables of one algorithm.
type Searcher[T comparable] struct {
	algorithm Algorithm
	pattern   []T
	kmp       failureTable
	bm        *boyerMooreTable[T]
}

// New builds a Searcher for pattern using the given algorithm.
func New[T comparable](alg Algorithm, pattern []T) (*Searcher[T], error) {
	switch alg {
	case KnuthMorrisPratt:
		return NewKnuthMorrisPratt(pattern), nil
	case BoyerMoore:
		return NewBoyerMoore(pattern), nil
	}
	return nil, ErrUnknownAlgorithm
}

func (s *Searcher[T]) Algorithm() Algorithm {
	return s.algorithm
}

// Pattern returns the pattern view the Searcher was built from. It must be
// treated as read-only.
func (s *Searcher[T]) Pattern() []T {
	return s.pattern
}

func (s *Searcher[T]) Len() int {
	return len(s.pattern)
}

func (s *Searcher[T]) String() string {
	return s.algorithm.String()
}

// Index is shorthand for Search(haystack, s).
func (s *Searcher[T]) Index(haystack []T) int {
	return Search(haystack, s)
}

// Search returns the index of the first occurrence of the searcher's pattern in
// haystack, or NotFound. An empty pattern matches at 0, even in an empty haystack.
func Search[T comparable](haystack []T, s *Searcher[T]) int {
	m := len(s.pattern)
	if m == 0 {
		return 0
	}
	if m > len(haystack) {
		return NotFound
	}
	switch s.algorithm {
	case KnuthMorrisPratt:
		return indexKnuthMorrisPratt(haystack, s.pattern, s.kmp)
	case BoyerMoore:
		return s.bm.index(haystack, s.pattern)
	}
	panic(ErrUnknownAlgorithm)
}

// SearchString is Search for string haystacks. The haystack is not copied.
func SearchString(haystack string, s *Searcher[byte]) int {
	return Search(Bytes(haystack), s)
}

// SearchAll returns the start of every occurrence of the pattern in haystack in
// increasing order. Occurrences may overlap. An empty pattern yields nil.
func SearchAll[T comparable](haystack []T, s *Searcher[T]) []int {
	if len(s.pattern) == 0 {
		return nil
	}
	var found []int
	for off := 0; off <= len(haystack)-len(s.pattern); {
		n := Search(haystack[off:], s)
		if n == NotFound {
			break
		}
		found = append(found, off+n)
		off += n + 1
	}
	return found
}

// Count returns the number of (possibly overlapping) occurrences of the pattern.
func Count[T comparable](haystack []T, s *Searcher[T]) int {
	if len(s.pattern) == 0 {
		return 0
	}
	var count int
	for off := 0; off <= len(haystack)-len(s.pattern); {
		n := Search(haystack[off:], s)
		if n == NotFound {
			break
		}
		count++
		off += n + 1
	}
	return count
}

// Contains reports whether the pattern occurs in haystack.
func Contains[T comparable](haystack []T, s *Searcher[T]) bool {
	return Search(haystack, s) != NotFound
}
