package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureTable(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"ABCDABD", []int{0, 0, 0, 0, 1, 2, 0}},
		{"AAAA", []int{0, 1, 2, 3}},
		{"ABAB", []int{0, 0, 1, 2}},
		{"AABAAA", []int{0, 1, 0, 1, 2, 2}},
		{"abcxxxabc", []int{0, 0, 0, 0, 0, 0, 1, 2, 3}},
		{"a", []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			s := NewKnuthMorrisPrattString(tt.pattern)
			assert.Equal(t, tt.want, s.FailureTable())
			assert.Equal(t, tt.want, []int(buildFailureTable([]byte(tt.pattern))))
		})
	}
}

func TestFailureTableInvariants(t *testing.T) {
	for _, pattern := range []string{"ABCDABD", "aabaabaaa", "abababab", "xyz", "zzzzzzzz"} {
		table := buildFailureTable([]byte(pattern))
		assert.Zero(t, table[0], pattern)
		for i := 1; i < len(table); i++ {
			assert.LessOrEqual(t, table[i], i, pattern)
			// each entry can grow by at most one over its predecessor
			assert.LessOrEqual(t, table[i], table[i-1]+1, pattern)
			// the border really is a border
			k := table[i]
			assert.Equal(t, pattern[:k], pattern[i+1-k:i+1], pattern)
		}
	}
}

func TestFailureTableEmpty(t *testing.T) {
	s := NewKnuthMorrisPrattString("")
	assert.Empty(t, s.FailureTable())
	assert.Equal(t, 0, SearchString("", s))
	assert.Equal(t, 0, SearchString("abc", s))
}

func TestFailureTableCopy(t *testing.T) {
	s := NewKnuthMorrisPrattString("AAAA")
	table := s.FailureTable()
	table[3] = 99
	assert.Equal(t, []int{0, 1, 2, 3}, s.FailureTable())
	assert.Nil(t, NewBoyerMooreString("AAAA").FailureTable())
}

func TestKnuthMorrisPrattFallback(t *testing.T) {
	// partial match "ABCDAB" at 4 must fall back to the border "AB" rather
	// than restarting, otherwise the match at 15 is found late or not at all
	haystack := "ABC ABCDAB ABCDABCDABDE"
	assert.Equal(t, 15, SearchString(haystack, NewKnuthMorrisPrattString("ABCDABD")))
	assert.Equal(t, 4, SearchString(haystack, NewKnuthMorrisPrattString("ABCDAB")))
}
