package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoyerMooreTables(t *testing.T) {
	tests := []struct {
		pattern    string
		badChar    map[byte]int
		goodSuffix []int
	}{
		{"abc", map[byte]int{'a': 2, 'b': 1, 'c': 3, 'z': 3}, []int{5, 4, 1}},
		{"mississi", map[byte]int{'m': 7, 'i': 3, 's': 1, 'p': 8}, []int{15, 14, 13, 7, 11, 10, 7, 1}},
		{"abcxxxabc", map[byte]int{'a': 2, 'b': 1, 'c': 6, 'x': 3, 'y': 9}, []int{14, 13, 12, 11, 10, 9, 11, 10, 1}},
		{"abyxcdeyx", map[byte]int{'a': 8, 'b': 7, 'y': 1, 'x': 5, 'c': 4, 'd': 3, 'e': 2}, []int{17, 16, 15, 14, 13, 12, 7, 10, 1}},
		{"ABCDABD", map[byte]int{'A': 2, 'B': 1, 'C': 4, 'D': 3, ' ': 7}, []int{13, 12, 11, 10, 9, 4, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			s := NewBoyerMooreString(tt.pattern)
			for c, want := range tt.badChar {
				assert.Equal(t, want, s.BadCharShift(c), "bad char %q", c)
			}
			assert.Equal(t, tt.goodSuffix, s.GoodSuffixTable())
		})
	}
}

func TestBoyerMooreSparseTable(t *testing.T) {
	s := NewBoyerMoore([]rune("日本日語"))
	assert.Nil(t, s.bm.badChar.dense)
	assert.Equal(t, 1, s.BadCharShift('日'))
	assert.Equal(t, 2, s.BadCharShift('本'))
	// the last element is not recorded, so it shifts like an absent one
	assert.Equal(t, 4, s.BadCharShift('語'))
	assert.Equal(t, 4, s.BadCharShift('x'))
}

func TestBoyerMooreDenseTable(t *testing.T) {
	assert.Len(t, NewBoyerMoore([]byte("abc")).bm.badChar.dense, byteAlphabet)
	assert.Len(t, NewBoyerMoore([]int8{-1, 2, -3}).bm.badChar.dense, byteAlphabet)
	assert.Len(t, NewBoyerMoore([]bool{true, false}).bm.badChar.dense, byteAlphabet)

	s := NewBoyerMoore([]int8{-1, 2, -3})
	assert.Equal(t, 2, s.BadCharShift(-1))
	assert.Equal(t, 1, s.BadCharShift(2))
	assert.Equal(t, 3, s.BadCharShift(-3))
	assert.Equal(t, 1, Search([]int8{5, -1, 2, -3}, s))

	// named byte types take the sparse path but behave the same
	type base byte
	dna := NewBoyerMoore([]base("GATTACA"))
	assert.Nil(t, dna.bm.badChar.dense)
	assert.Equal(t, 3, Search([]base("CCCGATTACAT"), dna))
}

func TestBoyerMooreShiftIsPositive(t *testing.T) {
	for _, pattern := range []string{"a", "aa", "abc", "aaaa", "abab", "mississi", "abcxxxabc"} {
		s := NewBoyerMooreString(pattern)
		last := len(pattern) - 1
		for j, shift := range s.GoodSuffixTable() {
			assert.Greater(t, shift, last-j, "pattern %q position %d", pattern, j)
		}
	}
}

func TestBoyerMooreAccessorsOnOtherAlgorithm(t *testing.T) {
	s := NewKnuthMorrisPrattString("abc")
	assert.Equal(t, 3, s.BadCharShift('a'))
	assert.Nil(t, s.GoodSuffixTable())
}
