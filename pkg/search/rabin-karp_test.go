package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexRabinKarp(t *testing.T) {
	tests := []struct {
		haystack, pattern string
		want              int
	}{
		{"n", "n", 0},
		{"nmnn", "nn", 2},
		{"nmnn", "mm", NotFound},
		{"ABC ABCDAB ABCDABCDABDE", "ABCDABD", 15},
		{"", "", 0},
		{"", "a", NotFound},
		{"ab", "abc", NotFound},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IndexRabinKarpString(tt.haystack, tt.pattern), "%q in %q", tt.pattern, tt.haystack)
		assert.Equal(t, tt.want, IndexRabinKarp([]byte(tt.haystack), []byte(tt.pattern)), "%q in %q", tt.pattern, tt.haystack)
	}
}
