package search

import (
	"math"
	"unsafe"
)

// byteAlphabet is the size of a dense shift table, one slot per byte value.
const byteAlphabet = 1 + math.MaxUint8

// Bytes returns a read-only view of s. No copy is made; the result must never be
// written to.
func Bytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// denseKey returns a function mapping values of T onto [0, byteAlphabet) when
// every value of T fits in a single byte, and nil otherwise. Named types are
// not recognised and fall back to the sparse table.
func denseKey[T comparable]() func(T) int {
	var zero T
	switch any(zero).(type) {
	case byte, int8, bool:
		// all three are one byte wide, so the raw byte is the key
		return func(v T) int { return int(*(*uint8)(unsafe.Pointer(&v))) }
	}
	return nil
}

// shiftTable maps an element value to a shift distance. Values that were never
// set report the default distance.
type shiftTable[T comparable] struct {
	def    int
	key    func(T) int
	dense  []int
	sparse map[T]int
}

func newShiftTable[T comparable](def int) *shiftTable[T] {
	st := &shiftTable[T]{def: def, key: denseKey[T]()}
	if st.key == nil {
		st.sparse = make(map[T]int)
		return st
	}
	st.dense = make([]int, byteAlphabet)
	for i := range st.dense {
		st.dense[i] = def
	}
	return st
}

func (st *shiftTable[T]) set(v T, n int) {
	if st.dense != nil {
		st.dense[st.key(v)] = n
		return
	}
	st.sparse[v] = n
}

func (st *shiftTable[T]) get(v T) int {
	if st.dense != nil {
		return st.dense[st.key(v)]
	}
	if n, ok := st.sparse[v]; ok {
		return n
	}
	return st.def
}

// hasPrefix reports whether s begins with prefix.
func hasPrefix[T comparable](s, prefix []T) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

// longestCommonSuffix returns the length of the longest common suffix of a and b.
func longestCommonSuffix[T comparable](a, b []T) (i int) {
	for ; i < len(a) && i < len(b); i++ {
		if a[len(a)-1-i] != b[len(b)-1-i] {
			break
		}
	}
	return
}
