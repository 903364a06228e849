// Package conv provides offset conversion helpers between the rune-indexed
// view of a string (used by the backtracking engine) and the byte-indexed view
// used everywhere else.
//
// Invalid UTF-8 bytes count as one rune each, which matches both the range
// loop over a string and the []rune conversion.
package conv

import "sort"

// RuneOffsets returns the byte offset of every rune in s, followed by len(s).
//
// offsets[i] is the byte offset of the i-th rune, so a rune span [i, j)
// covers the bytes [offsets[i], offsets[j]).
//
// Example:
//
//	offsets := conv.RuneOffsets("aé!")
//	// offsets = [0, 1, 3, 4]
func RuneOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

// ByteToRune returns the index of the first rune starting at or after byte
// offset b. Offsets past the end map to the rune count.
//
//go:inline
func ByteToRune(offsets []int, b int) int {
	return sort.SearchInts(offsets, b)
}

// RuneToByte translates a rune index into a byte offset.
// Panics if i is outside [0, len(offsets)).
//
//go:inline
func RuneToByte(offsets []int, i int) int {
	if i < 0 || i >= len(offsets) {
		panic("rune index out of range")
	}
	return offsets[i]
}
