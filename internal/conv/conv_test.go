package conv

import (
	"reflect"
	"testing"
)

func TestRuneOffsets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"empty", "", []int{0}},
		{"ascii", "abc", []int{0, 1, 2, 3}},
		{"multibyte", "aé!", []int{0, 1, 3, 4}},
		{"invalid byte", "a\xffb", []int{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RuneOffsets(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RuneOffsets(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if n := len([]rune(tt.input)); len(got) != n+1 {
				t.Errorf("RuneOffsets(%q) has %d entries for %d runes", tt.input, len(got), n)
			}
		})
	}
}

func TestByteToRune(t *testing.T) {
	offsets := RuneOffsets("aé!")

	tests := []struct {
		b    int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2}, // inside "é": next rune boundary
		{3, 2},
		{4, 3},
		{9, 4},
	}

	for _, tt := range tests {
		if got := ByteToRune(offsets, tt.b); got != tt.want {
			t.Errorf("ByteToRune(%d) = %d, want %d", tt.b, got, tt.want)
		}
	}
}

func TestRuneToBytePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("RuneToByte() did not panic on out of range index")
		}
	}()

	RuneToByte(RuneOffsets("ab"), 3)
}
