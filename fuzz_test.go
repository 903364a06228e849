package strseg

import (
	"strings"
	"testing"
)

// FuzzEscapedSplit checks that EscapedSplit with a literal delimiter loses
// nothing: rejoining the segments gives back the text, and every segment
// but the last closes on an even escape run.
//
//	go test -fuzz=FuzzEscapedSplit -fuzztime=30s
func FuzzEscapedSplit(f *testing.F) {
	for _, text := range quoteTexts {
		f.Add(text, 0)
		f.Add(text, 2)
	}
	for _, text := range emptyRunTexts {
		f.Add(text, 1)
	}

	f.Fuzz(func(t *testing.T, text string, limit int) {
		limit %= 16
		got, err := EscapedSplit("'", text, DefaultEscape, limit, false)
		if err != nil {
			t.Fatal(err)
		}
		if joined := strings.Join(got, "'"); joined != text {
			t.Fatalf("EscapedSplit(%q, %d) joined = %q", text, limit, joined)
		}
		if limit > 0 && len(got) > limit+1 {
			t.Fatalf("EscapedSplit(%q, %d) made %d segments", text, limit, len(got))
		}
		if limit < 0 && len(got) != 1 {
			t.Fatalf("EscapedSplit(%q, %d) split with a negative limit", text, limit)
		}

		offset := 0
		for _, seg := range got[:len(got)-1] {
			offset += len(seg)
			if escapeRun(text, offset, DefaultEscape)%2 != 0 {
				t.Fatalf("EscapedSplit(%q): split after odd run in %q", text, seg)
			}
			offset++
		}
	})
}

// FuzzSplit checks that Split with a literal delimiter loses nothing.
//
//	go test -fuzz=FuzzSplit -fuzztime=30s
func FuzzSplit(f *testing.F) {
	for _, text := range emptyRunTexts {
		f.Add(text, 0)
		f.Add(text, 3)
	}

	f.Fuzz(func(t *testing.T, text string, limit int) {
		limit %= 16
		got, err := Split(";", text, limit, false)
		if err != nil {
			t.Fatal(err)
		}
		if joined := strings.Join(got, ";"); joined != text {
			t.Fatalf("Split(%q, %d) joined = %q", text, limit, joined)
		}

		kept, err := Split(";", text, limit, true)
		if err != nil {
			t.Fatal(err)
		}
		for _, seg := range kept {
			if seg == "" {
				t.Fatalf("Split(%q, %d, true) kept an empty segment", text, limit)
			}
		}
	})
}
