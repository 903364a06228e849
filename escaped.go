package strseg

import (
	"fmt"
	"unicode/utf8"

	"github.com/coregx/strseg/internal/engine"
)

// EscapedSplit slices text at the matches of pattern that are not escaped.
//
// A match is escaped when the run of escape characters immediately before
// it has odd length. The run is counted in full, even where it reaches back
// into an earlier segment. For a genuine (even-run) match, the run stays
// verbatim at the end of the segment it closes and the match itself is
// dropped; an escaped match stays in the text and scanning resumes after it.
//
//	`a\,b`   on ","  -> [`a\,b`]
//	`a\\,b`  on ","  -> [`a\\`, "b"]
//	`a\\\,b` on ","  -> [`a\\\,b`]
//
// The pattern is matched with DotAll. The limit counts genuine splits with
// the Split conventions (0 all, k > 0 at most k, negative none). With
// removeEmpty, segments that are empty as a whole are dropped.
//
// An escape that is not a valid rune fails with ErrInvalidEscape, an invalid
// pattern with *PatternError.
//
// Example:
//
//	parts, _ := strseg.EscapedSplit(`'`, `out1 'it\'s' out2`, strseg.DefaultEscape, 0, false)
//	// parts = ["out1 ", `it\'s`, " out2"]
func (s *Segmenter) EscapedSplit(pattern, text string, escape rune, limit int, removeEmpty bool) ([]string, error) {
	if err := validateEscape(escape); err != nil {
		return nil, err
	}
	e, err := s.compile(pattern, DotAll, false)
	if err != nil {
		return nil, err
	}

	segments := make([]string, 0, 8)
	if limit < 0 {
		return appendSegment(segments, text, removeEmpty), nil
	}

	start, splits := 0, 0
	for loc := range e.Scan(text, 0) {
		if limit > 0 && splits >= limit {
			break
		}
		if isEscaped(text, loc[0], escape) {
			continue
		}
		segments = appendSegment(segments, text[start:loc[0]], removeEmpty)
		start = loc[1]
		splits++
	}
	return appendSegment(segments, text[start:], removeEmpty), nil
}

// EscapedBetween returns the text between each begin and end occurrence,
// ignoring occurrences of either that are escaped.
//
// The search is non-greedy: each region closes at the first genuine end
// after its begin. Escaped delimiters and escape runs inside a region are
// kept verbatim. A begin without a genuine end after it ends the search.
// Limit and negative-limit handling follow Between.
//
// Example:
//
//	inner, _ := strseg.EscapedBetween(`'`, `'`, `x \'no\' 'it\'s' y`, strseg.DefaultEscape, 0)
//	// inner = [`it\'s`]
func (s *Segmenter) EscapedBetween(begin, end, text string, escape rune, limit int) ([]string, error) {
	if err := validateEscape(escape); err != nil {
		return nil, err
	}
	beginRe, err := s.compile(begin, DotAll, false)
	if err != nil {
		return nil, err
	}
	endRe, err := s.compile(end, DotAll, false)
	if err != nil {
		return nil, err
	}
	if limit < 0 {
		return s.negativeRegions(text), nil
	}

	regions := make([]string, 0, 4)
	pos := 0
	for limit == 0 || len(regions) < limit {
		b := findUnescaped(beginRe, text, pos, escape)
		if b == nil {
			break
		}
		e := findUnescaped(endRe, text, b[1], escape)
		if e == nil {
			break
		}
		regions = append(regions, text[b[1]:e[0]])

		// An empty begin and end at the same offset would not advance.
		if e[1] > b[0] {
			pos = e[1]
		} else {
			pos = advance(text, e)
		}
	}
	return regions, nil
}

// findUnescaped returns the first match of e at or after at whose
// preceding escape run is even.
func findUnescaped(e engine.Engine, text string, at int, escape rune) []int {
	for at <= len(text) {
		loc := e.FindAt(text, at)
		if loc == nil {
			return nil
		}
		if !isEscaped(text, loc[0], escape) {
			return loc
		}
		at = advance(text, loc)
	}
	return nil
}

// advance returns the offset to resume searching after loc, stepping over
// one rune when the match is empty.
func advance(text string, loc []int) int {
	if loc[1] > loc[0] {
		return loc[1]
	}
	if loc[1] >= len(text) {
		return len(text) + 1
	}
	_, size := utf8.DecodeRuneInString(text[loc[1]:])
	return loc[1] + size
}

// isEscaped reports whether an odd run of escape runes ends at offset i.
func isEscaped(text string, i int, escape rune) bool {
	return escapeRun(text, i, escape)%2 == 1
}

// escapeRun counts the consecutive escape runes ending right before offset i.
func escapeRun(text string, i int, escape rune) int {
	n := 0
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if r != escape {
			break
		}
		n++
		i -= size
	}
	return n
}

func validateEscape(escape rune) error {
	if !utf8.ValidRune(escape) {
		return fmt.Errorf("%w: %U", ErrInvalidEscape, escape)
	}
	return nil
}

// EscapedSplit calls EscapedSplit on the default Segmenter.
func EscapedSplit(pattern, text string, escape rune, limit int, removeEmpty bool) ([]string, error) {
	return std.EscapedSplit(pattern, text, escape, limit, removeEmpty)
}

// EscapedBetween calls EscapedBetween on the default Segmenter.
func EscapedBetween(begin, end, text string, escape rune, limit int) ([]string, error) {
	return std.EscapedBetween(begin, end, text, escape, limit)
}
