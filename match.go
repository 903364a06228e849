package strseg

import (
	"iter"

	"github.com/coregx/strseg/internal/engine"
)

// Match is one located occurrence of a pattern.
//
// Offsets are byte offsets into the searched text. Group 0 is the whole
// match; groups 1..NumGroups() are the capture groups, numbered by their
// opening parenthesis from left to right.
type Match struct {
	text string
	loc  []int
}

// Start returns the offset of the first byte of the match.
func (m Match) Start() int {
	return m.loc[0]
}

// End returns the offset just past the last byte of the match.
func (m Match) End() int {
	return m.loc[1]
}

// String returns the matched text.
func (m Match) String() string {
	return m.text[m.loc[0]:m.loc[1]]
}

// NumGroups returns the number of capture groups, excluding group 0.
func (m Match) NumGroups() int {
	return len(m.loc)/2 - 1
}

// Group returns the text captured by group i. The boolean is false when the
// group did not participate in the match or does not exist.
//
// Example:
//
//	seq, _ := strseg.MatchAll(`(\w+)@(\w+)?`, "user@", 0, 0)
//	for m := range seq {
//	    name, _ := m.Group(1)    // "user", true
//	    _, ok := m.Group(2)      // ok == false
//	}
func (m Match) Group(i int) (string, bool) {
	start, end := m.GroupIndex(i)
	if start < 0 {
		return "", false
	}
	return m.text[start:end], true
}

// GroupIndex returns the span of group i, or -1, -1 when the group did not
// participate in the match, does not exist, or was reported with a span that
// is not a range of the text.
func (m Match) GroupIndex(i int) (start, end int) {
	if i < 0 || 2*i+1 >= len(m.loc) {
		return -1, -1
	}
	start, end = m.loc[2*i], m.loc[2*i+1]
	if start < 0 || start > end || end > len(m.text) {
		return -1, -1
	}
	return start, end
}

// Result is the outcome of MatchAllLegacy.
//
// For a non-negative limit, Matches holds the matches and Unsearched is false.
// For a negative limit no search happens: Unsearched is true, Text holds the
// input unchanged and Matches is empty.
type Result struct {
	Matches    iter.Seq[Match]
	Unsearched bool
	Text       string
}

// MatchAll returns the matches of pattern in text, left to right and
// non-overlapping; each search starts where the previous match ended.
//
// The limit controls the number of matches:
//
//	limit == 0: all matches
//	limit > 0:  at most limit matches; fewer when the text runs out
//	limit < 0:  no matches, no search
//
// The returned sequence is lazy: nothing is searched until it is ranged
// over. Ranging again repeats the search.
//
// An invalid pattern fails with *PatternError, whatever the limit.
//
// Example:
//
//	seq, err := strseg.MatchAll(`x`, "xxxxx", 2, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for m := range seq {
//	    fmt.Println(m.Start(), m.String()) // 0 x, then 1 x
//	}
func (s *Segmenter) MatchAll(pattern, text string, limit int, flags Flags) (iter.Seq[Match], error) {
	e, err := s.compile(pattern, flags, true)
	if err != nil {
		return nil, err
	}
	return matches(e, text, limit), nil
}

// MatchAllLegacy is MatchAll with the historical result shape: for a
// negative limit it hands the input text back instead of a match collection.
// New code should use MatchAll.
func (s *Segmenter) MatchAllLegacy(pattern, text string, limit int, flags Flags) (Result, error) {
	seq, err := s.MatchAll(pattern, text, limit, flags)
	if err != nil {
		return Result{}, err
	}
	if limit < 0 {
		return Result{Matches: seq, Unsearched: true, Text: text}, nil
	}
	return Result{Matches: seq}, nil
}

// matches adapts an engine scan to the Match sequence for a limit.
func matches(e engine.Engine, text string, limit int) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if limit < 0 {
			return
		}
		for loc := range e.Scan(text, limit) {
			if !yield(Match{text: text, loc: loc}) {
				return
			}
		}
	}
}

// MatchAll calls MatchAll on the default Segmenter.
func MatchAll(pattern, text string, limit int, flags Flags) (iter.Seq[Match], error) {
	return std.MatchAll(pattern, text, limit, flags)
}

// MatchAllLegacy calls MatchAllLegacy on the default Segmenter.
func MatchAllLegacy(pattern, text string, limit int, flags Flags) (Result, error) {
	return std.MatchAllLegacy(pattern, text, limit, flags)
}
