package engine

import (
	"fmt"
	"iter"
	"regexp/syntax"
	"strconv"

	"github.com/dlclark/regexp2"

	"github.com/coregx/strseg/internal/conv"
)

// backtrackEngine runs patterns on regexp2.
//
// regexp2 works on runes and reports rune indices; every location is
// translated back to byte offsets before leaving this file.
type backtrackEngine struct {
	re *regexp2.Regexp

	// order maps RE2 group i to its regexp2 group number, nil when the
	// regexp2 numbering is used as is.
	order []int
}

func compileBacktrack(pattern string, flags Flags) (*backtrackEngine, error) {
	return compileRegexp2(pattern, flags, regexp2.None)
}

// compileCaptures compiles an RE2 pattern in regexp2's RE2 compatibility
// mode. regexp2 numbers named groups after unnamed ones, so the RE2 order is
// recovered from the parse tree.
func compileCaptures(pattern string, flags Flags) (*backtrackEngine, error) {
	e, err := compileRegexp2(pattern, flags, regexp2.RE2)
	if err != nil {
		return nil, err
	}
	tree, err := syntax.Parse(flags.Prefix()+pattern, syntax.Perl)
	if err != nil {
		return nil, err
	}

	names := tree.CapNames()
	if len(names) != len(e.re.GetGroupNumbers()) {
		return nil, fmt.Errorf("engine: %d groups in regexp2, %d in RE2", len(e.re.GetGroupNumbers())-1, len(names)-1)
	}
	order := make([]int, len(names))
	unnamed := 0
	for i := 1; i < len(names); i++ {
		if names[i] == "" {
			unnamed++
			order[i] = unnamed
			continue
		}
		order[i] = e.re.GroupNumberFromName(names[i])
		if order[i] < 0 {
			return nil, fmt.Errorf("engine: group %q unknown to regexp2", names[i])
		}
	}
	e.order = order
	return e, nil
}

func compileRegexp2(pattern string, flags Flags, opts regexp2.RegexOptions) (*backtrackEngine, error) {
	if flags&DotAll != 0 {
		opts |= regexp2.Singleline
	}
	if flags&IgnoreCase != 0 {
		opts |= regexp2.IgnoreCase
	}
	if flags&Multiline != 0 {
		opts |= regexp2.Multiline
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	return &backtrackEngine{re: re}, nil
}

func (e *backtrackEngine) Kind() Kind {
	return KindBacktrack
}

func (e *backtrackEngine) NumSubexp() int {
	return len(e.re.GetGroupNumbers()) - 1
}

// PositionalGroups reports whether every group is unnamed and implicitly
// numbered, i.e. group i is named "i". Renumbered engines are positional.
func (e *backtrackEngine) PositionalGroups() bool {
	if e.order != nil {
		return true
	}
	for i, name := range e.re.GetGroupNames() {
		if name != strconv.Itoa(i) {
			return false
		}
	}
	return true
}

func (e *backtrackEngine) Scan(text string, n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		runes := []rune(text)
		offsets := conv.RuneOffsets(text)

		m, err := e.re.FindRunesMatch(runes)
		for count := 0; m != nil && err == nil; count++ {
			if n > 0 && count >= n {
				return
			}
			if !yield(e.locate(m, offsets)) {
				return
			}
			m, err = e.re.FindNextMatch(m)
		}
	}
}

func (e *backtrackEngine) FindAt(text string, at int) []int {
	offsets := conv.RuneOffsets(text)
	m, err := e.re.FindRunesMatchStartingAt([]rune(text), conv.ByteToRune(offsets, at))
	if err != nil || m == nil {
		return nil
	}
	return e.locate(m, offsets)
}

// locate converts a regexp2 match into a byte-offset submatch slice.
func (e *backtrackEngine) locate(m *regexp2.Match, offsets []int) []int {
	groups := m.Groups()
	loc := make([]int, 2*len(groups))
	loc[0] = conv.RuneToByte(offsets, m.Index)
	loc[1] = conv.RuneToByte(offsets, m.Index+m.Length)
	for i := 1; i < len(groups); i++ {
		g := &groups[i]
		if e.order != nil {
			g = m.GroupByNumber(e.order[i])
		}
		if g == nil || len(g.Captures) == 0 {
			loc[2*i], loc[2*i+1] = -1, -1
			continue
		}
		loc[2*i] = conv.RuneToByte(offsets, g.Index)
		loc[2*i+1] = conv.RuneToByte(offsets, g.Index+g.Length)
	}
	return loc
}
