package engine

import (
	"iter"

	"github.com/coregx/coregex"
)

// re2Engine runs patterns on coregex.
//
// Locations carry only the overall span unless captures is set.
type re2Engine struct {
	re       *coregex.Regex
	captures bool
}

func compileRE2(pattern string, flags Flags) (*re2Engine, error) {
	re, err := coregex.Compile(flags.Prefix() + pattern)
	if err != nil {
		// Diagnose the pattern as the caller wrote it, without the flag group.
		if flags != 0 {
			if _, plainErr := coregex.Compile(pattern); plainErr != nil {
				return nil, plainErr
			}
		}
		return nil, err
	}
	return &re2Engine{re: re}, nil
}

func (e *re2Engine) Kind() Kind {
	return KindRE2
}

// NumSubexp excludes group 0, which coregex counts.
func (e *re2Engine) NumSubexp() int {
	return e.re.NumSubexp() - 1
}

// PositionalGroups is always true: RE2 numbers named and unnamed groups
// alike, by position.
func (e *re2Engine) PositionalGroups() bool {
	return true
}

// Scan delegates the iteration to coregex so that assertions (^, \b, ...)
// are evaluated against the whole text.
func (e *re2Engine) Scan(text string, n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n <= 0 {
			n = -1
		}
		var locs [][]int
		if e.captures {
			locs = e.re.FindAllStringSubmatchIndex(text, n)
		} else {
			locs = e.re.FindAllStringIndex(text, n)
		}
		for _, loc := range locs {
			if !yield(loc) {
				return
			}
		}
	}
}

// FindAt searches text[at:]. Assertions at the search start see the slice
// boundary, not the preceding text.
func (e *re2Engine) FindAt(text string, at int) []int {
	var loc []int
	if e.captures {
		loc = e.re.FindStringSubmatchIndex(text[at:])
	} else {
		loc = e.re.FindStringIndex(text[at:])
	}
	if loc == nil {
		return nil
	}
	for i := range loc {
		if loc[i] >= 0 {
			loc[i] += at
		}
	}
	return loc
}
