package strseg

import (
	"fmt"
	"reflect"
	"regexp"
	"testing"
)

// compatPatterns are checked against the regexp package on compatTexts.
var compatPatterns = append([]string{
	`'`,
	`abcd|bc`,
	`bc|abcd`,
	`<(a|b)>`,
	`["']`,
}, delimiterPatterns...)

var compatTexts = append([]string{
	patternText,
	"xabcdy abcbcd",
	"<a>hello</><b>world</>",
	`say "hi" and 'bye'`,
}, quoteTexts...)

func compatSegmenters(t *testing.T) map[string]*Segmenter {
	t.Helper()
	segs := make(map[string]*Segmenter)
	for _, kind := range []EngineKind{EngineAuto, EngineRE2, EngineBacktrack} {
		config := DefaultConfig()
		config.Engine = kind
		seg, err := New(config)
		if err != nil {
			t.Fatal(err)
		}
		segs[kind.String()] = seg
	}
	return segs
}

// TestSplitMatchesRegexp tests Split against regexp.Split
func TestSplitMatchesRegexp(t *testing.T) {
	for name, seg := range compatSegmenters(t) {
		for _, pattern := range compatPatterns {
			std := regexp.MustCompile("(?s)" + pattern)
			for i, text := range compatTexts {
				t.Run(fmt.Sprintf("%s/%s/%d", name, pattern, i), func(t *testing.T) {
					got, err := seg.Split(pattern, text, 0, false)
					assertSegments(t, "Split", got, err, std.Split(text, -1))
				})
			}
		}
	}
}

// TestMatchAllMatchesRegexp tests match and group spans against
// regexp.FindAllStringSubmatchIndex
func TestMatchAllMatchesRegexp(t *testing.T) {
	for name, seg := range compatSegmenters(t) {
		for _, pattern := range compatPatterns {
			std := regexp.MustCompile(pattern)
			for i, text := range compatTexts {
				t.Run(fmt.Sprintf("%s/%s/%d", name, pattern, i), func(t *testing.T) {
					seq, err := seg.MatchAll(pattern, text, 0, 0)
					if err != nil {
						t.Fatal(err)
					}
					var got [][]int
					for m := range seq {
						loc := make([]int, 0, 2*(m.NumGroups()+1))
						for g := 0; g <= m.NumGroups(); g++ {
							start, end := m.GroupIndex(g)
							loc = append(loc, start, end)
						}
						got = append(got, loc)
					}
					if want := std.FindAllStringSubmatchIndex(text, -1); !reflect.DeepEqual(got, want) {
						t.Errorf("MatchAll(%q) spans = %v, want %v", pattern, got, want)
					}
				})
			}
		}
	}
}

// TestBetweenMatchesRegexp tests Between against the interior group of the
// combined pattern compiled by the regexp package
func TestBetweenMatchesRegexp(t *testing.T) {
	for name, seg := range compatSegmenters(t) {
		for _, pattern := range compatPatterns {
			group := regexp.MustCompile(pattern).NumSubexp() + 1
			std := regexp.MustCompile("(?s)(?:" + pattern + ")(.*?)(?:" + pattern + ")")
			for i, text := range compatTexts {
				t.Run(fmt.Sprintf("%s/%s/%d", name, pattern, i), func(t *testing.T) {
					want := []string{}
					for _, m := range std.FindAllStringSubmatch(text, -1) {
						want = append(want, m[group])
					}
					got, err := seg.Between(pattern, pattern, text, 0)
					assertSegments(t, "Between", got, err, want)
				})
			}
		}
	}
}
