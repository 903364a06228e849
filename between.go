package strseg

import (
	"fmt"

	"github.com/coregx/strseg/internal/engine"
)

// Between returns the text strictly between each non-overlapping begin ... end
// occurrence in text.
//
// Matching is non-greedy (each region closes at the first end that lets the
// whole match succeed) and regions may span lines. Escapes are not
// interpreted; see EscapedBetween. Capture groups inside begin do not shift
// the region: the interior is always taken from the group right after
// begin's own groups.
//
// The limit follows MatchAll. A negative limit yields no regions, or the
// whole text as a single region when Config.LegacyNegativeLimit is set.
//
// Either pattern failing to compile is a *PatternError. With the
// backtracking engine, a begin pattern with named or explicitly numbered
// groups is a *PatternIntrospectionError, since its groups are not numbered
// by position.
//
// Example:
//
//	inner, _ := strseg.Between(`<(a|b)>`, `</>`, "<a>hello</><b>world</>", 0)
//	// inner = ["hello", "world"]
func (s *Segmenter) Between(begin, end, text string, limit int) ([]string, error) {
	beginRe, err := s.compile(begin, DotAll, false)
	if err != nil {
		return nil, err
	}
	if _, err := s.compile(end, DotAll, false); err != nil {
		return nil, err
	}

	e, err := s.compile("(?:"+begin+")(.*?)(?:"+end+")", DotAll, true)
	if err != nil {
		return nil, err
	}
	group, err := s.interiorGroup(begin, beginRe, e)
	if err != nil {
		return nil, err
	}

	if limit < 0 {
		return s.negativeRegions(text), nil
	}

	regions := make([]string, 0, 4)
	for m := range matches(e, text, limit) {
		region, ok := m.Group(group)
		if !ok {
			return nil, &PatternIntrospectionError{
				Pattern: begin,
				Reason:  fmt.Sprintf("no span for interior group %d in match %q", group, m.String()),
			}
		}
		regions = append(regions, region)
	}
	return regions, nil
}

// interiorGroup returns the number of the group capturing a region's
// interior in the combined pattern: one past the groups of begin.
//
// regexp2 numbers named groups after unnamed ones. When the combined pattern
// runs there unrenumbered, begin is recounted by the same backend and must
// not contain named groups.
func (s *Segmenter) interiorGroup(begin string, beginRe, combined engine.Engine) (int, error) {
	if !combined.PositionalGroups() {
		if beginRe.Kind() != engine.KindBacktrack {
			var err error
			beginRe, err = s.compileMode(begin, DotAll, engine.ModeBacktrack, false)
			if err != nil {
				return 0, &PatternIntrospectionError{
					Pattern: begin,
					Reason:  "begin is not valid on its own for the backtracking engine",
				}
			}
		}
		if !beginRe.PositionalGroups() {
			return 0, &PatternIntrospectionError{
				Pattern: begin,
				Reason:  "named or explicitly numbered groups are not numbered by position",
			}
		}
	}

	group := beginRe.NumSubexp() + 1
	if group > combined.NumSubexp() {
		return 0, &PatternIntrospectionError{
			Pattern: begin,
			Reason:  fmt.Sprintf("interior group %d is missing, the combined pattern has %d groups", group, combined.NumSubexp()),
		}
	}
	return group, nil
}

// negativeRegions is the result of an extraction with a negative limit.
func (s *Segmenter) negativeRegions(text string) []string {
	if s.config.LegacyNegativeLimit {
		return []string{text}
	}
	return []string{}
}

// Between calls Between on the default Segmenter.
func Between(begin, end, text string, limit int) ([]string, error) {
	return std.Between(begin, end, text, limit)
}
