package strseg

import "github.com/coregx/strseg/internal/engine"

// Flags modify how MatchAll interprets a pattern.
//
// Split, EscapedSplit, Between and EscapedBetween always match with DotAll:
// a newline in the text is not special unless the pattern says so.
type Flags uint8

const (
	// DotAll lets . match line terminators too.
	DotAll Flags = Flags(engine.DotAll)

	// IgnoreCase enables case-insensitive matching.
	IgnoreCase Flags = Flags(engine.IgnoreCase)

	// Multiline lets ^ and $ match at line boundaries.
	Multiline Flags = Flags(engine.Multiline)
)

// String returns the inline flag group equivalent to f, e.g. "(?is)".
func (f Flags) String() string {
	return engine.Flags(f).Prefix()
}
