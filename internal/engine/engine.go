// Package engine adapts the regex engines strseg runs on to one small
// interface.
//
// Three backends exist:
//   - KindRE2: github.com/coregx/coregex, linear time, the default
//   - KindBacktrack: github.com/dlclark/regexp2, for lookbehind,
//     backreferences and other syntax RE2 cannot express
//   - KindLiteral: a github.com/coregx/ahocorasick automaton, for delimiters
//     that are an alternation of plain strings
//
// Compile picks a backend according to Options.Mode. In ModeAuto the literal
// automaton is tried first, then coregex; regexp2 is used only when coregex
// rejects the syntax and regexp2 accepts it.
//
// coregex reports correct match bounds but not stdlib submatch spans: lazy
// groups overrun the following token and repeated groups lose their start.
// When Options.Captures is set, an RE2 pattern with groups therefore runs on
// regexp2 in RE2 compatibility mode, with its groups renumbered into RE2's
// positional order.
//
// All offsets exchanged with this package are byte offsets into the searched
// string. Match locations use the stdlib submatch layout: loc[2*i:2*i+2] is
// the span of group i, -1 for groups that did not participate. Group spans
// are only guaranteed when Options.Captures is set.
package engine

import (
	"fmt"
	"iter"
	"strings"

	"github.com/coregx/strseg/internal/literal"
)

// Kind identifies the backend behind an Engine.
type Kind int

const (
	// KindRE2 is the coregex backend.
	KindRE2 Kind = iota
	// KindBacktrack is the regexp2 backend.
	KindBacktrack
	// KindLiteral is the Aho-Corasick backend.
	KindLiteral
)

// String returns the backend name.
func (k Kind) String() string {
	switch k {
	case KindRE2:
		return "re2"
	case KindBacktrack:
		return "backtrack"
	case KindLiteral:
		return "literal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Mode selects how Compile chooses a backend.
type Mode int

const (
	// ModeAuto tries the literal automaton, then coregex, then regexp2.
	ModeAuto Mode = iota
	// ModeRE2 uses coregex only.
	ModeRE2
	// ModeBacktrack uses regexp2 only.
	ModeBacktrack
)

// Flags modify how a pattern is interpreted.
type Flags uint8

const (
	// DotAll lets . match \n.
	DotAll Flags = 1 << iota
	// IgnoreCase enables case-insensitive matching.
	IgnoreCase
	// Multiline lets ^ and $ match at line boundaries.
	Multiline
)

// Prefix returns the inline flag group equivalent to f, e.g. "(?is)",
// or "" when no flag is set.
func (f Flags) Prefix() string {
	if f == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("(?")
	if f&IgnoreCase != 0 {
		b.WriteByte('i')
	}
	if f&Multiline != 0 {
		b.WriteByte('m')
	}
	if f&DotAll != 0 {
		b.WriteByte('s')
	}
	b.WriteByte(')')
	return b.String()
}

// Engine is a compiled pattern.
//
// Implementations are immutable after compilation and safe for concurrent
// use.
type Engine interface {
	// Kind reports the backend.
	Kind() Kind

	// NumSubexp returns the number of capture groups, excluding group 0.
	NumSubexp() int

	// PositionalGroups reports whether group numbers follow the left-to-right
	// order of the opening parentheses. regexp2 numbers named groups after
	// unnamed ones, which breaks positional arithmetic.
	PositionalGroups() bool

	// Scan yields successive non-overlapping matches of the pattern in text,
	// each search starting where the previous match ended.
	// If n > 0, at most n matches are yielded; n <= 0 yields all of them.
	Scan(text string, n int) iter.Seq[[]int]

	// FindAt returns the leftmost match starting at or after byte offset at,
	// or nil. at must be within [0, len(text)].
	FindAt(text string, at int) []int
}

// Options configure Compile.
type Options struct {
	Mode  Mode
	Flags Flags

	// Captures requests group spans in every location. Without it the RE2
	// backend reports only the overall match span.
	Captures bool

	// Warn receives human-readable warnings, e.g. when a pattern falls back
	// to the backtracking backend. May be nil.
	Warn func(msg string)
}

func (o Options) warn(format string, args ...any) {
	if o.Warn != nil {
		o.Warn(fmt.Sprintf(format, args...))
	}
}

// minLiterals is the smallest alternation worth an Aho-Corasick automaton.
// A single literal is already a memmem search inside coregex.
const minLiterals = 2

// Compile compiles pattern with the backend chosen by opts.Mode.
//
// The returned error comes straight from the backend that diagnosed the
// pattern (a *syntax.Error-formatted error for coregex).
// In ModeAuto, when both coregex and regexp2 reject the pattern, the coregex
// diagnosis is returned.
func Compile(pattern string, opts Options) (Engine, error) {
	switch opts.Mode {
	case ModeRE2:
		re, err := compileRE2(pattern, opts.Flags)
		if err != nil {
			return nil, err
		}
		return opts.withCaptures(pattern, re), nil
	case ModeBacktrack:
		return compileBacktrack(pattern, opts.Flags)
	case ModeAuto:
	default:
		return nil, fmt.Errorf("engine: unknown mode %d", int(opts.Mode))
	}

	seq := literal.FromPattern(opts.Flags.Prefix() + pattern)
	if seq.Len() >= minLiterals && !seq.HasEmpty() && seq.IsInfixFree() {
		if e, err := compileLiteral(seq); err == nil {
			return e, nil
		}
	}

	re, err := compileRE2(pattern, opts.Flags)
	if err == nil {
		return opts.withCaptures(pattern, re), nil
	}

	bt, btErr := compileBacktrack(pattern, opts.Flags)
	if btErr != nil {
		return nil, err
	}
	opts.warn("pattern %q is not RE2 syntax, using the backtracking engine (matching time is not linear)", pattern)
	return bt, nil
}

// withCaptures returns re, or the capture backend for the same pattern when
// opts.Captures is set and the pattern has groups.
func (o Options) withCaptures(pattern string, re *re2Engine) Engine {
	if !o.Captures || re.NumSubexp() == 0 {
		return re
	}
	ce, err := compileCaptures(pattern, o.Flags)
	if err != nil {
		o.warn("pattern %q: regexp2 cannot compute its groups (%v), group spans may be inexact", pattern, err)
		re.captures = true
		return re
	}
	return ce
}
