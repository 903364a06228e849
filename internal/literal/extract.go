package literal

import (
	"regexp/syntax"
)

// MaxLiterals bounds the size of an extracted alternation.
// Larger alternations are left to the regex engine.
const MaxLiterals = 256

// FromPattern parses pattern (Perl syntax) and returns the literal set it
// matches exactly, or nil when the pattern is anything more than a plain
// literal or an alternation of plain literals.
//
// Case-folded literals, capture groups, classes and assertions all disqualify
// the pattern, since a literal automaton reports neither groups nor folds.
//
// Example:
//
//	literal.FromPattern(`foo|bar`)   // {foo, bar}
//	literal.FromPattern(`(?:;|,)`)   // nil: parsed into the class [,;]
//	literal.FromPattern(`(foo|bar)`) // nil: capture group
func FromPattern(pattern string) *Seq {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil
	}
	return Extract(re)
}

// Extract returns the literal set denoted by a parsed expression, or nil.
func Extract(re *syntax.Regexp) *Seq {
	switch re.Op {
	case syntax.OpLiteral:
		lit, ok := plainLiteral(re)
		if !ok {
			return nil
		}
		return NewSeq(lit)

	case syntax.OpAlternate:
		if len(re.Sub) > MaxLiterals {
			return nil
		}
		lits := make([]Literal, 0, len(re.Sub))
		for _, sub := range re.Sub {
			if sub.Op != syntax.OpLiteral {
				return nil
			}
			lit, ok := plainLiteral(sub)
			if !ok {
				return nil
			}
			lits = append(lits, lit)
		}
		return NewSeq(lits...)
	}
	return nil
}

// plainLiteral converts an OpLiteral node to bytes, rejecting case folding.
func plainLiteral(re *syntax.Regexp) (Literal, bool) {
	if re.Flags&syntax.FoldCase != 0 {
		return Literal{}, false
	}
	return NewLiteral(runeSliceToBytes(re.Rune)), true
}

// runeSliceToBytes converts []rune to []byte using UTF-8 encoding.
func runeSliceToBytes(runes []rune) []byte {
	return []byte(string(runes))
}
