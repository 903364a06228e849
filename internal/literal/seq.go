// Package literal recognises delimiter patterns that denote a fixed set of
// plain strings, so they can be matched with a multi-literal automaton instead
// of a regex engine.
//
// Key concepts:
//   - A Literal is a concrete byte sequence that the pattern matches exactly
//   - A Seq is a set of alternative literals (from alternations like /foo|bar/)
//   - A Seq is infix-free when no literal occurs inside another, which makes
//     the first-ending automaton match the leftmost-first regex match
package literal

import (
	"bytes"
)

// Literal is a byte sequence matched verbatim by a pattern.
type Literal struct {
	// Bytes contains the literal byte sequence.
	Bytes []byte
}

// NewLiteral creates a Literal from b.
func NewLiteral(b []byte) Literal {
	return Literal{Bytes: b}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a debugging representation: "literal{bytes}".
func (l Literal) String() string {
	return "literal{" + string(l.Bytes) + "}"
}

// Seq is an ordered set of alternative literals.
// Order is the alternation order of the source pattern.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo")),
//	    literal.NewLiteral([]byte("bar")),
//	)
//	fmt.Println(seq.Len()) // Output: 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
// A nil sequence has length 0.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i.
// Panics if i is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// HasEmpty reports whether any literal is the empty string.
func (s *Seq) HasEmpty() bool {
	if s == nil {
		return false
	}
	for _, lit := range s.literals {
		if len(lit.Bytes) == 0 {
			return true
		}
	}
	return false
}

// IsInfixFree reports whether no literal occurs inside another one.
// Duplicates are tolerated: they match the same text either way.
//
// An Aho-Corasick search reports the match that ends first. On an infix-free
// set that is also the leftmost match, since a literal that started later and
// ended earlier would lie inside the other.
//
// Example:
//
//	literal.NewSeq(lit("foo"), lit("bar")).IsInfixFree()    // true
//	literal.NewSeq(lit("foo"), lit("foobar")).IsInfixFree() // false
//	literal.NewSeq(lit("abcd"), lit("bc")).IsInfixFree()    // false
func (s *Seq) IsInfixFree() bool {
	if s.IsEmpty() {
		return true
	}
	for i, a := range s.literals {
		for j, b := range s.literals {
			if i == j || len(a.Bytes) >= len(b.Bytes) {
				continue
			}
			if bytes.Contains(b.Bytes, a.Bytes) {
				return false
			}
		}
	}
	return true
}
