package engine

import (
	"iter"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/strseg/internal/literal"
)

// literalEngine matches an infix-free set of non-empty literals with an
// Aho-Corasick automaton. It has no capture groups.
type literalEngine struct {
	auto *ahocorasick.Automaton
}

func compileLiteral(seq *literal.Seq) (*literalEngine, error) {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &literalEngine{auto: auto}, nil
}

func (e *literalEngine) Kind() Kind {
	return KindLiteral
}

func (e *literalEngine) NumSubexp() int {
	return 0
}

func (e *literalEngine) PositionalGroups() bool {
	return true
}

func (e *literalEngine) Scan(text string, n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		haystack := []byte(text)
		pos := 0
		for count := 0; n <= 0 || count < n; count++ {
			loc := e.find(haystack, pos)
			if loc == nil || !yield(loc) {
				return
			}
			// Literals are non-empty, so every match moves pos forward.
			pos = loc[1]
		}
	}
}

func (e *literalEngine) FindAt(text string, at int) []int {
	return e.find([]byte(text), at)
}

func (e *literalEngine) find(haystack []byte, at int) []int {
	if at >= len(haystack) {
		return nil
	}
	m := e.auto.Find(haystack, at)
	if m == nil {
		return nil
	}
	return []int{m.Start, m.End}
}
