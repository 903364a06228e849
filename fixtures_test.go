package strseg

import (
	"reflect"
	"testing"
)

// quoteTexts hold single-quoted regions with escapes before, inside and at
// the end of the quotes.
var quoteTexts = []string{
	`out1 'escaped-escape:        \\ ' out2`,
	`out1 'escaped-quote:         \' ' out2`,
	`out1 'escaped-anything:      \X ' out2`,
	`out1 'two escaped escapes: \\\\ ' out2`,
	`out1 'escaped-quote at end:   \'' out2`,
	`out1 'escaped-escape at end:  \\' out2`,
	`out1           'str1' out2 'str2' out2`,
	`out1 \'        'str1' out2 'str2' out2`,
	`out1 \\\'      'str1' out2 'str2' out2`,
	`out1 \\        'str1' out2 'str2' out2`,
	`out1 \\\\      'str1' out2 'str2' out2`,
	`out1         \\'str1' out2 'str2' out2`,
	`out1       \\\\'str1' out2 'str2' out2`,
	`out1           'str1''str2''str3' out2`,
}

// patternText is searched with every entry of delimiterPatterns.
const patternText = `abcabccba###\\13q4ujsabbc\+'**'ac###.#.####-ba`

var delimiterPatterns = []string{
	`abc`,
	`ab`,
	`ab|ac`,
	`\\`,
	`#+`,
	`(a)|(b)|(#.)`,
	`(?:a(b)*c)+`,
	`1|\+`,
}

// emptyRunTexts produce empty segments when split on ";".
var emptyRunTexts = []string{
	`;;;;;;;;;;;;;;;;`,
	`\\;\\\\\;\\#;\\\';;\;\\\\;+ios;;`,
	`1;2;3;4;5;6;`,
	`1;2;3;4;5;6;7`,
}

func assertSegments(t *testing.T, call string, got []string, err error, want []string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s error = %v", call, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s =\n  %q\nwant\n  %q", call, got, want)
	}
}
