package strseg

import (
	"errors"
	"testing"
)

// TestDefaultConfig tests the defaults
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Engine != EngineAuto {
		t.Errorf("Engine = %v, want auto", config.Engine)
	}
	if config.LegacyNegativeLimit {
		t.Error("LegacyNegativeLimit enabled by default")
	}
	if config.CacheSize != 256 {
		t.Errorf("CacheSize = %d, want 256", config.CacheSize)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	seg, err := New(config)
	if err != nil {
		t.Fatal(err)
	}
	if seg.Config().CacheSize != config.CacheSize {
		t.Error("Config() does not return the creation config")
	}
}

// TestEngineKindNames tests engine name round trips
func TestEngineKindNames(t *testing.T) {
	for _, kind := range []EngineKind{EngineAuto, EngineRE2, EngineBacktrack} {
		got, err := ParseEngineKind(kind.String())
		if err != nil || got != kind {
			t.Errorf("ParseEngineKind(%q) = %v, %v", kind.String(), got, err)
		}
	}

	if got, err := ParseEngineKind(""); err != nil || got != EngineAuto {
		t.Errorf("ParseEngineKind(\"\") = %v, %v", got, err)
	}
	if _, err := ParseEngineKind("pcre"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseEngineKind(\"pcre\") error = %v", err)
	}
	if s := EngineKind(9).String(); s != "EngineKind(9)" {
		t.Errorf("String() = %q", s)
	}
}

// TestFlagsString tests the inline flag form
func TestFlagsString(t *testing.T) {
	tests := []struct {
		flags Flags
		want  string
	}{
		{0, ""},
		{DotAll, "(?s)"},
		{IgnoreCase | Multiline, "(?im)"},
	}

	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("Flags(%d).String() = %q, want %q", tt.flags, got, tt.want)
		}
	}
}

// TestSegmenterEngines tests that every engine agrees on plain patterns
func TestSegmenterEngines(t *testing.T) {
	for _, kind := range []EngineKind{EngineAuto, EngineRE2, EngineBacktrack} {
		t.Run(kind.String(), func(t *testing.T) {
			config := DefaultConfig()
			config.Engine = kind
			seg, err := New(config)
			if err != nil {
				t.Fatal(err)
			}

			got, err := seg.EscapedSplit(`'|;`, `a'b\'c;d`, DefaultEscape, 0, false)
			assertSegments(t, "EscapedSplit", got, err, []string{"a", `b\'c`, "d"})

			got, err = seg.Between(`<(a|b)>`, `</>`, "<a>x</><b>y</>", 0)
			assertSegments(t, "Between", got, err, []string{"x", "y"})

			got, err = seg.EscapedBetween(`'`, `'`, `'a\'b' 'c'`, DefaultEscape, 0)
			assertSegments(t, "EscapedBetween", got, err, []string{`a\'b`, "c"})
		})
	}
}
