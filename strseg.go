// Package strseg provides escape-aware string segmentation and pattern
// extraction on top of a regular expression engine.
//
// strseg distinguishes a genuine delimiter from a literal one: a delimiter
// preceded by an odd run of escape characters is part of the text, an even
// run (including none) leaves it a split point. Four operations build on one
// enumeration primitive:
//   - MatchAll: bounded, left-to-right, non-overlapping matches
//   - Split: plain splitting on every delimiter match
//   - EscapedSplit: splitting that skips escaped delimiters
//   - Between: non-greedy extraction of the text between begin and end
//
// EscapedBetween combines the last two.
//
// Patterns use RE2 syntax and run on coregex by default, which guarantees
// linear matching time. Patterns RE2 cannot express (lookbehind,
// backreferences) fall back to a backtracking engine; see EngineKind.
// Capture groups read by MatchAll and Between are resolved by regexp2 in
// its RE2 compatibility mode, so patterns with groups give up the linear
// bound there.
//
// Basic usage:
//
//	parts, err := strseg.EscapedSplit(`,`, `a\,b,c`, strseg.DefaultEscape, 0, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(parts) // [a\,b c]
//
//	inner, _ := strseg.Between(`'`, `'`, `say 'hi' and 'bye'`, 0)
//	fmt.Println(inner) // [hi bye]
//
// Limits follow one convention everywhere: 0 means unbounded, a positive k
// means at most k matches (or splits), a negative value means none.
//
// Advanced usage:
//
//	config := strseg.DefaultConfig()
//	config.Engine = strseg.EngineRE2 // reject non-RE2 syntax
//	config.Warn = func(msg string) { log.Println(msg) }
//	seg, err := strseg.New(config)
//
// All functions are pure and safe for concurrent use.
package strseg

import (
	"fmt"

	"github.com/coregx/strseg/internal/engine"
)

// DefaultEscape is the conventional escape character.
const DefaultEscape = '\\'

// EngineKind selects the matching engine.
type EngineKind int

const (
	// EngineAuto matches literal alternations with an Aho-Corasick automaton,
	// everything else with coregex, and falls back to the backtracking engine
	// only for syntax coregex rejects. Each fallback is reported to
	// Config.Warn.
	EngineAuto EngineKind = iota

	// EngineRE2 accepts RE2 syntax only and runs on coregex, in linear time,
	// except where capture groups are read.
	EngineRE2

	// EngineBacktrack uses regexp2 only (Perl/.NET syntax, lookaround,
	// backreferences). Pathological patterns can take exponential time.
	EngineBacktrack
)

// String returns the engine name as used in configuration files.
func (k EngineKind) String() string {
	switch k {
	case EngineAuto:
		return "auto"
	case EngineRE2:
		return "re2"
	case EngineBacktrack:
		return "backtrack"
	default:
		return fmt.Sprintf("EngineKind(%d)", int(k))
	}
}

// ParseEngineKind parses an engine name produced by EngineKind.String.
func ParseEngineKind(name string) (EngineKind, error) {
	switch name {
	case "auto", "":
		return EngineAuto, nil
	case "re2":
		return EngineRE2, nil
	case "backtrack":
		return EngineBacktrack, nil
	}
	return 0, fmt.Errorf("%w: unknown engine %q", ErrInvalidConfig, name)
}

func (k EngineKind) mode() engine.Mode {
	switch k {
	case EngineRE2:
		return engine.ModeRE2
	case EngineBacktrack:
		return engine.ModeBacktrack
	default:
		return engine.ModeAuto
	}
}

// Config configures a Segmenter.
//
// Example:
//
//	config := strseg.DefaultConfig()
//	config.CacheSize = 0 // compile every pattern on every call
//	seg, err := strseg.New(config)
type Config struct {
	// Engine selects the matching engine. Default: EngineAuto.
	Engine EngineKind

	// LegacyNegativeLimit makes Between and EscapedBetween return the input
	// text as a single region when the limit is negative, the historical
	// passthrough behaviour. When false (the default) a negative limit yields
	// no regions. MatchAllLegacy exposes the same passthrough for matches.
	LegacyNegativeLimit bool

	// CacheSize bounds the number of compiled patterns kept for reuse.
	// 0 disables caching. Default: 256.
	CacheSize int

	// Warn receives human-readable warnings. May be nil.
	Warn func(msg string)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Engine:    EngineAuto,
		CacheSize: 256,
	}
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if c.Engine < EngineAuto || c.Engine > EngineBacktrack {
		return fmt.Errorf("%w: unknown engine %v", ErrInvalidConfig, c.Engine)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: CacheSize must be >= 0, got %d", ErrInvalidConfig, c.CacheSize)
	}
	return nil
}

// Segmenter runs the segmentation operations under one Config.
//
// A Segmenter is safe for concurrent use. The zero value is not usable;
// create one with New.
type Segmenter struct {
	config Config
	cache  *patternCache
}

// New returns a Segmenter for config.
//
// Example:
//
//	seg, err := strseg.New(strseg.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	parts, _ := seg.Split(`\s*;\s*`, "a ; b;c", 0, false)
func New(config Config) (*Segmenter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Segmenter{
		config: config,
		cache:  newPatternCache(config.CacheSize),
	}, nil
}

// Config returns the configuration the Segmenter was created with.
func (s *Segmenter) Config() Config {
	return s.config
}

// std backs the package-level functions.
var std = &Segmenter{
	config: DefaultConfig(),
	cache:  newPatternCache(DefaultConfig().CacheSize),
}

// compile returns the engine for pattern under the Segmenter's engine choice.
// Callers that read capture groups set captures.
func (s *Segmenter) compile(pattern string, flags Flags, captures bool) (engine.Engine, error) {
	return s.compileMode(pattern, flags, s.config.Engine.mode(), captures)
}

func (s *Segmenter) compileMode(pattern string, flags Flags, mode engine.Mode, captures bool) (engine.Engine, error) {
	key := cacheKey{pattern: pattern, flags: flags, mode: mode, captures: captures}
	if e, ok := s.cache.get(key); ok {
		return e, nil
	}

	e, err := engine.Compile(pattern, engine.Options{
		Mode:     mode,
		Flags:    engine.Flags(flags),
		Captures: captures,
		Warn:     s.config.Warn,
	})
	if err != nil {
		return nil, newPatternError(pattern, err)
	}

	s.cache.put(key, e)
	return e, nil
}
