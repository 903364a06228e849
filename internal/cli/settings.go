package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/coregx/strseg"
)

// Settings are the effective settings of one command run.
type Settings struct {
	Limit               int
	RemoveEmpty         bool
	Escape              rune
	Flags               strseg.Flags
	Engine              strseg.EngineKind
	LegacyNegativeLimit bool
	Format              string
}

// loadSettings reads and validates the settings held by v.
func loadSettings(v *viper.Viper) (Settings, error) {
	s := Settings{
		Limit:               v.GetInt(Limit),
		RemoveEmpty:         v.GetBool(RemoveEmpty),
		LegacyNegativeLimit: v.GetBool(LegacyNegativeLimit),
		Format:              v.GetString(Format),
	}

	escape := v.GetString(Escape)
	if utf8.RuneCountInString(escape) != 1 {
		return Settings{}, fmt.Errorf("--%s must be a single character, got %q", Escape, escape)
	}
	s.Escape, _ = utf8.DecodeRuneInString(escape)

	if v.GetBool(DotAll) {
		s.Flags |= strseg.DotAll
	}
	if v.GetBool(IgnoreCase) {
		s.Flags |= strseg.IgnoreCase
	}
	if v.GetBool(Multiline) {
		s.Flags |= strseg.Multiline
	}

	var err error
	if s.Engine, err = strseg.ParseEngineKind(v.GetString(Engine)); err != nil {
		return Settings{}, err
	}

	switch s.Format {
	case FormatLines, FormatJSON:
	default:
		return Settings{}, fmt.Errorf("--%s must be %q or %q, got %q", Format, FormatLines, FormatJSON, s.Format)
	}
	return s, nil
}

// segmenter returns a Segmenter configured by s. Engine warnings go to warn.
func (s Settings) segmenter(warn func(string)) (*strseg.Segmenter, error) {
	config := strseg.DefaultConfig()
	config.Engine = s.Engine
	config.LegacyNegativeLimit = s.LegacyNegativeLimit
	config.Warn = warn
	return strseg.New(config)
}
