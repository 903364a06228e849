package cli

import (
	"github.com/spf13/pflag"

	"github.com/coregx/strseg"
)

// initFlags registers the persistent flags and binds them into a.v.
func (a *app) initFlags() error {
	flags := a.root.PersistentFlags()

	// Input and operation settings.
	flags.StringP(Text, "t", "", "Text to process (default: read stdin)")
	flags.IntP(Limit, "n", 0, "Maximum matches, splits or regions: 0 for all, negative for none")
	flags.BoolP(RemoveEmpty, "r", false, "Drop empty segments (split, esplit)")
	flags.StringP(Escape, "e", string(strseg.DefaultEscape), "Escape character (esplit, ebetween)")
	flags.Bool(DotAll, false, "Let . match newlines (match)")
	flags.BoolP(IgnoreCase, "i", false, "Match case-insensitively (match)")
	flags.BoolP(Multiline, "m", false, "Let ^ and $ match at line boundaries (match)")
	flags.String(Engine, strseg.EngineAuto.String(), "Matching engine: auto, re2 or backtrack")
	flags.Bool(LegacyNegativeLimit, false, "Return the whole text as one region for a negative limit (between, ebetween)")
	flags.StringP(Format, "f", FormatLines, "Output format: lines or json")

	// Configuration and logging.
	flags.StringP(ConfigPath, "c", "", "Config file holding settings sections")
	flags.StringP(Section, "s", DefaultSection, "Config file section to use")
	flags.Bool(Save, false, "Save the effective settings into the section")
	flags.String(LogDir, "", "Directory for the log file")
	flags.IntP(DebugLevel, "d", 0, "Debug level (0-5)")

	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = a.v.BindPFlag(f.Name, f)
		}
	})
	return err
}
