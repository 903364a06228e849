package cli

// Flag and configuration keys.
const (
	Text                = "text"
	Limit               = "limit"
	RemoveEmpty         = "remove-empty"
	Escape              = "escape"
	DotAll              = "dotall"
	IgnoreCase          = "ignore-case"
	Multiline           = "multiline"
	Engine              = "engine"
	LegacyNegativeLimit = "legacy-negative-limit"
	Format              = "format"

	ConfigPath = "config"
	Section    = "section"
	Save       = "save"
	LogDir     = "log-dir"
	DebugLevel = "debug"
)

// DefaultSection holds the settings every other section builds on.
const DefaultSection = "default"

// sectionKeys are the settings a config file section may hold, in the
// order they are saved.
var sectionKeys = []string{
	Limit,
	RemoveEmpty,
	Escape,
	DotAll,
	IgnoreCase,
	Multiline,
	Engine,
	LegacyNegativeLimit,
	Format,
}

// Output formats
const (
	FormatLines = "lines"
	FormatJSON  = "json"
)
