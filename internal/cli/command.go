// Package cli implements the strseg command: cobra commands over the strseg
// operations, with settings layered from flags and config file sections.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coregx/strseg"
	"github.com/coregx/strseg/internal/logging"
)

// app is the state of one command tree.
type app struct {
	v    *viper.Viper
	file *viper.Viper // config file, nil when none was given
	root *cobra.Command
}

// NewRootCommand builds the strseg command tree.
//
// Settings resolve, lowest first: flag defaults, the "default" section of
// the config file, the section named by --section, flags set on the command
// line.
func NewRootCommand() (*cobra.Command, error) {
	a := &app{v: viper.New()}
	a.root = &cobra.Command{
		Use:   "strseg",
		Short: "Escape-aware string splitting and extraction.",
		Long: "strseg splits text on regex delimiters and extracts the text between\n" +
			"delimiters, treating delimiters preceded by an odd run of escape\n" +
			"characters as literal text. Text is read from --text or stdin.",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.preRun,
		PersistentPostRunE: a.postRun,
	}

	if err := a.initFlags(); err != nil {
		return nil, err
	}

	a.root.AddCommand(
		a.command("match PATTERN", "Print the matches of PATTERN", 1, a.runMatch),
		a.command("split PATTERN", "Split the text on PATTERN", 1, a.runSplit),
		a.command("esplit PATTERN", "Split the text on unescaped matches of PATTERN", 1, a.runEscapedSplit),
		a.command("between BEGIN END", "Print the text between BEGIN and END", 2, a.runBetween),
		a.command("ebetween BEGIN END", "Print the text between unescaped BEGIN and END", 2, a.runEscapedBetween),
	)
	return a.root, nil
}

// Execute runs the strseg command with the process arguments.
func Execute() error {
	root, err := NewRootCommand()
	if err != nil {
		return err
	}
	defer logging.Close()

	if err := root.Execute(); err != nil {
		logging.E("%v", err)
		return err
	}
	return nil
}

func (a *app) preRun(_ *cobra.Command, _ []string) error {
	logging.Level = min(max(a.v.GetInt(DebugLevel), 0), 5)

	if dir := a.v.GetString(LogDir); dir != "" {
		if err := logging.SetupLogging(dir); err != nil {
			return err
		}
	}

	section := strings.ToLower(a.v.GetString(Section))
	a.v.Set(Section, section)
	if path := a.v.GetString(ConfigPath); path != "" {
		return a.loadSections(path, section)
	}
	if section != DefaultSection {
		logging.W("no --%s given, section %q is not used", ConfigPath, section)
	}
	return nil
}

func (a *app) postRun(_ *cobra.Command, _ []string) error {
	if a.v.GetBool(Save) {
		return a.saveSection()
	}
	return nil
}

// runFunc runs one operation on the input text and writes its output.
type runFunc func(w io.Writer, s Settings, seg *strseg.Segmenter, text string, args []string) error

func (a *app) command(use, short string, nargs int, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(a.v)
			if err != nil {
				return err
			}
			seg, err := s.segmenter(func(msg string) { logging.W("%s", msg) })
			if err != nil {
				return err
			}
			text, err := a.input(cmd)
			if err != nil {
				return err
			}
			logging.D(1, "%s %q with %+v", cmd.Name(), args, s)
			return run(cmd.OutOrStdout(), s, seg, text, args)
		},
	}
}

// input returns --text, or stdin without its final newline.
func (a *app) input(cmd *cobra.Command) (string, error) {
	if a.root.PersistentFlags().Changed(Text) {
		return a.v.GetString(Text), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func (a *app) runMatch(w io.Writer, s Settings, seg *strseg.Segmenter, text string, args []string) error {
	seq, err := seg.MatchAll(args[0], text, s.Limit, s.Flags)
	if err != nil {
		return err
	}
	return writeMatches(w, s.Format, seq)
}

func (a *app) runSplit(w io.Writer, s Settings, seg *strseg.Segmenter, text string, args []string) error {
	parts, err := seg.Split(args[0], text, s.Limit, s.RemoveEmpty)
	if err != nil {
		return err
	}
	return writeStrings(w, s.Format, parts)
}

func (a *app) runEscapedSplit(w io.Writer, s Settings, seg *strseg.Segmenter, text string, args []string) error {
	parts, err := seg.EscapedSplit(args[0], text, s.Escape, s.Limit, s.RemoveEmpty)
	if err != nil {
		return err
	}
	return writeStrings(w, s.Format, parts)
}

func (a *app) runBetween(w io.Writer, s Settings, seg *strseg.Segmenter, text string, args []string) error {
	regions, err := seg.Between(args[0], args[1], text, s.Limit)
	if err != nil {
		return err
	}
	return writeStrings(w, s.Format, regions)
}

func (a *app) runEscapedBetween(w io.Writer, s Settings, seg *strseg.Segmenter, text string, args []string) error {
	regions, err := seg.EscapedBetween(args[0], args[1], text, s.Escape, s.Limit)
	if err != nil {
		return err
	}
	return writeStrings(w, s.Format, regions)
}
