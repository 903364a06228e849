package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/coregx/strseg/internal/logging"
)

// loadSections reads the config file at path and merges the default section,
// then the requested one, into a.v. Flags bound to a.v still win when they
// were set on the command line.
//
// A missing file or section is reported and skipped.
func (a *app) loadSections(path, section string) error {
	file := viper.New()
	file.SetConfigFile(path)
	a.file = file

	if err := file.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.W("config file %q does not exist, it is not used", path)
			return nil
		}
		return fmt.Errorf("reading config file %q: %w", path, err)
	}
	logging.D(1, "using config file %q", path)

	names := []string{DefaultSection}
	if section != DefaultSection {
		names = append(names, section)
	}
	for _, name := range names {
		sub := file.Sub(name)
		if sub == nil {
			if name != DefaultSection {
				logging.W("section %q does not exist in %q, using %q", name, path, DefaultSection)
			}
			continue
		}
		if err := a.v.MergeConfigMap(sub.AllSettings()); err != nil {
			return fmt.Errorf("merging section %q: %w", name, err)
		}
		logging.D(2, "merged section %q: %v", name, sub.AllSettings())
	}
	return nil
}

// saveSection writes the effective settings into the requested section of
// the config file, creating the file when needed.
func (a *app) saveSection() error {
	path := a.v.GetString(ConfigPath)
	if path == "" || a.file == nil {
		return fmt.Errorf("--%s needs --%s", Save, ConfigPath)
	}

	section := a.v.GetString(Section)
	for _, key := range sectionKeys {
		a.file.Set(section+"."+key, a.v.Get(key))
	}
	if err := a.file.WriteConfigAs(path); err != nil {
		return fmt.Errorf("saving section %q to %q: %w", section, path, err)
	}
	logging.I("saved section %q to %q", section, path)
	return nil
}
