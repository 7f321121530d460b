// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scaffold creates the empty Quarantine folder layout that Defender
// quarantine files are restored into:
//
//	Quarantine/
//	  Entries/
//	  Resources/<name>...
//	  ResourceData/<name>...
package scaffold

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/quarantine-tools/pkg/types"
)

// DefaultBase is the skeleton root created relative to the working directory.
const DefaultBase = "Quarantine"

const (
	dirEntries      = "Entries"
	dirResources    = "Resources"
	dirResourceData = "ResourceData"
)

// Dirs returns every directory the skeleton consists of, parents first.
func Dirs(base string, names []string) []string {
	dirs := []string{
		base,
		filepath.Join(base, dirEntries),
		filepath.Join(base, dirResources),
		filepath.Join(base, dirResourceData),
	}
	for _, parent := range []string{dirResources, dirResourceData} {
		for _, name := range names {
			dirs = append(dirs, filepath.Join(base, parent, name))
		}
	}
	return dirs
}

// Create builds the skeleton under cfg.Base on fs. Existing directories are
// left untouched, so running it again with the same or more names is safe.
// A completion message is written to w.
func Create(fs afero.Fs, cfg types.ScaffoldConfig, w io.Writer) error {
	base := cfg.Base
	if base == "" {
		base = DefaultBase
	}
	for _, name := range cfg.Names {
		if err := validateName(name); err != nil {
			return err
		}
	}

	for _, dir := range Dirs(base, cfg.Names) {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	fmt.Fprintln(w, "Quarantine folder structure created.")
	return nil
}

// validateName keeps subfolders one level deep under Resources/ResourceData.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid subfolder name %q", name)
	}
	return nil
}
