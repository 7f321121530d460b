// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan finds zip archives anywhere beneath a root directory.
package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/pdiddy/quarantine-tools/pkg/types"
)

// Pattern is the file-name glob an archive must match.
const Pattern = "*.zip"

// Archives walks the tree rooted at root and returns every regular file whose
// name matches Pattern. Paths are absolute. The full list is built before it
// is returned, so archives created later (by extraction) are not included.
func Archives(fs afero.Fs, root string) ([]types.ArchiveFile, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	info, err := fs.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning %s: not a directory", abs)
	}

	var found []types.ArchiveFile
	err = afero.Walk(fs, abs, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		ok, err := filepath.Match(Pattern, info.Name())
		if err != nil {
			return err
		}
		if ok {
			found = append(found, types.ArchiveFile{Path: path, Dir: filepath.Dir(path)})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", abs, err)
	}
	return found, nil
}
