// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfpng renders PDF pages to PNG images with poppler's pdftoppm.
package pdfpng

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/quarantine-tools/internal/toolexec"
	"github.com/pdiddy/quarantine-tools/pkg/types"
)

// DefaultBin is the rasterizer executable.
const DefaultBin = "pdftoppm"

// Rasterizer shells out to pdftoppm and tidies the file names it produces.
type Rasterizer struct {
	bin  string
	exec toolexec.Executor
	fs   afero.Fs
}

// New returns a Rasterizer running bin (DefaultBin when empty) through exec.
// Output files are listed and renamed on fs.
func New(bin string, exec toolexec.Executor, fs afero.Fs) *Rasterizer {
	if bin == "" {
		bin = DefaultBin
	}
	return &Rasterizer{bin: bin, exec: exec, fs: fs}
}

// Convert renders every page of cfg.Input into cfg.OutputDir and returns the
// final PNG names, sorted. pdftoppm is given "<dir>/" as its output root, so
// pages come out as "-1.png", "-01.png" and so on; every "-" is then removed
// from each PNG name in the folder.
func (r *Rasterizer) Convert(ctx context.Context, cfg types.RasterConfig, w io.Writer) ([]string, error) {
	if cfg.Input == "" {
		return nil, fmt.Errorf("input PDF is required")
	}
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("output folder is required")
	}
	dpi := cfg.DPI
	if dpi == 0 {
		dpi = types.DefaultDPI
	}
	if dpi < 0 {
		return nil, fmt.Errorf("invalid DPI %d: must be positive", dpi)
	}

	if _, err := r.exec.LookPath(r.bin); err != nil {
		return nil, fmt.Errorf("%s not found (install poppler): %w", r.bin, err)
	}
	if _, err := r.fs.Stat(cfg.Input); err != nil {
		return nil, fmt.Errorf("input PDF %s: %w", cfg.Input, err)
	}
	if err := r.fs.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", cfg.OutputDir, err)
	}

	root := cfg.OutputDir
	if !strings.HasSuffix(root, string(os.PathSeparator)) {
		root += string(os.PathSeparator)
	}
	args := []string{"-png", "-r", strconv.Itoa(dpi), cfg.Input, root}
	if out, err := r.exec.RunCombined(ctx, r.bin, args...); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return nil, fmt.Errorf("converting %s: %w: %s", cfg.Input, err, msg)
		}
		return nil, fmt.Errorf("converting %s: %w", cfg.Input, err)
	}

	pages, err := r.renamePages(cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "converted: %s (%d page(s) at %d dpi into %s)\n", cfg.Input, len(pages), dpi, cfg.OutputDir)
	return pages, nil
}

// renamePages strips "-" from every PNG name in dir.
func (r *Rasterizer) renamePages(dir string) ([]string, error) {
	entries, err := afero.ReadDir(r.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var pages []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".png") {
			continue
		}
		renamed := strings.ReplaceAll(name, "-", "")
		if renamed != name {
			if err := r.fs.Rename(filepath.Join(dir, name), filepath.Join(dir, renamed)); err != nil {
				return nil, fmt.Errorf("renaming %s: %w", name, err)
			}
		}
		pages = append(pages, renamed)
	}
	sort.Strings(pages)
	return pages, nil
}
