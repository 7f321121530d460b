// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/pdiddy/quarantine-tools/internal/confirm"
	"github.com/pdiddy/quarantine-tools/internal/scan"
	"github.com/pdiddy/quarantine-tools/pkg/types"
)

// RemovePrompt is the question asked before deleting extracted archives.
const RemovePrompt = "Do you want to remove the zip files? [y/n]: "

var (
	failed  = color.New(color.FgRed).SprintFunc()
	removed = color.New(color.FgYellow).SprintFunc()
)

// Runner performs one extraction run: scan, extract each archive, then
// optionally delete the ones that extracted.
type Runner struct {
	Fs       afero.Fs
	Strategy Strategy
	Confirm  confirm.Confirmer
	Out      io.Writer
}

// Run extracts every archive under cfg.Folder into its own directory.
// Per-archive failures are printed and recorded in the summary; they never
// stop the run. Scan, delete, and report failures are returned.
func (r *Runner) Run(ctx context.Context, cfg types.UnzipConfig) (types.RunSummary, error) {
	root, err := filepath.Abs(cfg.Folder)
	if err != nil {
		return types.RunSummary{}, fmt.Errorf("resolving %s: %w", cfg.Folder, err)
	}
	summary := types.RunSummary{Root: root, Strategy: r.Strategy.Name()}

	archives, err := scan.Archives(r.Fs, root)
	if err != nil {
		return summary, err
	}

	for _, a := range archives {
		fmt.Fprintf(r.Out, "Unzipping: %s\n", a.Path)
		err := r.Strategy.Extract(ctx, a.Path, a.Dir, cfg.Password)
		res := resultFor(a, err)
		r.reportFailure(res, err)
		summary.Results = append(summary.Results, res)
	}

	extracted := summary.Extracted()
	fmt.Fprintf(r.Out, "\nSummary: %d extracted, %d failed (total: %d)\n",
		len(extracted), summary.Failed(), len(summary.Results))

	if cfg.Remove && len(extracted) > 0 {
		ok, err := r.Confirm.Confirm(RemovePrompt)
		if err != nil {
			return summary, err
		}
		if ok {
			for _, a := range extracted {
				if err := r.Fs.Remove(a.Path); err != nil {
					return summary, fmt.Errorf("removing %s: %w", a.Path, err)
				}
				summary.Removed = append(summary.Removed, a.Path)
				fmt.Fprintf(r.Out, "%s %s\n", removed("Removed:"), a.Path)
			}
		}
	}

	if cfg.ReportPath != "" {
		if err := WriteReport(r.Fs, cfg.ReportPath, summary); err != nil {
			return summary, err
		}
		fmt.Fprintf(r.Out, "Report written to %s\n", cfg.ReportPath)
	}
	return summary, nil
}

func resultFor(a types.ArchiveFile, err error) types.ExtractionResult {
	res := types.ExtractionResult{Archive: a, Status: types.ExtractionDone}
	switch {
	case err == nil:
		return res
	case errors.Is(err, ErrBadArchive):
		res.Status = types.ExtractionBadArchive
	case errors.Is(err, ErrWrongPassword):
		res.Status = types.ExtractionWrongPassword
	default:
		res.Status = types.ExtractionFailed
	}
	res.Error = err.Error()
	return res
}

func (r *Runner) reportFailure(res types.ExtractionResult, err error) {
	path := res.Archive.Path
	switch res.Status {
	case types.ExtractionDone:
	case types.ExtractionBadArchive:
		fmt.Fprintf(r.Out, "%s %s: Bad zip file.\n", failed("Failed to unzip"), path)
	case types.ExtractionWrongPassword:
		fmt.Fprintf(r.Out, "%s %s: Incorrect password.\n", failed("Failed to unzip"), path)
	default:
		fmt.Fprintf(r.Out, "%s %s: %v\n", failed("Failed to unzip"), path, err)
	}
}
