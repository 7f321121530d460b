// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"

	"github.com/pdiddy/quarantine-tools/internal/toolexec"
)

// DefaultUnzipBin is the native extraction executable.
const DefaultUnzipBin = "unzip"

// Native extracts archives by running the unzip binary. Its output is
// discarded; only the exit status matters.
type Native struct {
	bin  string
	exec toolexec.Executor
}

// NewNative returns a strategy that runs bin (DefaultUnzipBin when empty)
// through exec.
func NewNative(bin string, exec toolexec.Executor) *Native {
	if bin == "" {
		bin = DefaultUnzipBin
	}
	return &Native{bin: bin, exec: exec}
}

func (n *Native) Name() string { return "native" }

// Extract runs `unzip -o -P <password> -d <destDir> <archive>`. Existing files
// are overwritten so unzip never stops to ask.
func (n *Native) Extract(ctx context.Context, archive, destDir, password string) error {
	args := []string{"-o", "-P", password, "-d", destDir, archive}
	if err := n.exec.RunSilent(ctx, n.bin, args...); err != nil {
		return fmt.Errorf("%s failed: %w", n.bin, err)
	}
	return nil
}
