// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolexec runs the external binaries the tools delegate to
// (unzip, pdftoppm). Callers depend on the Executor interface so tests can
// replace process execution with a mock.
package toolexec

import (
	"context"
	"fmt"
	"os/exec"
)

// Executor abstracts command execution for testing.
type Executor interface {
	// LookPath resolves file on PATH.
	LookPath(file string) (string, error)

	// RunSilent runs name with args, discarding stdout and stderr and giving
	// the process no stdin. It returns nil only on a zero exit status.
	RunSilent(ctx context.Context, name string, args ...string) error

	// RunCombined runs name with args and returns its combined output.
	RunCombined(ctx context.Context, name string, args ...string) ([]byte, error)
}

// OS is the production executor backed by os/exec.
type OS struct{}

func (OS) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (OS) RunSilent(ctx context.Context, name string, args ...string) error {
	if err := exec.CommandContext(ctx, name, args...).Run(); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

func (OS) RunCombined(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("running %s: %w", name, err)
	}
	return out, nil
}

// Default is the executor used outside tests.
var Default Executor = OS{}
