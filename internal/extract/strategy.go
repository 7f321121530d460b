// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract unpacks every zip archive found under a directory tree in
// place, using either the platform's unzip binary or a built-in zip reader,
// and optionally removes the archives afterwards.
package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/pdiddy/quarantine-tools/internal/toolexec"
	"github.com/pdiddy/quarantine-tools/pkg/types"
)

// Strategy extracts a single archive. The native and library implementations
// are interchangeable; Runner never needs to know which one it has.
type Strategy interface {
	// Name returns "native" or "library".
	Name() string

	// Extract unpacks archive into destDir, applying password to encrypted
	// entries. A nil error means every entry was extracted.
	Extract(ctx context.Context, archive, destDir, password string) error
}

var (
	// ErrBadArchive marks an archive that is not a readable zip file.
	ErrBadArchive = errors.New("bad zip file")

	// ErrWrongPassword marks an archive whose entries did not decrypt with
	// the supplied password.
	ErrWrongPassword = errors.New("incorrect password")
)

// nativePlatforms ship an unzip binary that accepts -P.
var nativePlatforms = map[string]bool{
	"darwin": true,
	"linux":  true,
}

// UsesNative reports whether the auto strategy picks the native tool on goos.
func UsesNative(goos string) bool {
	return nativePlatforms[goos]
}

// Select returns the strategy for kind. StrategyAuto (or an empty kind)
// decides by goos alone: there is no probe for the unzip binary, so a host
// without it reports a failure per archive.
func Select(kind types.StrategyKind, goos string, fs afero.Fs, unzipBin string) (Strategy, error) {
	switch kind {
	case types.StrategyAuto, "":
		if UsesNative(goos) {
			return NewNative(unzipBin, toolexec.Default), nil
		}
		return NewLibrary(fs), nil
	case types.StrategyNative:
		return NewNative(unzipBin, toolexec.Default), nil
	case types.StrategyLibrary:
		return NewLibrary(fs), nil
	default:
		return nil, fmt.Errorf("unknown extraction strategy %q: use auto, native, or library", kind)
	}
}
