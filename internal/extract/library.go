// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"compress/flate"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/yeka/zip"
)

// Library extracts archives in-process. It reads both ZipCrypto and WinZip
// AES encrypted entries.
type Library struct {
	fs afero.Fs
}

// NewLibrary returns a strategy that reads and writes through fs.
func NewLibrary(fs afero.Fs) *Library {
	return &Library{fs: fs}
}

func (l *Library) Name() string { return "library" }

// Extract writes every entry of archive under destDir. Unencrypted entries
// ignore the password. The first failing entry stops the archive.
func (l *Library) Extract(ctx context.Context, archive, destDir, password string) error {
	f, err := l.fs.Open(archive)
	if err != nil {
		return fmt.Errorf("opening %s: %w", archive, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", archive, err)
	}

	r, err := zip.NewReader(f, info.Size())
	if err != nil {
		if errors.Is(err, zip.ErrFormat) || errors.Is(err, zip.ErrAlgorithm) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %v", ErrBadArchive, err)
		}
		return fmt.Errorf("reading %s: %w", archive, err)
	}

	for _, zf := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		if zf.IsEncrypted() {
			zf.SetPassword(password)
		}
		if err := l.extractEntry(zf, destDir); err != nil {
			return classify(zf, err)
		}
	}
	return nil
}

// extractEntry writes one entry. A file left half-written by a failed read is
// removed so it cannot be mistaken for extracted content.
func (l *Library) extractEntry(zf *zip.File, destDir string) error {
	path, err := entryPath(destDir, zf.Name)
	if err != nil {
		return err
	}

	if zf.FileInfo().IsDir() {
		return l.fs.MkdirAll(path, 0o755)
	}
	if err := l.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating parent directory for %s: %w", path, err)
	}

	src, err := zf.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	mode := zf.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}
	dst, err := l.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if copyErr != nil {
		l.fs.Remove(path)
		return copyErr
	}
	return closeErr
}

// errUnsafePath marks an entry name that resolves outside the destination.
var errUnsafePath = errors.New("entry path outside destination directory")

// entryPath joins name onto destDir and rejects names that escape it.
func entryPath(destDir, name string) (string, error) {
	name = strings.ReplaceAll(name, `\`, "/")
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("%w: %s", errUnsafePath, name)
	}
	path := filepath.Join(destDir, name)
	rel, err := filepath.Rel(destDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", errUnsafePath, name)
	}
	return path, nil
}

// classify maps a per-entry failure onto ErrWrongPassword or ErrBadArchive
// where it can tell, keeping the original error in the message. ZipCrypto
// has no reliable password check, so a wrong password on an encrypted entry
// surfaces as corrupt deflate data or a CRC mismatch.
func classify(zf *zip.File, err error) error {
	var corrupt flate.CorruptInputError
	switch {
	case errors.Is(err, zip.ErrPassword), errors.Is(err, zip.ErrAuthentication), errors.Is(err, zip.ErrDecryption):
		return fmt.Errorf("%w: %s: %v", ErrWrongPassword, zf.Name, err)
	case zf.IsEncrypted() && (errors.Is(err, zip.ErrChecksum) || errors.As(err, &corrupt) || errors.Is(err, io.ErrUnexpectedEOF)):
		return fmt.Errorf("%w: %s: %v", ErrWrongPassword, zf.Name, err)
	case errors.Is(err, zip.ErrFormat), errors.Is(err, zip.ErrAlgorithm), errors.Is(err, zip.ErrChecksum),
		errors.Is(err, errUnsafePath), errors.As(err, &corrupt), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %s: %v", ErrBadArchive, zf.Name, err)
	default:
		return fmt.Errorf("extracting %s: %w", zf.Name, err)
	}
}
