// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/yeka/zip"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// entry is one file placed in a test archive.
type entry struct {
	name    string
	content string
}

// buildZip returns zip bytes holding entries. A non-empty password encrypts
// every file entry with method.
func buildZip(t *testing.T, password string, method zip.EncryptionMethod, entries ...entry) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		var (
			fw  io.Writer
			err error
		)
		if password != "" {
			fw, err = w.Encrypt(e.name, password, method)
		} else {
			fw, err = w.Create(e.name)
		}
		require.NoError(t, err)
		_, err = fw.Write([]byte(e.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// writeZip stores a test archive at path on fs, creating parent directories.
func writeZip(t *testing.T, fs afero.Fs, path string, data []byte) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, data, 0o644))
}

// countZips returns how many *.zip files exist under root.
func countZips(t *testing.T, fs afero.Fs, root string) int {
	t.Helper()
	n := 0
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".zip" {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}
