// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte("x"), 0o644))
}

func paths(t *testing.T, fs afero.Fs, root string) []string {
	t.Helper()
	found, err := Archives(fs, root)
	require.NoError(t, err)
	out := make([]string, len(found))
	for i, a := range found {
		out[i] = a.Path
		assert.Equal(t, filepath.Dir(a.Path), a.Dir)
	}
	return out
}

func TestArchives(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  []string
	}{
		{
			name: "empty tree",
			want: []string{},
		},
		{
			name:  "nested zips at every depth",
			files: []string{"a/x.zip", "b/c/y.zip", "top.zip"},
			want:  []string{"a/x.zip", "b/c/y.zip", "top.zip"},
		},
		{
			name:  "other files are ignored",
			files: []string{"a/x.zip", "a/readme.txt", "a/x.zip.bak", "b/archive.ZIP", "b/zip"},
			want:  []string{"a/x.zip"},
		},
		{
			name:  "dotfiles and hidden directories are included",
			files: []string{".hidden/z.zip", ".zip"},
			want:  []string{".hidden/z.zip", ".zip"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			root := "/Quarantine"
			require.NoError(t, fs.MkdirAll(root, 0o755))
			for _, f := range tt.files {
				touch(t, fs, filepath.Join(root, f))
			}

			want := make([]string, len(tt.want))
			for i, w := range tt.want {
				want[i] = filepath.Join(root, w)
			}
			assert.ElementsMatch(t, want, paths(t, fs, root))
		})
	}
}

func TestArchivesCountMatches(t *testing.T) {
	for _, n := range []int{0, 1, 7, 25} {
		t.Run(fmt.Sprintf("%d zips", n), func(t *testing.T) {
			fs := afero.NewMemMapFs()
			root := "/root-dir"
			require.NoError(t, fs.MkdirAll(root, 0o755))
			for i := 0; i < n; i++ {
				depth := strings.Repeat(fmt.Sprintf("d%d/", i%3), i%4)
				touch(t, fs, filepath.Join(root, depth, fmt.Sprintf("f%d.zip", i)))
			}

			got := paths(t, fs, root)
			assert.Len(t, got, n)
			for _, p := range got {
				assert.True(t, strings.HasPrefix(p, root+string(filepath.Separator)), "%s not under root", p)
			}
		})
	}
}

func TestArchivesSkipsZipNamedDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/q/folder.zip", 0o755))
	touch(t, fs, "/q/folder.zip/inner.zip")

	assert.Equal(t, []string{"/q/folder.zip/inner.zip"}, paths(t, fs, "/q"))
}

func TestArchivesRelativeRoot(t *testing.T) {
	dir := t.TempDir()
	touch(t, afero.NewOsFs(), filepath.Join(dir, "a", "x.zip"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	require.NoError(t, os.Chdir(dir))

	found, err := Archives(afero.NewOsFs(), "a")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.True(t, filepath.IsAbs(found[0].Path))
	assert.Equal(t, "x.zip", filepath.Base(found[0].Path))
}

func TestArchivesBadRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	touch(t, fs, "/file.zip")

	_, err := Archives(fs, "/missing")
	assert.Error(t, err)

	_, err = Archives(fs, "/file.zip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
