// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/quarantine-tools/pkg/types"
)

// listDirs returns every directory under root on fs, relative to root.
func listDirs(t *testing.T, fs afero.Fs, root string) []string {
	t.Helper()
	var dirs []string
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			dirs = append(dirs, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(dirs)
	return dirs
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			name:  "no subfolder names",
			names: nil,
			want: []string{
				".",
				"Quarantine",
				"Quarantine/Entries",
				"Quarantine/ResourceData",
				"Quarantine/Resources",
			},
		},
		{
			name:  "names go under Resources and ResourceData",
			names: []string{"2E", "57"},
			want: []string{
				".",
				"Quarantine",
				"Quarantine/Entries",
				"Quarantine/ResourceData",
				"Quarantine/ResourceData/2E",
				"Quarantine/ResourceData/57",
				"Quarantine/Resources",
				"Quarantine/Resources/2E",
				"Quarantine/Resources/57",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, fs.MkdirAll("/work", 0o755))

			var out bytes.Buffer
			err := Create(fs, types.ScaffoldConfig{Base: "/work/Quarantine", Names: tt.names}, &out)
			require.NoError(t, err)

			assert.Equal(t, tt.want, listDirs(t, fs, "/work"))
			assert.Equal(t, "Quarantine folder structure created.\n", out.String())
		})
	}
}

func TestCreateIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	base := "/work/Quarantine"

	require.NoError(t, Create(fs, types.ScaffoldConfig{Base: base, Names: []string{"2E", "57"}}, &bytes.Buffer{}))
	once := listDirs(t, fs, "/work")

	require.NoError(t, Create(fs, types.ScaffoldConfig{Base: base, Names: []string{"2E", "57"}}, &bytes.Buffer{}))
	assert.Equal(t, once, listDirs(t, fs, "/work"))
}

func TestCreateKeepsExistingContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	base := "/work/Quarantine"
	marker := filepath.Join(base, "Entries", "{ABC}")

	require.NoError(t, Create(fs, types.ScaffoldConfig{Base: base, Names: []string{"2E"}}, &bytes.Buffer{}))
	require.NoError(t, afero.WriteFile(fs, marker, []byte("entry"), 0o644))

	// A superset of names adds folders without disturbing what is there.
	require.NoError(t, Create(fs, types.ScaffoldConfig{Base: base, Names: []string{"2E", "61"}}, &bytes.Buffer{}))

	data, err := afero.ReadFile(fs, marker)
	require.NoError(t, err)
	assert.Equal(t, "entry", string(data))

	ok, err := afero.DirExists(fs, filepath.Join(base, "ResourceData", "61"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateDefaultBase(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, Create(fs, types.ScaffoldConfig{}, &bytes.Buffer{}))

	ok, err := afero.DirExists(fs, filepath.Join(DefaultBase, "Entries"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateRejectsNestedNames(t *testing.T) {
	for _, name := range []string{"", ".", "..", "a/b", `a\b`} {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			err := Create(fs, types.ScaffoldConfig{Base: "/work/Quarantine", Names: []string{name}}, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid subfolder name")

			exists, _ := afero.DirExists(fs, "/work/Quarantine")
			assert.False(t, exists, "nothing should be created on a bad name")
		})
	}
}

func TestCreateOnReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := Create(fs, types.ScaffoldConfig{Base: "/work/Quarantine"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating /work/Quarantine")
}
