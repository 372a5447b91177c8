package files_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/shelf/pkg/files"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		setup   func(t *testing.T) string
		want    string
		wantErr bool
	}{
		"regular file": {
			setup: func(t *testing.T) string {
				t.Helper()

				path := filepath.Join(t.TempDir(), "file")
				require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))

				return path
			},
			want: "content",
		},
		"missing file": {
			setup: func(t *testing.T) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "missing")
			},
			wantErr: true,
		},
		"directory": {
			setup: func(t *testing.T) string {
				t.Helper()

				return t.TempDir()
			},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := files.ReadFile(tc.setup(t))
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestFindUp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(root, ".shelf.yaml"), []byte("{}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", ".shelf.yaml"), []byte("{}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "file.txt"), []byte(""), 0o600))
	// A directory with a matching name must not be returned.
	require.NoError(t, os.Mkdir(filepath.Join(root, "a", "b", ".shelf.yaml"), 0o755))

	tcs := map[string]struct {
		start string
		names []string
		want  string
	}{
		"nearest wins": {
			start: nested,
			names: []string{".shelf.yaml"},
			want:  filepath.Join(root, "a", ".shelf.yaml"),
		},
		"found in start directory": {
			start: root,
			names: []string{".shelf.yaml"},
			want:  filepath.Join(root, ".shelf.yaml"),
		},
		"start from a file": {
			start: filepath.Join(root, "a", "b", "file.txt"),
			names: []string{"file.txt"},
			want:  filepath.Join(root, "a", "b", "file.txt"),
		},
		"names are checked in order": {
			start: filepath.Join(root, "a"),
			names: []string{"missing.yaml", ".shelf.yaml"},
			want:  filepath.Join(root, "a", ".shelf.yaml"),
		},
		"not found": {
			start: nested,
			names: []string{".does-not-exist-anywhere"},
			want:  "",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := files.FindUp(tc.start, tc.names...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindUp_MissingStart(t *testing.T) {
	t.Parallel()

	_, err := files.FindUp(filepath.Join(t.TempDir(), "missing"), ".shelf.yaml")
	require.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".geminiignore")
		require.NoError(t, files.WriteFile(path, []byte("new\n")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new\n", string(got))

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, files.DefaultFileMode, info.Mode().Perm())
		}
	})

	t.Run("replaces existing file and keeps mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, ".geminiignore")
		require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

		require.NoError(t, files.WriteFile(path, []byte("replaced\n")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "replaced\n", string(got))

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		}

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp file should be cleaned up")
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		err := files.WriteFile(t.TempDir(), []byte("x"))
		require.ErrorIs(t, err, files.ErrNotRegular)
	})

	t.Run("missing parent", func(t *testing.T) {
		t.Parallel()

		err := files.WriteFile(filepath.Join(t.TempDir(), "missing", "file"), []byte("x"))
		require.Error(t, err)
	})
}

func TestWriteDefaultFile(t *testing.T) {
	t.Parallel()

	t.Run("writes when missing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".shelf.yaml")

		written, err := files.WriteDefaultFile(path, []byte("default"), false, "config")
		require.NoError(t, err)
		assert.True(t, written)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "default", string(got))
	})

	t.Run("keeps existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".shelf.yaml")
		require.NoError(t, os.WriteFile(path, []byte("mine"), 0o600))

		written, err := files.WriteDefaultFile(path, []byte("default"), false, "config")
		require.NoError(t, err)
		assert.False(t, written)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "mine", string(got))
	})

	t.Run("force backs up existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, ".shelf.yaml")
		require.NoError(t, os.WriteFile(path, []byte("mine"), 0o600))

		written, err := files.WriteDefaultFile(path, []byte("default"), true, "config")
		require.NoError(t, err)
		assert.True(t, written)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "default", string(got))

		backups, err := filepath.Glob(filepath.Join(dir, ".shelf.yaml.*.old"))
		require.NoError(t, err)
		require.Len(t, backups, 1)

		backup, err := os.ReadFile(backups[0])
		require.NoError(t, err)
		assert.Equal(t, "mine", string(backup))
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, err := files.WriteDefaultFile(t.TempDir(), []byte("default"), false, "config")
		require.ErrorIs(t, err, files.ErrNotRegular)
	})
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	got, err := files.Exists(path)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = files.Exists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, got)

	_, err = files.Exists(dir)
	require.ErrorIs(t, err, files.ErrNotRegular)
}
