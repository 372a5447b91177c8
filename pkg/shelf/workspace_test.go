package shelf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/shelf/pkg/config"
	"github.com/macropower/shelf/pkg/ignorefile"
	"github.com/macropower/shelf/pkg/shelf"
)

const testConfig = `global:
  excludes:
    - "global-exclude"
frontend:
  description: "Frontend profile"
  includes:
    - "frontend-include"
  excludes:
    - "frontend-exclude"
backend:
  description: "Backend services"
  includes:
    - services/
`

const frontendBlock = `# --- SHELF START ---
# Profile: frontend
*
!/frontend-include
frontend-exclude
global-exclude
# --- SHELF END ---
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func newWorkspace(t *testing.T) (string, *shelf.Workspace) {
	t.Helper()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), testConfig)

	return dir, shelf.New(shelf.WithDir(dir))
}

func TestWorkspace_List(t *testing.T) {
	t.Parallel()

	_, ws := newWorkspace(t)

	got, err := ws.List()
	require.NoError(t, err)
	assert.Equal(t, []config.Entry{
		{Name: "backend", Description: "Backend services"},
		{Name: "frontend", Description: "Frontend profile"},
	}, got)

	_, err = shelf.New(shelf.WithDir(t.TempDir())).List()
	// The temp dir may sit below a directory holding a config, so only
	// assert the sentinel when the search came up empty.
	if err != nil {
		require.ErrorIs(t, err, config.ErrConfigNotFound)
	}
}

func TestWorkspace_Enable(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		existing   *string
		profile    string
		want       string
		wantErr    error
		wantCreate bool
	}{
		"creates ignore file": {
			profile:    "frontend",
			want:       frontendBlock,
			wantCreate: true,
		},
		"preserves user lines": {
			existing: ptr("*.log\n\nbuild/\n"),
			profile:  "frontend",
			want:     "*.log\n\nbuild/\n" + frontendBlock,
		},
		"replaces previous profile": {
			existing: ptr("a\n# --- SHELF START ---\n# Profile: backend\n*\n# --- SHELF END ---\nb\n"),
			profile:  "frontend",
			want:     "a\n" + frontendBlock + "b\n",
		},
		"directory include": {
			profile: "backend",
			want: "# --- SHELF START ---\n# Profile: backend\n*\n!/services\n!/services/**\n" +
				"global-exclude\n# --- SHELF END ---\n",
			wantCreate: true,
		},
		"unknown profile": {
			existing: ptr("keep\n"),
			profile:  "fronted",
			wantErr:  config.ErrProfileNotFound,
		},
		"global is reserved": {
			profile: "global",
			wantErr: config.ErrReservedProfile,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir, ws := newWorkspace(t)
			path := filepath.Join(dir, ignorefile.FileName)

			if tc.existing != nil {
				writeFile(t, path, *tc.existing)
			}

			c, err := ws.Enable(tc.profile)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				if tc.existing != nil {
					assert.Equal(t, *tc.existing, readFile(t, path))
				} else {
					assert.NoFileExists(t, path)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, c.Path)
			assert.Equal(t, tc.wantCreate, c.Create)
			assert.Equal(t, tc.want, readFile(t, path))

			// Enabling again leaves the file unchanged.
			again, err := ws.Enable(tc.profile)
			require.NoError(t, err)
			assert.False(t, again.Modified())
			assert.Equal(t, tc.want, readFile(t, path))
		})
	}
}

func TestWorkspace_EnableKeepsMode(t *testing.T) {
	t.Parallel()

	dir, ws := newWorkspace(t)
	path := filepath.Join(dir, ignorefile.FileName)

	writeFile(t, path, "x\n")
	require.NoError(t, os.Chmod(path, 0o640))

	_, err := ws.Enable("frontend")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestWorkspace_Disable(t *testing.T) {
	t.Parallel()

	dir, ws := newWorkspace(t)
	path := filepath.Join(dir, ignorefile.FileName)

	c, err := ws.Disable()
	require.NoError(t, err)
	assert.True(t, c.Skip)
	assert.Empty(t, c.Diff())
	assert.NoFileExists(t, path)

	writeFile(t, path, "*.log\n"+frontendBlock+"tmp/\n")

	c, err = ws.Disable()
	require.NoError(t, err)
	assert.True(t, c.Modified())

	want := "*.log\n# --- SHELF START ---\n# --- SHELF END ---\ntmp/\n"
	assert.Equal(t, want, readFile(t, path))

	st, err := ws.Status()
	require.NoError(t, err)
	assert.Empty(t, st.ActiveProfile)
	assert.Equal(t, []string{"*.log", "tmp/"}, st.UserPatterns)
}

func TestWorkspace_DisableWithoutConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ignorefile.FileName)
	writeFile(t, path, frontendBlock)

	ws := shelf.New(shelf.WithDir(dir), shelf.WithConfigPath("missing.yaml"))

	_, err := ws.Disable()
	require.NoError(t, err)
	assert.Equal(t, "# --- SHELF START ---\n# --- SHELF END ---\n", readFile(t, path))
}

func TestWorkspace_Status(t *testing.T) {
	t.Parallel()

	dir, ws := newWorkspace(t)
	path := filepath.Join(dir, ignorefile.FileName)

	st, err := ws.Status()
	require.NoError(t, err)
	assert.False(t, st.Exists)
	assert.Equal(t, path, st.Path)
	assert.Empty(t, st.UserPatterns)

	writeFile(t, path, "# notes\nnode_modules/\n"+frontendBlock+"  dist/  \n")

	st, err = ws.Status()
	require.NoError(t, err)
	assert.True(t, st.Exists)
	assert.Equal(t, "frontend", st.ActiveProfile)
	assert.Equal(t, []string{"node_modules/", "dist/"}, st.UserPatterns)
}

func TestWorkspace_IgnoreFileSearch(t *testing.T) {
	t.Parallel()

	dir, _ := newWorkspace(t)
	nested := filepath.Join(dir, "web", "app")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	parentIgnore := filepath.Join(dir, ignorefile.FileName)
	writeFile(t, parentIgnore, "user\n")

	ws := shelf.New(shelf.WithDir(nested))

	c, err := ws.Enable("frontend")
	require.NoError(t, err)
	assert.Equal(t, parentIgnore, c.Path)
	assert.False(t, c.Create)
	assert.Equal(t, "user\n"+frontendBlock, readFile(t, parentIgnore))
	assert.NoFileExists(t, filepath.Join(nested, ignorefile.FileName))
}

func TestWorkspace_ExplicitPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "conf", "profiles.yaml"), testConfig)

	ws := shelf.New(
		shelf.WithDir(dir),
		shelf.WithConfigPath(filepath.Join("conf", "profiles.yaml")),
		shelf.WithIgnorePath(".aiexclude"),
	)

	c, err := ws.Enable("frontend")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".aiexclude"), c.Path)
	assert.Equal(t, frontendBlock, readFile(t, c.Path))

	_, err = shelf.New(shelf.WithDir(dir), shelf.WithIgnorePath("conf")).Status()
	require.Error(t, err)
}

func TestWorkspace_PlanEnable(t *testing.T) {
	t.Parallel()

	dir, ws := newWorkspace(t)
	path := filepath.Join(dir, ignorefile.FileName)
	writeFile(t, path, "user\n")

	c, err := ws.PlanEnable("frontend")
	require.NoError(t, err)

	diff := c.Diff()
	assert.Contains(t, diff, "--- a/.geminiignore")
	assert.Contains(t, diff, "+++ b/.geminiignore")
	assert.Contains(t, diff, "+# Profile: frontend")
	assert.Contains(t, diff, "+!/frontend-include")

	// Planning does not touch the file.
	assert.Equal(t, "user\n", readFile(t, path))
}

func ptr(s string) *string {
	return &s
}

func TestWorkspace_StatusMultipleBlocks(t *testing.T) {
	t.Parallel()

	dir, ws := newWorkspace(t)
	path := filepath.Join(dir, ignorefile.FileName)

	second := "# --- SHELF START ---\n# Profile: backend\n*\n# --- SHELF END ---\n"
	writeFile(t, path, frontendBlock+"user\n"+second)

	st, err := ws.Status()
	require.NoError(t, err)
	assert.Equal(t, "backend", st.ActiveProfile)
	assert.Equal(t, []string{"user"}, st.UserPatterns)

	_, err = ws.Enable("frontend")
	require.NoError(t, err)
	assert.Equal(t, frontendBlock+"user\n", readFile(t, path))
}
