package shelf

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/macropower/shelf/pkg/config"
	"github.com/macropower/shelf/pkg/files"
	"github.com/macropower/shelf/pkg/ignorefile"
)

// Workspace resolves the configuration and ignore files for a directory.
type Workspace struct {
	dir            string
	configPath     string
	ignoreFileName string
	ignorePath     string
}

// Option configures a [Workspace].
type Option func(*Workspace)

// WithDir sets the directory the file searches start from.
// It defaults to the current directory.
func WithDir(dir string) Option {
	return func(w *Workspace) {
		w.dir = dir
	}
}

// WithConfigPath uses the configuration file at path instead of searching
// for one. Relative paths are resolved against the workspace directory.
func WithConfigPath(path string) Option {
	return func(w *Workspace) {
		w.configPath = path
	}
}

// WithIgnorePath uses the ignore file at path instead of searching for one.
// Relative paths are resolved against the workspace directory.
func WithIgnorePath(path string) Option {
	return func(w *Workspace) {
		w.ignorePath = path
	}
}

// New creates a new [Workspace].
func New(opts ...Option) *Workspace {
	w := &Workspace{
		dir:            ".",
		ignoreFileName: ignorefile.FileName,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// LoadConfig loads the configuration and returns it with its path.
func (w *Workspace) LoadConfig() (*config.Config, string, error) {
	if w.configPath == "" {
		cfg, path, err := config.Load(w.dir)
		if err != nil {
			return nil, "", err
		}

		slog.Debug("loaded config", slog.String("path", path))

		return cfg, path, nil
	}

	path := w.resolve(w.configPath)

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, "", err
	}

	slog.Debug("loaded config", slog.String("path", path))

	return cfg, path, nil
}

// IgnorePath returns the path of the ignore file and whether it exists.
// Without an explicit path, the nearest ignore file is used, or a new one in
// the workspace directory if there is none.
func (w *Workspace) IgnorePath() (string, bool, error) {
	if w.ignorePath != "" {
		path := w.resolve(w.ignorePath)

		exists, err := files.Exists(path)
		if err != nil {
			return "", false, fmt.Errorf("ignore file: %w", err)
		}

		return path, exists, nil
	}

	path, err := ignorefile.Find(w.dir, w.ignoreFileName)
	if errors.Is(err, ignorefile.ErrNotFound) {
		return filepath.Join(w.dir, w.ignoreFileName), false, nil
	}
	if err != nil {
		return "", false, err
	}

	return path, true, nil
}

// List returns the selectable profiles sorted by name.
func (w *Workspace) List() ([]config.Entry, error) {
	cfg, _, err := w.LoadConfig()
	if err != nil {
		return nil, err
	}

	return cfg.List(), nil
}

func (w *Workspace) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(w.dir, path)
}

func (w *Workspace) readIgnoreFile() (string, string, bool, error) {
	path, exists, err := w.IgnorePath()
	if err != nil {
		return "", "", false, err
	}
	if !exists {
		return path, "", false, nil
	}

	data, err := files.ReadFile(path)
	if err != nil {
		return "", "", false, fmt.Errorf("read ignore file: %w", err)
	}

	return path, string(data), true, nil
}
