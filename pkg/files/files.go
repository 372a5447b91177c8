package files

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// DefaultFileMode is used when writing a file that does not exist yet.
const DefaultFileMode fs.FileMode = 0o644

// ErrNotRegular is returned when a path exists but is not a regular file.
var ErrNotRegular = errors.New("not a regular file")

// ReadFile reads a regular file from disk.
func ReadFile(path string) ([]byte, error) {
	pathInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if pathInfo.IsDir() {
		return nil, fmt.Errorf("%s: path is a directory: %w", path, ErrNotRegular)
	}
	if !pathInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: unknown file state: %w", path, ErrNotRegular)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: Potential file inclusion via variable.
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// Exists reports whether path is an existing regular file.
// It returns [ErrNotRegular] if path exists but is not a regular file.
func Exists(path string) (bool, error) {
	pathInfo, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("stat file: %w", err)
	case !pathInfo.Mode().IsRegular():
		return false, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	return true, nil
}

// FindUp searches for any of fileNames starting from startPath and walking up
// the directory tree until the filesystem root. Within a directory, names are
// checked in order. Directories with a matching name are skipped.
// Returns the path to the nearest match, or an empty string if not found.
func FindUp(startPath string, fileNames ...string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("get absolute path: %w", err)
	}

	// If startPath is a file, start from its directory.
	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("stat path: %w", err)
	}

	searchDir := absPath
	if !info.IsDir() {
		searchDir = filepath.Dir(absPath)
	}

	for {
		for _, fileName := range fileNames {
			candidate := filepath.Join(searchDir, fileName)

			candidateInfo, statErr := os.Stat(candidate)
			if statErr == nil && !candidateInfo.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(searchDir)
		if parent == searchDir {
			// Reached the root.
			return "", nil
		}

		searchDir = parent
	}
}

// WriteFile replaces the contents of path with data.
//
// Data is written to a temporary file in the same directory, which is then
// renamed over path, so readers see either the old or the new contents. An
// existing file keeps its permissions; new files get [DefaultFileMode].
func WriteFile(path string, data []byte) error {
	mode := DefaultFileMode

	pathInfo, err := os.Stat(path)
	switch {
	case err == nil && pathInfo.IsDir():
		return fmt.Errorf("%s: path is a directory: %w", path, ErrNotRegular)
	case err == nil && !pathInfo.Mode().IsRegular():
		return fmt.Errorf("%s: unknown file state: %w", path, ErrNotRegular)
	case err == nil:
		mode = pathInfo.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpPath := tmp.Name()
	defer func() {
		// No-op after a successful rename.
		err := os.Remove(tmpPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Debug("remove temp file", slog.String("path", tmpPath), slog.Any("error", err))
		}
	}()

	_, err = tmp.Write(data)
	if err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	err = os.Chmod(tmpPath, mode)
	if err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	return nil
}

// WriteDefaultFile writes default content to a path.
// Using `force` will back up and replace any existing file.
// It returns true if the file was written.
func WriteDefaultFile(path string, defaultData []byte, force bool, kind string) (bool, error) {
	fileExists := false

	pathInfo, err := os.Stat(path)
	if pathInfo != nil {
		switch {
		case err == nil && pathInfo.Mode().IsRegular():
			fileExists = true
		case pathInfo.IsDir():
			return false, fmt.Errorf("%s: path is a directory: %w", path, ErrNotRegular)
		default:
			return false, fmt.Errorf("%s: unknown file state: %w", path, ErrNotRegular)
		}
	}

	if fileExists && force {
		backupFile := fmt.Sprintf("%s.%d.old", filepath.Base(path), time.Now().UnixNano())
		backupPath := filepath.Join(filepath.Dir(path), backupFile)
		slog.Info("backing up existing file",
			slog.String("type", kind),
			slog.String("path", backupPath),
		)

		err = os.Rename(path, backupPath)
		if err != nil {
			return false, fmt.Errorf("rename existing %s file to backup: %w", kind, err)
		}

		fileExists = false
	}

	if fileExists {
		slog.Debug("file already exists, skipping write",
			slog.String("type", kind),
			slog.String("path", path),
		)

		return false, nil
	}

	slog.Debug("write default file",
		slog.String("type", kind),
		slog.String("path", path),
	)

	err = os.WriteFile(path, defaultData, DefaultFileMode)
	if err != nil {
		return false, fmt.Errorf("write %s file: %w", kind, err)
	}

	return true, nil
}
