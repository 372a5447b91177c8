package config

import (
	"fmt"

	"github.com/macropower/shelf/pkg/files"
)

// Find returns the path of the nearest configuration file, searching dir and
// then each of its parents. It returns [ErrConfigNotFound] if there is none.
func Find(dir string) (string, error) {
	path, err := files.FindUp(dir, FileName)
	if err != nil {
		return "", fmt.Errorf("find %s: %w", FileName, err)
	}
	if path == "" {
		return "", ErrConfigNotFound
	}

	return path, nil
}

// Load finds and loads the nearest configuration file.
// It returns the loaded config and its path.
func Load(dir string) (*Config, string, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, "", err
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}

// LoadFile loads the configuration file at path.
func LoadFile(path string) (*Config, error) {
	l, err := NewLoaderFromFile(path)
	if err != nil {
		return nil, err
	}

	return l.Load()
}
