package config

import (
	"fmt"
	"path/filepath"

	_ "embed"

	"github.com/macropower/shelf/pkg/files"
)

//go:embed shelf.yaml
var defaultConfigYAML []byte

// WriteDefault writes the starter configuration file into dir.
// An existing file is left alone unless force is set, in which case it is
// backed up and replaced. It returns the path and whether it was written.
func WriteDefault(dir string, force bool) (string, bool, error) {
	path := filepath.Join(dir, FileName)

	written, err := files.WriteDefaultFile(path, defaultConfigYAML, force, "config")
	if err != nil {
		return path, false, fmt.Errorf("write default config: %w", err)
	}

	return path, written, nil
}
