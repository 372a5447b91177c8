package ignorefile

import (
	"errors"
	"fmt"

	"github.com/macropower/shelf/pkg/files"
)

// ErrNotFound is returned when no ignore file exists in the search directory
// or any of its parents.
var ErrNotFound = errors.New(FileName + " not found")

// Find returns the path of the nearest file named name, searching dir and
// then each of its parents. It returns [ErrNotFound] if there is none.
func Find(dir, name string) (string, error) {
	path, err := files.FindUp(dir, name)
	if err != nil {
		return "", fmt.Errorf("find %s: %w", name, err)
	}
	if path == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return path, nil
}
