package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

var (
	// ErrConfigNotFound is returned when no configuration file exists in the
	// search directory or any of its parents.
	ErrConfigNotFound = errors.New(FileName + " not found in this directory or any parent directories")

	// ErrInvalidConfig is returned when the configuration cannot be parsed or
	// does not match the expected shape.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrProfileNotFound is returned when a requested profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrReservedProfile is returned when the global profile is requested
	// directly.
	ErrReservedProfile = errors.New("profile is reserved")
)

// ProfileNotFoundError is returned when a requested profile does not exist.
// It matches [ErrProfileNotFound] with [errors.Is].
type ProfileNotFoundError struct {
	// Name is the requested profile name.
	Name string
	// Suggestions contains existing profile names similar to Name.
	Suggestions []string
}

func (e *ProfileNotFoundError) Error() string {
	msg := fmt.Sprintf("profile %q not found", e.Name)
	if len(e.Suggestions) == 0 {
		return msg
	}

	quoted := make([]string, 0, len(e.Suggestions))
	for _, s := range e.Suggestions {
		quoted = append(quoted, fmt.Sprintf("%q", s))
	}

	return fmt.Sprintf("%s, did you mean %s?", msg, strings.Join(quoted, " or "))
}

func (e *ProfileNotFoundError) Is(target error) bool {
	return target == ErrProfileNotFound
}

// suggest returns up to [maxSuggestions] names that fuzzy-match name.
func suggest(name string, names []string) []string {
	if name == "" || len(names) == 0 {
		return nil
	}

	ranks := fuzzy.Find(name, names)
	sort.Stable(ranks)

	suggestions := []string{}
	for _, r := range ranks {
		if len(suggestions) == maxSuggestions {
			break
		}

		suggestions = append(suggestions, r.Str)
	}

	return suggestions
}
