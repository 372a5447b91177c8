package profile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLineBreak is returned when a profile value would span more than one
// ignore-file line.
var ErrLineBreak = errors.New("contains a line break")

// Profile represents a working-context scope.
type Profile struct {
	// Description is shown next to the profile name when listing profiles.
	Description string `json:"description,omitempty" jsonschema:"title=Description"`

	// Includes contains paths that stay visible. Entries ending with "/" are
	// treated as directories and re-include everything beneath them.
	Includes []string `json:"includes,omitempty" jsonschema:"title=Includes"`

	// Excludes contains gitignore patterns that are hidden again after the
	// includes are applied. They are written verbatim.
	Excludes []string `json:"excludes,omitempty" jsonschema:"title=Excludes"`
}

// String returns the profile description, or a summary of its patterns when
// no description is set.
func (p *Profile) String() string {
	if p == nil {
		return ""
	}
	if p.Description != "" {
		return p.Description
	}

	parts := []string{}
	if len(p.Includes) > 0 {
		parts = append(parts, "includes: "+strings.Join(p.Includes, ", "))
	}
	if len(p.Excludes) > 0 {
		parts = append(parts, "excludes: "+strings.Join(p.Excludes, ", "))
	}

	return strings.Join(parts, "; ")
}

// Validate checks that every include and exclude fits on a single
// ignore-file line.
func (p *Profile) Validate() error {
	if p == nil {
		return nil
	}

	for i, include := range p.Includes {
		if HasLineBreak(include) {
			return fmt.Errorf("includes[%d] %q %w", i, include, ErrLineBreak)
		}
	}
	for i, exclude := range p.Excludes {
		if HasLineBreak(exclude) {
			return fmt.Errorf("excludes[%d] %q %w", i, exclude, ErrLineBreak)
		}
	}

	return nil
}

// HasLineBreak reports whether s contains "\n" or "\r".
func HasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}
