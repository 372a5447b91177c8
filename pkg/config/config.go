package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/macropower/shelf/pkg/profile"
)

const (
	// FileName is the name of the configuration file.
	FileName = ".shelf.yaml"

	// GlobalProfileName is the reserved key of the global profile.
	GlobalProfileName = "global"
)

// Config contains the selectable profiles and the optional global profile.
type Config struct {
	// Profiles contains all selectable profiles by name.
	// It never contains [GlobalProfileName].
	Profiles map[string]*profile.Profile
	// Global is merged into every compiled profile. It may be nil.
	Global *profile.Profile
}

// Entry is a listed profile.
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// New creates a [Config] from a mapping of profile names to profiles.
// The [GlobalProfileName] entry, if present, becomes [Config.Global].
// Nil profiles are replaced with empty ones.
func New(profiles map[string]*profile.Profile) *Config {
	c := &Config{
		Profiles: make(map[string]*profile.Profile, len(profiles)),
	}

	for name, p := range profiles {
		if p == nil {
			p = &profile.Profile{}
		}

		if name == GlobalProfileName {
			c.Global = p
			continue
		}

		c.Profiles[name] = p
	}

	return c
}

// Validate checks that every profile name and pattern, including those of
// the global profile, can be written as a single ignore-file line.
func (c *Config) Validate() error {
	err := c.Global.Validate()
	if err != nil {
		return fmt.Errorf("profile %q: %w", GlobalProfileName, err)
	}

	for _, name := range c.Names() {
		if profile.HasLineBreak(name) {
			return fmt.Errorf("profile name %q %w", name, profile.ErrLineBreak)
		}

		err = c.Profiles[name].Validate()
		if err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}

	return nil
}

// Names returns the selectable profile names, sorted.
func (c *Config) Names() []string {
	return slices.Sorted(maps.Keys(c.Profiles))
}

// List returns the selectable profiles sorted by name.
// Profiles without a description get an empty description.
func (c *Config) List() []Entry {
	names := c.Names()

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{
			Name:        name,
			Description: c.Profiles[name].Description,
		})
	}

	return entries
}

// Get returns the named profile.
// It returns [ErrReservedProfile] for [GlobalProfileName] and a
// [*ProfileNotFoundError] for unknown names.
func (c *Config) Get(name string) (*profile.Profile, error) {
	if name == GlobalProfileName {
		return nil, fmt.Errorf("%w: %q is merged into every profile and cannot be enabled on its own",
			ErrReservedProfile, name)
	}

	p, ok := c.Profiles[name]
	if !ok {
		return nil, &ProfileNotFoundError{
			Name:        name,
			Suggestions: suggest(name, c.Names()),
		}
	}

	return p, nil
}

// Compile returns the compiled ignore patterns for the named profile,
// including the global profile.
func (c *Config) Compile(name string) ([]string, error) {
	p, err := c.Get(name)
	if err != nil {
		return nil, err
	}

	return profile.Compile(p, c.Global), nil
}
