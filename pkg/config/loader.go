package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/macropower/shelf/pkg/files"
	"github.com/macropower/shelf/pkg/profile"
	"github.com/macropower/shelf/pkg/yaml"
)

// DefaultValidator validates configuration against the JSON schema reflected
// from the profile mapping.
var DefaultValidator = mustNewValidator()

// Validator validates configuration data against a schema.
type Validator interface {
	Validate(data any) error
}

// LoaderOpt configures a [Loader].
type LoaderOpt func(*Loader)

// WithValidator sets a custom validator. A nil validator disables schema
// validation.
func WithValidator(v Validator) LoaderOpt {
	return func(l *Loader) {
		l.validator = v
	}
}

// WithName sets the name used for the configuration in error messages.
func WithName(name string) LoaderOpt {
	return func(l *Loader) {
		l.name = name
	}
}

// Loader validates and parses configuration data.
type Loader struct {
	validator Validator
	yamlError *yaml.ErrorWrapper
	name      string
	data      []byte
}

// NewLoaderFromBytes creates a [Loader] from byte data.
func NewLoaderFromBytes(data []byte, opts ...LoaderOpt) *Loader {
	l := &Loader{
		data:      data,
		name:      FileName,
		validator: DefaultValidator,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.yamlError = yaml.NewErrorWrapper(yaml.WithSource(data))

	return l
}

// NewLoaderFromFile creates a [Loader] from a file path.
func NewLoaderFromFile(path string, opts ...LoaderOpt) (*Loader, error) {
	data, err := files.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	opts = append([]LoaderOpt{WithName(filepath.Base(path))}, opts...)

	return NewLoaderFromBytes(data, opts...), nil
}

// Validate validates the configuration data against the schema.
func (l *Loader) Validate() error {
	var anyConfig any

	err := yaml.NewDecoder(bytes.NewReader(l.data)).Decode(&anyConfig)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return l.wrap(err)
	}

	// An empty document is an empty config.
	if anyConfig == nil || l.validator == nil {
		return nil
	}

	err = l.validator.Validate(anyConfig)
	if err != nil {
		return l.wrap(err)
	}

	return nil
}

// Load validates, parses and returns the configuration.
func (l *Loader) Load() (*Config, error) {
	err := l.Validate()
	if err != nil {
		return nil, err
	}

	profiles := map[string]*profile.Profile{}

	err = yaml.NewDecoder(bytes.NewReader(l.data)).Decode(&profiles)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, l.wrap(err)
	}

	cfg := New(profiles)

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidConfig, l.name, err)
	}

	return cfg, nil
}

func (l *Loader) wrap(err error) error {
	err = l.yamlError.Wrap(err)

	var yamlErr *yaml.Error
	if errors.As(err, &yamlErr) {
		slog.Debug("invalid config",
			slog.String("name", l.name),
			slog.Int("line", yamlErr.Line()),
		)
	}

	return fmt.Errorf("%w %s: %w", ErrInvalidConfig, l.name, err)
}

// Schema returns the JSON schema of the configuration file.
func Schema() ([]byte, error) {
	b, err := yaml.ReflectSchema(map[string]*profile.Profile{})
	if err != nil {
		return nil, fmt.Errorf("reflect config schema: %w", err)
	}

	return b, nil
}

func mustNewValidator() *yaml.Validator {
	b, err := Schema()
	if err != nil {
		panic(err)
	}

	return yaml.MustNewValidator("/shelf.schema.json", b)
}
