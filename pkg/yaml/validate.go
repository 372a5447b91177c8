package yaml

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var msgPrinter = message.NewPrinter(language.English)

// Validator validates data against a JSON schema.
// Uses [github.com/santhosh-tekuri/jsonschema/v6].
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator creates a new [Validator] with the provided JSON schema data.
func NewValidator(url string, schemaData []byte) (*Validator, error) {
	var schema any

	err := json.Unmarshal(schemaData, &schema)
	if err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	err = compiler.AddResource(url, schema)
	if err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	jss, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Validator{schema: jss}, nil
}

func MustNewValidator(url string, schemaData []byte) *Validator {
	v, err := NewValidator(url, schemaData)
	if err != nil {
		panic(err)
	}

	return v
}

// Validate validates the given data against the schema.
// Schema violations are returned as an [*Error] whose Path points at the
// most specific offending value.
func (s *Validator) Validate(data any) error {
	err := s.schema.Validate(data)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("schema validation: %w", err)
	}

	cause := findMostSpecificCause(validationErr)

	return &Error{
		Err:  errors.New(cause.ErrorKind.LocalizedString(msgPrinter)),
		Path: buildPathFromLocation(cause.InstanceLocation),
	}
}

// findMostSpecificCause recursively searches through all causes to find the
// one with the longest InstanceLocation. On a tie, causes win over their
// parents, so the reported message describes the actual violation.
func findMostSpecificCause(err *jsonschema.ValidationError) *jsonschema.ValidationError {
	best := err

	for _, cause := range err.Causes {
		candidate := findMostSpecificCause(cause)

		switch {
		case len(candidate.InstanceLocation) > len(best.InstanceLocation):
			best = candidate
		case best == err && len(candidate.InstanceLocation) == len(best.InstanceLocation):
			best = candidate
		}
	}

	return best
}

// buildPathFromLocation converts an InstanceLocation slice to a [yaml.Path].
func buildPathFromLocation(location []string) *yaml.Path {
	current := NewPathBuilder().Root()

	for _, part := range location {
		index, err := strconv.ParseUint(part, 10, 0)
		if err == nil {
			current = current.Index(uint(index))
		} else {
			current = current.Child(part)
		}
	}

	return current.Build()
}
