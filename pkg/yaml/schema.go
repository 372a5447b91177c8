package yaml

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ReflectSchema generates a JSON schema for the type of v.
// Definitions are inlined and structs reject unknown properties.
// Uses [github.com/invopop/jsonschema].
func ReflectSchema(v any) ([]byte, error) {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}

	jss := r.Reflect(v)

	b, err := json.MarshalIndent(jss, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return b, nil
}

// NewValidatorFor creates a [Validator] from the reflected schema of v.
func NewValidatorFor(url string, v any) (*Validator, error) {
	schemaData, err := ReflectSchema(v)
	if err != nil {
		return nil, err
	}

	return NewValidator(url, schemaData)
}
