package yaml

import (
	"errors"
	"io"

	"github.com/goccy/go-yaml"
)

// Decoder reads YAML documents. Duplicate mapping keys are rejected.
type Decoder struct {
	d *yaml.Decoder
}

// NewDecoder creates a new [Decoder] reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		d: yaml.NewDecoder(r),
	}
}

// Decode decodes the next document into v.
// It returns [io.EOF] when there are no more documents, including when the
// input is empty.
func (d *Decoder) Decode(v any) error {
	err := d.d.Decode(v)
	if err == nil {
		return nil
	}

	var yamlErr yaml.Error
	if errors.As(err, &yamlErr) {
		return &Error{
			Err:   errors.New(yamlErr.GetMessage()),
			Token: yamlErr.GetToken(),
		}
	}

	//nolint:wrapcheck // Return the original error if it's not a [yaml.Error].
	return err
}
