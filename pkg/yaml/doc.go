// Package yaml wraps [github.com/goccy/go-yaml] for decoding and encoding
// shelf configuration.
//
// Decoding and schema validation failures are returned as [*Error], which
// carries the position of the offending token (or the YAML path of the
// offending value) so that the message can point at the source.
package yaml
