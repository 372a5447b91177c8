// Package config loads shelf profile configuration.
//
// A configuration file is a YAML mapping of profile names to profiles. The
// reserved "global" key is split out of the mapping when loading, and is
// merged into every profile at compile time. It can never be selected on its
// own.
package config
