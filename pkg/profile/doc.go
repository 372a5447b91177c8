// Package profile defines named sets of include and exclude path patterns,
// and compiles them into ignore-file lines.
//
// A compiled profile hides everything by default, re-includes the profile's
// paths (followed by the global profile's paths), and finally re-excludes the
// profile's and then the global profile's exclude patterns. Later lines win
// under gitignore semantics, so this order must not change.
package profile
