// Package shelf ties the configuration and the managed ignore file together.
//
// A [Workspace] resolves both files relative to a working directory and
// exposes the list, status, enable and disable operations. Enable and
// disable are split into planning a [Change] and applying it, so callers can
// preview the diff before anything is written.
package shelf
