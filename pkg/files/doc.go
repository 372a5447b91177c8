// Package files contains the filesystem helpers used to locate, read and
// replace shelf's configuration and ignore files.
package files
