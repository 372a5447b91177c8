package profile

import "strings"

const (
	// IgnoreAll is the first compiled line. It hides every path at every depth.
	IgnoreAll = "*"

	negate    = "!"
	separator = "/"
	recursive = "**"
)

// Compile returns the ignore-file lines for p, merged with global.
// The global profile may be nil.
//
// The result always starts with [IgnoreAll], followed by the re-included
// paths of p, the re-included paths of global, the excludes of p and
// finally the excludes of global.
func Compile(p, global *Profile) []string {
	lines := []string{IgnoreAll}

	for _, pr := range []*Profile{p, global} {
		if pr == nil {
			continue
		}
		for _, include := range pr.Includes {
			lines = append(lines, IncludePatterns(include)...)
		}
	}

	for _, pr := range []*Profile{p, global} {
		if pr == nil {
			continue
		}
		for _, exclude := range pr.Excludes {
			if strings.TrimSpace(exclude) == "" {
				continue
			}
			lines = append(lines, exclude)
		}
	}

	return lines
}

// IncludePatterns returns the negated, root-anchored patterns that re-include
// a single include path.
//
// Leading separators are stripped before anchoring, so "src" and "/src" both
// become "!/src". A trailing separator marks a directory, which needs a second
// pattern for its contents:
//
//	"src/"      -> "!/src", "!/src/**"
//	"README.md" -> "!/README.md"
//
// Blank entries (including a bare "/") produce no patterns.
func IncludePatterns(include string) []string {
	path := strings.TrimSpace(include)
	path = strings.TrimLeft(path, separator)

	isDir := strings.HasSuffix(path, separator)
	path = strings.TrimRight(path, separator)

	if path == "" {
		return nil
	}

	anchored := negate + separator + path
	if !isDir {
		return []string{anchored}
	}

	return []string{anchored, anchored + separator + recursive}
}
