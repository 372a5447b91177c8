package ignorefile

import "strings"

const (
	// FileName is the default name of the managed ignore file.
	FileName = ".geminiignore"

	// StartMarker opens the managed block.
	StartMarker = "# --- SHELF START ---"
	// EndMarker closes the managed block.
	EndMarker = "# --- SHELF END ---"

	// ProfilePrefix starts the comment line that names the active profile.
	ProfilePrefix = "# Profile: "
)

// Block is the content of a managed block.
// The zero value is the empty block, which represents the disabled state.
type Block struct {
	// Profile is the name of the active profile, if any.
	Profile string
	// Patterns contains the compiled ignore patterns.
	Patterns []string
}

// NewBlock creates a [Block] for the named profile.
func NewBlock(profileName string, patterns []string) Block {
	return Block{
		Profile:  profileName,
		Patterns: patterns,
	}
}

// IsEmpty reports whether the block has neither a profile nor patterns.
func (b Block) IsEmpty() bool {
	return b.Profile == "" && len(b.Patterns) == 0
}

// Lines returns the block lines, including both markers.
func (b Block) Lines() []string {
	lines := make([]string, 0, len(b.Patterns)+3)
	lines = append(lines, StartMarker)

	if b.Profile != "" {
		lines = append(lines, ProfilePrefix+b.Profile)
	}

	lines = append(lines, b.Patterns...)
	lines = append(lines, EndMarker)

	return lines
}

// String returns the block lines joined by newlines, without a trailing newline.
func (b Block) String() string {
	return strings.Join(b.Lines(), "\n")
}
