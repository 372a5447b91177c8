package ignorefile

import "strings"

// Status describes the state of an ignore file.
type Status struct {
	// ActiveProfile is the profile named by the managed block, or empty if
	// no profile is active.
	ActiveProfile string
	// UserPatterns contains the non-blank, non-comment lines outside of the
	// managed block, trimmed, in file order.
	UserPatterns []string
	// Blocks is the number of managed blocks in the file.
	Blocks int
}

// IsActive reports whether a profile is active.
func (s *Status) IsActive() bool {
	return s.ActiveProfile != ""
}

// ReadStatus scans text and reports the active profile and user patterns.
// If more than one profile comment appears inside blocks, the last one wins.
func ReadStatus(text string) *Status {
	status := &Status{
		UserPatterns: []string{},
	}

	sc := NewScanner(text)
	for sc.Scan() {
		line := sc.Line()
		if line.Kind != LineText {
			continue
		}

		trimmed := strings.TrimSpace(line.Text)

		switch line.State {
		case Inside:
			if name, ok := strings.CutPrefix(trimmed, ProfilePrefix); ok {
				status.ActiveProfile = strings.TrimSpace(name)
			}

		case Outside:
			if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
				status.UserPatterns = append(status.UserPatterns, trimmed)
			}
		}
	}

	status.Blocks = sc.Blocks()

	return status
}
