package shelf

import (
	"log/slog"

	"github.com/macropower/shelf/pkg/ignorefile"
)

// Status is the state of the workspace ignore file.
type Status struct {
	// Path is the ignore file path.
	Path string `json:"path"`
	// Exists is false when there is no ignore file.
	Exists bool `json:"exists"`
	// ActiveProfile is the active profile name, or empty.
	ActiveProfile string `json:"activeProfile,omitempty"`
	// UserPatterns contains the patterns written outside the managed block.
	UserPatterns []string `json:"userPatterns"`
}

// Status reads the ignore file and reports the active profile and the user
// patterns. A missing ignore file is not an error.
func (w *Workspace) Status() (*Status, error) {
	path, text, exists, err := w.readIgnoreFile()
	if err != nil {
		return nil, err
	}

	st := &Status{
		Path:         path,
		Exists:       exists,
		UserPatterns: []string{},
	}
	if !exists {
		return st, nil
	}

	fileStatus := ignorefile.ReadStatus(text)
	if fileStatus.Blocks > 1 {
		slog.Warn("ignore file has more than one managed block, the next enable or disable keeps only the first",
			slog.String("path", path),
			slog.Int("blocks", fileStatus.Blocks),
		)
	}

	st.ActiveProfile = fileStatus.ActiveProfile
	st.UserPatterns = fileStatus.UserPatterns

	return st, nil
}
