package shelf

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"

	"github.com/macropower/shelf/pkg/files"
	"github.com/macropower/shelf/pkg/ignorefile"
)

// Change is a planned rewrite of the ignore file.
type Change struct {
	// Path is the ignore file path.
	Path string
	// Profile is the enabled profile, or empty when disabling.
	Profile string
	// Before is the current file content.
	Before string
	// After is the content to write.
	After string
	// Create is true when the file does not exist yet.
	Create bool
	// Skip is true when there is nothing to do.
	Skip bool
}

// Modified reports whether applying the change alters the file on disk.
func (c *Change) Modified() bool {
	return !c.Skip && (c.Create || c.Before != c.After)
}

// Diff returns the change as a unified diff. It is empty when the change
// does not modify the file.
func (c *Change) Diff() string {
	if !c.Modified() {
		return ""
	}

	name := filepath.Base(c.Path)
	oldLabel := "a/" + name
	if c.Create {
		oldLabel = "/dev/null"
	}

	return udiff.Unified(oldLabel, "b/"+name, c.Before, c.After)
}

// PlanEnable computes the change that activates the named profile.
func (w *Workspace) PlanEnable(name string) (*Change, error) {
	cfg, _, err := w.LoadConfig()
	if err != nil {
		return nil, err
	}

	patterns, err := cfg.Compile(name)
	if err != nil {
		return nil, err
	}

	path, text, exists, err := w.readIgnoreFile()
	if err != nil {
		return nil, err
	}

	slog.Debug("compiled profile",
		slog.String("profile", name),
		slog.Int("patterns", len(patterns)),
	)

	return &Change{
		Path:    path,
		Profile: name,
		Before:  text,
		After:   ignorefile.Merge(text, ignorefile.NewBlock(name, patterns)),
		Create:  !exists,
	}, nil
}

// PlanDisable computes the change that empties the managed block.
// Without an ignore file the change is skipped.
func (w *Workspace) PlanDisable() (*Change, error) {
	path, text, exists, err := w.readIgnoreFile()
	if err != nil {
		return nil, err
	}
	if !exists {
		return &Change{Path: path, Skip: true}, nil
	}

	return &Change{
		Path:   path,
		Before: text,
		After:  ignorefile.Clear(text),
	}, nil
}

// Apply writes the change to disk.
func (w *Workspace) Apply(c *Change) error {
	if !c.Modified() {
		slog.Debug("ignore file unchanged", slog.String("path", c.Path))
		return nil
	}

	err := files.WriteFile(c.Path, []byte(c.After))
	if err != nil {
		return fmt.Errorf("write ignore file: %w", err)
	}

	slog.Debug("wrote ignore file",
		slog.String("path", c.Path),
		slog.Bool("created", c.Create),
	)

	return nil
}

// Enable activates the named profile and returns the applied change.
func (w *Workspace) Enable(name string) (*Change, error) {
	c, err := w.PlanEnable(name)
	if err != nil {
		return nil, err
	}

	err = w.Apply(c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Disable empties the managed block and returns the applied change.
func (w *Workspace) Disable() (*Change, error) {
	c, err := w.PlanDisable()
	if err != nil {
		return nil, err
	}

	err = w.Apply(c)
	if err != nil {
		return nil, err
	}

	return c, nil
}
