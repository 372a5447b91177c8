package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/macropower/shelf/pkg/config"
)

var (
	// ErrNotInteractive is returned when a prompt is needed but stdin is not
	// a terminal.
	ErrNotInteractive = errors.New("invalid argument: a profile name is required when not running in a terminal")

	// ErrNoProfile is returned when the picker ends without a selection.
	ErrNoProfile = errors.New("no profile selected")
)

type pickFunc func(ctx context.Context, entries []config.Entry) (string, error)

// pickProfile displays a CLI prompt for selecting one of entries.
func pickProfile(ctx context.Context, entries []config.Entry) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", ErrNotInteractive
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("%w: %s has no profiles", ErrNoProfile, config.FileName)
	}

	options := make([]huh.Option[string], 0, len(entries))
	for _, e := range entries {
		label := e.Name
		if e.Description != "" {
			label = fmt.Sprintf("%s - %s", e.Name, e.Description)
		}

		options = append(options, huh.NewOption(label, e.Name))
	}

	var name string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a profile to enable").
				Options(options...).
				Value(&name),
		),
	).WithShowHelp(false)

	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return "", ErrNoProfile
	}
	if err != nil {
		return "", fmt.Errorf("run profile picker: %w", err)
	}

	return name, nil
}
