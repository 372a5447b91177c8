package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/macropower/shelf/pkg/yaml"
)

const (
	successGlyph = "✔"
	failureGlyph = "✖"
	bullet       = "•"

	// Minimum width of the name column in listings.
	nameWidth = 14
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

var (
	ErrUnknownOutput = errors.New("unknown output format")

	AllOutputs = []string{OutputText, OutputYAML, OutputJSON}
)

type styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	title   lipgloss.Style
	name    lipgloss.Style
	subtle  lipgloss.Style
}

// newStyles creates styles rendered for w, so that color is only used when
// w supports it.
func newStyles(w io.Writer) *styles {
	r := lipgloss.NewRenderer(w)

	return &styles{
		success: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD787"}).Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}).Bold(true),
		title:   r.NewStyle().Bold(true),
		name:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5F00D7", Dark: "#AF87FF"}),
		subtle:  r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#767676", Dark: "#8A8A8A"}),
	}
}

func (s *styles) successLine(msg string) string {
	return s.success.Render(successGlyph) + " " + msg
}

func (s *styles) bulletLine(text string) string {
	return s.subtle.Render(bullet) + " " + text
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}

	return s + strings.Repeat(" ", width-n)
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", OutputText,
		fmt.Sprintf("Output format, one of: %s", AllOutputs))

	must(cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(AllOutputs, cobra.ShellCompDirectiveNoFileComp),
	))
}

func validateOutput(output string) error {
	if !slices.Contains(AllOutputs, output) {
		return fmt.Errorf("%w %q, must be one of: %s", ErrUnknownOutput, output, strings.Join(AllOutputs, ", "))
	}

	return nil
}

// writeData writes v to w in a structured output format.
func writeData(w io.Writer, output string, v any) error {
	switch output {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		err := enc.Encode(v)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

	case OutputYAML:
		enc := yaml.NewEncoder(w)

		err := enc.Encode(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		err = enc.Close()
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

	default:
		return fmt.Errorf("%w %q", ErrUnknownOutput, output)
	}

	return nil
}
