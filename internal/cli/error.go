package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
)

// ErrorHandler prints err as a single "✖ Error:" line, followed by a help
// hint for usage errors.
func ErrorHandler(w io.Writer, styles fang.Styles, err error) {
	st := newStyles(w)

	mustN(fmt.Fprintln(w, st.failure.Render(failureGlyph+" Error:"), err.Error()))

	if isUsageError(err) {
		mustN(fmt.Fprintln(w))
		mustN(fmt.Fprintln(w, lipgloss.JoinHorizontal(
			lipgloss.Left,
			styles.ErrorText.UnsetWidth().UnsetMargins().Render("Try"),
			" ",
			styles.Program.Flag.Render("--help"),
			" ",
			styles.ErrorText.UnsetWidth().UnsetMargins().UnsetTransform().Render("for usage."),
		)))
	}
}

// XXX: this is a hack to detect usage errors.
// See: https://github.com/spf13/cobra/pull/2266
func isUsageError(err error) bool {
	s := err.Error()
	for _, prefix := range []string{
		"flag needs an argument:",
		"unknown flag:",
		"unknown shorthand flag:",
		"unknown command",
		"invalid argument",
		"accepts at most",
		"unknown output format",
	} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustN(_ int, err error) {
	must(err)
}
