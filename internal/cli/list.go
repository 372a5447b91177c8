package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/macropower/shelf/pkg/config"
)

type ListArgs struct {
	*RootArgs

	Output string
}

func NewListCmd(rootArgs *RootArgs) *cobra.Command {
	la := &ListArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the available profiles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, la)
		},
	}

	addOutputFlag(cmd, &la.Output)

	return cmd
}

func runList(cmd *cobra.Command, la *ListArgs) error {
	err := validateOutput(la.Output)
	if err != nil {
		return err
	}

	entries, err := la.Workspace().List()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if la.Output != OutputText {
		return writeData(w, la.Output, entries)
	}

	writeList(w, entries)

	return nil
}

func writeList(w io.Writer, entries []config.Entry) {
	st := newStyles(w)

	if len(entries) == 0 {
		mustN(fmt.Fprintf(w, "No profiles defined in %s.\n", config.FileName))
		return
	}

	width := nameWidth
	for _, e := range entries {
		width = max(width, len([]rune(e.Name)))
	}

	mustN(fmt.Fprintln(w, st.title.Render("Available profiles:")))

	for _, e := range entries {
		line := st.name.Render(padRight(e.Name, width)) + ": " + e.Description
		mustN(fmt.Fprintln(w, st.bulletLine(line)))
	}
}
