package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/macropower/shelf/pkg/shelf"
)

type StatusArgs struct {
	*RootArgs

	Output string
}

func NewStatusCmd(rootArgs *RootArgs) *cobra.Command {
	sa := &StatusArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active profile and user-defined patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, sa)
		},
	}

	addOutputFlag(cmd, &sa.Output)

	return cmd
}

func runStatus(cmd *cobra.Command, sa *StatusArgs) error {
	err := validateOutput(sa.Output)
	if err != nil {
		return err
	}

	st, err := sa.Workspace().Status()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if sa.Output != OutputText {
		return writeData(w, sa.Output, st)
	}

	writeStatus(w, st)

	return nil
}

func writeStatus(w io.Writer, st *shelf.Status) {
	s := newStyles(w)

	if !st.Exists {
		mustN(fmt.Fprintf(w, "No %s file found.\n", filepath.Base(st.Path)))
		return
	}

	if st.ActiveProfile != "" {
		mustN(fmt.Fprintf(w, "Profile '%s' is active.\n", s.name.Render(st.ActiveProfile)))
	} else {
		mustN(fmt.Fprintln(w, "No shelf profile is active."))
	}

	if len(st.UserPatterns) == 0 {
		return
	}

	mustN(fmt.Fprintln(w))
	mustN(fmt.Fprintln(w, s.title.Render("User-defined patterns:")))

	for _, p := range st.UserPatterns {
		mustN(fmt.Fprintln(w, s.bulletLine(p)))
	}
}
