package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

type DisableArgs struct {
	*RootArgs

	DryRun bool
}

func NewDisableCmd(rootArgs *RootArgs) *cobra.Command {
	da := &DisableArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "disable",
		Short: "Clear the active profile",
		Long: `Clear the active profile by emptying the managed block.

Nothing is done if there is no ignore file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDisable(cmd, da)
		},
	}

	cmd.Flags().BoolVar(&da.DryRun, "dry-run", false, "Print the changes as a diff without writing them")

	return cmd
}

func runDisable(cmd *cobra.Command, da *DisableArgs) error {
	ws := da.Workspace()
	w := cmd.OutOrStdout()

	if da.DryRun {
		c, err := ws.PlanDisable()
		if err != nil {
			return err
		}

		writeDiff(w, c)

		return nil
	}

	c, err := ws.Disable()
	if err != nil {
		return err
	}

	name := filepath.Base(c.Path)
	if c.Skip {
		mustN(fmt.Fprintf(w, "No %s file found. Nothing to disable.\n", name))
		return nil
	}

	st := newStyles(w)
	mustN(fmt.Fprintln(w, st.successLine(
		fmt.Sprintf("All shelf profiles disabled. %s updated.", name),
	)))

	return nil
}
