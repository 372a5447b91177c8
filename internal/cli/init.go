package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/shelf/pkg/config"
)

type InitArgs struct {
	*RootArgs

	Force bool
}

func NewInitCmd(rootArgs *RootArgs) *cobra.Command {
	ia := &InitArgs{RootArgs: rootArgs}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + config.FileName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, ia)
		},
	}

	cmd.Flags().BoolVar(&ia.Force, "force", false, "Back up and replace an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, ia *InitArgs) error {
	path, written, err := config.WriteDefault(ia.Dir, ia.Force)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if !written {
		mustN(fmt.Fprintf(w, "%s already exists. Use --force to replace it.\n", path))
		return nil
	}

	st := newStyles(w)
	mustN(fmt.Fprintln(w, st.successLine("Wrote "+path+".")))

	return nil
}
