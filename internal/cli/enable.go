package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/macropower/shelf/pkg/shelf"
)

type EnableArgs struct {
	*RootArgs

	pick   pickFunc
	DryRun bool
}

func NewEnableCmd(rootArgs *RootArgs) *cobra.Command {
	ea := &EnableArgs{
		RootArgs: rootArgs,
		pick:     pickProfile,
	}

	cmd := &cobra.Command{
		Use:   "enable [profile]",
		Short: "Activate a profile",
		Long: `Activate a profile by writing its patterns into the managed block.

The ignore file is created if it does not exist. Without a profile name,
an interactive picker is shown when running in a terminal.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: profileCompletion(rootArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnable(cmd, ea, args)
		},
	}

	cmd.Flags().BoolVar(&ea.DryRun, "dry-run", false, "Print the changes as a diff without writing them")

	return cmd
}

func runEnable(cmd *cobra.Command, ea *EnableArgs, args []string) error {
	ws := ea.Workspace()

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		entries, err := ws.List()
		if err != nil {
			return err
		}

		name, err = ea.pick(cmd.Context(), entries)
		if err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()

	if ea.DryRun {
		c, err := ws.PlanEnable(name)
		if err != nil {
			return err
		}

		writeDiff(w, c)

		return nil
	}

	c, err := ws.Enable(name)
	if err != nil {
		return err
	}

	slog.Debug("enabled profile",
		slog.String("profile", name),
		slog.String("path", c.Path),
		slog.Bool("modified", c.Modified()),
	)

	st := newStyles(w)
	mustN(fmt.Fprintln(w, st.successLine(
		fmt.Sprintf("Activated profile '%s'. %s updated.", name, filepath.Base(c.Path)),
	)))

	return nil
}

func writeDiff(w io.Writer, c *shelf.Change) {
	diff := c.Diff()
	if diff == "" {
		mustN(fmt.Fprintf(w, "No changes to %s.\n", filepath.Base(c.Path)))
		return
	}

	mustN(fmt.Fprint(w, diff))
}

// profileCompletion completes the first argument with profile names.
func profileCompletion(ra *RootArgs) cobra.CompletionFunc {
	return func(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		return tryGetProfileNames(ra), cobra.ShellCompDirectiveNoFileComp
	}
}

// Try to load the config to get the available profiles.
func tryGetProfileNames(ra *RootArgs) []cobra.Completion {
	cfg, _, err := ra.Workspace().LoadConfig()
	if err != nil {
		return nil
	}

	names := cfg.Names()

	completions := make([]cobra.Completion, 0, len(names))
	for _, name := range names {
		completions = append(completions, cobra.CompletionWithDesc(name, cfg.Profiles[name].String()))
	}

	return completions
}
