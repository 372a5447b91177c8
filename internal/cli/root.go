package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/shelf/pkg/config"
	"github.com/macropower/shelf/pkg/ignorefile"
	"github.com/macropower/shelf/pkg/log"
	"github.com/macropower/shelf/pkg/shelf"
)

const (
	cmdName = "shelf"
	cmdDesc = `Switch the files an AI assistant can see between named profiles.`
	cmdLong = cmdDesc + `

Profiles are read from the nearest ` + config.FileName + `. Enabling a profile writes
its patterns into a managed block in ` + ignorefile.FileName + `, leaving every line
outside of that block untouched.`
)

// RootArgs contains the flags shared by all commands.
type RootArgs struct {
	LogLevel   string
	LogFormat  string
	Dir        string
	ConfigPath string
	IgnoreFile string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "warn", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))
	cmd.PersistentFlags().
		StringVarP(&ra.Dir, "dir", "C", ".", "Directory to search for files from")
	cmd.PersistentFlags().
		StringVar(&ra.ConfigPath, "config", "", "Path to the config file, searched for when empty")
	cmd.PersistentFlags().
		StringVar(&ra.IgnoreFile, "ignore-file", "", "Path to the ignore file, searched for when empty")

	must(cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.MarkPersistentFlagDirname("dir"))
}

// Workspace returns the [shelf.Workspace] described by the flags.
func (ra *RootArgs) Workspace() *shelf.Workspace {
	opts := []shelf.Option{shelf.WithDir(ra.Dir)}
	if ra.ConfigPath != "" {
		opts = append(opts, shelf.WithConfigPath(ra.ConfigPath))
	}
	if ra.IgnoreFile != "" {
		opts = append(opts, shelf.WithIgnorePath(ra.IgnoreFile))
	}

	return shelf.New(opts...)
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		Long:              cmdLong,
		PersistentPreRunE: setupLogging(args),
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	args.AddFlags(cmd)
	cmd.AddCommand(
		NewListCmd(args),
		NewStatusCmd(args),
		NewEnableCmd(args),
		NewDisableCmd(args),
		NewInitCmd(args),
		NewSchemaCmd(),
	)

	bindEnvVars(cmd)

	return cmd
}

func setupLogging(rc *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		_, err := log.Setup(cmd.ErrOrStderr(), rc.LogLevel, rc.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		return nil
	}
}
