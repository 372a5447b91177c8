package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/shelf/pkg/config"
)

func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of " + config.FileName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := config.Schema()
			if err != nil {
				return err
			}

			mustN(fmt.Fprintln(cmd.OutOrStdout(), string(b)))

			return nil
		},
	}
}
