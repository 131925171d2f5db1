package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/proars/domnix/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the domnix version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"domnix version %s (commit: %s, built: %s)\n",
				version.Version, version.Commit, version.Date)
			return err
		},
	}
}
