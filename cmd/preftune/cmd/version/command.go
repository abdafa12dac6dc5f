// Package version implements the version command.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunelab/preftune/internal/appcontext"
)

// NewCommand creates the version command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "preftune %s\n", app.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", app.Commit())
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", app.Date())
			return nil
		},
	}
}
