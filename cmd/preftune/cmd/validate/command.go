// Package validate implements the trainer-config validation command.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunelab/preftune/internal/appcontext"
	"github.com/tunelab/preftune/internal/trainer"
	"github.com/tunelab/preftune/pkg/constants"
)

// NewCommand creates the validate command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the trainer stage config files",
		Long: `Validate checks that every stage config file (sft.yaml, dpo.yaml,
ropo.yaml) exists in the configured config directory and parses into a
launchable trainer configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := app.SweepOptions().ConfigDir
			if dir == "" {
				dir = constants.DefaultConfigDir
			}
			if err := trainer.ValidateConfigDir(dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configs in %s are valid\n", dir)
			return nil
		},
	}
}
