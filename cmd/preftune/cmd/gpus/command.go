// Package gpus implements the command showing the detected hardware profile.
package gpus

import (
	"github.com/spf13/cobra"

	"github.com/tunelab/preftune/internal/appcontext"
	"github.com/tunelab/preftune/internal/cmd/output"
	"github.com/tunelab/preftune/internal/cmd/table"
	"github.com/tunelab/preftune/internal/hardware"
)

// NewCommand creates the gpus command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "gpus",
		Short: "Show the detected accelerator profile",
		Long: `Gpus runs the same device detection the launcher uses and prints the
resulting batch policy: device count, per-device batch size, and gradient
accumulation steps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile := hardware.DetectProfile(cmd.Context(), app.GPUDetector(), app.Logger())

			format := output.DetectFormat(app.OutputFormat())
			formatter := output.NewFormatter(format)
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return formatter.Format(cmd.OutOrStdout(), profile)
			default:
				return formatter.Format(cmd.OutOrStdout(), table.ProfileToTableData(profile))
			}
		},
	}
}
