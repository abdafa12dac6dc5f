// Package models implements the command listing supported model sizes.
package models

import (
	"github.com/spf13/cobra"

	"github.com/tunelab/preftune/internal/appcontext"
	"github.com/tunelab/preftune/internal/cmd/output"
	"github.com/tunelab/preftune/internal/cmd/table"
	"github.com/tunelab/preftune/pkg/models"
)

// NewCommand creates the models command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List supported model size tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			specs := models.All()

			format := output.DetectFormat(app.OutputFormat())
			formatter := output.NewFormatter(format)
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return formatter.Format(cmd.OutOrStdout(), specs)
			default:
				return formatter.Format(cmd.OutOrStdout(), table.ModelsToTableData(specs))
			}
		},
	}
}
