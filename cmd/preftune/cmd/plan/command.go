// Package plan implements the dry-run command that prints the resolved
// sweep without launching anything.
package plan

import (
	"github.com/spf13/cobra"

	"github.com/tunelab/preftune/internal/appcontext"
	"github.com/tunelab/preftune/internal/cmd/cmdutil"
	"github.com/tunelab/preftune/internal/cmd/output"
	"github.com/tunelab/preftune/internal/cmd/table"
	"github.com/tunelab/preftune/internal/hardware"
	"github.com/tunelab/preftune/pkg/sweep"
)

// NewCommand creates the plan command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "plan <model_size> <method> [sft_dataset] [pref_dataset] [skip]",
		GroupID: "sweep",
		Short:   "Show the invocations a sweep would launch",
		Args:    cobra.RangeArgs(2, 5),
		Long: `Plan resolves the same configuration as run (same arguments, same
validation, same hardware detection) and prints every trainer invocation
the sweep would perform, without launching any.`,
		Example: `  preftune plan 7b both
  preftune plan 7b dpo -o json
  preftune plan 7b ropo my_sft my_pref skip -o wide`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdutil.ParseRunArgs(args)
			if err != nil {
				return err
			}

			profile := hardware.DetectProfile(cmd.Context(), app.GPUDetector(), app.Logger())
			invocations, err := sweep.BuildPlan(cfg, profile, app.SweepOptions())
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			formatter := output.NewFormatter(format)
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return formatter.Format(cmd.OutOrStdout(), invocations)
			default:
				data := table.PlanToTableData(invocations, format == output.FormatWide)
				return formatter.Format(cmd.OutOrStdout(), data)
			}
		},
	}
}
