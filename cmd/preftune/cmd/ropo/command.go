// Package ropo implements the ropo-only launcher variant.
package ropo

import (
	"github.com/spf13/cobra"

	"github.com/tunelab/preftune/cmd/preftune/cmd/run"
	"github.com/tunelab/preftune/internal/appcontext"
	"github.com/tunelab/preftune/internal/cmd/cmdutil"
)

// NewCommand creates the ropo command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "ropo <model_size> [sft_dataset] [ropo_dataset]",
		GroupID: "sweep",
		Short:   "Run the SFT stage and the ROPO learning-rate sweep",
		Args:    cobra.RangeArgs(1, 3),
		Long: `Ropo is the second launcher variant: supervised fine-tuning followed
by the ROPO learning-rate sweep only, with positional dataset overrides.`,
		Example: `  preftune ropo 7b
  preftune ropo 7b my_sft my_ropo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdutil.ParseRopoArgs(args)
			if err != nil {
				return err
			}
			return run.Execute(cmd, app, cfg)
		},
	}
}
