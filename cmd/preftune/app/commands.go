package app

import (
	"github.com/spf13/cobra"

	"github.com/tunelab/preftune/cmd/preftune/cmd/gpus"
	modelscmd "github.com/tunelab/preftune/cmd/preftune/cmd/models"
	"github.com/tunelab/preftune/cmd/preftune/cmd/plan"
	"github.com/tunelab/preftune/cmd/preftune/cmd/ropo"
	"github.com/tunelab/preftune/cmd/preftune/cmd/run"
	"github.com/tunelab/preftune/cmd/preftune/cmd/validate"
	"github.com/tunelab/preftune/cmd/preftune/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Sweep commands
	rootCmd.AddCommand(run.NewCommand(a))
	rootCmd.AddCommand(ropo.NewCommand(a))
	rootCmd.AddCommand(plan.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(validate.NewCommand(a))
	rootCmd.AddCommand(modelscmd.NewCommand(a))
	rootCmd.AddCommand(gpus.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
}
