// Package run implements the full-pipeline sweep command.
package run

import (
	"github.com/spf13/cobra"

	"github.com/tunelab/preftune/internal/appcontext"
	"github.com/tunelab/preftune/internal/cmd/cmdutil"
	"github.com/tunelab/preftune/internal/hardware"
	"github.com/tunelab/preftune/pkg/sweep"
)

// NewCommand creates the run command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "run <model_size> <method> [sft_dataset] [pref_dataset] [skip]",
		GroupID: "sweep",
		Short:   "Run the staged preference-tuning sweep",
		Args:    cobra.RangeArgs(2, 5),
		Long: `Run launches the full pipeline for one model size: the supervised
fine-tuning stage, then one trainer invocation per method and learning
rate. Invocations are strictly sequential; each one claims every visible
GPU and the next starts only after the previous exits.

model_size is one of: 0_5b, 3b, 7b, 14b, 32b.
method is one of: dpo, ropo, both (both runs dpo first).
Passing the literal token "skip" as the fifth argument bypasses the SFT
stage; its output directory from a previous run must already exist.

The first trainer failure aborts the sweep with the trainer's exit code.
There is no retry: training runs are expensive and not idempotent mid-run,
so a failed stage needs human inspection before relaunch.`,
		Example: `  preftune run 7b dpo                   # SFT then the DPO learning-rate sweep
  preftune run 3b both                  # SFT, DPO sweep, then ROPO sweep
  preftune run 7b dpo my_sft my_pref    # custom datasets
  preftune run 7b ropo my_sft my_pref skip   # reuse an existing SFT checkpoint`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdutil.ParseRunArgs(args)
			if err != nil {
				return err
			}
			return Execute(cmd, app, cfg)
		},
	}
}

// Execute resolves the hardware profile, builds the plan, and runs it.
// Shared with the ropo command, which differs only in argument grammar.
func Execute(cmd *cobra.Command, app appcontext.Interface, cfg sweep.RunConfig) error {
	ctx := cmd.Context()
	logger := app.Logger()

	profile := hardware.DetectProfile(ctx, app.GPUDetector(), logger)
	logger.Info().
		Int("gpus", profile.GPUCount).
		Int("batch_size", profile.PerDeviceBatchSize).
		Int("grad_accum", profile.GradAccumSteps).
		Str("model", cfg.Model.ID).
		Str("method", string(cfg.Method)).
		Msg("sweep resolved")

	plan, err := sweep.BuildPlan(cfg, profile, app.SweepOptions())
	if err != nil {
		return err
	}

	launcher := &sweep.Launcher{
		Trainer:   app.Trainer(),
		Relocator: app.Relocator(),
		Logger:    logger,
	}
	if err := launcher.Run(ctx, plan); err != nil {
		return err
	}

	logger.Info().Int("points", len(plan)).Msg("sweep complete")
	return nil
}
