// Package trainer adapts sweep invocations into external
// `llamafactory-cli train` subprocess calls. The trainer is an opaque
// collaborator: a zero exit is taken to mean the output directory the
// launcher specified was produced.
package trainer

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/tunelab/preftune/pkg/constants"
	"github.com/tunelab/preftune/pkg/errors"
	"github.com/tunelab/preftune/pkg/sweep"
)

// CLI invokes the external trainer as a blocking subprocess. The
// distributed-launch flag is passed as explicit child environment rather
// than exported into this process.
type CLI struct {
	// Bin is the trainer executable, default llamafactory-cli.
	Bin string

	// Env holds extra KEY=VALUE entries appended to the child environment.
	Env []string

	// Logger for per-invocation diagnostics.
	Logger *zerolog.Logger
}

// New creates a CLI trainer with the forced torchrun launch mode set.
func New(bin string, logger *zerolog.Logger) *CLI {
	if bin == "" {
		bin = constants.DefaultTrainerBin
	}
	return &CLI{
		Bin:    bin,
		Env:    []string{"FORCE_TORCHRUN=1"},
		Logger: logger,
	}
}

// Args builds the argv tail for one invocation: the train verb, the stage
// config file, then the hyperparameter overrides as key=value pairs.
func Args(inv sweep.Invocation) []string {
	return []string{
		"train",
		inv.ConfigFile,
		"model_name_or_path=" + inv.ModelPath,
		"dataset=" + inv.Dataset,
		"output_dir=" + inv.OutputDir,
		"run_name=" + inv.RunName,
		"learning_rate=" + inv.LearningRate,
		fmt.Sprintf("per_device_train_batch_size=%d", inv.BatchSize),
		fmt.Sprintf("gradient_accumulation_steps=%d", inv.GradAccumSteps),
	}
}

// Train implements sweep.Trainer. It blocks until the subprocess exits,
// streaming trainer output to this process's stdout/stderr. No timeout is
// enforced; cancellation of ctx kills the child. A non-zero exit becomes a
// ProcessError carrying the exit code; there is no retry.
func (c *CLI) Train(ctx context.Context, inv sweep.Invocation) error {
	args := Args(inv)
	cmd := exec.CommandContext(ctx, c.Bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), c.Env...)

	c.Logger.Debug().
		Str("bin", c.Bin).
		Strs("args", args).
		Strs("extra_env", c.Env).
		Msg("exec trainer")

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return errors.ErrCanceled
		}
		exitCode := 1
		if ee, ok := err.(*exec.ExitError); ok {
			exitCode = ee.ExitCode()
		}
		return errors.NewProcessError(c.Bin, inv.RunName, exitCode, err)
	}
	return nil
}
