package sweep

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tunelab/preftune/pkg/artifacts"
)

// Trainer runs one external training invocation, blocking until the
// subprocess exits. Implementations must honor context cancellation by
// killing the child.
type Trainer interface {
	Train(ctx context.Context, inv Invocation) error
}

// Relocator drains loose result files into a run directory after a stage
// completes. Its outcome is logged, never propagated.
type Relocator interface {
	Relocate(destDir string) artifacts.Outcome
}

// Launcher executes a resolved plan strictly sequentially. Each invocation
// claims every visible accelerator, so there is never overlap: the next
// sweep point starts only after the previous subprocess has exited. The
// first trainer failure aborts the remainder with no retry and no cleanup;
// partially-written output directories stay on disk for inspection.
type Launcher struct {
	Trainer   Trainer
	Relocator Relocator
	Logger    *zerolog.Logger
}

// Run executes every invocation in order. It returns the first trainer
// error, or nil after the whole sweep completes.
func (l *Launcher) Run(ctx context.Context, plan []Invocation) error {
	for i, inv := range plan {
		l.Logger.Info().
			Str("stage", string(inv.Stage)).
			Str("run", inv.RunName).
			Str("lr", inv.LearningRate).
			Str("output_dir", inv.OutputDir).
			Int("point", i+1).
			Int("total", len(plan)).
			Msg("launching trainer")

		if err := l.Trainer.Train(ctx, inv); err != nil {
			return err
		}

		l.drainScratch(inv)
	}
	return nil
}

// drainScratch performs the best-effort relocation after a successful
// stage. Not every stage produces scratch files, so an empty match is
// expected and only logged at debug.
func (l *Launcher) drainScratch(inv Invocation) {
	if l.Relocator == nil {
		return
	}

	out := l.Relocator.Relocate(inv.OutputDir)
	switch out.Status {
	case artifacts.StatusMoved:
		l.Logger.Info().
			Str("run", inv.RunName).
			Strs("files", out.Moved).
			Msg("relocated result files")
	case artifacts.StatusNotFound:
		l.Logger.Debug().
			Str("run", inv.RunName).
			Msg("no result files to relocate")
	case artifacts.StatusError:
		l.Logger.Warn().
			Err(out.Err).
			Str("run", inv.RunName).
			Msg("result file relocation incomplete")
	}
}
