package sweep

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunelab/preftune/internal/hardware"
	"github.com/tunelab/preftune/pkg/artifacts"
	"github.com/tunelab/preftune/pkg/errors"
	"github.com/tunelab/preftune/pkg/logging"
)

// recordingTrainer records invocations and can fail at a chosen point.
type recordingTrainer struct {
	invocations []Invocation
	failAt      int // 1-based; 0 means never fail
	err         error
}

func (r *recordingTrainer) Train(_ context.Context, inv Invocation) error {
	r.invocations = append(r.invocations, inv)
	if r.failAt > 0 && len(r.invocations) == r.failAt {
		return r.err
	}
	return nil
}

type stubRelocator struct {
	dests   []string
	outcome artifacts.Outcome
}

func (s *stubRelocator) Relocate(dest string) artifacts.Outcome {
	s.dests = append(s.dests, dest)
	return s.outcome
}

func TestLauncherRunsWholePlanInOrder(t *testing.T) {
	cfg := mustConfig(t, "0_5b", "dpo", false)
	plan, err := BuildPlan(cfg, oneGPU, Options{})
	require.NoError(t, err)

	trainer := &recordingTrainer{}
	log := logging.NewTestLogger(t)
	l := &Launcher{Trainer: trainer, Logger: log.Logger}

	require.NoError(t, l.Run(context.Background(), plan))
	require.Len(t, trainer.invocations, 5)
	assert.Equal(t, plan, trainer.invocations)
	assert.True(t, log.Contains("launching trainer"))
}

func TestLauncherAbortsOnFirstTrainerFailure(t *testing.T) {
	cfg := mustConfig(t, "3b", "both", false)
	plan, err := BuildPlan(cfg, oneGPU, Options{})
	require.NoError(t, err)

	bang := errors.NewProcessError("llamafactory-cli", plan[2].RunName, 1, errors.New("boom"))
	trainer := &recordingTrainer{failAt: 3, err: bang}
	log := logging.NewTestLogger(t)
	l := &Launcher{Trainer: trainer, Logger: log.Logger}

	err = l.Run(context.Background(), plan)
	require.Error(t, err)
	assert.True(t, errors.IsTrainerFailure(err))
	// No retry and nothing after the failed point.
	assert.Len(t, trainer.invocations, 3)
}

func TestLauncherDrainsScratchAfterEachPoint(t *testing.T) {
	cfg := mustConfig(t, "7b", "ropo", false)
	plan, err := BuildPlan(cfg, oneGPU, Options{})
	require.NoError(t, err)

	reloc := &stubRelocator{outcome: artifacts.Outcome{Status: artifacts.StatusNotFound}}
	log := logging.NewTestLogger(t)
	l := &Launcher{Trainer: &recordingTrainer{}, Relocator: reloc, Logger: log.Logger}

	require.NoError(t, l.Run(context.Background(), plan))
	require.Len(t, reloc.dests, len(plan))
	for i, inv := range plan {
		assert.Equal(t, inv.OutputDir, reloc.dests[i])
	}
}

func TestLauncherRelocationFailureIsNotFatal(t *testing.T) {
	cfg := mustConfig(t, "7b", "dpo", false)
	plan, err := BuildPlan(cfg, oneGPU, Options{})
	require.NoError(t, err)

	reloc := &stubRelocator{outcome: artifacts.Outcome{
		Status: artifacts.StatusError,
		Err:    errors.New("cross-device link"),
	}}
	log := logging.NewTestLogger(t)
	l := &Launcher{Trainer: &recordingTrainer{}, Relocator: reloc, Logger: log.Logger}

	require.NoError(t, l.Run(context.Background(), plan))
	assert.True(t, log.Contains("relocation incomplete"))
}

func TestLauncherNoRelocator(t *testing.T) {
	plan := []Invocation{{Stage: StageDPO, RunName: "r"}}
	log := logging.NewTestLogger(t)
	l := &Launcher{Trainer: &recordingTrainer{}, Logger: log.Logger}
	assert.NoError(t, l.Run(context.Background(), plan))
}

// End-to-end ordering check across plan + launcher for the both-methods
// case: sft first, then every dpo point, then every ropo point, never
// interleaved.
func TestSweepStageOrdering(t *testing.T) {
	cfg := mustConfig(t, "3b", "both", false)
	prof := hardware.Profile{GPUCount: 8, PerDeviceBatchSize: 2, GradAccumSteps: 4}
	plan, err := BuildPlan(cfg, prof, Options{})
	require.NoError(t, err)

	trainer := &recordingTrainer{}
	log := logging.NewTestLogger(t)
	require.NoError(t, (&Launcher{Trainer: trainer, Logger: log.Logger}).Run(context.Background(), plan))

	var stages []Stage
	for _, inv := range trainer.invocations {
		stages = append(stages, inv.Stage)
	}
	assert.Equal(t, []Stage{
		StageSFT,
		StageDPO, StageDPO, StageDPO, StageDPO,
		StageROPO, StageROPO, StageROPO, StageROPO,
	}, stages)
}
