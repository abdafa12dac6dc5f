package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunelab/preftune/internal/hardware"
	"github.com/tunelab/preftune/pkg/errors"
)

// oneGPU is the 1-device fallback profile used across plan tests.
var oneGPU = hardware.Profile{GPUCount: 1, PerDeviceBatchSize: 8, GradAccumSteps: 8}

func mustConfig(t *testing.T, size, method string, skip bool) RunConfig {
	t.Helper()
	cfg, err := NewRunConfig(size, method, "", "", skip)
	require.NoError(t, err)
	return cfg
}

func TestNewRunConfigValidation(t *testing.T) {
	_, err := NewRunConfig("99b", "dpo", "", "", false)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	_, err = NewRunConfig("7b", "sft", "", "", false)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "dpo, ropo, both")
}

func TestNewRunConfigDefaults(t *testing.T) {
	cfg := mustConfig(t, "7b", "dpo", false)
	assert.Equal(t, "ultrafeedback_sft", cfg.SFTDataset)
	assert.Equal(t, "dpo_ultrafeedback", cfg.PrefDataset)
}

func TestMethodStages(t *testing.T) {
	assert.Equal(t, []Stage{StageDPO}, MethodDPO.Stages())
	assert.Equal(t, []Stage{StageROPO}, MethodROPO.Stages())
	assert.Equal(t, []Stage{StageDPO, StageROPO}, MethodBoth.Stages())
}

func TestBuildPlanDPO(t *testing.T) {
	cfg := mustConfig(t, "0_5b", "dpo", false)

	plan, err := BuildPlan(cfg, oneGPU, Options{})
	require.NoError(t, err)
	require.Len(t, plan, 5, "one SFT invocation plus four DPO sweep points")

	sft := plan[0]
	assert.Equal(t, StageSFT, sft.Stage)
	assert.Equal(t, "Qwen/Qwen2.5-0.5B-Instruct", sft.ModelPath)
	assert.Equal(t, "configs/sft.yaml", sft.ConfigFile)
	assert.Equal(t, "saves/qwen2_5-0_5b/full/sft/ultrafeedback_sft", sft.OutputDir)
	assert.Equal(t, 8, sft.BatchSize)
	assert.Equal(t, 8, sft.GradAccumSteps)

	wantLRs := []string{"5e-7", "1e-6", "5e-6", "1e-5"}
	for i, inv := range plan[1:] {
		assert.Equal(t, StageDPO, inv.Stage)
		assert.Equal(t, wantLRs[i], inv.LearningRate, "learning rates ascend")
		// Preference stages consume the SFT artifact directory.
		assert.Equal(t, sft.OutputDir, inv.ModelPath)
		assert.Equal(t, "configs/dpo.yaml", inv.ConfigFile)
		assert.Equal(t, "dpo_ultrafeedback", inv.Dataset)
	}
}

func TestBuildPlanBothOrdersDPOBeforeROPO(t *testing.T) {
	cfg := mustConfig(t, "3b", "both", false)

	plan, err := BuildPlan(cfg, oneGPU, Options{})
	require.NoError(t, err)
	require.Len(t, plan, 9)

	assert.Equal(t, StageSFT, plan[0].Stage)
	for _, inv := range plan[1:5] {
		assert.Equal(t, StageDPO, inv.Stage)
	}
	for _, inv := range plan[5:] {
		assert.Equal(t, StageROPO, inv.Stage)
	}
}

func TestBuildPlanSkipWithExistingDir(t *testing.T) {
	root := t.TempDir()
	cfg := mustConfig(t, "7b", "ropo", true)

	sftDir := NewLayout(root).SFTDir(cfg.Model, cfg.SFTDataset)
	require.NoError(t, os.MkdirAll(sftDir, 0o755))

	plan, err := BuildPlan(cfg, oneGPU, Options{SaveRoot: root})
	require.NoError(t, err)
	require.Len(t, plan, 4, "SFT stage must be bypassed")
	for _, inv := range plan {
		assert.Equal(t, StageROPO, inv.Stage)
		assert.Equal(t, sftDir, inv.ModelPath)
	}
}

func TestBuildPlanSkipWithMissingDir(t *testing.T) {
	root := t.TempDir()
	cfg := mustConfig(t, "7b", "dpo", true)

	plan, err := BuildPlan(cfg, oneGPU, Options{SaveRoot: root})
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.True(t, errors.IsPrecondition(err))
	assert.Contains(t, err.Error(), filepath.Join(root, "qwen2_5-7b", "full", "sft"))
}

func TestBuildPlanCustomConfigDir(t *testing.T) {
	cfg := mustConfig(t, "7b", "ropo", false)

	plan, err := BuildPlan(cfg, oneGPU, Options{ConfigDir: "/etc/preftune"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/preftune/sft.yaml", plan[0].ConfigFile)
	assert.Equal(t, "/etc/preftune/ropo.yaml", plan[1].ConfigFile)
}
