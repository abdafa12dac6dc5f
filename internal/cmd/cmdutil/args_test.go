package cmdutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunelab/preftune/pkg/errors"
	"github.com/tunelab/preftune/pkg/sweep"
)

func TestParseRunArgsMinimal(t *testing.T) {
	cfg, err := ParseRunArgs([]string{"7b", "dpo"})
	require.NoError(t, err)
	assert.Equal(t, sweep.MethodDPO, cfg.Method)
	assert.Equal(t, "Qwen/Qwen2.5-7B-Instruct", cfg.Model.ID)
	assert.Equal(t, "ultrafeedback_sft", cfg.SFTDataset)
	assert.Equal(t, "dpo_ultrafeedback", cfg.PrefDataset)
	assert.False(t, cfg.SkipSFT)
}

func TestParseRunArgsFull(t *testing.T) {
	cfg, err := ParseRunArgs([]string{"3b", "both", "my_sft", "my_pref", "skip"})
	require.NoError(t, err)
	assert.Equal(t, sweep.MethodBoth, cfg.Method)
	assert.Equal(t, "my_sft", cfg.SFTDataset)
	assert.Equal(t, "my_pref", cfg.PrefDataset)
	assert.True(t, cfg.SkipSFT)
}

func TestParseRunArgsRejectsBadTokens(t *testing.T) {
	_, err := ParseRunArgs([]string{"99b", "dpo"})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	_, err = ParseRunArgs([]string{"7b", "orpo"})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	_, err = ParseRunArgs([]string{"7b", "dpo", "a", "b", "yes"})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "skip")
}

func TestParseRopoArgs(t *testing.T) {
	cfg, err := ParseRopoArgs([]string{"14b"})
	require.NoError(t, err)
	assert.Equal(t, sweep.MethodROPO, cfg.Method)
	assert.Equal(t, "ultrafeedback_sft", cfg.SFTDataset)

	cfg, err = ParseRopoArgs([]string{"14b", "sft_ds", "ropo_ds"})
	require.NoError(t, err)
	assert.Equal(t, "sft_ds", cfg.SFTDataset)
	assert.Equal(t, "ropo_ds", cfg.PrefDataset)
}
