package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "llamafactory-cli", config.TrainerBin)
	assert.Equal(t, "saves", config.SaveRoot)
	assert.Equal(t, "configs", config.ConfigDir)
	assert.Equal(t, "/tmp/llamafactory-results", config.ScratchDir)
	assert.Equal(t, "*.json", config.ScratchPattern)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("PREFTUNE_TRAINER_BIN", "/opt/llamafactory/bin/llamafactory-cli")
	t.Setenv("PREFTUNE_SCRATCH_DIR", "/scratch/results")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/opt/llamafactory/bin/llamafactory-cli", config.TrainerBin)
	assert.Equal(t, "/scratch/results", config.ScratchDir)
}

func TestLoadFileMergesOnlyPresentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preftune.yaml")
	require.NoError(t, os.WriteFile(path, []byte("save_root: /data/saves\nlog_level: debug\n"), 0o644))

	config, err := LoadConfig()
	require.NoError(t, err)
	require.NoError(t, config.LoadFile(path))

	assert.Equal(t, "/data/saves", config.SaveRoot)
	assert.Equal(t, "debug", config.LogLevel)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "llamafactory-cli", config.TrainerBin)
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Format: "table", LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "json", "")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "json", config.Format)
	// Empty flag values keep the previous setting.
	assert.Equal(t, "info", config.LogLevel)

	config.UpdateFromFlags(false, true, false, "", "debug")
	assert.True(t, config.Quiet)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
}
