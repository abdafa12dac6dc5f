package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("model_size", "99b", []string{"0_5b", "3b", "7b", "14b", "32b"})

	assert.True(t, stderrors.Is(err, ErrInvalidInput))
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "model_size")
	assert.Contains(t, err.Error(), `"99b"`)
	assert.Contains(t, err.Error(), "0_5b, 3b, 7b, 14b, 32b")
}

func TestPreconditionError(t *testing.T) {
	err := NewPreconditionError("saves/qwen2_5-7b/full/sft/ultrafeedback_sft", "skip requested but SFT output directory is missing")

	assert.True(t, IsPrecondition(err))
	assert.False(t, IsValidation(err))
	assert.Contains(t, err.Error(), "saves/qwen2_5-7b/full/sft/ultrafeedback_sft")
}

func TestProcessError(t *testing.T) {
	cause := New("signal: killed")
	err := NewProcessError("llamafactory-cli", "qwen2_5-7b-dpo-dpo_ultrafeedback-lr_5e-7", 137, cause)

	assert.True(t, IsTrainerFailure(err))
	assert.ErrorIs(t, err, ErrTrainerFailed)
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.Equal(t, 137, ExitCode(err, 1))
	assert.Contains(t, err.Error(), "exit 137")
}

func TestExitCodeFallback(t *testing.T) {
	assert.Equal(t, 1, ExitCode(New("plain"), 1))
	assert.Equal(t, 2, ExitCode(nil, 2))
}

func TestConfigError(t *testing.T) {
	cause := New("yaml: line 3")
	err := NewConfigError("configs/dpo.yaml", "invalid trainer config", cause)

	assert.Contains(t, err.Error(), "configs/dpo.yaml")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}
