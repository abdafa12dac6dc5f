package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.Info().Str("stage", "sft").Msg("hello")

	assert.Contains(t, buf.String(), `"stage":"sft"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestNewLoggerFromConfigLevels(t *testing.T) {
	cfg := &Config{Level: "warn", Format: "json", Output: "discard"}
	logger := NewLoggerFromConfig(cfg)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	cfg = &Config{Level: "nonsense", Format: "json", Output: "discard"}
	logger = NewLoggerFromConfig(cfg)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestContextRoundTrip(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)

	Ctx(ctx).Info().Msg("from context")
	assert.True(t, tl.Contains("from context"))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
	assert.Equal(t, Default(), FromContext(nil)) //nolint:staticcheck // nil context fallback is the point
}

func TestWithStageAndRunFields(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithStage(ctx, "dpo")
	ctx = WithRun(ctx, "qwen2_5-7b-dpo-dpo_ultrafeedback-lr_5e-7")

	Ctx(ctx).Info().Msg("launch")

	require.True(t, tl.Contains(`"stage":"dpo"`))
	assert.True(t, tl.Contains(`"run":"qwen2_5-7b-dpo-dpo_ultrafeedback-lr_5e-7"`))
}

func TestTestLoggerLines(t *testing.T) {
	tl := NewTestLogger(t)
	tl.Info().Msg("one")
	tl.Info().Msg("two")

	lines := tl.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.Contains(lines[0], "one"))
	assert.True(t, tl.ContainsAll("one", "two"))

	tl.Reset()
	assert.Empty(t, tl.Lines())
}
