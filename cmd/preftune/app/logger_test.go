package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"both flags prefers quiet", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit level wins", Config{Verbose: true, LogLevel: "error"}, "error"},
		{"invalid level falls back", Config{LogLevel: "loud"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(&tt.config))
		})
	}
}

func TestAppNew(t *testing.T) {
	application, err := New("1.2.3", "abc123", "2026-08-29")
	assert.NoError(t, err)
	assert.Equal(t, "1.2.3", application.Version())
	assert.Equal(t, "abc123", application.Commit())
	assert.NotNil(t, application.Logger())
	assert.NotNil(t, application.Trainer())
	assert.NotNil(t, application.Relocator())
}
