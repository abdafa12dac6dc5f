// Package app provides the application context and dependency management
// for the preftune CLI. It centralizes configuration, logging, and the
// sweep collaborators (trainer, relocator, device detector) behind the
// appcontext interface commands depend on.
package app

import (
	"github.com/rs/zerolog"

	"github.com/tunelab/preftune/internal/appcontext"
	"github.com/tunelab/preftune/internal/hardware"
	"github.com/tunelab/preftune/internal/trainer"
	"github.com/tunelab/preftune/pkg/artifacts"
	"github.com/tunelab/preftune/pkg/errors"
	"github.com/tunelab/preftune/pkg/sweep"
)

// App represents the preftune application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Option customizes App construction.
type Option func(*App) error

// WithLogger overrides the configured logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// Version returns the version information.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// Logger returns the configured logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string { return a.config.Format }

// SweepOptions returns plan-construction options from configuration.
func (a *App) SweepOptions() sweep.Options {
	return sweep.Options{
		SaveRoot:  a.config.SaveRoot,
		ConfigDir: a.config.ConfigDir,
	}
}

// Trainer returns the external trainer adapter.
func (a *App) Trainer() sweep.Trainer {
	return trainer.New(a.config.TrainerBin, a.logger)
}

// Relocator returns the scratch-file relocator.
func (a *App) Relocator() sweep.Relocator {
	return artifacts.NewMover(a.config.ScratchDir, a.config.ScratchPattern)
}

// GPUDetector returns the accelerator detector.
func (a *App) GPUDetector() hardware.Detector {
	return hardware.NvidiaSMI{}
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)
