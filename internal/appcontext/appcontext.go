// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type, so tests can substitute a mock with a recording
// trainer and a fake device detector.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/tunelab/preftune/internal/hardware"
	"github.com/tunelab/preftune/pkg/sweep"
)

// Interface defines the application context commands depend on.
type Interface interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// SweepOptions returns plan-construction options resolved from
	// configuration (save root, trainer config dir).
	SweepOptions() sweep.Options

	// Trainer returns the external trainer adapter.
	Trainer() sweep.Trainer

	// Relocator returns the scratch-file relocator.
	Relocator() sweep.Relocator

	// GPUDetector returns the accelerator detector.
	GPUDetector() hardware.Detector

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string
}
