package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/tunelab/preftune/internal/hardware"
	"github.com/tunelab/preftune/pkg/logging"
	"github.com/tunelab/preftune/pkg/sweep"
)

// Mock provides a mock implementation of Interface for testing. Each
// method can be customized by setting the corresponding function field;
// nil fields return defaults.
type Mock struct {
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	SweepOptionsFunc func() sweep.Options
	TrainerFunc      func() sweep.Trainer
	RelocatorFunc    func() sweep.Relocator
	GPUDetectorFunc  func() hardware.Detector
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
}

// Logger returns the mock logger or the Nop logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return &logging.Nop
}

// OutputFormat returns the mock format or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// SweepOptions returns the mock options or zero options.
func (m *Mock) SweepOptions() sweep.Options {
	if m.SweepOptionsFunc != nil {
		return m.SweepOptionsFunc()
	}
	return sweep.Options{}
}

// Trainer returns the mock trainer or nil.
func (m *Mock) Trainer() sweep.Trainer {
	if m.TrainerFunc != nil {
		return m.TrainerFunc()
	}
	return nil
}

// Relocator returns the mock relocator or nil.
func (m *Mock) Relocator() sweep.Relocator {
	if m.RelocatorFunc != nil {
		return m.RelocatorFunc()
	}
	return nil
}

// GPUDetector returns the mock detector or nil.
func (m *Mock) GPUDetector() hardware.Detector {
	if m.GPUDetectorFunc != nil {
		return m.GPUDetectorFunc()
	}
	return nil
}

// Version returns the mock version or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns the mock commit or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns the mock date or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
