// Package artifacts relocates loose result files the trainer drops in a
// shared scratch directory into the per-run output directory. Relocation is
// an optional side effect: not every stage produces scratch files, so an
// empty match is a normal outcome, not an error.
package artifacts

import (
	"os"
	"path/filepath"

	"github.com/tunelab/preftune/pkg/constants"
)

// Status classifies the result of one relocation pass.
type Status int

const (
	// StatusMoved means at least one file was relocated.
	StatusMoved Status = iota
	// StatusNotFound means nothing in scratch matched the pattern.
	StatusNotFound
	// StatusError means at least one file could not be relocated.
	StatusError
)

// String returns the status label for logging.
func (s Status) String() string {
	switch s {
	case StatusMoved:
		return "moved"
	case StatusNotFound:
		return "not_found"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome reports what a relocation pass did. Callers log it; they never
// treat it as fatal.
type Outcome struct {
	Status Status
	Moved  []string
	Err    error
}

// Mover drains files matching Pattern from ScratchDir into run directories.
type Mover struct {
	ScratchDir string
	Pattern    string
}

// NewMover creates a Mover with the default pattern when none is given.
func NewMover(scratchDir, pattern string) Mover {
	if pattern == "" {
		pattern = constants.DefaultScratchPattern
	}
	return Mover{ScratchDir: scratchDir, Pattern: pattern}
}

// Relocate moves every matching scratch file into destDir. Files that fail
// to move are skipped; the first failure is kept in the outcome. A missing
// or empty scratch directory yields StatusNotFound.
func (m Mover) Relocate(destDir string) Outcome {
	matches, err := filepath.Glob(filepath.Join(m.ScratchDir, m.Pattern))
	if err != nil {
		return Outcome{Status: StatusError, Err: err}
	}
	if len(matches) == 0 {
		return Outcome{Status: StatusNotFound}
	}

	if err := os.MkdirAll(destDir, constants.DirPermissions); err != nil {
		return Outcome{Status: StatusError, Err: err}
	}

	out := Outcome{Status: StatusMoved}
	for _, src := range matches {
		dst := filepath.Join(destDir, filepath.Base(src))
		if err := os.Rename(src, dst); err != nil {
			if out.Err == nil {
				out.Err = err
			}
			out.Status = StatusError
			continue
		}
		out.Moved = append(out.Moved, dst)
	}
	return out
}
