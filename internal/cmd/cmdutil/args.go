// Package cmdutil provides shared helpers for CLI commands.
package cmdutil

import (
	"github.com/tunelab/preftune/pkg/constants"
	"github.com/tunelab/preftune/pkg/errors"
	"github.com/tunelab/preftune/pkg/sweep"
)

// ParseRunArgs resolves the positional grammar of the full pipeline
// launcher: <model_size> <method> [sft_dataset] [pref_dataset] [skip].
// All validation happens here, before any side effect.
func ParseRunArgs(args []string) (sweep.RunConfig, error) {
	var sftDataset, prefDataset string
	skip := false

	if len(args) > 2 {
		sftDataset = args[2]
	}
	if len(args) > 3 {
		prefDataset = args[3]
	}
	if len(args) > 4 {
		if args[4] != constants.SkipToken {
			return sweep.RunConfig{}, errors.NewValidationError("skip_sft", args[4], []string{constants.SkipToken})
		}
		skip = true
	}

	return sweep.NewRunConfig(args[0], args[1], sftDataset, prefDataset, skip)
}

// ParseRopoArgs resolves the positional grammar of the ropo-only launcher:
// <model_size> [sft_dataset] [ropo_dataset].
func ParseRopoArgs(args []string) (sweep.RunConfig, error) {
	var sftDataset, ropoDataset string
	if len(args) > 1 {
		sftDataset = args[1]
	}
	if len(args) > 2 {
		ropoDataset = args[2]
	}

	return sweep.NewRunConfig(args[0], string(sweep.MethodROPO), sftDataset, ropoDataset, false)
}
