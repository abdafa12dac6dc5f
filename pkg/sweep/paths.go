package sweep

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tunelab/preftune/pkg/constants"
	"github.com/tunelab/preftune/pkg/models"
)

// Layout derives output directories and run names. Both are pure functions
// of the parameter tuple: identical inputs always produce byte-identical
// strings, so reruns land in the same directory.
type Layout struct {
	// SaveRoot is the root directory for run artifacts.
	SaveRoot string
}

// NewLayout returns a Layout rooted at saveRoot, defaulting to "saves".
func NewLayout(saveRoot string) Layout {
	if saveRoot == "" {
		saveRoot = constants.DefaultSaveRoot
	}
	return Layout{SaveRoot: saveRoot}
}

// LRToken makes a learning-rate string filesystem- and shell-safe by
// replacing every literal "." with "p" (e.g. "1.5e-6" -> "1p5e-6").
func LRToken(lr string) string {
	return strings.ReplaceAll(lr, ".", "p")
}

// modelDir is the per-model path segment, e.g. "qwen2_5-7b".
func modelDir(m models.Spec) string {
	return fmt.Sprintf("%s-%s", m.Family, m.SizeLabel)
}

// StageDir returns the output directory for one preference sweep point:
// <root>/<family>-<size>/full/<stage>/<dataset>/lr_<token>.
func (l Layout) StageDir(m models.Spec, stage Stage, dataset, lr string) string {
	return filepath.Join(l.SaveRoot, modelDir(m), "full", string(stage), dataset, "lr_"+LRToken(lr))
}

// SFTDir returns the supervised fine-tuning output directory. The SFT
// learning rate is fixed, so the path omits the lr segment; this keeps the
// skip-precondition path computable from (model, dataset) alone.
func (l Layout) SFTDir(m models.Spec, dataset string) string {
	return filepath.Join(l.SaveRoot, modelDir(m), "full", string(StageSFT), dataset)
}

// RunName returns the tracker-facing run name for a preference sweep point.
func RunName(m models.Spec, stage Stage, dataset, lr string) string {
	return fmt.Sprintf("%s-%s-%s-lr_%s", modelDir(m), stage, dataset, LRToken(lr))
}

// SFTRunName returns the run name for the supervised fine-tuning stage.
func SFTRunName(m models.Spec, dataset string) string {
	return fmt.Sprintf("%s-%s-%s", modelDir(m), StageSFT, dataset)
}
