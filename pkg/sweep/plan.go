package sweep

import (
	"os"
	"path/filepath"

	"github.com/tunelab/preftune/internal/hardware"
	"github.com/tunelab/preftune/pkg/constants"
	"github.com/tunelab/preftune/pkg/errors"
)

// Invocation is one fully-resolved external trainer call: a sweep point
// plus everything needed to address its output. Invocations are consumed
// one at a time and discarded once the subprocess exits.
type Invocation struct {
	Stage          Stage  `json:"stage"`
	ConfigFile     string `json:"config_file"`
	ModelPath      string `json:"model_name_or_path"`
	Dataset        string `json:"dataset"`
	LearningRate   string `json:"learning_rate"`
	BatchSize      int    `json:"per_device_train_batch_size"`
	GradAccumSteps int    `json:"gradient_accumulation_steps"`
	OutputDir      string `json:"output_dir"`
	RunName        string `json:"run_name"`
}

// Options configure plan construction.
type Options struct {
	// SaveRoot is the root directory for run artifacts.
	SaveRoot string
	// ConfigDir holds the per-stage trainer yaml files.
	ConfigDir string
	// LearningRates overrides the fixed sweep list. Tests only.
	LearningRates []string
}

func (o Options) configDir() string {
	if o.ConfigDir == "" {
		return constants.DefaultConfigDir
	}
	return o.ConfigDir
}

func (o Options) learningRates() []string {
	if len(o.LearningRates) == 0 {
		return constants.LearningRates
	}
	return o.LearningRates
}

// BuildPlan resolves a run configuration into the ordered invocation list:
// the SFT stage first unless skipped, then one invocation per (method,
// learning rate) pair, methods in dpo-then-ropo order and learning rates
// ascending. When SkipSFT is set the SFT output directory from a previous
// run must already exist; a missing directory is a fatal configuration
// error reported before anything is launched.
func BuildPlan(cfg RunConfig, prof hardware.Profile, opts Options) ([]Invocation, error) {
	layout := NewLayout(opts.SaveRoot)
	sftDir := layout.SFTDir(cfg.Model, cfg.SFTDataset)

	if cfg.SkipSFT {
		if _, err := os.Stat(sftDir); err != nil {
			return nil, errors.NewPreconditionError(sftDir, "skip requested but SFT output directory is missing")
		}
	}

	var plan []Invocation
	if !cfg.SkipSFT {
		plan = append(plan, Invocation{
			Stage:          StageSFT,
			ConfigFile:     filepath.Join(opts.configDir(), "sft.yaml"),
			ModelPath:      cfg.Model.ID,
			Dataset:        cfg.SFTDataset,
			LearningRate:   constants.SFTLearningRate,
			BatchSize:      prof.PerDeviceBatchSize,
			GradAccumSteps: prof.GradAccumSteps,
			OutputDir:      sftDir,
			RunName:        SFTRunName(cfg.Model, cfg.SFTDataset),
		})
	}

	// Preference stages start from the SFT artifact, not the base model.
	for _, stage := range cfg.Method.Stages() {
		for _, lr := range opts.learningRates() {
			plan = append(plan, Invocation{
				Stage:          stage,
				ConfigFile:     filepath.Join(opts.configDir(), string(stage)+".yaml"),
				ModelPath:      sftDir,
				Dataset:        cfg.PrefDataset,
				LearningRate:   lr,
				BatchSize:      prof.PerDeviceBatchSize,
				GradAccumSteps: prof.GradAccumSteps,
				OutputDir:      layout.StageDir(cfg.Model, stage, cfg.PrefDataset, lr),
				RunName:        RunName(cfg.Model, stage, cfg.PrefDataset, lr),
			})
		}
	}

	return plan, nil
}
