package trainer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/tunelab/preftune/pkg/errors"
	"github.com/tunelab/preftune/pkg/sweep"
)

// StageConfig mirrors the subset of the trainer's yaml config the launcher
// cares about. Everything else in the file is opaque to us and passed
// through untouched; the swept hyperparameters are overridden on the
// command line per invocation.
type StageConfig struct {
	ModelNameOrPath string `yaml:"model_name_or_path"`
	Stage           string `yaml:"stage"`
	DoTrain         bool   `yaml:"do_train"`
	FinetuningType  string `yaml:"finetuning_type"`
	Dataset         string `yaml:"dataset"`
	OutputDir       string `yaml:"output_dir"`
	PrefLoss        string `yaml:"pref_loss"`
}

// LoadStageConfig reads and decodes one trainer config file.
func LoadStageConfig(path string) (*StageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg StageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewConfigError(path, "invalid trainer config", err)
	}
	return &cfg, nil
}

// Validate checks that a stage config is usable by the launcher.
func (c *StageConfig) Validate(path string) error {
	if c.Stage == "" {
		return errors.NewConfigError(path, "missing stage", nil)
	}
	if !c.DoTrain {
		return errors.NewConfigError(path, "do_train must be true", nil)
	}
	if c.FinetuningType == "" {
		return errors.NewConfigError(path, "missing finetuning_type", nil)
	}
	return nil
}

// ValidateConfigDir checks that every stage the launcher can request has a
// parseable config file in dir.
func ValidateConfigDir(dir string) error {
	for _, stage := range []sweep.Stage{sweep.StageSFT, sweep.StageDPO, sweep.StageROPO} {
		path := filepath.Join(dir, string(stage)+".yaml")
		cfg, err := LoadStageConfig(path)
		if err != nil {
			return fmt.Errorf("stage %s: %w", stage, err)
		}
		if err := cfg.Validate(path); err != nil {
			return fmt.Errorf("stage %s: %w", stage, err)
		}
	}
	return nil
}
