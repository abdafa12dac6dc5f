// Package constants provides shared constants used throughout the preftune
// codebase: file permissions, default paths, and the fixed hyperparameter
// lists the sweep launcher iterates.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Default paths and external command configuration
const (
	// DefaultTrainerBin is the external training command
	DefaultTrainerBin = "llamafactory-cli"

	// DefaultSaveRoot is the root directory for run artifacts
	DefaultSaveRoot = "saves"

	// DefaultConfigDir holds the trainer yaml config files
	DefaultConfigDir = "configs"

	// DefaultScratchDir is where the trainer drops loose result files.
	// The original pipeline hard-coded a host-specific absolute path here;
	// it is configurable via scratch_dir.
	DefaultScratchDir = "/tmp/llamafactory-results"

	// DefaultScratchPattern matches the loose result files drained from
	// the scratch directory after each stage
	DefaultScratchPattern = "*.json"
)

// Dataset defaults for the staged pipeline
const (
	// DefaultSFTDataset is the supervised fine-tuning dataset
	DefaultSFTDataset = "ultrafeedback_sft"

	// DefaultPrefDataset is the preference-pair dataset for dpo/ropo
	DefaultPrefDataset = "dpo_ultrafeedback"
)

// SFTLearningRate is the fixed learning rate for the supervised
// fine-tuning stage. Only the preference stages are swept.
const SFTLearningRate = "1e-5"

// LearningRates is the fixed sweep, iterated lowest to highest. Values are
// kept as strings so path tokens are byte-stable across invocations.
var LearningRates = []string{"5e-7", "1e-6", "5e-6", "1e-5"}

// SkipToken is the positional argument that bypasses the SFT stage.
const SkipToken = "skip"
