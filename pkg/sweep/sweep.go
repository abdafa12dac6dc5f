// Package sweep builds and executes hyperparameter sweeps over an external
// trainer. A sweep is resolved once into an ordered list of invocations
// (optional SFT stage, then one invocation per method and learning rate)
// and executed strictly sequentially, one blocking subprocess at a time.
package sweep

import (
	"github.com/tunelab/preftune/pkg/constants"
	"github.com/tunelab/preftune/pkg/errors"
	"github.com/tunelab/preftune/pkg/models"
)

// Stage is one phase of the pipeline: supervised fine-tuning or one of the
// preference-optimization methods.
type Stage string

// Pipeline stages.
const (
	StageSFT  Stage = "sft"
	StageDPO  Stage = "dpo"
	StageROPO Stage = "ropo"
)

// Method selects which preference stages a sweep runs.
type Method string

// Supported methods.
const (
	MethodDPO  Method = "dpo"
	MethodROPO Method = "ropo"
	MethodBoth Method = "both"
)

// methodTokens lists the accepted method values for usage messages.
var methodTokens = []string{string(MethodDPO), string(MethodROPO), string(MethodBoth)}

// ParseMethod validates a method token.
func ParseMethod(token string) (Method, error) {
	switch Method(token) {
	case MethodDPO, MethodROPO, MethodBoth:
		return Method(token), nil
	default:
		return "", errors.NewValidationError("method", token, methodTokens)
	}
}

// Stages returns the preference stages the method selects, dpo before ropo
// when both are requested.
func (m Method) Stages() []Stage {
	switch m {
	case MethodDPO:
		return []Stage{StageDPO}
	case MethodROPO:
		return []Stage{StageROPO}
	case MethodBoth:
		return []Stage{StageDPO, StageROPO}
	default:
		return nil
	}
}

// RunConfig is the immutable configuration of one launcher invocation,
// resolved from positional arguments at process start.
type RunConfig struct {
	Model       models.Spec
	Method      Method
	SFTDataset  string
	PrefDataset string
	SkipSFT     bool
}

// NewRunConfig validates the positional argument values and applies dataset
// defaults. Validation failures happen here, before any side effect.
func NewRunConfig(sizeToken, methodToken, sftDataset, prefDataset string, skipSFT bool) (RunConfig, error) {
	spec, err := models.Resolve(sizeToken)
	if err != nil {
		return RunConfig{}, err
	}

	method, err := ParseMethod(methodToken)
	if err != nil {
		return RunConfig{}, err
	}

	if sftDataset == "" {
		sftDataset = constants.DefaultSFTDataset
	}
	if prefDataset == "" {
		prefDataset = constants.DefaultPrefDataset
	}

	return RunConfig{
		Model:       spec,
		Method:      method,
		SFTDataset:  sftDataset,
		PrefDataset: prefDataset,
		SkipSFT:     skipSFT,
	}, nil
}
