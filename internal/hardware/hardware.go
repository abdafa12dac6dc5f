// Package hardware detects available accelerator devices and derives the
// batch-size policy for a sweep. The policy is a static table keyed by
// exact device count; unexpected counts fall back to the single-device row
// with a warning rather than aborting an otherwise-runnable sweep.
package hardware

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Profile is the resolved batch policy for one sweep. It is computed once
// per invocation and read-only afterwards.
type Profile struct {
	GPUCount           int `json:"gpu_count"`
	PerDeviceBatchSize int `json:"per_device_train_batch_size"`
	GradAccumSteps     int `json:"gradient_accumulation_steps"`
}

// batchTable keeps the effective global batch at 64 for every supported
// device count.
var batchTable = map[int]Profile{
	8: {GPUCount: 8, PerDeviceBatchSize: 2, GradAccumSteps: 4},
	4: {GPUCount: 4, PerDeviceBatchSize: 2, GradAccumSteps: 8},
	2: {GPUCount: 2, PerDeviceBatchSize: 4, GradAccumSteps: 8},
	1: {GPUCount: 1, PerDeviceBatchSize: 8, GradAccumSteps: 8},
}

// Detector reports the number of visible accelerator devices.
type Detector interface {
	GPUCount(ctx context.Context) (int, error)
}

// NvidiaSMI detects devices by counting CUDA_VISIBLE_DEVICES entries when
// set, otherwise the lines of `nvidia-smi -L`.
type NvidiaSMI struct{}

// GPUCount implements Detector.
func (NvidiaSMI) GPUCount(ctx context.Context) (int, error) {
	if visible, ok := os.LookupEnv("CUDA_VISIBLE_DEVICES"); ok {
		visible = strings.TrimSpace(visible)
		if visible == "" {
			return 0, nil
		}
		return len(strings.Split(visible, ",")), nil
	}

	out, err := exec.CommandContext(ctx, "nvidia-smi", "-L").Output()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "GPU ") {
			count++
		}
	}
	return count, nil
}

// DetectProfile resolves the batch policy for the visible devices. Failures
// to query the device count and counts outside the table both degrade to
// the single-device defaults with a warning; neither is an error.
func DetectProfile(ctx context.Context, det Detector, logger *zerolog.Logger) Profile {
	count, err := det.GPUCount(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("gpu detection unavailable, assuming 1 device")
		return batchTable[1]
	}
	return ProfileFor(count, logger)
}

// ProfileFor looks up the batch policy for an exact device count.
func ProfileFor(count int, logger *zerolog.Logger) Profile {
	if p, ok := batchTable[count]; ok {
		return p
	}

	logger.Warn().
		Int("gpu_count", count).
		Msg("no batch policy for device count, using 1-device defaults")
	p := batchTable[1]
	if count > 0 {
		p.GPUCount = count
	}
	return p
}
