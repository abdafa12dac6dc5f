// Package table provides common table formatting helpers for CLI commands.
package table

import (
	"strconv"

	"github.com/tunelab/preftune/internal/hardware"
	"github.com/tunelab/preftune/pkg/models"
	"github.com/tunelab/preftune/pkg/sweep"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

// PlanToTableData converts a resolved sweep plan to table format.
func PlanToTableData(plan []sweep.Invocation, wide bool) Data {
	headers := []string{"#", "Stage", "Dataset", "LR", "Batch", "Accum", "Output Dir"}
	if wide {
		headers = append(headers, "Run Name", "Config", "Model Path")
	}

	rows := make([][]string, 0, len(plan))
	for i, inv := range plan {
		row := []string{
			strconv.Itoa(i + 1),
			string(inv.Stage),
			inv.Dataset,
			inv.LearningRate,
			strconv.Itoa(inv.BatchSize),
			strconv.Itoa(inv.GradAccumSteps),
			inv.OutputDir,
		}
		if wide {
			row = append(row, inv.RunName, inv.ConfigFile, inv.ModelPath)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignLeft},
	}
}

// ModelsToTableData converts the model registry to table format.
func ModelsToTableData(specs []models.Spec) Data {
	rows := make([][]string, 0, len(specs))
	for _, s := range specs {
		rows = append(rows, []string{
			s.Token,
			s.ID,
			s.Family,
			strconv.FormatFloat(s.Params, 'g', -1, 64) + "B",
		})
	}
	return Data{
		Headers: []string{"Token", "Model ID", "Family", "Params"},
		Rows:    rows,
	}
}

// ProfileToTableData converts a hardware profile to key-value rows.
func ProfileToTableData(p hardware.Profile) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"GPUs", strconv.Itoa(p.GPUCount)},
			{"Per-device batch size", strconv.Itoa(p.PerDeviceBatchSize)},
			{"Gradient accumulation steps", strconv.Itoa(p.GradAccumSteps)},
		},
	}
}
