// Package models defines the static registry of trainable model sizes.
//
// The launcher accepts a short size token (e.g. "7b") and resolves it to a
// full model identifier on the hub (e.g. "Qwen/Qwen2.5-7B-Instruct"). The
// mapping is a closed one-to-one table; an unknown token is a hard
// validation error, never a warning.
package models

import (
	"sort"

	"github.com/tunelab/preftune/pkg/errors"
)

// Spec describes one supported base model.
type Spec struct {
	// Token is the short CLI size token (e.g. "7b")
	Token string `json:"token"`

	// ID is the full model identifier passed as model_name_or_path
	ID string `json:"id"`

	// Family is the filesystem-safe family label used in output paths
	Family string `json:"family"`

	// SizeLabel is the filesystem-safe size label used in output paths
	SizeLabel string `json:"size_label"`

	// Params is the approximate parameter count in billions
	Params float64 `json:"params"`
}

// registry maps size tokens to model specs.
var registry = map[string]Spec{
	"0_5b": {Token: "0_5b", ID: "Qwen/Qwen2.5-0.5B-Instruct", Family: "qwen2_5", SizeLabel: "0_5b", Params: 0.5},
	"3b":   {Token: "3b", ID: "Qwen/Qwen2.5-3B-Instruct", Family: "qwen2_5", SizeLabel: "3b", Params: 3},
	"7b":   {Token: "7b", ID: "Qwen/Qwen2.5-7B-Instruct", Family: "qwen2_5", SizeLabel: "7b", Params: 7},
	"14b":  {Token: "14b", ID: "Qwen/Qwen2.5-14B-Instruct", Family: "qwen2_5", SizeLabel: "14b", Params: 14},
	"32b":  {Token: "32b", ID: "Qwen/Qwen2.5-32B-Instruct", Family: "qwen2_5", SizeLabel: "32b", Params: 32},
}

// Resolve maps a size token to its model spec. Unknown tokens return a
// ValidationError carrying the supported token list.
func Resolve(token string) (Spec, error) {
	spec, ok := registry[token]
	if !ok {
		return Spec{}, errors.NewValidationError("model_size", token, Tokens())
	}
	return spec, nil
}

// Tokens returns the supported size tokens in ascending parameter order.
func Tokens() []string {
	specs := All()
	tokens := make([]string, len(specs))
	for i, s := range specs {
		tokens[i] = s.Token
	}
	return tokens
}

// All returns every registered spec in ascending parameter order.
func All() []Spec {
	specs := make([]Spec, 0, len(registry))
	for _, s := range registry {
		specs = append(specs, s)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Params < specs[j].Params })
	return specs
}
