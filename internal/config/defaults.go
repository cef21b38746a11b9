package config

import (
	_ "embed"
)

//go:embed defaults/cascade.yaml
var defaultCascadeYAML []byte

// DefaultCascadeConfig returns the built-in configuration, used when no YAML
// source can be read.
func DefaultCascadeConfig() CascadeConfig {
	return CascadeConfig{
		Board: BoardConfig{
			Width:   8,
			Height:  8,
			Palette: 6,
		},
		Pacing: PacingConfig{
			PhaseTicks: 12,
		},
		Gameplay: GameplayConfig{
			MovesLimit:  30,
			HintPenalty: 0,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}
