package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset accepts a preset name in any case.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// PaletteForPreset returns the number of tile colours for a preset.
// More colours mean fewer matches and shorter cascades.
func PaletteForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return 7
	default:
		return 6
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CascadeConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	cfg.Board.Palette = PaletteForPreset(preset)
}
