// Package config provides YAML-based configuration loading and difficulty
// presets for the cascade game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-cascade/internal/match3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// CascadeConfig contains all configuration for the cascade game.
type CascadeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Pacing     PacingConfig     `yaml:"pacing"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig sets the grid size and the number of tile colours.
type BoardConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Palette int `yaml:"palette"`
}

// PacingConfig controls how fast a cascade plays out on screen.
type PacingConfig struct {
	PhaseTicks int `yaml:"phase_ticks"` // Ticks between resolver phases, 0 resolves instantly
}

// GameplayConfig holds rules that sit on top of the engine.
type GameplayConfig struct {
	MovesLimit  int `yaml:"moves_limit"`  // Budget for the moves mode
	HintPenalty int `yaml:"hint_penalty"` // Points deducted per hint
}

// DifficultyConfig selects a named preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Engine returns the engine settings for a game seeded with seed.
func (c CascadeConfig) Engine(seed int64) match3.Config {
	return match3.Config{
		Width:   c.Board.Width,
		Height:  c.Board.Height,
		Palette: c.Board.Palette,
		Seed:    seed,
	}
}

// Validate rejects settings the game cannot run with.
func (c CascadeConfig) Validate() error {
	if err := c.Engine(0).Validate(); err != nil {
		return fmt.Errorf("%w: board: %w", ErrInvalid, err)
	}
	if c.Board.Width > MaxBoardSide || c.Board.Height > MaxBoardSide {
		return fmt.Errorf("%w: board %dx%d larger than %dx%d", ErrInvalid,
			c.Board.Width, c.Board.Height, MaxBoardSide, MaxBoardSide)
	}
	if c.Pacing.PhaseTicks < 0 {
		return fmt.Errorf("%w: phase_ticks %d is negative", ErrInvalid, c.Pacing.PhaseTicks)
	}
	if c.Gameplay.MovesLimit <= 0 {
		return fmt.Errorf("%w: moves_limit must be positive, got %d", ErrInvalid, c.Gameplay.MovesLimit)
	}
	if c.Gameplay.HintPenalty < 0 {
		return fmt.Errorf("%w: hint_penalty %d is negative", ErrInvalid, c.Gameplay.HintPenalty)
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// MaxBoardSide keeps the board drawable on a regular terminal.
const MaxBoardSide = 16
