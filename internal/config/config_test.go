package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cascade/internal/match3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseCascade(defaultCascadeYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultCascadeConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCascadeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  width: 10\n  palette: 4\ngameplay:\n  moves_limit: 12\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadCascade(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 8, cfg.Board.Height, "missing fields keep defaults")
	assert.Equal(t, 4, cfg.Board.Palette)
	assert.Equal(t, 12, cfg.Gameplay.MovesLimit)
	assert.Equal(t, 12, cfg.Pacing.PhaseTicks)
}

func TestLoadCascadeCustomPathErrors(t *testing.T) {
	_, err := LoadCascade(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: [1, 2"), 0o600))
	_, err = LoadCascade(bad)
	assert.Error(t, err)
}

func TestLoadCascadeFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadCascade("")
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CascadeConfig)
		ok     bool
	}{
		{"defaults", func(*CascadeConfig) {}, true},
		{"instant pacing", func(c *CascadeConfig) { c.Pacing.PhaseTicks = 0 }, true},
		{"board too small", func(c *CascadeConfig) { c.Board.Width = 2 }, false},
		{"board too large", func(c *CascadeConfig) { c.Board.Height = MaxBoardSide + 1 }, false},
		{"palette too small", func(c *CascadeConfig) { c.Board.Palette = 2 }, false},
		{"palette too large", func(c *CascadeConfig) { c.Board.Palette = 9 }, false},
		{"negative pacing", func(c *CascadeConfig) { c.Pacing.PhaseTicks = -1 }, false},
		{"no moves", func(c *CascadeConfig) { c.Gameplay.MovesLimit = 0 }, false},
		{"negative penalty", func(c *CascadeConfig) { c.Gameplay.HintPenalty = -5 }, false},
		{"unknown preset", func(c *CascadeConfig) { c.Difficulty.Preset = "insane" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCascadeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestValidateWrapsEngineError(t *testing.T) {
	cfg := DefaultCascadeConfig()
	cfg.Board.Palette = 1
	assert.ErrorIs(t, cfg.Validate(), match3.ErrInvalidConfig)
}

func TestPresets(t *testing.T) {
	tests := []struct {
		input   string
		preset  DifficultyPreset
		palette int
	}{
		{"easy", DifficultyEasy, 5},
		{"Normal", DifficultyNormal, 6},
		{" HARD ", DifficultyHard, 7},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePreset(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.preset, p)

			cfg := DefaultCascadeConfig()
			ApplyPreset(&cfg, p)
			assert.Equal(t, tt.palette, cfg.Board.Palette)
			assert.Equal(t, p, cfg.Difficulty.Preset)
		})
	}

	_, err := ParsePreset("fixed")
	assert.Error(t, err)
}

func TestEngineConfig(t *testing.T) {
	cfg := DefaultCascadeConfig()
	ec := cfg.Engine(77)
	assert.Equal(t, match3.Config{Width: 8, Height: 8, Palette: 6, Seed: 77}, ec)
}
