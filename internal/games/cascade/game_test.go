package cascade

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cascade/internal/config"
	"github.com/vovakirdan/tui-cascade/internal/core"
	"github.com/vovakirdan/tui-cascade/internal/match3"
	"github.com/vovakirdan/tui-cascade/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func testConfig() config.CascadeConfig {
	cfg := config.DefaultCascadeConfig()
	cfg.Pacing.PhaseTicks = 2
	return cfg
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// playSwap moves the cursor onto each end of the first legal swap, selects
// both and ticks until the cascade settles.
func playSwap(t *testing.T, g *Game) {
	t.Helper()
	swap, ok := g.engine.Hint()
	require.True(t, ok)

	g.cursor = swap.A
	g.Step(frame(core.ActionSelect))
	g.cursor = swap.B
	g.Step(frame(core.ActionSelect))

	for i := 0; i < 1000 && g.engine.Busy(); i++ {
		g.Step(frame())
	}
	require.False(t, g.engine.Busy(), "cascade did not settle")
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDMoves} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestReset(t *testing.T) {
	g := NewWithConfig(ModeClassic, testConfig())
	g.Reset(testRuntime(1))

	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Zero(t, snap.Score)
	assert.Equal(t, -1, snap.MovesLeft)
	assert.Equal(t, "idle", snap.Phase)
	assert.Equal(t, 4, snap.CursorRow)
	assert.Equal(t, 4, snap.CursorCol)

	b, err := match3.ParseBoard(snap.Board)
	require.NoError(t, err)
	assert.False(t, match3.HasMatch(b))
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := NewWithConfig(ModeClassic, testConfig())
	g.Reset(testRuntime(1))

	for range 20 {
		g.Step(frame(core.ActionUp))
		g.Step(frame(core.ActionLeft))
	}
	assert.Equal(t, match3.P(0, 0), g.cursor)

	for range 20 {
		g.Step(frame(core.ActionDown))
		g.Step(frame(core.ActionRight))
	}
	assert.Equal(t, match3.P(7, 7), g.cursor)
}

func TestSwapIsPacedAndScored(t *testing.T) {
	g := NewWithConfig(ModeClassic, testConfig())
	g.Reset(testRuntime(3))

	swap, ok := g.engine.Hint()
	require.True(t, ok)
	g.cursor = swap.A
	g.Step(frame(core.ActionSelect))
	g.cursor = swap.B
	g.Step(frame(core.ActionSelect))

	require.True(t, g.engine.Busy(), "manual stepping leaves the cascade pending")
	assert.Equal(t, StateResolving, g.Snapshot().State)

	// Input is ignored while the cascade plays out.
	before := g.engine.Snapshot()
	g.Step(frame(core.ActionSelect))
	assert.Equal(t, match3.PhaseRemoving, g.engine.Phase())
	assert.True(t, before.Equal(g.engine.Snapshot()))

	for i := 0; i < 1000 && g.engine.Busy(); i++ {
		g.Step(frame())
	}

	snap := g.Snapshot()
	assert.Equal(t, 1, snap.Moves)
	assert.Positive(t, snap.Score)
	assert.GreaterOrEqual(t, snap.TilesCleared, 3)
	assert.GreaterOrEqual(t, snap.BestCombo, 1)
	assert.Equal(t, snap.TilesCleared*match3.PointsPerTile, snap.Score)
}

func TestRejectedSwapShowsMessage(t *testing.T) {
	cfg := testConfig()
	g := NewWithConfig(ModeClassic, cfg)
	g.Reset(testRuntime(5))

	// Find an adjacent pair whose swap is not legal.
	legal := map[match3.Swap]bool{}
	for _, s := range g.engine.LegalSwaps() {
		legal[s] = true
	}
	var a, b match3.Position
	found := false
	for r := 0; r < cfg.Board.Height && !found; r++ {
		for c := 0; c+1 < cfg.Board.Width && !found; c++ {
			s := match3.Swap{A: match3.P(r, c), B: match3.P(r, c+1)}
			if !legal[s] {
				a, b, found = s.A, s.B, true
			}
		}
	}
	require.True(t, found)

	g.cursor = a
	g.Step(frame(core.ActionSelect))
	g.cursor = b
	g.Step(frame(core.ActionSelect))

	assert.Equal(t, "No match", g.message)
	assert.Zero(t, g.moves)
	assert.False(t, g.engine.Busy())
}

func TestMovesModeEndsWhenBudgetSpent(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.MovesLimit = 2
	g := NewWithConfig(ModeMoves, cfg)
	g.Reset(testRuntime(11))

	assert.Equal(t, 2, g.MovesLeft())
	playSwap(t, g)
	assert.False(t, g.State().GameOver)
	assert.Equal(t, 1, g.MovesLeft())

	playSwap(t, g)
	assert.True(t, g.State().GameOver)
	assert.Zero(t, g.MovesLeft())
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	// Further input is ignored.
	score := g.Score()
	g.Step(frame(core.ActionSelect, core.ActionHint))
	assert.Equal(t, score, g.Score())
}

func TestClassicEndsOnSoftLock(t *testing.T) {
	g := NewWithConfig(ModeClassic, testConfig())
	g.Reset(testRuntime(1))

	locked, err := match3.New(match3.Config{Palette: 8},
		match3.WithBoard(mustParse(t, "RGBRGB", "YPOYPO", "CWCWCW", "RGBRGB", "YPOYPO", "CWCWCW")))
	require.NoError(t, err)
	require.Empty(t, locked.LegalSwaps())

	g.engine = locked
	g.Step(frame())
	assert.True(t, g.State().GameOver)
	assert.Equal(t, "No legal swaps left", g.message)
}

func TestHintPenalty(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.HintPenalty = 20
	g := NewWithConfig(ModeClassic, cfg)
	g.Reset(testRuntime(8))

	g.Step(frame(core.ActionHint))
	require.NotNil(t, g.hint)
	assert.Equal(t, 1, g.hints)
	assert.Zero(t, g.Score(), "score never goes negative")
	assert.Contains(t, g.message, "-20")

	hint := *g.hint
	g.cursor = hint.A
	g.Step(frame(core.ActionSelect))
	g.cursor = hint.B
	g.Step(frame(core.ActionSelect))
	assert.Nil(t, g.hint, "hint cleared by a committed swap")
}

func TestPauseToggles(t *testing.T) {
	g := NewWithConfig(ModeClassic, testConfig())
	g.Reset(testRuntime(1))

	g.Step(frame(core.ActionPause))
	assert.True(t, g.State().Paused)

	cursor := g.cursor
	g.Step(frame(core.ActionUp))
	assert.Equal(t, cursor, g.cursor, "paused game ignores input")

	g.Step(frame(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestInvariantPanicEndsGame(t *testing.T) {
	g := NewWithConfig(ModeClassic, testConfig())
	g.Reset(testRuntime(1))

	g.guard(func() {
		panic(&match3.InvariantError{Op: "refill", Detail: "test"})
	})
	assert.True(t, g.State().GameOver)
	assert.True(t, g.failed)

	assert.Panics(t, func() {
		g.guard(func() { panic("other") })
	})
}

func TestDeterminism(t *testing.T) {
	inputs := []core.InputFrame{
		frame(core.ActionHint),
		frame(core.ActionLeft),
		frame(core.ActionSelect),
		frame(core.ActionRight),
		frame(core.ActionSelect),
		frame(core.ActionDown),
		frame(core.ActionSelect),
		frame(core.ActionDown),
		frame(core.ActionSelect),
	}

	run := func() Snapshot {
		g := NewWithConfig(ModeClassic, testConfig())
		g.Reset(testRuntime(12345))
		for i := 0; i < 200; i++ {
			g.Step(inputs[i%len(inputs)])
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestRender(t *testing.T) {
	g := NewWithConfig(ModeMoves, testConfig())
	g.Reset(testRuntime(1))

	s := core.NewScreen(80, 24)
	g.Render(s)
	out := s.String()

	assert.Contains(t, out, "Cascade (Moves)")
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Moves left: 30")
	assert.Contains(t, out, "┌")

	g.Step(frame(core.ActionPause))
	g.Render(s)
	assert.Contains(t, s.String(), "PAUSED")
}

func TestTooSmallScreen(t *testing.T) {
	g := NewWithConfig(ModeClassic, testConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60, Seed: 1})

	assert.True(t, g.State().Paused)
	assert.Equal(t, StateTooSmall, g.Snapshot().State)

	s := core.NewScreen(20, 8)
	g.Render(s)
	assert.True(t, strings.Contains(s.String(), "too small"))
}

func mustParse(t *testing.T, rows ...string) *match3.Board {
	t.Helper()
	b, err := match3.ParseBoard(strings.Join(rows, "\n"))
	require.NoError(t, err)
	return b
}

func TestSetPresetChangesPalette(t *testing.T) {
	g := New()
	g.SetPreset(config.DifficultyHard)
	g.Reset(testRuntime(1))

	assert.Equal(t, config.PaletteForPreset(config.DifficultyHard), g.engine.Config().Palette)
	assert.Equal(t, config.DifficultyHard, g.cfg.Difficulty.Preset)
}

func TestResizeKeepsBoard(t *testing.T) {
	g := NewWithConfig(ModeClassic, testConfig())
	g.Reset(testRuntime(4))
	before := g.Snapshot().Board

	g.Resize(20, 8)
	assert.Equal(t, StateTooSmall, g.Snapshot().State)

	g.Resize(100, 40)
	assert.Equal(t, StatePlaying, g.Snapshot().State)
	assert.Equal(t, before, g.Snapshot().Board)
}
