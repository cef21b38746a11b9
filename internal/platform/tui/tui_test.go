package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cascade/internal/core"
	"github.com/vovakirdan/tui-cascade/internal/games/cascade"
	"github.com/vovakirdan/tui-cascade/internal/storage"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// stubGame ends after a fixed number of steps.
type stubGame struct {
	resets  int
	steps   int
	endAt   int
	score   int
	last    core.InputFrame
	resized [2]int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.steps >= g.endAt}
}

func (g *stubGame) Stats() cascade.Stats {
	return cascade.Stats{Moves: 7, BestCombo: 3, TilesCleared: 21}
}

func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runeKey("j"), core.ActionDown, false},
		{runeKey("a"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSelect, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionSelect, false},
		{runeKey("?"), core.ActionHint, false},
		{runeKey("p"), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		assert.Equal(t, tt.action, action, tt.msg.String())
		assert.Equal(t, tt.quit, quit, tt.msg.String())
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionLeft, km.MapKeyToMenuAction(runeKey("h")))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(runeKey("b")))
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(0, 1, "red", core.ColorRed, core.AttrBold)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "plain"))
	assert.Contains(t, lines[1], "red")
}

func TestModelSavesResultOnce(t *testing.T) {
	store := testStore(t)
	game := &stubGame{endAt: 3, score: 120}

	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 99}).WithPlayer("alice")
	m.Init()
	for range 6 {
		m = update(t, m, TickMsg{})
	}

	games, err := store.RecentGames("stub", 10)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "alice", games[0].Player)
	assert.Equal(t, int64(99), games[0].Seed)
	assert.Equal(t, 120, games[0].Score)
	assert.Equal(t, 7, games[0].Moves)
	assert.Equal(t, 3, games[0].BestCombo)
	assert.Equal(t, 21, games[0].TilesCleared)
}

func TestModelSkipsEmptyGames(t *testing.T) {
	store := testStore(t)
	m := NewModel(&stubGame{endAt: 1}, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})
	m.Init()
	m = update(t, m, TickMsg{})

	high, err := store.HighScore("stub")
	require.NoError(t, err)
	assert.Zero(t, high)
}

func TestModelInputReachesGame(t *testing.T) {
	game := &stubGame{endAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})
	m.Init()

	m = update(t, m, runeKey("?"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg{})
	assert.True(t, game.last.Has(core.ActionHint))
	assert.True(t, game.last.Has(core.ActionLeft))

	m = update(t, m, TickMsg{})
	assert.True(t, game.last.Empty(), "frame cleared after each tick")
}

func TestModelBackAndRestart(t *testing.T) {
	game := &stubGame{endAt: 2}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})
	m.Init()

	m = update(t, m, runeKey("b"))
	assert.False(t, m.BackToMenu(), "back ignored while playing")

	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	require.True(t, m.gameState.GameOver)

	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg{})
	assert.Equal(t, 2, game.resets)
	assert.False(t, m.gameState.GameOver)

	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey("b"))
	assert.True(t, m.BackToMenu())
	assert.Empty(t, m.View())
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{endAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, [2]int{100, 40}, game.resized)
	assert.Equal(t, 1, game.resets)
	assert.Equal(t, 100, m.screen.Width())
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{endAt: 100}, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})
	m.Init()
	next, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).IsQuitting())
}

func TestMenuSelection(t *testing.T) {
	menu := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	require.Len(t, menu.items, 2)
	assert.Equal(t, cascade.IDClassic, menu.items[0].GameID)
	assert.Contains(t, menu.View(), "Cascade")

	next, _ := menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	mm := next.(MenuModel)
	require.NotNil(t, mm.Selected())
	assert.Equal(t, cascade.IDMoves, mm.Selected().GameID)
}

func TestSetupDefaultsToNormal(t *testing.T) {
	setup := NewSetupModel("Cascade", 80, 24)
	assert.Contains(t, setup.View(), "normal")

	next, _ := setup.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := next.(SetupModel).Selected()
	require.NotNil(t, sel)
	assert.EqualValues(t, "normal", sel.Preset)

	next, _ = setup.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(SetupModel).WantsBack())
}

func TestSessionFlow(t *testing.T) {
	store := testStore(t)
	s := NewSessionModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "bob")

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		var ok bool
		s, ok = next.(SessionModel)
		require.True(t, ok)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stageSetup, s.stage)
	assert.Contains(t, s.View(), "difficulty")

	step(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stageGame, s.stage)
	assert.Contains(t, s.View(), "Score")

	step(runeKey("p"))
	step(TickMsg{})
	step(runeKey("b"))
	assert.Equal(t, stageMenu, s.stage)
	assert.False(t, s.quitting)

	step(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, stageScores, s.stage)
	assert.Contains(t, s.View(), "HIGH SCORES")

	step(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stageMenu, s.stage)

	step(runeKey("q"))
	assert.True(t, s.quitting)
}
