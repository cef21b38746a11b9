// Package cascade adapts the match3 engine to the platform's Game interface:
// a cursor-driven tile-swapping puzzle with an endless classic mode and a
// limited-moves mode.
package cascade

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cascade/internal/config"
	"github.com/vovakirdan/tui-cascade/internal/core"
	"github.com/vovakirdan/tui-cascade/internal/match3"
	"github.com/vovakirdan/tui-cascade/internal/registry"
)

// Mode selects how a game ends.
type Mode string

const (
	ModeClassic Mode = "classic" // Play until no legal swap is left
	ModeMoves   Mode = "moves"   // Play until the move budget is spent
)

// Game IDs as registered with the registry.
const (
	IDClassic = "cascade"
	IDMoves   = "cascade_moves"
)

const messageTicks = 90

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// logger receives engine invariant failures. The terminal belongs to the UI,
// so it discards by default.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger replaces the logger used for engine failures.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDMoves, func() registry.Game {
		return NewMoves()
	})
}

// Game implements the cascade puzzle.
type Game struct {
	mode  Mode
	fixed  *config.CascadeConfig // Set by NewWithConfig; bypasses file loading
	preset config.DifficultyPreset
	cfg    config.CascadeConfig

	engine      *match3.Engine
	unsubscribe func()

	tick       uint64
	phaseTimer int
	cursor     match3.Position

	moves        int
	hints        int
	combo        int
	bestCombo    int
	tilesCleared int
	flash        match3.MatchSet
	hint         *match3.Swap
	message      string
	messageTimer int

	screenW, screenH int
	minW, minH       int

	gameOver bool
	paused   bool
	tooSmall bool
	failed   bool
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewMoves creates a limited-moves game.
func NewMoves() *Game {
	return &Game{mode: ModeMoves}
}

// NewWithConfig creates a game that uses cfg instead of loading configuration.
func NewWithConfig(mode Mode, cfg config.CascadeConfig) *Game {
	return &Game{mode: mode, fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeMoves {
		return IDMoves
	}
	return IDClassic
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeMoves {
		return "Cascade (Moves)"
	}
	return "Cascade"
}

// Description is shown next to the title in menus.
func (g *Game) Description() string {
	if g.mode == ModeMoves {
		return "Score as much as you can with a fixed number of swaps"
	}
	return "Swap tiles until the board runs out of moves"
}

// SetPreset overrides the package-level difficulty for this instance.
// Takes effect on the next Reset.
func (g *Game) SetPreset(p config.DifficultyPreset) {
	g.preset = p
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.tooSmall = w < g.minW || h < g.minH
}

// Reset starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = g.loadConfig()

	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}

	var opts []match3.Option
	if g.cfg.Pacing.PhaseTicks > 0 {
		opts = append(opts, match3.WithManualStepping())
	}
	engine, err := match3.New(g.cfg.Engine(runtime.Seed), opts...)
	if err != nil {
		logger.Error("invalid board config, using defaults", "error", err)
		g.cfg.Board = config.DefaultCascadeConfig().Board
		engine, _ = match3.New(g.cfg.Engine(runtime.Seed), opts...)
	}
	g.engine = engine
	g.unsubscribe = engine.Subscribe(g.onEvent)

	g.tick = 0
	g.phaseTimer = 0
	g.cursor = match3.P(g.cfg.Board.Height/2, g.cfg.Board.Width/2)
	g.moves = 0
	g.hints = 0
	g.combo = 0
	g.bestCombo = 0
	g.tilesCleared = 0
	g.flash = nil
	g.hint = nil
	g.message = ""
	g.messageTimer = 0
	g.gameOver = false
	g.paused = false
	g.failed = false

	g.minW = max(g.cfg.Board.Width*cellWidth+2, minHUDWidth)
	g.minH = g.cfg.Board.Height + 2 + hudHeight + footerHeight
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.checkGameOver()
}

func (g *Game) loadConfig() config.CascadeConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg, err := config.LoadCascade(configPath)
	if err != nil {
		logger.Warn("could not load config, using defaults", "path", configPath, "error", err)
		cfg = config.DefaultCascadeConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid config, using defaults", "error", err)
		cfg = config.DefaultCascadeConfig()
	}
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if g.messageTimer > 0 {
		g.messageTimer--
		if g.messageTimer == 0 {
			g.message = ""
		}
	}

	g.moveCursor(in)
	g.guard(func() {
		if g.engine.Busy() {
			g.pace()
			return
		}
		if in.Has(core.ActionHint) {
			g.showHint()
		}
		if in.Has(core.ActionSelect) {
			g.selectCursor()
		}
	})
	g.checkGameOver()

	return core.StepResult{State: g.State()}
}

// guard runs fn and turns an engine invariant panic into a finished game.
func (g *Game) guard(fn func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ie, ok := r.(*match3.InvariantError)
		if !ok {
			panic(r)
		}
		logger.Error("engine invariant violated", "op", ie.Op, "detail", ie.Detail, "tick", g.tick)
		g.failed = true
		g.gameOver = true
		g.setMessage("Internal error, press R to restart")
	}()
	fn()
}

func (g *Game) moveCursor(in core.InputFrame) {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, h-1)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, h-1)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, w-1)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, w-1)
	}
}

// pace advances the cascade one phase every PhaseTicks ticks.
func (g *Game) pace() {
	g.phaseTimer++
	if g.phaseTimer < g.cfg.Pacing.PhaseTicks {
		return
	}
	g.phaseTimer = 0
	g.engine.Advance()
}

func (g *Game) showHint() {
	swap, ok := g.engine.Hint()
	if !ok {
		return
	}
	g.hint = &swap
	g.hints++
	msg := "Hint: try the marked tiles"
	if g.cfg.Gameplay.HintPenalty > 0 {
		msg = fmt.Sprintf("%s (-%d)", msg, g.cfg.Gameplay.HintPenalty)
	}
	g.setMessage(msg)
}

func (g *Game) selectCursor() {
	out, err := g.engine.Select(g.cursor)
	if err != nil {
		if !errors.Is(err, match3.ErrInvalidMove) {
			logger.Warn("select failed", "error", err)
		}
		return
	}

	switch out {
	case match3.OutcomeSwapRejected:
		g.setMessage("No match")
	case match3.OutcomeSwapCommitted:
		g.moves++
		g.hint = nil
		g.combo = 0
		g.phaseTimer = 0
	}
}

func (g *Game) onEvent(ev match3.Event) {
	switch ev := ev.(type) {
	case match3.TilesRemoved:
		g.combo = ev.Cascade
		g.bestCombo = max(g.bestCombo, ev.Cascade)
		g.tilesCleared += len(ev.Positions)
		g.flash = make(match3.MatchSet, len(ev.Positions))
		for _, p := range ev.Positions {
			g.flash.Add(p)
		}
	case match3.GravityApplied:
		g.flash = nil
	case match3.Stable:
		g.flash = nil
		switch {
		case ev.CascadeCount >= 2:
			g.setMessage(fmt.Sprintf("Combo x%d! +%d", ev.CascadeCount, ev.TotalScoreDelta))
		case ev.TotalScoreDelta > 0:
			g.setMessage(fmt.Sprintf("+%d", ev.TotalScoreDelta))
		}
	}
}

func (g *Game) setMessage(msg string) {
	g.message = msg
	g.messageTimer = messageTicks
}

func (g *Game) checkGameOver() {
	if g.gameOver || g.engine.Busy() {
		return
	}
	if g.mode == ModeMoves && g.moves >= g.cfg.Gameplay.MovesLimit {
		g.gameOver = true
		g.setMessage("Out of moves")
		return
	}
	if _, ok := g.engine.Hint(); !ok {
		g.gameOver = true
		g.setMessage("No legal swaps left")
	}
}

// Score returns the engine score minus hint penalties, never below zero.
func (g *Game) Score() int {
	if g.engine == nil {
		return 0
	}
	return max(g.engine.Score()-g.hints*g.cfg.Gameplay.HintPenalty, 0)
}

// MovesLeft returns the remaining budget in moves mode, or -1 in classic mode.
func (g *Game) MovesLeft() int {
	if g.mode != ModeMoves {
		return -1
	}
	return max(g.cfg.Gameplay.MovesLimit-g.moves, 0)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Stats returns the counters stored with a finished game.
func (g *Game) Stats() Stats {
	return Stats{
		Moves:        g.moves,
		BestCombo:    g.bestCombo,
		TilesCleared: g.tilesCleared,
		Hints:        g.hints,
	}
}

// Stats summarises a game for the scoreboard.
type Stats struct {
	Moves        int
	BestCombo    int
	TilesCleared int
	Hints        int
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl: Move | Enter/Space: Select | ?: Hint | P: Pause | Q: Quit"
}
