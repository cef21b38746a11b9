package match3

import (
	"context"
	"fmt"
	"time"
)

// Config holds the engine's construction parameters.
type Config struct {
	Width   int   `yaml:"width"`
	Height  int   `yaml:"height"`
	Palette int   `yaml:"palette"`
	Seed    int64 `yaml:"seed"`
}

// DefaultConfig returns an 8x8 board with six colours.
func DefaultConfig() Config {
	return Config{
		Width:   8,
		Height:  8,
		Palette: DefaultPalette,
	}
}

// Validate checks that a board with these settings can be built.
func (c Config) Validate() error {
	if c.Width < MinRun || c.Height < MinRun {
		return fmt.Errorf("%w: board %dx%d smaller than %dx%d", ErrInvalidConfig, c.Width, c.Height, MinRun, MinRun)
	}
	if c.Palette < MinPalette || c.Palette > MaxPalette {
		return fmt.Errorf("%w: palette %d outside [%d, %d]", ErrInvalidConfig, c.Palette, MinPalette, MaxPalette)
	}
	return nil
}

// Option customises an Engine.
type Option func(*Engine)

// WithListener subscribes l before the initial fill, so it also sees the events
// of the first stabilization pass.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.events.subscribe(l)
	}
}

// WithManualStepping makes Select return as soon as a swap is committed.
// The caller then paces the cascade with Advance or Run.
func WithManualStepping() Option {
	return func(e *Engine) {
		e.manual = true
	}
}

// WithSource replaces the seeded generator built from Config.Seed.
func WithSource(src IntNSource) Option {
	return func(e *Engine) {
		e.src = src
	}
}

// WithBoard starts from a copy of b instead of a random fill. The board's
// dimensions replace Config.Width and Config.Height.
func WithBoard(b *Board) Option {
	return func(e *Engine) {
		e.fixture = b.Clone()
	}
}

// Engine is the cascade engine's public face: it owns the board, routes player
// selects through the controller and publishes events.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg      Config
	board    *Board
	factory  *TileFactory
	score    ScoreAccumulator
	resolver *Resolver
	ctrl     *Controller
	events   bus

	src     IntNSource
	manual  bool
	fixture *Board
}

// New builds the board, fills it and runs one stabilization pass so that the
// first select sees a board without matches. Score gained by that pass is not
// credited to the player.
func New(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}

	if e.fixture != nil {
		e.cfg.Width, e.cfg.Height = e.fixture.Dimensions()
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	if e.fixture != nil {
		if err := checkFixture(e.fixture, e.cfg.Palette); err != nil {
			return nil, err
		}
	}

	if e.src == nil {
		e.src = NewRandSource(e.cfg.Seed)
	}

	e.board = NewBoard(e.cfg.Width, e.cfg.Height)
	e.factory = NewTileFactory(e.src, e.cfg.Palette)
	e.resolver = NewResolver(e.board, e.factory, &e.score, e.events.emit)
	e.ctrl = NewController(e.board, e.resolver, e.events.emit)

	if e.fixture != nil {
		copy(e.board.cells, e.fixture.cells)
	} else {
		e.fill()
	}
	e.settle()
	return e, nil
}

func checkFixture(b *Board, palette int) error {
	for i, t := range b.cells {
		if t == Empty || int(t) > palette {
			return fmt.Errorf("%w: fixture cell %d holds %s, palette has %d colours", ErrInvalidConfig, i, t, palette)
		}
	}
	return nil
}

// fill replaces every tile, row by row.
func (e *Engine) fill() {
	for r := 0; r < e.board.height; r++ {
		for c := 0; c < e.board.width; c++ {
			e.board.Set(Position{r, c}, e.factory.Next())
		}
	}
}

// settle resolves incidental matches left by a fill. It always runs to
// completion, even in manual stepping mode.
func (e *Engine) settle() {
	e.ctrl.Clear()
	e.resolver.Recheck()
	e.resolver.RunToIdle()
	e.score.Reset()
}

// Restart replaces every tile and resets the score. The random stream is not
// reseeded, so a restarted game differs from the first one.
func (e *Engine) Restart() error {
	if e.resolver.Busy() {
		return ErrBusy
	}
	e.fill()
	e.settle()
	return nil
}

// Select is the single player-input entry point.
func (e *Engine) Select(pos Position) (Outcome, error) {
	outcome, err := e.ctrl.HandleSelect(pos)
	if err != nil {
		return outcome, err
	}
	if outcome == OutcomeSwapCommitted && !e.manual {
		e.resolver.RunToIdle()
	}
	return outcome, nil
}

// Advance executes one resolver phase and reports whether more remain.
func (e *Engine) Advance() bool {
	return e.resolver.Advance()
}

// Run advances the pending cascade one phase per interval. A cancelled context
// does not abort the cascade: the remaining phases run immediately and ctx.Err()
// is returned.
func (e *Engine) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		e.resolver.RunToIdle()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for e.resolver.Advance() {
		select {
		case <-ctx.Done():
			e.resolver.RunToIdle()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// Subscribe registers l for future events and returns a function removing it.
func (e *Engine) Subscribe(l Listener) (unsubscribe func()) {
	return e.events.subscribe(l)
}

// Snapshot returns a copy of the board. Mid-cascade it reflects the phases
// executed so far, so it may contain empty cells.
func (e *Engine) Snapshot() *Board {
	return e.board.Clone()
}

// Hint returns the first legal swap, or false when the engine is busy or the
// board has no legal swap left.
func (e *Engine) Hint() (Swap, bool) {
	if e.resolver.Busy() {
		return Swap{}, false
	}
	return FirstLegalSwap(e.board)
}

// LegalSwaps lists every swap that would currently create a match.
func (e *Engine) LegalSwaps() []Swap {
	return LegalSwaps(e.board)
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Score returns the running score.
func (e *Engine) Score() int {
	return e.score.Total()
}

// Phase returns the resolver phase that will run next.
func (e *Engine) Phase() Phase {
	return e.resolver.Phase()
}

// Busy reports whether selects are currently rejected.
func (e *Engine) Busy() bool {
	return e.resolver.Busy()
}

// Selection returns the pending selection, if any.
func (e *Engine) Selection() (Position, bool) {
	return e.ctrl.Selection()
}
