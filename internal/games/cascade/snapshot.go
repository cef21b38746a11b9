package cascade

// GameStateType names the phase of play.
type GameStateType string

const (
	StatePlaying   GameStateType = "playing"
	StateResolving GameStateType = "resolving"
	StatePaused    GameStateType = "paused"
	StateGameOver  GameStateType = "game_over"
	StateTooSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests and replays.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Score        int
	Moves        int
	MovesLeft    int // -1 in classic mode
	Hints        int
	BestCombo    int
	TilesCleared int
	CursorRow    int
	CursorCol    int
	Phase        string
	Board        string // One line per row, see match3.Board.String
	State        GameStateType
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Score:        g.Score(),
		Moves:        g.moves,
		MovesLeft:    g.MovesLeft(),
		Hints:        g.hints,
		BestCombo:    g.bestCombo,
		TilesCleared: g.tilesCleared,
		CursorRow:    g.cursor.Row,
		CursorCol:    g.cursor.Col,
		Phase:        g.engine.Phase().String(),
		Board:        g.engine.Snapshot().String(),
		State:        g.stateType(),
	}
}

func (g *Game) stateType() GameStateType {
	switch {
	case g.tooSmall:
		return StateTooSmall
	case g.gameOver:
		return StateGameOver
	case g.paused:
		return StatePaused
	case g.engine.Busy():
		return StateResolving
	default:
		return StatePlaying
	}
}
