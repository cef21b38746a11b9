package match3

// Phase is a state of the cascade resolver.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRemoving
	PhaseFalling
	PhaseRefilling
	PhaseRechecking
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRemoving:
		return "removing"
	case PhaseFalling:
		return "falling"
	case PhaseRefilling:
		return "refilling"
	case PhaseRechecking:
		return "rechecking"
	default:
		return "unknown"
	}
}

// Resolver drives a committed swap to a stable board:
//
//	Removing -> Falling -> Refilling -> Rechecking -> (Removing | Idle)
//
// Each phase runs atomically inside Advance. The busy flag is raised for the
// whole sequence and cleared only on the transition to Idle.
type Resolver struct {
	board   *Board
	factory *TileFactory
	score   *ScoreAccumulator
	emit    func(Event)

	phase   Phase
	busy    bool
	pending MatchSet // Match set consumed by the next removing phase
	cascade int      // Removing phases run in the current sequence
	delta   int      // Score gained in the current sequence
}

// NewResolver wires a resolver to its collaborators. emit may be nil.
func NewResolver(board *Board, factory *TileFactory, score *ScoreAccumulator, emit func(Event)) *Resolver {
	if emit == nil {
		emit = func(Event) {}
	}
	return &Resolver{
		board:   board,
		factory: factory,
		score:   score,
		emit:    emit,
		phase:   PhaseIdle,
	}
}

// Phase returns the phase that the next Advance will execute, or PhaseIdle.
func (r *Resolver) Phase() Phase {
	return r.phase
}

// Busy reports whether a swap or cascade sequence is in flight.
func (r *Resolver) Busy() bool {
	return r.busy
}

// acquire raises the busy guard for a speculative swap.
func (r *Resolver) acquire() {
	r.busy = true
}

// release drops the guard after a reverted swap.
func (r *Resolver) release() {
	r.busy = false
}

// Commit starts a cascade sequence from the match set of a committed swap.
func (r *Resolver) Commit(matches MatchSet) {
	if matches.Len() == 0 {
		invariant("commit", "empty match set")
	}
	r.busy = true
	r.pending = matches
	r.cascade = 0
	r.delta = 0
	r.phase = PhaseRemoving
}

// Recheck starts a sequence at the rechecking phase. Used to settle a freshly
// filled board before the first player input.
func (r *Resolver) Recheck() {
	r.busy = true
	r.pending = nil
	r.cascade = 0
	r.delta = 0
	r.phase = PhaseRechecking
}

// Advance executes the current phase and reports whether more phases remain.
// It is a no-op returning false when idle.
func (r *Resolver) Advance() bool {
	switch r.phase {
	case PhaseRemoving:
		r.remove()
		r.phase = PhaseFalling
	case PhaseFalling:
		r.fall()
		r.phase = PhaseRefilling
	case PhaseRefilling:
		r.refill()
		r.phase = PhaseRechecking
	case PhaseRechecking:
		r.recheck()
	default:
		return false
	}
	return r.phase != PhaseIdle
}

// RunToIdle advances until the board is stable and returns the number of
// phases executed.
func (r *Resolver) RunToIdle() int {
	n := 0
	for r.phase != PhaseIdle {
		r.Advance()
		n++
	}
	return n
}

func (r *Resolver) remove() {
	positions := r.pending.Sorted()
	for _, p := range positions {
		if !r.board.InBounds(p) {
			invariant("remove", "match at %v outside board", p)
		}
		r.board.Set(p, Empty)
	}
	r.pending = nil
	r.cascade++

	delta := r.score.ScoreFor(len(positions))
	r.score.Accumulate(delta)
	r.delta += delta

	r.emit(TilesRemoved{Positions: positions, ScoreDelta: delta, Cascade: r.cascade})
}

// fall compacts every column toward the bottom, keeping the vertical order of
// the surviving tiles.
func (r *Resolver) fall() {
	var moves []Move
	for c := 0; c < r.board.width; c++ {
		dst := r.board.height - 1
		for row := r.board.height - 1; row >= 0; row-- {
			from := Position{row, c}
			t := r.board.Get(from)
			if t == Empty {
				continue
			}
			if row != dst {
				to := Position{dst, c}
				r.board.Set(to, t)
				r.board.Set(from, Empty)
				moves = append(moves, Move{From: from, To: to, Tile: t})
			}
			dst--
		}
	}
	r.emit(GravityApplied{Moves: moves})
}

// refill places a new tile in every empty cell, column by column, top to bottom.
func (r *Resolver) refill() {
	var ev Refilled
	for c := 0; c < r.board.width; c++ {
		for row := 0; row < r.board.height; row++ {
			p := Position{row, c}
			if r.board.Get(p) != Empty {
				continue
			}
			t := r.factory.Next()
			r.board.Set(p, t)
			ev.Positions = append(ev.Positions, p)
			ev.Tiles = append(ev.Tiles, t)
		}
	}
	if !r.board.Full() {
		invariant("refill", "empty cells remain: %v", r.board.EmptyCells())
	}
	r.emit(ev)
}

func (r *Resolver) recheck() {
	matches := Detect(r.board)
	if matches.Len() > 0 {
		r.pending = matches
		r.phase = PhaseRemoving
		return
	}

	r.phase = PhaseIdle
	r.busy = false
	r.emit(Stable{TotalScoreDelta: r.delta, CascadeCount: r.cascade})
}
