package match3

// Outcome describes what a select did.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // Rejected, see the returned error
	OutcomeSelected
	OutcomeDeselected
	OutcomeReselected
	OutcomeSwapRejected
	OutcomeSwapCommitted
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeReselected:
		return "reselected"
	case OutcomeSwapRejected:
		return "swap_rejected"
	case OutcomeSwapCommitted:
		return "swap_committed"
	default:
		return "unknown"
	}
}

// Controller turns select signals into swap attempts.
type Controller struct {
	board    *Board
	resolver *Resolver
	emit     func(Event)

	selection Position
	selected  bool
}

// NewController creates a controller over board, delegating cascades to resolver.
func NewController(board *Board, resolver *Resolver, emit func(Event)) *Controller {
	if emit == nil {
		emit = func(Event) {}
	}
	return &Controller{board: board, resolver: resolver, emit: emit}
}

// Selection returns the pending selection, if any.
func (c *Controller) Selection() (Position, bool) {
	return c.selection, c.selected
}

// Clear drops the pending selection.
func (c *Controller) Clear() {
	c.selected = false
	c.selection = Position{}
}

// HandleSelect applies one select signal. Rejected signals leave all state
// unchanged and return an error wrapping ErrInvalidMove.
func (c *Controller) HandleSelect(pos Position) (Outcome, error) {
	if c.resolver.Busy() {
		return OutcomeIgnored, ErrBusy
	}
	if !c.board.InBounds(pos) {
		return OutcomeIgnored, ErrOutOfBounds
	}

	switch {
	case !c.selected:
		c.selection, c.selected = pos, true
		return OutcomeSelected, nil
	case pos == c.selection:
		c.Clear()
		return OutcomeDeselected, nil
	case pos.Adjacent(c.selection):
		from := c.selection
		c.Clear()
		if c.trySwap(from, pos) {
			return OutcomeSwapCommitted, nil
		}
		return OutcomeSwapRejected, nil
	default:
		c.selection = pos
		return OutcomeReselected, nil
	}
}

// trySwap swaps a and b speculatively. Without a match the swap is undone and
// the guard released; with one the resolver takes over the guard.
func (c *Controller) trySwap(a, b Position) bool {
	c.resolver.acquire()
	c.board.Swap(a, b)

	matches := Detect(c.board)
	if matches.Len() == 0 {
		c.board.Swap(a, b)
		c.resolver.release()
		c.emit(SwapRejected{A: a, B: b})
		return false
	}

	c.resolver.Commit(matches)
	return true
}
