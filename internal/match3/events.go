package match3

// EventKind identifies the type of an engine event.
type EventKind int

const (
	KindTilesRemoved EventKind = iota
	KindGravityApplied
	KindRefilled
	KindStable
	KindSwapRejected
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case KindTilesRemoved:
		return "tiles_removed"
	case KindGravityApplied:
		return "gravity_applied"
	case KindRefilled:
		return "refilled"
	case KindStable:
		return "stable"
	case KindSwapRejected:
		return "swap_rejected"
	default:
		return "unknown"
	}
}

// Event is emitted by the engine after each phase completes.
// Listeners receive events synchronously, in emission order.
type Event interface {
	Kind() EventKind
}

// TilesRemoved is emitted by the removing phase.
type TilesRemoved struct {
	Positions  []Position `json:"positions"`   // Row-major order
	ScoreDelta int        `json:"score_delta"` // len(Positions) * PointsPerTile
	Cascade    int        `json:"cascade"`     // 1 for the swap's own match, 2+ for chain reactions
}

func (TilesRemoved) Kind() EventKind { return KindTilesRemoved }

// Move describes one tile relocated by gravity.
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
	Tile Tile     `json:"tile"`
}

// GravityApplied is emitted by the falling phase. Moves lists only tiles whose
// row changed, column by column, lowest destination first.
type GravityApplied struct {
	Moves []Move `json:"moves"`
}

func (GravityApplied) Kind() EventKind { return KindGravityApplied }

// Refilled is emitted by the refilling phase. Positions and Tiles are parallel.
type Refilled struct {
	Positions []Position `json:"positions"`
	Tiles     []Tile     `json:"tiles"`
}

func (Refilled) Kind() EventKind { return KindRefilled }

// Stable is emitted when the board has no match left and input is accepted again.
type Stable struct {
	TotalScoreDelta int `json:"total_score_delta"`
	CascadeCount    int `json:"cascade_count"` // Number of removing phases in the sequence
}

func (Stable) Kind() EventKind { return KindStable }

// SwapRejected is emitted when a swap produced no match and was reverted.
type SwapRejected struct {
	A Position `json:"a"`
	B Position `json:"b"`
}

func (SwapRejected) Kind() EventKind { return KindSwapRejected }

// Listener consumes engine events.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// bus fans events out to listeners in subscription order.
type bus struct {
	subs   []subscription
	nextID int
}

func (b *bus) subscribe(fn Listener) func() {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

func (b *bus) emit(ev Event) {
	for _, s := range b.subs {
		s.fn(ev)
	}
}
