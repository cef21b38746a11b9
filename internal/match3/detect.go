package match3

import "sort"

// MatchSet is a set of matched positions. A cell that belongs to both a
// horizontal and a vertical run is present once.
type MatchSet map[Position]struct{}

// Add inserts p.
func (m MatchSet) Add(p Position) {
	m[p] = struct{}{}
}

// Has reports whether p is in the set.
func (m MatchSet) Has(p Position) bool {
	_, ok := m[p]
	return ok
}

// Len returns the number of distinct positions.
func (m MatchSet) Len() int {
	return len(m)
}

// Sorted returns the positions in row-major order.
func (m MatchSet) Sorted() []Position {
	out := make([]Position, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Orientation of a run.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Run is a maximal line of at least three equal tiles.
type Run struct {
	Start       Position
	Length      int
	Orientation Orientation
	Tile        Tile
}

// Positions lists the cells covered by the run.
func (r Run) Positions() []Position {
	out := make([]Position, r.Length)
	for i := range r.Length {
		if r.Orientation == Horizontal {
			out[i] = Position{r.Start.Row, r.Start.Col + i}
		} else {
			out[i] = Position{r.Start.Row + i, r.Start.Col}
		}
	}
	return out
}

// MinRun is the shortest line of equal tiles that counts as a match.
const MinRun = 3

// Runs returns every maximal run on the board: rows top to bottom first, then
// columns left to right. Empty cells never form runs.
func Runs(b *Board) []Run {
	var runs []Run

	for r := 0; r < b.height; r++ {
		runs = scanLine(b, runs, Position{r, 0}, Position{0, 1}, b.width, Horizontal)
	}
	for c := 0; c < b.width; c++ {
		runs = scanLine(b, runs, Position{0, c}, Position{1, 0}, b.height, Vertical)
	}
	return runs
}

// scanLine walks n cells from start in steps of step, appending maximal runs.
func scanLine(b *Board, runs []Run, start, step Position, n int, o Orientation) []Run {
	i := 0
	for i < n {
		p := Position{start.Row + step.Row*i, start.Col + step.Col*i}
		t := b.Get(p)
		j := i + 1
		for j < n && b.Get(Position{start.Row + step.Row*j, start.Col + step.Col*j}) == t {
			j++
		}
		if t != Empty && j-i >= MinRun {
			runs = append(runs, Run{Start: p, Length: j - i, Orientation: o, Tile: t})
		}
		i = j
	}
	return runs
}

// Detect returns the union of all cells that belong to a run.
func Detect(b *Board) MatchSet {
	m := make(MatchSet)
	for _, run := range Runs(b) {
		for _, p := range run.Positions() {
			m.Add(p)
		}
	}
	return m
}

// HasMatch reports whether any run exists, without building the set.
func HasMatch(b *Board) bool {
	return len(Runs(b)) > 0
}
