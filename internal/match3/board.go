package match3

import (
	"fmt"
	"strings"
)

// Board is a fixed-size grid of tiles stored in row-major order.
// Dimensions never change after construction.
//
// Board performs no validation beyond bounds: callers validate moves, and an
// out-of-bounds access panics with *InvariantError.
type Board struct {
	width  int
	height int
	cells  []Tile
}

// NewBoard creates a board with every cell empty.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Tile, width*height),
	}
}

// Dimensions returns the board width and height.
func (b *Board) Dimensions() (width, height int) {
	return b.width, b.height
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether p addresses a cell of this board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

func (b *Board) index(p Position) int {
	if !b.InBounds(p) {
		invariant("board", "position %v outside %dx%d board", p, b.width, b.height)
	}
	return p.Row*b.width + p.Col
}

// Get returns the tile at p, or Empty for a vacated cell.
func (b *Board) Get(p Position) Tile {
	return b.cells[b.index(p)]
}

// Set stores t at p. Set(p, Empty) clears the cell.
func (b *Board) Set(p Position, t Tile) {
	b.cells[b.index(p)] = t
}

// Swap exchanges the contents of two cells unconditionally.
func (b *Board) Swap(a, c Position) {
	i, j := b.index(a), b.index(c)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	cells := make([]Tile, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
	}
}

// Equal reports whether both boards have the same size and tiles.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i, t := range b.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}

// EmptyCells returns the vacated cells in row-major order.
func (b *Board) EmptyCells() []Position {
	var out []Position
	for i, t := range b.cells {
		if t == Empty {
			out = append(out, Position{Row: i / b.width, Col: i % b.width})
		}
	}
	return out
}

// Full reports whether every cell holds a tile.
func (b *Board) Full() bool {
	for _, t := range b.cells {
		if t == Empty {
			return false
		}
	}
	return true
}

// String renders one line per row and one letter per tile ('.' for empty).
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for r := 0; r < b.height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.width; c++ {
			sb.WriteRune(b.cells[r*b.width+c].Rune())
		}
	}
	return sb.String()
}

// ParseBoard builds a board from the format produced by Board.String.
// Blank lines and surrounding whitespace are ignored.
func ParseBoard(s string) (*Board, error) {
	var rows [][]Tile
	for i, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Tile, 0, len(line))
		for _, r := range line {
			t, ok := ParseTile(r)
			if !ok {
				return nil, fmt.Errorf("match3: line %d: unknown tile %q", i+1, r)
			}
			row = append(row, t)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("match3: line %d: width %d, want %d", i+1, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("match3: empty board")
	}

	b := NewBoard(len(rows[0]), len(rows))
	for r, row := range rows {
		copy(b.cells[r*b.width:], row)
	}
	return b, nil
}
