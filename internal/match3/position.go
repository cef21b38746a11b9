// Package match3 implements the tile-matching cascade engine behind the cascade game.
//
// The engine owns a fixed-size board of coloured tiles. A player selects two
// orthogonally adjacent cells; the swap is kept only if it creates a run of three
// or more equal tiles. Matched tiles are removed, the columns compact downward,
// the holes are refilled from a seeded tile factory and the board is checked
// again, looping until no run remains.
//
// The package has no UI or I/O dependencies. Consumers observe the engine through
// events (see Subscribe) and read-only board snapshots.
package match3

import "fmt"

// Position addresses a board cell. Row 0 is the top row; gravity pulls tiles
// toward higher row numbers.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// P is shorthand for Position{Row: row, Col: col}.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Adjacent reports whether q is exactly one step away from p along exactly one axis.
func (p Position) Adjacent(q Position) bool {
	dr := abs(p.Row - q.Row)
	dc := abs(p.Col - q.Col)
	return dr+dc == 1
}

// Less orders positions row-major.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Up, Down, Left and Right return the neighbouring position in that direction.
// The result may be out of bounds.
func (p Position) Up() Position    { return Position{p.Row - 1, p.Col} }
func (p Position) Down() Position  { return Position{p.Row + 1, p.Col} }
func (p Position) Left() Position  { return Position{p.Row, p.Col - 1} }
func (p Position) Right() Position { return Position{p.Row, p.Col + 1} }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
