package match3

import (
	"math/rand/v2"
)

// Tile is the content of a board cell. Empty marks a cell vacated during a
// resolution phase; every other value is a palette colour.
type Tile uint8

const (
	Empty Tile = iota
	Red
	Green
	Blue
	Yellow
	Purple
	Orange
	Cyan
	White
)

// Palette bounds.
const (
	MinPalette     = 3
	MaxPalette     = 8
	DefaultPalette = 6
)

var tileRunes = [...]rune{'.', 'R', 'G', 'B', 'Y', 'P', 'O', 'C', 'W'}

var tileNames = [...]string{"empty", "red", "green", "blue", "yellow", "purple", "orange", "cyan", "white"}

// String returns the tile's colour name.
func (t Tile) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return "unknown"
}

// Rune returns the single-letter form used by Board.String and ParseBoard.
func (t Tile) Rune() rune {
	if int(t) < len(tileRunes) {
		return tileRunes[t]
	}
	return '?'
}

// MarshalText encodes the tile by colour name, so event dumps stay readable.
func (t Tile) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// IsEmpty reports whether the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t == Empty
}

// ParseTile is the inverse of Tile.Rune.
func ParseTile(r rune) (Tile, bool) {
	for i, tr := range tileRunes {
		if tr == r {
			return Tile(i), true
		}
	}
	return Empty, false
}

// IntNSource is the part of a random generator the engine needs.
// *rand.Rand from math/rand/v2 satisfies it; tests substitute scripted sources.
type IntNSource interface {
	IntN(n int) int
}

// NewRandSource returns a seeded PCG generator. Equal seeds yield equal streams.
func NewRandSource(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// TileFactory draws tiles uniformly from the first palette colours.
// It does not try to avoid creating matches; the recheck phase absorbs them.
type TileFactory struct {
	src     IntNSource
	palette int
}

// NewTileFactory creates a factory over palette colours drawn from src.
func NewTileFactory(src IntNSource, palette int) *TileFactory {
	return &TileFactory{src: src, palette: palette}
}

// Next returns a new tile.
func (f *TileFactory) Next() Tile {
	return Tile(f.src.IntN(f.palette) + 1)
}

// Palette returns the number of colours the factory draws from.
func (f *TileFactory) Palette() int {
	return f.palette
}
