package core

// Color is the foreground colour of a screen cell. The platform maps each
// value to a terminal colour; games never deal with escape codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrightWhite
	ColorBrightYellow
)

// Attr modifies how a cell is drawn.
type Attr uint8

const (
	AttrNone    Attr = 0
	AttrBold    Attr = 1 << iota // Bold text
	AttrReverse                  // Swap foreground and background (cursor)
	AttrBlink                    // Rendered as faint on terminals without blink
)

// Has reports whether all bits of other are set.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}
