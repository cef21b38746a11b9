package cascade

import (
	"fmt"

	"github.com/vovakirdan/tui-cascade/internal/core"
	"github.com/vovakirdan/tui-cascade/internal/match3"
)

const (
	cellWidth    = 3 // Glyph plus one column of padding on each side
	hudHeight    = 2
	footerHeight = 2
	minHUDWidth  = 40
)

// tileGlyphs keeps tiles distinguishable on monochrome terminals.
var tileGlyphs = map[match3.Tile]rune{
	match3.Red:    '●',
	match3.Green:  '▲',
	match3.Blue:   '■',
	match3.Yellow: '★',
	match3.Purple: '◆',
	match3.Orange: '♥',
	match3.Cyan:   '♣',
	match3.White:  '○',
}

var tileColors = map[match3.Tile]core.Color{
	match3.Red:    core.ColorRed,
	match3.Green:  core.ColorGreen,
	match3.Blue:   core.ColorBlue,
	match3.Yellow: core.ColorYellow,
	match3.Purple: core.ColorMagenta,
	match3.Orange: core.ColorOrange,
	match3.Cyan:   core.ColorCyan,
	match3.White:  core.ColorWhite,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.engine.Snapshot()
	boardW := board.Width()*cellWidth + 2
	boardH := board.Height() + 2
	box := core.NewRect(0, 0, boardW, boardH).CenterIn(core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight-footerHeight))

	g.renderHUD(dst, box)
	dst.DrawBox(box, core.ColorGray)
	g.renderBoard(dst, board, box.X+1, box.Y+1)
	g.renderFooter(dst, box)
	g.renderOverlays(dst, box)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.minW, g.minH), core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, box core.Rect) {
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)

	left := fmt.Sprintf("Score: %d", g.Score())
	var right string
	if g.mode == ModeMoves {
		right = fmt.Sprintf("Moves left: %d", g.MovesLeft())
	} else {
		right = fmt.Sprintf("Moves: %d", g.moves)
	}
	if g.bestCombo > 1 {
		right = fmt.Sprintf("Best x%d  %s", g.bestCombo, right)
	}

	x := max(box.X, 0)
	dst.DrawTextColored(x, 1, left, core.ColorBrightYellow, core.AttrBold)
	dst.DrawText(max(box.Right()-len([]rune(right)), x+len(left)+2), 1, right)
}

func (g *Game) renderBoard(dst *core.Screen, board *match3.Board, x0, y0 int) {
	sel, selected := g.engine.Selection()

	for r := 0; r < board.Height(); r++ {
		for c := 0; c < board.Width(); c++ {
			p := match3.P(r, c)
			x, y := x0+c*cellWidth, y0+r

			glyph, color := '·', core.ColorGray
			if t := board.Get(p); !t.IsEmpty() {
				glyph, color = tileGlyphs[t], tileColors[t]
			} else if g.flash.Has(p) {
				glyph, color = '*', core.ColorBrightYellow
			}

			attr := core.AttrNone
			if p == g.cursor {
				attr = core.AttrReverse
			}

			left, right := ' ', ' '
			switch {
			case selected && p == sel:
				left, right = '[', ']'
			case g.hint != nil && (p == g.hint.A || p == g.hint.B):
				left, right = '<', '>'
			}

			dst.SetColored(x, y, left, core.ColorBrightWhite, attr)
			dst.SetColored(x+1, y, glyph, color, attr|core.AttrBold)
			dst.SetColored(x+2, y, right, core.ColorBrightWhite, attr)
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen, box core.Rect) {
	y := box.Bottom()
	if g.message != "" {
		dst.DrawTextCentered(y, g.message, core.ColorBrightYellow)
	} else if g.combo > 1 && g.engine.Busy() {
		dst.DrawTextCentered(y, fmt.Sprintf("Combo x%d", g.combo), core.ColorBrightYellow)
	}
	dst.DrawTextCentered(g.screenH-1, g.Controls(), core.ColorGray)
}

func (g *Game) renderOverlays(dst *core.Screen, box core.Rect) {
	cx, cy := box.X+box.W/2, box.Y+box.H/2

	switch {
	case g.paused:
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.gameOver && g.failed:
		drawOverlay(dst, cx, cy, "ENGINE ERROR", "Press R to restart")
	case g.gameOver:
		title := "NO MOVES LEFT"
		if g.mode == ModeMoves && g.moves >= g.cfg.Gameplay.MovesLimit {
			title = "OUT OF MOVES"
		}
		drawOverlay(dst, cx, cy, title,
			fmt.Sprintf("Score: %d", g.Score()),
			fmt.Sprintf("Best combo: x%d", max(g.bestCombo, 1)),
			"R: restart  B: menu")
	}
}

// drawOverlay draws a boxed message centred on (cx, cy).
func drawOverlay(dst *core.Screen, cx, cy int, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}

	box := core.NewRect(cx-(width+4)/2, cy-(len(lines)+2)/2, width+4, len(lines)+2)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := cx - len([]rune(line))/2
		dst.DrawTextColored(x, box.Y+1+i, line, core.ColorBrightWhite, core.AttrBold)
	}
}
