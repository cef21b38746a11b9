package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-cascade/internal/core"
)

// colorCodes maps core.Color to terminal palette entries.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightYellow: "11",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

type styleKey struct {
	color core.Color
	attr  core.Attr
}

// styleFor returns the lipgloss style of a colour and attribute pair.
// Blink is shown as faint since most terminals ignore it.
func styleFor(c core.Color, a core.Attr) lipgloss.Style {
	style := lipgloss.NewStyle()
	if code, ok := colorCodes[c]; ok {
		style = style.Foreground(code)
	}
	if a.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if a.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	if a.Has(core.AttrBlink) {
		style = style.Faint(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[styleKey]lipgloss.Style)
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			key := styleKey{first.Color, first.Attr}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != key.color || cell.Attr != key.attr {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (styleKey{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[key]
			if !ok {
				style = styleFor(key.color, key.attr)
				styles[key] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
