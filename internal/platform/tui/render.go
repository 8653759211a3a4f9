package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/geometry-fighter/internal/core"
)

// palette holds the ANSI index for every shape color.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBlack:         "0",
}

// hazardBackground keeps black hazard glyphs visible on dark terminals.
const hazardBackground = "250"

var styles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	out := make(map[core.Color]lipgloss.Style, len(palette)+1)
	out[core.ColorDefault] = lipgloss.NewStyle()
	for c, ansi := range palette {
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(ansi))
		if c == core.ColorBlack {
			st = st.Background(lipgloss.Color(hazardBackground))
		}
		out[c] = st
	}
	return out
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := styles[c]; ok {
		return st
	}
	return styles[core.ColorDefault]
}

// RenderScreen turns the frame into styled text. The whole frame is
// displaced by shake; cells pushed in from outside are blank.
// Runs of one color share a single escape sequence.
func RenderScreen(s *core.Screen, shake core.Point) string {
	w, h := s.Width(), s.Height()
	var sb strings.Builder
	sb.Grow(w*h*2 + h)

	var run strings.Builder
	for y := range h {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < w; {
			color := s.GetCell(x-shake.X, y-shake.Y).Color
			run.Reset()
			for ; x < w; x++ {
				cell := s.GetCell(x-shake.X, y-shake.Y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
