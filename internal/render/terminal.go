package render

import (
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/tilewall/internal/grid"
	"github.com/example/tilewall/internal/palette"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Terminal draws wall as colored blocks width cells wide, styled for the
// terminal behind w. Color is dropped when w is not a terminal.
func Terminal(w io.Writer, wall *grid.Wall, pal *palette.Palette, width int) string {
	b := Bounds(wall.Tiles)
	if width <= 0 || b.Dx() == 0 {
		return ""
	}
	r := lipgloss.NewRenderer(w)
	unit := b.Dx() / float64(width)
	height := int(math.Ceil(b.Dy() / (unit * cellAspect)))
	grout := unit / 2

	styles := map[color.RGBA]lipgloss.Style{}
	styleFor := func(c color.RGBA) lipgloss.Style {
		s, ok := styles[c]
		if !ok {
			s = r.NewStyle().Background(lipgloss.Color(palette.Hex(c)))
			styles[c] = s
		}
		return s
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		y := b.MinY + (float64(row)+0.5)*unit*cellAspect
		var run strings.Builder
		var current color.RGBA
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(styleFor(current).Render(run.String()))
				run.Reset()
			}
		}
		for col := 0; col < width; col++ {
			x := b.MinX + (float64(col)+0.5)*unit
			c := pal.Grout
			if i := TileAt(wall.Tiles, x, y); i >= 0 {
				if d, _ := edgeDistance(outline(wall.Tiles[i].Cell), point{x, y}); d >= grout {
					c = pal.Color(wall.Tiles[i].Color)
				}
			}
			if c != current && run.Len() > 0 {
				flush()
			}
			current = c
			run.WriteByte(' ')
		}
		flush()
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Swatch renders a short colored block for c followed by label.
func Swatch(w io.Writer, c color.RGBA, label string) string {
	r := lipgloss.NewRenderer(w)
	block := r.NewStyle().Background(lipgloss.Color(palette.Hex(c))).Render("    ")
	return block + " " + label
}
