package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/example/tilewall/internal/tile"
)

// MinDistance is the CIEDE2000 distance below which two tile colors are
// reported as hard to tell apart.
const MinDistance = 0.05

// Entry describes one paintable slot of a palette.
type Entry struct {
	Tile      tile.Color
	Label     string
	Color     color.RGBA
	Lightness float64 // CIE L*, 0..1
}

// Entries returns the paintable slots in tile.All order.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, 0, len(tile.All))
	for _, c := range tile.All {
		rgba := p.Color(c)
		cf, _ := colorful.MakeColor(rgba)
		l, _, _ := cf.Lab()
		out = append(out, Entry{Tile: c, Label: p.Label(c), Color: rgba, Lightness: l})
	}
	return out
}

// Check rejects palettes where two tile slots share a color, since the
// no-repeat rule could not be seen on the wall. Pairs that are merely close
// come back as warnings.
func (p *Palette) Check() ([]string, error) {
	entries := p.Entries()
	var warnings []string
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			if a.Color == b.Color {
				return warnings, fmt.Errorf("palette %s: %s and %s are both %s", p.Name, a.Tile, b.Tile, Hex(a.Color))
			}
			ca, _ := colorful.MakeColor(a.Color)
			cb, _ := colorful.MakeColor(b.Color)
			if d := ca.DistanceCIEDE2000(cb); d < MinDistance {
				warnings = append(warnings, fmt.Sprintf("%s and %s are hard to tell apart (distance %.3f)", a.Label, b.Label, d))
			}
		}
	}
	return warnings, nil
}
