package palette

import (
	"image/color"

	"github.com/example/tilewall/internal/tile"
)

// Palette maps tile slots to concrete colors.
type Palette struct {
	Name string

	// Tile colors
	White  color.RGBA // Default tile
	Yellow color.RGBA
	Orange color.RGBA
	Blue   color.RGBA

	// Display names for the tile colors, e.g. the manufacturer's glaze name
	WhiteLabel  string
	YellowLabel string
	OrangeLabel string
	BlueLabel   string

	Fallback color.RGBA // Shown when a sampler runs dry
	Grout    color.RGBA
}

// Default returns the uptown palette, picked from a photo of the showroom
// wall under top-left lighting.
func Default() *Palette {
	return &Palette{
		Name:        "uptown",
		White:       color.RGBA{0xf0, 0xf0, 0xf0, 255},
		Yellow:      color.RGBA{0xb8, 0xc1, 0x70, 255},
		Orange:      color.RGBA{0xe6, 0x95, 0x53, 255},
		Blue:        color.RGBA{0x4b, 0x53, 0x66, 255},
		WhiteLabel:  "Uptown",
		YellowLabel: "Twist",
		OrangeLabel: "Fandango",
		BlueLabel:   "Vogue",
		Fallback:    color.RGBA{0, 0, 0, 255},
		Grout:       color.RGBA{0xd3, 0xd3, 0xd3, 255},
	}
}

// Color returns the RGBA value for a tile slot. Unknown slots, including
// tile.Black, resolve to the fallback.
func (p *Palette) Color(c tile.Color) color.RGBA {
	switch c {
	case tile.White:
		return p.White
	case tile.Yellow:
		return p.Yellow
	case tile.Orange:
		return p.Orange
	case tile.Blue:
		return p.Blue
	}
	return p.Fallback
}

// Label returns the display name for a tile slot, falling back to the slot
// name.
func (p *Palette) Label(c tile.Color) string {
	var l string
	switch c {
	case tile.White:
		l = p.WhiteLabel
	case tile.Yellow:
		l = p.YellowLabel
	case tile.Orange:
		l = p.OrangeLabel
	case tile.Blue:
		l = p.BlueLabel
	}
	if l == "" {
		return c.String()
	}
	return l
}
