package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/tilewall/internal/grid"
	"github.com/example/tilewall/internal/palette"
	"github.com/example/tilewall/internal/tile"
)

// Options configures Image.
type Options struct {
	Scale int     // pixels per tile unit
	Grout float64 // grout line width in pixels
	Width int     // final width in pixels, 0 keeps the scaled size
	// Light shades tiles from bright on the left to dark on the right,
	// 0 disables it and 1 is full strength.
	Light  float64
	Shadow bool
	Legend bool
}

// DefaultOptions matches the showroom preview: 60px per unit with 5px grout.
func DefaultOptions() Options {
	return Options{Scale: 60, Grout: 5}
}

const (
	legendRow     = 18
	legendPadding = 6
	legendSwatch  = 12
)

// Image rasterizes wall with pal. Areas no tile covers stay transparent
// unless a legend is added, which puts the wall on a white page.
func Image(wall *grid.Wall, pal *palette.Palette, opts Options) *image.RGBA {
	if opts.Scale <= 0 {
		opts.Scale = DefaultOptions().Scale
	}
	b := Bounds(wall.Tiles)
	scale := float64(opts.Scale)
	w := int(math.Ceil(b.Dx() * scale))
	h := int(math.Ceil(b.Dy() * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	halfGrout := opts.Grout / 2 / scale
	for _, t := range wall.Tiles {
		poly := outline(t.Cell)
		fill := pal.Color(t.Color)
		x0 := int(math.Floor((t.X - b.MinX) * scale))
		y0 := int(math.Floor((t.Y - b.MinY) * scale))
		x1 := int(math.Ceil((t.X + tileWidth - b.MinX) * scale))
		y1 := int(math.Ceil((t.Y + tileHeight - b.MinY) * scale))
		for py := max(y0, 0); py < min(y1, h); py++ {
			uy := b.MinY + (float64(py)+0.5)/scale
			for px := max(x0, 0); px < min(x1, w); px++ {
				ux := b.MinX + (float64(px)+0.5)/scale
				d, ok := edgeDistance(poly, point{ux, uy})
				if !ok {
					continue
				}
				if d < halfGrout {
					img.SetRGBA(px, py, pal.Grout)
					continue
				}
				img.SetRGBA(px, py, shade(fill, (ux-b.MinX)/b.Dx(), opts.Light))
			}
		}
	}

	if opts.Width > 0 && opts.Width != w && w > 0 {
		dst := image.NewRGBA(image.Rect(0, 0, opts.Width, max(1, h*opts.Width/w)))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
		img = dst
	}
	if opts.Shadow {
		img = ApplyShadow(img, DefaultShadowOptions()).Image
	}
	if opts.Legend {
		img = withLegend(img, wall, pal)
	}
	return img
}

// shade blends c toward a white to black ramp; f is the horizontal
// position in [0,1].
func shade(c color.RGBA, f, strength float64) color.RGBA {
	if strength <= 0 {
		return c
	}
	s := math.Min(strength, 1)
	g := 255 * (1 - f)
	mix := func(v uint8) uint8 {
		return uint8(math.Round(float64(v)*(1-s) + g*s))
	}
	return color.RGBA{mix(c.R), mix(c.G), mix(c.B), c.A}
}

func withLegend(img *image.RGBA, wall *grid.Wall, pal *palette.Palette) *image.RGBA {
	counts := map[tile.Color]int{}
	for _, t := range wall.Tiles {
		counts[t.Color]++
	}
	rows := append([]tile.Color{}, tile.All...)
	if counts[tile.Black] > 0 {
		rows = append(rows, tile.Black)
	}

	lines := make([]string, len(rows))
	width := img.Bounds().Dx()
	meas := &font.Drawer{Face: basicfont.Face7x13}
	for i, c := range rows {
		pct := 0.0
		if n := len(wall.Tiles); n > 0 {
			pct = float64(counts[c]) / float64(n) * 100
		}
		lines[i] = fmt.Sprintf("%s (%s) %d  %.1f%%", pal.Label(c), c, counts[c], pct)
		width = max(width, legendPadding*3+legendSwatch+meas.MeasureString(lines[i]).Ceil())
	}

	top := img.Bounds().Dy() + legendPadding
	out := image.NewRGBA(image.Rect(0, 0, width, top+len(rows)*legendRow+legendPadding))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(out, img.Bounds(), img, img.Bounds().Min, draw.Over)

	for i, c := range rows {
		y := top + i*legendRow
		sw := image.Rect(legendPadding, y+2, legendPadding+legendSwatch, y+2+legendSwatch)
		draw.Draw(out, sw.Inset(-1), image.NewUniform(pal.Grout), image.Point{}, draw.Src)
		draw.Draw(out, sw, image.NewUniform(pal.Color(c)), image.Point{}, draw.Src)
		d := &font.Drawer{Dst: out, Src: image.Black, Face: basicfont.Face7x13,
			Dot: fixed.P(legendPadding*2+legendSwatch, y+13)}
		d.DrawString(lines[i])
	}
	return out
}
