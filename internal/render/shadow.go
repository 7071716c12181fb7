package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow cast by a rendered wall.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
	Color   color.RGBA // alpha is ignored, Opacity applies instead
}

// ShadowResult captures the output of ApplyShadow.
type ShadowResult struct {
	Image *image.RGBA
	// Offset is where the original top-left corner ended up.
	Offset image.Point
}

// DefaultShadowOptions returns a soft shadow falling down and to the right,
// away from top-left lighting.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  12,
		Offset:  image.Pt(8, 8),
		Opacity: 0.45,
	}
}

// ApplyShadow composites img over a blurred copy of its alpha mask. The
// result has a zero origin.
func ApplyShadow(img *image.RGBA, opts ShadowOptions) ShadowResult {
	if img == nil {
		return ShadowResult{}
	}
	if img.Bounds().Empty() || opts.Opacity <= 0 {
		return ShadowResult{Image: img}
	}
	opacity := min(opts.Opacity, 1)
	radius := max(opts.Radius, 0)

	src := img.Bounds()
	padded := src.Inset(-radius)
	cast := padded.Add(opts.Offset)
	total := src.Union(cast)
	shift := src.Min.Sub(total.Min)

	mask := image.NewGray(padded.Sub(padded.Min))
	for y := src.Min.Y; y < src.Max.Y; y++ {
		for x := src.Min.X; x < src.Max.X; x++ {
			if a := img.RGBAAt(x, y).A; a != 0 {
				mask.SetGray(x-padded.Min.X, y-padded.Min.Y, color.Gray{Y: a})
			}
		}
	}
	blurred := boxBlur(mask, radius)

	dst := image.NewRGBA(total.Sub(total.Min))
	tint := opts.Color
	tint.A = uint8(opacity*255 + 0.5)
	if tint.A > 0 {
		// Premultiply for image.Uniform.
		tint.R = uint8(uint16(tint.R) * uint16(tint.A) / 255)
		tint.G = uint8(uint16(tint.G) * uint16(tint.A) / 255)
		tint.B = uint8(uint16(tint.B) * uint16(tint.A) / 255)
		draw.DrawMask(dst, blurred.Bounds().Add(cast.Min.Sub(total.Min)), image.NewUniform(tint), image.Point{}, blurred, blurred.Bounds().Min, draw.Over)
	}
	draw.Draw(dst, src.Sub(total.Min), img, src.Min, draw.Over)

	return ShadowResult{Image: dst, Offset: shift}
}

// boxBlur runs a horizontal then vertical box filter of the given radius.
func boxBlur(src *image.Gray, radius int) *image.Gray {
	out := image.NewGray(src.Bounds())
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := image.NewGray(src.Bounds())
	for y := 0; y < h; y++ {
		row := y * src.Stride
		blurLine(w, radius,
			func(x int) uint8 { return src.Pix[row+x] },
			func(x int, v uint8) { tmp.Pix[y*tmp.Stride+x] = v })
	}
	for x := 0; x < w; x++ {
		blurLine(h, radius,
			func(y int) uint8 { return tmp.Pix[y*tmp.Stride+x] },
			func(y int, v uint8) { out.Pix[y*out.Stride+x] = v })
	}
	return out
}

// blurLine averages n samples over a window of radius using a prefix sum.
func blurLine(n, radius int, get func(int) uint8, set func(int, uint8)) {
	prefix := make([]int, n+1)
	for i := 0; i < n; i++ {
		prefix[i+1] = prefix[i] + int(get(i))
	}
	for i := 0; i < n; i++ {
		lo := max(i-radius, 0)
		hi := min(i+radius, n-1)
		set(i, uint8((prefix[hi+1]-prefix[lo])/(hi-lo+1)))
	}
}
