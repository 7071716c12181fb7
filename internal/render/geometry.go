// Package render draws filled walls as images and terminal swatches.
package render

import (
	"math"

	"github.com/example/tilewall/internal/grid"
)

// Tile outlines in tile units relative to the cell origin. Tiles are
// kites two units wide and 2.5 tall; flipped tiles point down.
var (
	uprightOutline = [4]point{{0, 1}, {1, 0}, {2, 1}, {1, 2.5}}
	flippedOutline = [4]point{{0, 1.5}, {1, 2.5}, {2, 1.5}, {1, 0}}
)

const (
	tileWidth  = 2.0
	tileHeight = 2.5
)

type point struct{ X, Y float64 }

// Rect is an axis aligned area in tile units.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.MaxX - r.MinX }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.MaxY - r.MinY }

func outline(c grid.Cell) [4]point {
	base := uprightOutline
	if c.Flip {
		base = flippedOutline
	}
	for i := range base {
		base[i].X += c.X
		base[i].Y += c.Y
	}
	return base
}

// Bounds returns the area covered by tiles, or the zero Rect for an empty
// slice.
func Bounds(tiles []grid.Tile) Rect {
	if len(tiles) == 0 {
		return Rect{}
	}
	r := Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, t := range tiles {
		r.MinX = math.Min(r.MinX, t.X)
		r.MinY = math.Min(r.MinY, t.Y)
		r.MaxX = math.Max(r.MaxX, t.X+tileWidth)
		r.MaxY = math.Max(r.MaxY, t.Y+tileHeight)
	}
	return r
}

// Contains reports whether (x, y) lies inside the tile at cell c.
func Contains(c grid.Cell, x, y float64) bool {
	_, ok := edgeDistance(outline(c), point{x, y})
	return ok
}

// TileAt returns the index of the topmost tile covering (x, y), or -1.
// Later tiles are drawn over earlier ones.
func TileAt(tiles []grid.Tile, x, y float64) int {
	for i := len(tiles) - 1; i >= 0; i-- {
		if Contains(tiles[i].Cell, x, y) {
			return i
		}
	}
	return -1
}

// edgeDistance returns the distance from p to the nearest edge of the
// convex polygon poly and whether p lies inside it.
func edgeDistance(poly [4]point, p point) (float64, bool) {
	var sign float64
	nearest := math.Inf(1)
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross != 0 {
			if sign == 0 {
				sign = math.Copysign(1, cross)
			} else if math.Copysign(1, cross) != sign {
				return 0, false
			}
		}
		nearest = math.Min(nearest, segmentDistance(a, b, p))
	}
	return nearest, true
}

func segmentDistance(a, b, p point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
