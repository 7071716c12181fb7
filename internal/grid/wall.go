package grid

import (
	"fmt"

	"github.com/example/tilewall/internal/sampler"
	"github.com/example/tilewall/internal/tile"
)

// Tile is one placed, colored tile.
type Tile struct {
	Cell
	Color tile.Color
}

// Wall is a filled layout.
type Wall struct {
	Layout Layout
	Tiles  []Tile
}

// Fill colors every cell of layout in order, drawing from pass.
func Fill(layout Layout, pass *Pass) *Wall {
	cells := layout.Cells()
	w := &Wall{Layout: layout, Tiles: make([]Tile, len(cells))}
	for i, c := range cells {
		w.Tiles[i] = Tile{Cell: c, Color: pass.Next()}
	}
	return w
}

// Randomize recolors every tile from a fresh pass.
func (w *Wall) Randomize(pass *Pass) {
	for i := range w.Tiles {
		w.Tiles[i].Color = pass.Next()
	}
}

// Paint sets tile i to c.
func (w *Wall) Paint(i int, c tile.Color) error {
	if i < 0 || i >= len(w.Tiles) {
		return fmt.Errorf("tile %d out of range [0,%d)", i, len(w.Tiles))
	}
	w.Tiles[i].Color = c
	return nil
}

// Cycle gives tile i a paintable color other than its current one, chosen
// uniformly, and returns it.
func (w *Wall) Cycle(i int, rng sampler.Rand) (tile.Color, error) {
	if i < 0 || i >= len(w.Tiles) {
		return 0, fmt.Errorf("tile %d out of range [0,%d)", i, len(w.Tiles))
	}
	current := w.Tiles[i].Color
	candidates := make([]tile.Color, 0, len(tile.All))
	for _, c := range tile.All {
		if c != current {
			candidates = append(candidates, c)
		}
	}
	next := candidates[rng.IntN(len(candidates))]
	w.Tiles[i].Color = next
	return next, nil
}

// Colors returns the tile colors in fill order.
func (w *Wall) Colors() []tile.Color {
	out := make([]tile.Color, len(w.Tiles))
	for i, t := range w.Tiles {
		out[i] = t.Color
	}
	return out
}

// Stats compares the wall against mix.
func (w *Wall) Stats(mix sampler.Mix) Stats {
	return Compute(w.Colors(), mix)
}
