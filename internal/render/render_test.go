package render

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/tilewall/internal/grid"
	"github.com/example/tilewall/internal/palette"
	"github.com/example/tilewall/internal/tile"
)

func smallWall(c tile.Color) *grid.Wall {
	layout := grid.Layout{Columns: 2, Rows: 2}
	cells := layout.Cells()
	w := &grid.Wall{Layout: layout, Tiles: make([]grid.Tile, len(cells))}
	for i, cell := range cells {
		w.Tiles[i] = grid.Tile{Cell: cell, Color: c}
	}
	return w
}

func TestContains(t *testing.T) {
	up := grid.Cell{X: 0, Y: 0}
	if !Contains(up, 1, 1) {
		t.Error("center of upright tile should be inside")
	}
	if Contains(up, 0.1, 0.1) {
		t.Error("top-left corner of bounding box should be outside")
	}
	down := grid.Cell{X: 1, Y: -1.5, Flip: true}
	if !Contains(down, 2, -0.5) {
		t.Error("center of flipped tile should be inside")
	}
	if Contains(down, 1.1, 0.9) {
		t.Error("bottom-left of flipped box should be outside")
	}
}

func TestTileAtPrefersLaterTiles(t *testing.T) {
	tiles := []grid.Tile{
		{Cell: grid.Cell{X: 0, Y: 0}, Color: tile.White},
		{Cell: grid.Cell{X: 0, Y: 0}, Color: tile.Blue},
	}
	if got := TileAt(tiles, 1, 1); got != 1 {
		t.Fatalf("TileAt = %d, want 1", got)
	}
	if got := TileAt(tiles, 5, 5); got != -1 {
		t.Fatalf("TileAt outside = %d, want -1", got)
	}
}

func TestBounds(t *testing.T) {
	w := smallWall(tile.White)
	got := Bounds(w.Tiles)
	want := Rect{MinX: 0, MinY: -1.5, MaxX: 5, MaxY: 5}
	if got != want {
		t.Fatalf("Bounds = %+v, want %+v", got, want)
	}
	if (Bounds(nil) != Rect{}) {
		t.Fatal("empty bounds should be zero")
	}
}

func TestImageColorsAndGrout(t *testing.T) {
	pal := palette.Default()
	w := smallWall(tile.Orange)
	img := Image(w, pal, DefaultOptions())
	if got, want := img.Bounds(), image.Rect(0, 0, 300, 390); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
	// (1, 1) in tile units is the middle of the first upright tile.
	if got := img.RGBAAt(60, 150); got != pal.Orange {
		t.Errorf("tile pixel = %v, want %v", got, pal.Orange)
	}
	// Its top vertex sits on the grout line.
	if got := img.RGBAAt(60, 91); got != pal.Grout {
		t.Errorf("edge pixel = %v, want grout %v", got, pal.Grout)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("uncovered pixel = %v, want transparent", got)
	}
}

func TestImageWidthAndLegend(t *testing.T) {
	pal := palette.Default()
	w := smallWall(tile.White)
	w.Tiles[0].Color = tile.Black

	img := Image(w, pal, Options{Scale: 20, Width: 40})
	if img.Bounds().Dx() != 40 {
		t.Fatalf("width = %d, want 40", img.Bounds().Dx())
	}

	plain := Image(w, pal, Options{Scale: 20})
	legend := Image(w, pal, Options{Scale: 20, Legend: true})
	rows := len(tile.All) + 1
	if got, want := legend.Bounds().Dy(), plain.Bounds().Dy()+legendPadding*2+rows*legendRow; got != want {
		t.Fatalf("legend height = %d, want %d", got, want)
	}
	if got := legend.RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("legend background = %v, want white", got)
	}
}

func TestShade(t *testing.T) {
	c := color.RGBA{100, 100, 100, 255}
	if got := shade(c, 0.5, 0); got != c {
		t.Errorf("zero strength changed color: %v", got)
	}
	if got := shade(c, 0, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("full strength at left = %v, want white", got)
	}
	if got := shade(c, 1, 1); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("full strength at right = %v, want black", got)
	}
}

func TestTerminalDimensions(t *testing.T) {
	var buf bytes.Buffer
	out := Terminal(&buf, smallWall(tile.Blue), palette.Default(), 16)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// 6.5 units tall, 5/16 units per column and twice that per row.
	if len(lines) != 11 {
		t.Fatalf("got %d lines, want 11", len(lines))
	}
	for i, l := range lines {
		if lipgloss.Width(l) != 16 {
			t.Fatalf("line %d width = %d, want 16", i, lipgloss.Width(l))
		}
	}
	if Terminal(&buf, &grid.Wall{}, palette.Default(), 16) != "" {
		t.Fatal("empty wall should render nothing")
	}
}
