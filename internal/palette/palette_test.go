package palette

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/tilewall/internal/tile"
)

func TestParse(t *testing.T) {
	input := `
// custom wall
Name: kitchen
White: #FFFFFF
Yellow: #ABC
Orange: #11223344
Blue: navy
BlueLabel: Midnight
Unknown: #000000
`
	p, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Name != "kitchen" {
		t.Errorf("Expected name 'kitchen', got '%s'", p.Name)
	}
	if p.White != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Unexpected White color: %+v", p.White)
	}
	if p.Yellow != (color.RGBA{0xaa, 0xbb, 0xcc, 255}) {
		t.Errorf("Unexpected Yellow color: %+v", p.Yellow)
	}
	if p.Orange != (color.RGBA{0x11, 0x22, 0x33, 0x44}) {
		t.Errorf("Unexpected Orange color: %+v", p.Orange)
	}
	if p.Blue != (color.RGBA{0, 0, 0x80, 255}) {
		t.Errorf("Unexpected Blue color: %+v", p.Blue)
	}
	if p.Label(tile.Blue) != "Midnight" {
		t.Errorf("Expected Blue label 'Midnight', got %q", p.Label(tile.Blue))
	}
	// Unset keys keep the defaults.
	if p.Fallback != Default().Fallback {
		t.Errorf("Fallback should keep the default, got %+v", p.Fallback)
	}
}

func TestParseInvalidColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("White: #12345")); err == nil {
		t.Fatal("expected error for bad hex length")
	}
	if _, err := Parse(strings.NewReader("White: notacolor")); err == nil {
		t.Fatal("expected error for unknown color name")
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{0xe6, 0x95, 0x53, 255}); got != "#E69553" {
		t.Errorf("Hex = %s", got)
	}
	if got := Hex(color.RGBA{1, 2, 3, 4}); got != "#01020304" {
		t.Errorf("Hex = %s", got)
	}
}

func TestColorAndLabel(t *testing.T) {
	p := Default()
	if p.Color(tile.Orange) != p.Orange {
		t.Error("orange slot mismatch")
	}
	if p.Color(tile.Black) != p.Fallback {
		t.Error("black should resolve to the fallback")
	}
	if p.Label(tile.Yellow) != "Twist" {
		t.Errorf("unexpected label %q", p.Label(tile.Yellow))
	}
	p.WhiteLabel = ""
	if p.Label(tile.White) != "white" {
		t.Errorf("empty label should fall back to slot name, got %q", p.Label(tile.White))
	}
}

func TestCheck(t *testing.T) {
	p := Default()
	warnings, err := p.Check()
	if err != nil {
		t.Fatalf("default palette failed check: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	p.Blue = p.Orange
	if _, err := p.Check(); err == nil {
		t.Error("expected error for duplicate colors")
	}

	p = Default()
	p.Blue = color.RGBA{p.Orange.R, p.Orange.G, p.Orange.B + 1, 255}
	warnings, err = p.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(warnings) != 1 {
		t.Errorf("expected one warning, got %v", warnings)
	}
}

func TestEntriesLightness(t *testing.T) {
	entries := Default().Entries()
	if len(entries) != len(tile.All) {
		t.Fatalf("expected %d entries, got %d", len(tile.All), len(entries))
	}
	var white, blue float64
	for _, e := range entries {
		switch e.Tile {
		case tile.White:
			white = e.Lightness
		case tile.Blue:
			blue = e.Lightness
		}
	}
	if white <= blue {
		t.Errorf("white (%.2f) should be lighter than blue (%.2f)", white, blue)
	}
}

func TestLoaderEmbedded(t *testing.T) {
	l := &Loader{}
	names := Embedded()
	if len(names) < 3 {
		t.Fatalf("expected embedded palettes, got %v", names)
	}
	for _, name := range names {
		p, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		if p.Name != name {
			t.Errorf("palette %s reports name %s", name, p.Name)
		}
		if _, err := p.Check(); err != nil {
			t.Errorf("palette %s: %v", name, err)
		}
	}

	up, err := l.Load("uptown")
	if err != nil {
		t.Fatalf("Load(uptown): %v", err)
	}
	if *up != *Default() {
		t.Errorf("embedded uptown differs from Default: %+v", up)
	}
}

func TestLoaderSearchOrder(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "mine.palette"), []byte("Name: mine\nWhite: ivory\n"), 0644); err != nil {
		t.Fatal(err)
	}
	direct := filepath.Join(dir, "direct.txt")
	if err := os.WriteFile(direct, []byte("Name: direct\n"), 0644); err != nil {
		t.Fatal(err)
	}

	l := &Loader{ConfigDir: configDir}
	p, err := l.Load("mine")
	if err != nil {
		t.Fatalf("Load(mine): %v", err)
	}
	if p.Name != "mine" || p.White != (color.RGBA{255, 255, 240, 255}) {
		t.Errorf("unexpected palette %+v", p)
	}

	p, err = l.Load(direct)
	if err != nil {
		t.Fatalf("Load(path): %v", err)
	}
	if p.Name != "direct" {
		t.Errorf("expected direct palette, got %s", p.Name)
	}

	if _, err := l.Load("missing"); err == nil {
		t.Error("expected error for missing palette")
	}
	p, err = l.Load("")
	if err != nil || p.Name != "uptown" {
		t.Errorf("empty name should give the default, got %v %v", p, err)
	}
}
