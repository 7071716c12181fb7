package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/example/tilewall/internal/config"
	"github.com/example/tilewall/internal/notify"
	"github.com/example/tilewall/internal/palette"
	"github.com/example/tilewall/internal/platform"
)

func testRoot(out *bytes.Buffer) *root {
	return &root{program: "tilewall", config: config.New(), activePalette: palette.Default(), stdout: out}
}

func TestFillSeededIsRepeatable(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		cmd, err := parseFillCmd([]string{"-seed", "42", "-columns", "3", "-rows", "2", "-extras=false"}, testRoot(&out))
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if err := cmd.Run(); err != nil {
			t.Fatalf("run: %v", err)
		}
		return out.String()
	}
	first, second := run(), run()
	if first != second {
		t.Fatalf("same seed gave different walls:\n%s\n%s", first, second)
	}
	if lines := strings.Count(first, "\n"); lines != 12 {
		t.Fatalf("got %d tiles, want 12", lines)
	}
}

func TestFillPaint(t *testing.T) {
	var out bytes.Buffer
	cmd, err := parseFillCmd([]string{"-seed", "1", "-columns", "1", "-rows", "1", "-extras=false", "-paint", "0=blue", "-paint", "1=white"}, testRoot(&out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != "blue\nwhite\n" {
		t.Fatalf("got %q", got)
	}
}

func TestFillPaintOutOfRange(t *testing.T) {
	var out bytes.Buffer
	cmd, err := parseFillCmd([]string{"-columns", "1", "-rows", "1", "-extras=false", "-paint", "9=blue"}, testRoot(&out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected range error, got %v", err)
	}
}

func TestFillCopyNotifies(t *testing.T) {
	originalWrite := writeClipboardFn
	var copied string
	writeClipboardFn = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboardFn = originalWrite })

	var bodies []string
	n := notify.NewWithSender(notify.DefaultPreferences(), func(_, body string, _ platform.Options) error {
		bodies = append(bodies, body)
		return nil
	})
	n.Enable(notify.EventCopy, true)

	var out bytes.Buffer
	r := testRoot(&out)
	r.notifier = n
	cmd, err := parseFillCmd([]string{"-seed", "3", "-columns", "2", "-rows", "1", "-extras=false", "-copy"}, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if copied != out.String() {
		t.Fatalf("clipboard got %q, stdout %q", copied, out.String())
	}
	if len(bodies) != 1 || !strings.Contains(bodies[0], "4 tile pattern") {
		t.Fatalf("notifications = %v", bodies)
	}
}

func TestFillCycleContinuesPassStream(t *testing.T) {
	base := []string{"-seed", "7", "-columns", "2", "-rows", "2", "-extras=false"}
	var out bytes.Buffer
	cmd, err := parseFillCmd(append(base, "-cycle", "3"), testRoot(&out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	ref, err := parseFillCmd(base, testRoot(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("parse reference: %v", err)
	}
	wall, _, err := ref.pass.fill()
	if err != nil {
		t.Fatalf("reference fill: %v", err)
	}
	want, err := wall.Cycle(3, ref.pass.source())
	if err != nil {
		t.Fatalf("reference cycle: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d tiles, want 8", len(lines))
	}
	if lines[3] != want.String() {
		t.Fatalf("tile 3 = %q, want %q\n%s", lines[3], want, out.String())
	}
}

func TestFillJSON(t *testing.T) {
	var out bytes.Buffer
	cmd, err := parseFillCmd([]string{"-seed", "5", "-format", "json", "-columns", "2", "-rows", "2"}, testRoot(&out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	var doc struct {
		Tiles []struct {
			Color string `json:"color"`
		} `json:"tiles"`
	}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Tiles) != 11 {
		t.Fatalf("got %d tiles, want 11", len(doc.Tiles))
	}
}

func TestStatsRunsUsesBagTargets(t *testing.T) {
	var out bytes.Buffer
	cmd, err := parseStatsCmd([]string{"-seed", "9", "-runs", "3", "-format", "json"}, testRoot(&out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	var rep statsReport
	if err := json.Unmarshal(out.Bytes(), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.Stats.Total != 3*163 {
		t.Fatalf("total = %d, want %d", rep.Stats.Total, 3*163)
	}
	if len(rep.Passes) != 3 {
		t.Fatalf("passes = %d, want 3", len(rep.Passes))
	}
	if rep.MaxDeviation > 2 {
		t.Fatalf("bag fill deviates %.2f points from the mix", rep.MaxDeviation)
	}
}

func TestStatsFromClipboard(t *testing.T) {
	originalRead := readClipboardFn
	readClipboardFn = func() (string, error) { return "white\nblue\nwhite\nblack\n", nil }
	t.Cleanup(func() { readClipboardFn = originalRead })

	var out bytes.Buffer
	cmd, err := parseStatsCmd([]string{"-from-clipboard"}, testRoot(&out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{"source: clipboard, 4 tiles", "white", "Vogue", "black"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestStatsClipboardError(t *testing.T) {
	originalRead := readClipboardFn
	sentinel := errors.New("no display")
	readClipboardFn = func() (string, error) { return "", sentinel }
	t.Cleanup(func() { readClipboardFn = originalRead })

	var out bytes.Buffer
	cmd, err := parseStatsCmd([]string{"-from-clipboard"}, testRoot(&out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped clipboard error, got %v", err)
	}
}

func TestMixShowsRawCounts(t *testing.T) {
	var out bytes.Buffer
	cmd, err := parseMixCmd([]string{"-yellow", "1", "-orange", "1", "-blue", "1", "-tiles", "100"}, testRoot(&out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{"13.3%", "raw 40", "holds 180 tiles for a 100 tile wall"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestMixDefaultHasNoRawColumn(t *testing.T) {
	var out bytes.Buffer
	cmd, err := parseMixCmd([]string{"-tiles", "420"}, testRoot(&out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(out.String(), "raw") {
		t.Fatalf("unexpected raw counts:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "252") {
		t.Fatalf("expected 252 white tiles:\n%s", out.String())
	}
}

func TestColorsListsPalette(t *testing.T) {
	var out bytes.Buffer
	cmd, err := parseColorsCmd([]string{"-by-lightness"}, testRoot(&out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if strings.Index(got, "Uptown") > strings.Index(got, "Vogue") {
		t.Fatalf("expected light colors first:\n%s", got)
	}
}

func TestPalettesMarksActive(t *testing.T) {
	var out bytes.Buffer
	cmd, err := parsePalettesCmd(nil, testRoot(&out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "* uptown") {
		t.Fatalf("active palette not marked:\n%s", out.String())
	}
	for _, name := range []string{"coastal", "terracotta"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("missing palette %s", name)
		}
	}
}

func TestResolvePalettePrecedence(t *testing.T) {
	cfg := config.New()
	cfg.Palette = "terracotta"
	custom := palette.Default()
	custom.Name = "mine"
	cfg.Palettes["mine"] = custom

	t.Setenv("TILEWALL_PALETTE", "")
	r := &root{config: cfg}
	if p, err := r.resolvePalette(); err != nil || p.Name != "terracotta" {
		t.Fatalf("config palette = %v, %v", p, err)
	}

	t.Setenv("TILEWALL_PALETTE", "coastal")
	if p, err := r.resolvePalette(); err != nil || p.Name != "coastal" {
		t.Fatalf("env palette = %v, %v", p, err)
	}

	r.paletteName = "mine"
	if p, err := r.resolvePalette(); err != nil || p != custom {
		t.Fatalf("flag palette = %v, %v", p, err)
	}
}

func TestResolvePaletteRejectsDuplicates(t *testing.T) {
	cfg := config.New()
	bad := palette.Default()
	bad.Name = "flat"
	bad.Blue = bad.Orange
	cfg.Palettes["flat"] = bad

	r := &root{config: cfg, paletteName: "flat"}
	if _, err := r.resolvePalette(); err == nil {
		t.Fatal("expected duplicate color error")
	}
}

func TestConfigPrint(t *testing.T) {
	var out bytes.Buffer
	cmd, err := parseConfigCmd([]string{"print"}, testRoot(&out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := config.Parse(strings.NewReader(out.String())); err != nil {
		t.Fatalf("printed config does not parse: %v\n%s", err, out.String())
	}
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	cmd := &versionCmd{r: testRoot(&out)}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != "tilewall version dev\n" {
		t.Fatalf("got %q", got)
	}
}
