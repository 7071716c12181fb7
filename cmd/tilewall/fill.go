package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/tilewall/internal/clipboard"
	"github.com/example/tilewall/internal/grid"
	"github.com/example/tilewall/internal/render"
	"github.com/example/tilewall/internal/tile"
)

var (
	writeClipboardFn = clipboard.WriteText
	readClipboardFn  = clipboard.ReadText
)

const formatSwatch = "swatch"

type paintOp struct {
	index int
	color tile.Color
}

type fillCmd struct {
	*root
	fs *flag.FlagSet

	pass   passFlags
	format string
	output string
	copy   bool
	report bool

	paint []paintOp
	cycle []int

	swatchWidth int
	image       render.Options
}

func parseFillCmd(args []string, r *root) (*fillCmd, error) {
	fs := newFlagSet("fill")
	c := &fillCmd{root: r.subcommand("fill"), fs: fs, image: render.DefaultOptions()}
	c.pass.register(fs, c.config)
	fs.StringVar(&c.format, "format", string(grid.FormatText), "output format: text, json, yaml or swatch")
	fs.StringVar(&c.output, "o", "", "write to this file instead of stdout; a .png name renders an image")
	fs.BoolVar(&c.copy, "copy", false, "copy the pattern to the clipboard")
	fs.BoolVar(&c.report, "report", false, "print sampler counters to stderr")
	fs.IntVar(&c.swatchWidth, "swatch-width", 80, "terminal columns used by the swatch format")
	fs.IntVar(&c.image.Scale, "scale", c.image.Scale, "pixels per tile unit for png output")
	fs.IntVar(&c.image.Width, "width", 0, "scale png output to this width in pixels")
	fs.Float64Var(&c.image.Grout, "grout", c.image.Grout, "grout width in pixels for png output")
	fs.Float64Var(&c.image.Light, "light", 0, "strength of the left to right lighting, 0 to 1")
	fs.BoolVar(&c.image.Shadow, "shadow", false, "add a drop shadow to png output")
	fs.BoolVar(&c.image.Legend, "legend", false, "add a color legend to png output")
	fs.Func("paint", "set tile `i=color` after filling; repeatable", func(v string) error {
		op, err := parsePaint(v)
		if err != nil {
			return err
		}
		c.paint = append(c.paint, op)
		return nil
	})
	fs.Func("cycle", "give tile `i` a different color after filling; repeatable", func(v string) error {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid tile index %q", v)
		}
		c.cycle = append(c.cycle, i)
		return nil
	})
	if err := parseFlags(fs, args, c); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	if c.format != formatSwatch {
		if _, err := grid.ParseFormat(c.format); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func parsePaint(v string) (paintOp, error) {
	idx, name, ok := strings.Cut(v, "=")
	if !ok {
		return paintOp{}, fmt.Errorf("paint wants i=color, got %q", v)
	}
	i, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return paintOp{}, fmt.Errorf("invalid tile index %q", idx)
	}
	color, err := tile.Parse(name)
	if err != nil {
		return paintOp{}, err
	}
	return paintOp{index: i, color: color}, nil
}

func (c *fillCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *fillCmd) Run() error {
	wall, pass, err := c.pass.fill()
	if err != nil {
		return fmt.Errorf("failed to fill wall: %w", err)
	}
	for _, op := range c.paint {
		if err := wall.Paint(op.index, op.color); err != nil {
			return fmt.Errorf("paint: %w", err)
		}
	}
	for _, i := range c.cycle {
		if _, err := wall.Cycle(i, c.pass.source()); err != nil {
			return fmt.Errorf("cycle: %w", err)
		}
	}

	rep := pass.Report()
	if rep.Fallbacks > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d of %d tiles used the fallback color: %v\n", rep.Fallbacks, rep.Drawn, pass.Err())
	}
	if c.report {
		fmt.Fprintln(os.Stderr, formatReport(rep))
	}

	if err := c.write(wall); err != nil {
		return err
	}
	if c.copy {
		return c.copyWall(wall)
	}
	return nil
}

func (c *fillCmd) write(wall *grid.Wall) error {
	if c.output == "" {
		return c.encode(c.out(), wall)
	}
	f, err := os.Create(c.output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.output, err)
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(c.output), ".png") {
		if err := png.Encode(f, render.Image(wall, c.activePalette, c.image)); err != nil {
			return fmt.Errorf("failed to encode %s: %w", c.output, err)
		}
		return f.Close()
	}
	if c.format == formatSwatch {
		return fmt.Errorf("the swatch format can only be written to a terminal")
	}
	if err := c.encode(f, wall); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.output, err)
	}
	return f.Close()
}

func (c *fillCmd) encode(w io.Writer, wall *grid.Wall) error {
	if c.format == formatSwatch {
		_, err := fmt.Fprint(w, render.Terminal(w, wall, c.activePalette, c.swatchWidth))
		return err
	}
	format, err := grid.ParseFormat(c.format)
	if err != nil {
		return err
	}
	return grid.Encode(w, wall, format)
}

func (c *fillCmd) copyWall(wall *grid.Wall) error {
	format := grid.FormatText
	if f, err := grid.ParseFormat(c.format); err == nil {
		format = f
	}
	var buf bytes.Buffer
	if err := grid.Encode(&buf, wall, format); err != nil {
		return err
	}
	if err := writeClipboardFn(buf.String()); err != nil {
		return fmt.Errorf("failed to copy pattern to clipboard: %w", err)
	}
	fmt.Fprintf(os.Stderr, "copied %d tiles to clipboard\n", len(wall.Tiles))
	c.notifyCopy(fmt.Sprintf("%d tile pattern", len(wall.Tiles)))
	return nil
}

func formatReport(r grid.Report) string {
	s := fmt.Sprintf("pass: strategy=%s drawn=%d fallbacks=%d stalls=%d chooser_faults=%d",
		r.Strategy, r.Drawn, r.Fallbacks, r.Stalls, r.ChooserFaults)
	if r.Strategy == grid.StrategyBag {
		s += fmt.Sprintf(" bag=%d left=%d", r.BagSize, r.BagLeft)
	}
	return s
}
