package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/example/tilewall/internal/palette"
	"github.com/example/tilewall/internal/render"
)

type colorsCmd struct {
	*root
	fs          *flag.FlagSet
	byLightness bool
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := newFlagSet("colors")
	c := &colorsCmd{root: r.subcommand("colors"), fs: fs}
	fs.BoolVar(&c.byLightness, "by-lightness", false, "order colors from lightest to darkest")
	if err := parseFlags(fs, args, c); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *colorsCmd) Run() error {
	p := c.activePalette
	out := c.out()
	entries := p.Entries()
	if c.byLightness {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Lightness > entries[j].Lightness
		})
	}
	fmt.Fprintf(out, "palette %s:\n", p.Name)
	for _, e := range entries {
		label := fmt.Sprintf("%-7s %-12s %s  L*=%.0f", e.Tile, e.Label, palette.Hex(e.Color), e.Lightness*100)
		fmt.Fprintln(out, render.Swatch(out, e.Color, label))
	}
	fmt.Fprintln(out, render.Swatch(out, p.Fallback, fmt.Sprintf("%-7s %-12s %s", "fallback", "", palette.Hex(p.Fallback))))
	fmt.Fprintln(out, render.Swatch(out, p.Grout, fmt.Sprintf("%-7s %-12s %s", "grout", "", palette.Hex(p.Grout))))
	return nil
}

type palettesCmd struct {
	*root
	fs *flag.FlagSet
}

func parsePalettesCmd(args []string, r *root) (*palettesCmd, error) {
	fs := newFlagSet("palettes")
	c := &palettesCmd{root: r.subcommand("palettes"), fs: fs}
	if err := parseFlags(fs, args, c); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *palettesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *palettesCmd) Run() error {
	loader := palette.NewLoader()
	for _, name := range palette.Embedded() {
		p, err := loader.Load(name)
		if err != nil {
			return fmt.Errorf("embedded palette %s: %w", name, err)
		}
		c.printLine(name, "built-in", p)
	}
	var names []string
	for name := range c.config.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c.printLine(name, "config", c.config.Palettes[name])
	}
	return nil
}

func (c *palettesCmd) printLine(name, source string, p *palette.Palette) {
	out := c.out()
	marker := " "
	if c.activePalette != nil && c.activePalette.Name == p.Name {
		marker = "*"
	}
	fmt.Fprintf(out, "%s %-12s %-9s", marker, name, source)
	for _, e := range p.Entries() {
		fmt.Fprint(out, " ", render.Swatch(out, e.Color, e.Label))
	}
	fmt.Fprintln(out)
}
