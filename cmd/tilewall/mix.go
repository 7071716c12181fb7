package main

import (
	"flag"
	"fmt"

	"github.com/example/tilewall/internal/render"
	"github.com/example/tilewall/internal/sampler"
	"github.com/example/tilewall/internal/tile"
)

type mixCmd struct {
	*root
	fs    *flag.FlagSet
	mix   sampler.Mix
	tiles int
}

func parseMixCmd(args []string, r *root) (*mixCmd, error) {
	fs := newFlagSet("mix")
	c := &mixCmd{root: r.subcommand("mix"), fs: fs}
	cfg := c.config
	fs.Float64Var(&c.mix.White, "white", cfg.Mix.White, "share of white tiles, 0 to 1")
	fs.Float64Var(&c.mix.Yellow, "yellow", cfg.Mix.Yellow, "relative weight of yellow among accents")
	fs.Float64Var(&c.mix.Orange, "orange", cfg.Mix.Orange, "relative weight of orange among accents")
	fs.Float64Var(&c.mix.Blue, "blue", cfg.Mix.Blue, "relative weight of blue among accents")
	fs.IntVar(&c.tiles, "tiles", cfg.Grid.Count(), "wall size used for the bag counts")
	if err := parseFlags(fs, args, c); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *mixCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *mixCmd) Run() error {
	if err := c.mix.Validate(); err != nil {
		return err
	}
	out := c.out()
	pct := c.mix.Percentages()

	normalized, err := sampler.BagCounts(c.tiles, c.mix, sampler.BagOptions{Normalize: true})
	if err != nil {
		return err
	}
	raw, err := sampler.BagCounts(c.tiles, c.mix, sampler.BagOptions{Normalize: false})
	if err != nil {
		return err
	}
	showRaw := raw.Total() != normalized.Total()
	for _, t := range tile.All {
		if raw[t] != normalized[t] {
			showRaw = true
		}
	}

	fmt.Fprintf(out, "percent of tile overall (%d tile bag)\n", c.tiles)
	for _, t := range tile.All {
		label := fmt.Sprintf("%-7s %-12s %6.3f %6.1f%% %5d", t, c.activePalette.Label(t), c.mix.Weight(t), pct[t], normalized[t])
		if showRaw {
			label += fmt.Sprintf("  raw %d", raw[t])
		}
		fmt.Fprintln(out, render.Swatch(out, c.activePalette.Color(t), label))
	}
	if showRaw {
		fmt.Fprintf(out, "accent weights sum to %g: without normalization the bag holds %d tiles for a %d tile wall\n",
			c.mix.AccentSum(), raw.Total(), c.tiles)
	}
	if err := c.mix.CheckNoRepeat(); err != nil {
		fmt.Fprintf(out, "note: %v; the norepeat strategy will repeat accents\n", err)
	}
	return nil
}
