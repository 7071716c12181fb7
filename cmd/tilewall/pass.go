package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/tilewall/internal/config"
	"github.com/example/tilewall/internal/grid"
	"github.com/example/tilewall/internal/sampler"
	"github.com/example/tilewall/internal/tile"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// passFlags are the sampling flags shared by fill and stats. Defaults come
// from the loaded config.
type passFlags struct {
	strategy   string
	mix        sampler.Mix
	seed       uint64
	layout     grid.Layout
	normalize  bool
	overrun    string
	maxRetries int
	rng        sampler.Rand
}

func (p *passFlags) register(fs *flag.FlagSet, cfg *config.Config) {
	if cfg == nil {
		cfg = config.New()
	}
	fs.StringVar(&p.strategy, "strategy", string(cfg.Strategy), "sampling strategy: bag, weighted or norepeat")
	fs.Float64Var(&p.mix.White, "white", cfg.Mix.White, "share of white tiles, 0 to 1")
	fs.Float64Var(&p.mix.Yellow, "yellow", cfg.Mix.Yellow, "relative weight of yellow among accents")
	fs.Float64Var(&p.mix.Orange, "orange", cfg.Mix.Orange, "relative weight of orange among accents")
	fs.Float64Var(&p.mix.Blue, "blue", cfg.Mix.Blue, "relative weight of blue among accents")
	fs.Uint64Var(&p.seed, "seed", cfg.Seed, "random seed, 0 picks one")
	fs.IntVar(&p.layout.Columns, "columns", cfg.Grid.Columns, "tile columns")
	fs.IntVar(&p.layout.Rows, "rows", cfg.Grid.Rows, "tile rows")
	fs.BoolVar(&p.layout.Extras, "extras", cfg.Grid.Extras, "add the three corner tiles")
	fs.BoolVar(&p.normalize, "normalize", cfg.Bag.Normalize, "normalize accent weights when sizing the bag")
	fs.StringVar(&p.overrun, "overrun", cfg.Bag.Overrun.String(), "bag overrun policy: truncate or accept")
	fs.IntVar(&p.maxRetries, "max-retries", sampler.DefaultMaxRetries, "redraw limit for norepeat")
}

func (p *passFlags) options() (grid.Options, error) {
	strategy, err := grid.ParseStrategy(p.strategy)
	if err != nil {
		return grid.Options{}, err
	}
	overrun, err := sampler.ParseOverrun(p.overrun)
	if err != nil {
		return grid.Options{}, err
	}
	if err := p.mix.Validate(); err != nil {
		return grid.Options{}, err
	}
	if p.layout.Columns < 0 || p.layout.Rows < 0 {
		return grid.Options{}, fmt.Errorf("columns and rows must not be negative")
	}
	if strategy == grid.StrategyNoRepeat {
		if err := p.mix.CheckNoRepeat(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v; repeats will be allowed after %d redraws\n", err, p.maxRetries)
		}
	}
	return grid.Options{
		Strategy:   strategy,
		Mix:        p.mix,
		Bag:        sampler.BagOptions{Normalize: p.normalize, Overrun: overrun},
		MaxRetries: p.maxRetries,
	}, nil
}

// source returns the generator shared by every draw of one command.
func (p *passFlags) source() sampler.Rand {
	if p.rng == nil {
		p.rng = sampler.NewRand(p.seed)
	}
	return p.rng
}

// fill builds a fresh pass and fills the layout from it.
func (p *passFlags) fill() (*grid.Wall, *grid.Pass, error) {
	opts, err := p.options()
	if err != nil {
		return nil, nil, err
	}
	pass, err := grid.NewPass(opts, p.layout.Count(), p.source())
	if err != nil {
		return nil, nil, err
	}
	return grid.Fill(p.layout, pass), pass, nil
}

// fillRuns fills the layout once and then refills it runs-1 more times,
// each from a new pass drawing on the same generator. It returns every
// color drawn and the report of each pass.
func (p *passFlags) fillRuns(runs int) ([]tile.Color, []grid.Report, error) {
	opts, err := p.options()
	if err != nil {
		return nil, nil, err
	}
	rng := p.source()
	var wall *grid.Wall
	var colors []tile.Color
	reports := make([]grid.Report, 0, runs)
	for i := 0; i < max(runs, 1); i++ {
		pass, err := grid.NewPass(opts, p.layout.Count(), rng)
		if err != nil {
			return nil, nil, err
		}
		if wall == nil {
			wall = grid.Fill(p.layout, pass)
		} else {
			wall.Randomize(pass)
		}
		colors = append(colors, wall.Colors()...)
		reports = append(reports, pass.Report())
	}
	return colors, reports, nil
}
