package grid

import (
	"fmt"
	"log"
	"strings"

	"github.com/example/tilewall/internal/sampler"
	"github.com/example/tilewall/internal/tile"
)

// Strategy selects how a pass draws tile colors.
type Strategy string

const (
	// StrategyBag shuffles a bag sized to the wall.
	StrategyBag Strategy = "bag"
	// StrategyWeighted draws each tile independently.
	StrategyWeighted Strategy = "weighted"
	// StrategyNoRepeat is StrategyWeighted without back-to-back accents.
	StrategyNoRepeat Strategy = "norepeat"
)

// Strategies lists the accepted strategies.
var Strategies = []Strategy{StrategyBag, StrategyWeighted, StrategyNoRepeat}

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Strategies {
		if v == st {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q (want bag, weighted or norepeat)", s)
}

// Options configures a Pass.
type Options struct {
	Strategy   Strategy
	Mix        sampler.Mix
	Bag        sampler.BagOptions
	MaxRetries int
}

// Report summarizes what happened during a pass.
type Report struct {
	Strategy      Strategy `json:"strategy" yaml:"strategy"`
	Drawn         int      `json:"drawn" yaml:"drawn"`
	Fallbacks     int      `json:"fallbacks" yaml:"fallbacks"`
	Stalls        int      `json:"stalls" yaml:"stalls"`
	ChooserFaults int      `json:"chooser_faults" yaml:"chooser_faults"`
	BagSize       int      `json:"bag_size,omitempty" yaml:"bag_size,omitempty"`
	BagLeft       int      `json:"bag_left,omitempty" yaml:"bag_left,omitempty"`
}

// Pass owns the sampler state for filling one wall. It is never shared
// between walls; start a new pass to start over.
type Pass struct {
	strategy Strategy
	src      sampler.Source
	bag      *sampler.Bag
	weighted *sampler.Weighted
	noRepeat *sampler.NoRepeat

	drawn     int
	fallbacks int
	lastErr   error
}

// NewPass prepares a pass for count tiles.
func NewPass(opts Options, count int, rng sampler.Rand) (*Pass, error) {
	p := &Pass{strategy: opts.Strategy}
	switch opts.Strategy {
	case StrategyBag, "":
		bag, err := sampler.BuildBag(count, opts.Mix, opts.Bag, rng)
		if err != nil {
			return nil, err
		}
		p.strategy = StrategyBag
		p.bag, p.src = bag, bag
	case StrategyWeighted, StrategyNoRepeat:
		w, err := sampler.NewWeighted(opts.Mix, rng)
		if err != nil {
			return nil, err
		}
		p.weighted, p.src = w, w
		if opts.Strategy == StrategyNoRepeat {
			p.noRepeat = sampler.NewNoRepeat(w)
			p.noRepeat.MaxRetries = opts.MaxRetries
			p.src = p.noRepeat
		}
	default:
		return nil, fmt.Errorf("unknown strategy %q", opts.Strategy)
	}
	return p, nil
}

// Next returns the next tile color. Sampler errors never escape: the
// fallback color is returned and the failure is counted.
func (p *Pass) Next() tile.Color {
	c, err := p.src.Next()
	p.drawn++
	if err != nil {
		p.fallbacks++
		p.lastErr = err
		log.Printf("grid: tile %d: %v, using %s", p.drawn-1, err, tile.Black)
		return tile.Black
	}
	return c
}

// Err returns the most recent sampler error, if any.
func (p *Pass) Err() error {
	return p.lastErr
}

// Report returns counters for the pass so far.
func (p *Pass) Report() Report {
	r := Report{Strategy: p.strategy, Drawn: p.drawn, Fallbacks: p.fallbacks}
	if p.noRepeat != nil {
		r.Stalls = p.noRepeat.Stalls()
	}
	if p.weighted != nil {
		r.ChooserFaults = p.weighted.Faults()
	}
	if p.bag != nil {
		r.BagSize = p.bag.Cap()
		r.BagLeft = p.bag.Len()
	}
	return r
}
