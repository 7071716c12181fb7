package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/tilewall/internal/grid"
	"github.com/example/tilewall/internal/palette"
	"github.com/example/tilewall/internal/sampler"
)

// Notify holds notification settings.
type Notify struct {
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Palette  string
	Strategy grid.Strategy
	Seed     uint64
	Mix      sampler.Mix
	Grid     grid.Layout
	Bag      sampler.BagOptions
	Notify   Notify
	Palettes map[string]*palette.Palette
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Palette:  "", // Empty falls back to Env/Default
		Strategy: grid.StrategyBag,
		Mix:      sampler.DefaultMix(),
		Grid:     grid.DefaultLayout(),
		Bag:      sampler.DefaultBagOptions(),
		Palettes: make(map[string]*palette.Palette),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Palette != "" {
		fmt.Fprintf(&sb, "palette = %s\n", c.Palette)
	}
	fmt.Fprintf(&sb, "strategy = %s\n", c.Strategy)
	if c.Seed != 0 {
		fmt.Fprintf(&sb, "seed = %d\n", c.Seed)
	}
	sb.WriteString("\n")

	sb.WriteString("[mix]\n")
	fmt.Fprintf(&sb, "white = %v\n", c.Mix.White)
	fmt.Fprintf(&sb, "yellow = %v\n", c.Mix.Yellow)
	fmt.Fprintf(&sb, "orange = %v\n", c.Mix.Orange)
	fmt.Fprintf(&sb, "blue = %v\n", c.Mix.Blue)
	sb.WriteString("\n")

	sb.WriteString("[grid]\n")
	fmt.Fprintf(&sb, "columns = %d\n", c.Grid.Columns)
	fmt.Fprintf(&sb, "rows = %d\n", c.Grid.Rows)
	fmt.Fprintf(&sb, "extras = %v\n", c.Grid.Extras)
	sb.WriteString("\n")

	sb.WriteString("[bag]\n")
	fmt.Fprintf(&sb, "normalize = %v\n", c.Bag.Normalize)
	fmt.Fprintf(&sb, "overrun = %s\n", c.Bag.Overrun)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var names []string
	for name := range c.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := c.Palettes[name]
		fmt.Fprintf(&sb, "[palette.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", p.Name)
		fmt.Fprintf(&sb, "White: %s\n", palette.Hex(p.White))
		fmt.Fprintf(&sb, "Yellow: %s\n", palette.Hex(p.Yellow))
		fmt.Fprintf(&sb, "Orange: %s\n", palette.Hex(p.Orange))
		fmt.Fprintf(&sb, "Blue: %s\n", palette.Hex(p.Blue))
		writeLabel(&sb, "WhiteLabel", p.WhiteLabel)
		writeLabel(&sb, "YellowLabel", p.YellowLabel)
		writeLabel(&sb, "OrangeLabel", p.OrangeLabel)
		writeLabel(&sb, "BlueLabel", p.BlueLabel)
		fmt.Fprintf(&sb, "Fallback: %s\n", palette.Hex(p.Fallback))
		fmt.Fprintf(&sb, "Grout: %s\n", palette.Hex(p.Grout))
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeLabel(sb *strings.Builder, key, value string) {
	if value != "" {
		fmt.Fprintf(sb, "%s: %s\n", key, value)
	}
}

// PassOptions returns the fill pass options the configuration describes.
func (c *Config) PassOptions() grid.Options {
	return grid.Options{Strategy: c.Strategy, Mix: c.Mix, Bag: c.Bag}
}
