package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/tilewall/internal/grid"
	"github.com/example/tilewall/internal/tile"
)

type statsCmd struct {
	*root
	fs *flag.FlagSet

	pass          passFlags
	runs          int
	fromClipboard bool
	input         string
	inputFormat   string
	format        string
}

func parseStatsCmd(args []string, r *root) (*statsCmd, error) {
	fs := newFlagSet("stats")
	c := &statsCmd{root: r.subcommand("stats"), fs: fs}
	c.pass.register(fs, c.config)
	fs.IntVar(&c.runs, "runs", 1, "number of walls to fill and tally together")
	fs.BoolVar(&c.fromClipboard, "from-clipboard", false, "tally a pattern read from the clipboard")
	fs.StringVar(&c.input, "input", "", "tally a pattern read from this file, - for stdin")
	fs.StringVar(&c.inputFormat, "input-format", "", "format of the pattern read: text, json or yaml (default guessed)")
	fs.StringVar(&c.format, "format", string(grid.FormatText), "output format: text, json or yaml")
	if err := parseFlags(fs, args, c); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	if c.fromClipboard && c.input != "" {
		return nil, fmt.Errorf("-from-clipboard and -input cannot be used together")
	}
	if c.runs < 1 {
		return nil, fmt.Errorf("-runs must be at least 1")
	}
	if _, err := grid.ParseFormat(c.format); err != nil {
		return nil, err
	}
	if c.inputFormat != "" {
		if _, err := grid.ParseFormat(c.inputFormat); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *statsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type statsReport struct {
	Source       string        `json:"source" yaml:"source"`
	Runs         int           `json:"runs,omitempty" yaml:"runs,omitempty"`
	MaxDeviation float64       `json:"max_deviation" yaml:"max_deviation"`
	Stats        grid.Stats    `json:"stats" yaml:"stats"`
	Passes       []grid.Report `json:"passes,omitempty" yaml:"passes,omitempty"`
}

func (c *statsCmd) Run() error {
	rep, err := c.collect()
	if err != nil {
		return err
	}
	format, err := grid.ParseFormat(c.format)
	if err != nil {
		return err
	}
	return writeStats(c.out(), rep, format, c.activePalette.Label)
}

func (c *statsCmd) collect() (statsReport, error) {
	if c.fromClipboard || c.input != "" {
		if err := c.pass.mix.Validate(); err != nil {
			return statsReport{}, err
		}
		source, data, err := c.readPattern()
		if err != nil {
			return statsReport{}, err
		}
		format, err := c.patternFormat(data)
		if err != nil {
			return statsReport{}, err
		}
		colors, err := grid.DecodeColors(bytes.NewReader(data), format)
		if err != nil {
			return statsReport{}, fmt.Errorf("failed to read pattern from %s: %w", source, err)
		}
		s := grid.Compute(colors, c.pass.mix)
		return statsReport{Source: source, MaxDeviation: s.MaxDeviation(), Stats: s}, nil
	}

	colors, passes, err := c.pass.fillRuns(c.runs)
	if err != nil {
		return statsReport{}, fmt.Errorf("failed to fill wall: %w", err)
	}
	s := grid.Compute(colors, c.pass.mix)
	return statsReport{
		Source:       string(passes[0].Strategy),
		Runs:         c.runs,
		MaxDeviation: s.MaxDeviation(),
		Stats:        s,
		Passes:       passes,
	}, nil
}

func (c *statsCmd) readPattern() (string, []byte, error) {
	switch {
	case c.fromClipboard:
		text, err := readClipboardFn()
		if err != nil {
			return "", nil, fmt.Errorf("failed to read clipboard: %w", err)
		}
		return "clipboard", []byte(text), nil
	case c.input == "-":
		data, err := io.ReadAll(os.Stdin)
		return "stdin", data, err
	default:
		data, err := os.ReadFile(c.input)
		return c.input, data, err
	}
}

// patternFormat honours -input-format, then the input file extension, and
// otherwise looks at the first non-blank byte.
func (c *statsCmd) patternFormat(data []byte) (grid.Format, error) {
	if c.inputFormat != "" {
		return grid.ParseFormat(c.inputFormat)
	}
	if ext := strings.TrimPrefix(filepath.Ext(c.input), "."); ext != "" {
		if f, err := grid.ParseFormat(ext); err == nil {
			return f, nil
		}
	}
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("{")):
		return grid.FormatJSON, nil
	case bytes.Contains(trimmed, []byte("tiles:")):
		return grid.FormatYAML, nil
	}
	return grid.FormatText, nil
}

func writeStats(w io.Writer, rep statsReport, format grid.Format, label func(tile.Color) string) error {
	switch format {
	case grid.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case grid.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "source: %s", rep.Source)
	if rep.Runs > 1 {
		fmt.Fprintf(w, " (%d runs)", rep.Runs)
	}
	fmt.Fprintf(w, ", %d tiles\n", rep.Stats.Total)
	fmt.Fprintf(w, "%-8s %-12s %6s %8s %8s\n", "color", "label", "count", "actual", "target")
	for _, row := range rep.Stats.Rows {
		fmt.Fprintf(w, "%-8s %-12s %6d %7.1f%% %7.1f%%\n", row.Color, label(row.Color), row.Count, row.Actual, row.Target)
	}
	fmt.Fprintf(w, "max deviation: %.1f points\n", rep.MaxDeviation)
	for i, p := range rep.Passes {
		if p.Fallbacks > 0 || p.Stalls > 0 || p.ChooserFaults > 0 {
			fmt.Fprintf(w, "run %d: %s\n", i+1, formatReport(p))
		}
	}
	return nil
}
