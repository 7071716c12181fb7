package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/tilewall/internal/grid"
	"github.com/example/tilewall/internal/palette"
	"github.com/example/tilewall/internal/sampler"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentPalette *palette.Palette

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentPalette = nil

			if strings.HasPrefix(currentSection, "palette.") {
				name := strings.TrimPrefix(currentSection, "palette.")
				// Start with defaults so missing keys are fine
				currentPalette = palette.Default()
				currentPalette.Name = name
				cfg.Palettes[name] = currentPalette
			}
			continue
		}

		// Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		var err error
		switch {
		case currentPalette != nil:
			err = palette.SetField(currentPalette, key, value)
		case currentSection == "":
			err = setRootField(cfg, key, value)
		case currentSection == "mix":
			err = setMixField(&cfg.Mix, key, value)
		case currentSection == "grid":
			err = setGridField(&cfg.Grid, key, value)
		case currentSection == "bag":
			err = setBagField(&cfg.Bag, key, value)
		case currentSection == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		}
		if err != nil {
			if currentSection == "" {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
			return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "palette":
		cfg.Palette = value
	case "strategy":
		s, err := grid.ParseStrategy(value)
		if err != nil {
			return err
		}
		cfg.Strategy = s
	case "seed":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed: %w", err)
		}
		cfg.Seed = n
	}
	return nil
}

func setMixField(m *sampler.Mix, key, value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid number for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "white":
		m.White = f
	case "yellow":
		m.Yellow = f
	case "orange":
		m.Orange = f
	case "blue":
		m.Blue = f
	}
	return nil
}

func setGridField(g *grid.Layout, key, value string) error {
	switch strings.ToLower(key) {
	case "columns", "rows":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid count for key %s: %q", key, value)
		}
		if strings.EqualFold(key, "columns") {
			g.Columns = n
		} else {
			g.Rows = n
		}
	case "extras":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		g.Extras = b
	}
	return nil
}

func setBagField(b *sampler.BagOptions, key, value string) error {
	switch strings.ToLower(key) {
	case "normalize":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		b.Normalize = v
	case "overrun":
		p, err := sampler.ParseOverrun(value)
		if err != nil {
			return err
		}
		b.Overrun = p
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "copy":
		n.Copy = b
	}
	return nil
}
