package grid

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/tilewall/internal/tile"
)

// Format names a wall serialization.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

type document struct {
	Layout Layout        `json:"layout" yaml:"layout"`
	Tiles  []documentRow `json:"tiles" yaml:"tiles"`
}

type documentRow struct {
	Cell  `yaml:",inline"`
	Color string `json:"color" yaml:"color"`
}

// Encode writes the wall in the given format. The text format is one color
// name per line in fill order.
func Encode(w io.Writer, wall *Wall, format Format) error {
	switch format {
	case FormatText:
		bw := bufio.NewWriter(w)
		for _, t := range wall.Tiles {
			if _, err := fmt.Fprintln(bw, t.Color); err != nil {
				return err
			}
		}
		return bw.Flush()
	case FormatJSON, FormatYAML:
		doc := document{Layout: wall.Layout, Tiles: make([]documentRow, len(wall.Tiles))}
		for i, t := range wall.Tiles {
			doc.Tiles[i] = documentRow{Cell: t.Cell, Color: t.Color.String()}
		}
		if format == FormatJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(&doc)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}

// DecodeColors reads the tile colors back from any format Encode writes.
func DecodeColors(r io.Reader, format Format) ([]tile.Color, error) {
	switch format {
	case FormatText:
		var out []tile.Color
		scanner := bufio.NewScanner(r)
		line := 0
		for scanner.Scan() {
			line++
			s := strings.TrimSpace(scanner.Text())
			if s == "" {
				continue
			}
			c, err := tile.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, c)
		}
		return out, scanner.Err()
	case FormatJSON, FormatYAML:
		var doc document
		var err error
		if format == FormatJSON {
			err = json.NewDecoder(r).Decode(&doc)
		} else {
			err = yaml.NewDecoder(r).Decode(&doc)
		}
		if err != nil {
			return nil, err
		}
		out := make([]tile.Color, len(doc.Tiles))
		for i, row := range doc.Tiles {
			c, err := tile.Parse(row.Color)
			if err != nil {
				return nil, fmt.Errorf("tile %d: %w", i, err)
			}
			out[i] = c
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
