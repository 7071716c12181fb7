// Package tile names the colors a wall tile can hold.
package tile

import (
	"fmt"
	"strings"
)

// Color identifies a palette slot. The concrete RGB value lives in a palette.
type Color uint8

const (
	// White is the default tile color.
	White Color = iota
	Yellow
	Orange
	Blue
	// Black is the fallback shown when a sampler has nothing left to give.
	Black
)

// Accents lists the non-default colors in chooser index order.
var Accents = []Color{Yellow, Orange, Blue}

// All lists the colors a tile can be painted with.
var All = []Color{White, Yellow, Orange, Blue}

var names = [...]string{
	White:  "white",
	Yellow: "yellow",
	Orange: "orange",
	Blue:   "blue",
	Black:  "black",
}

func (c Color) String() string {
	if int(c) < len(names) {
		return names[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// IsAccent reports whether c is one of the three accent colors.
func (c Color) IsAccent() bool {
	return c == Yellow || c == Orange || c == Blue
}

// Parse returns the color with the given name, ignoring case.
func Parse(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tile color %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if int(c) >= len(names) {
		return nil, fmt.Errorf("unknown tile color %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
