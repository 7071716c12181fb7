package palette

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Parse reads a palette definition from an io.Reader.
// The format is one "Key: value" pair per line. Colors are #RRGGBB,
// #RRGGBBAA or an SVG color name such as "lightgray".
func Parse(r io.Reader) (*Palette, error) {
	p := Default()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if err := SetField(p, strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])); err != nil {
			return nil, err
		}
	}

	return p, scanner.Err()
}

// SetField assigns value to the palette field matching key, ignoring case.
// Unknown keys are ignored for forward compatibility.
func SetField(p *Palette, key, value string) error {
	val := reflect.ValueOf(p).Elem()
	typ := val.Type()

	var field reflect.Value
	for i := 0; i < typ.NumField(); i++ {
		if strings.EqualFold(typ.Field(i).Name, key) {
			field = val.Field(i)
			break
		}
	}
	if !field.IsValid() {
		return nil
	}

	switch field.Type() {
	case reflect.TypeOf(color.RGBA{}):
		col, err := ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		field.Set(reflect.ValueOf(col))
	case reflect.TypeOf(""):
		field.SetString(value)
	}
	return nil
}

// ParseColor parses a hex color or an SVG color name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("unknown color name %q", s)
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 6:
		// #RGB or #RRGGBB
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, err
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	case 8:
		// #RRGGBBAA
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{
			R: uint8(val >> 24),
			G: uint8((val >> 16) & 0xFF),
			B: uint8((val >> 8) & 0xFF),
			A: uint8(val & 0xFF),
		}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid hex length")
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
