package sampler

import (
	"fmt"
	"math"

	"github.com/example/tilewall/internal/tile"
)

// Mix describes the target color distribution of a wall.
//
// White is an absolute probability in [0, 1]. Yellow, Orange and Blue are
// relative weights sharing the remaining 1-White mass.
type Mix struct {
	White  float64
	Yellow float64
	Orange float64
	Blue   float64
}

// DefaultMix returns 60% white with the accents split evenly.
func DefaultMix() Mix {
	third := 1.0 / 3
	return Mix{White: 0.6, Yellow: third, Orange: third, Blue: third}
}

// Accents returns the accent weights in tile.Accents order.
func (m Mix) Accents() []float64 {
	return []float64{m.Yellow, m.Orange, m.Blue}
}

// AccentSum returns the total of the accent weights.
func (m Mix) AccentSum() float64 {
	return m.Yellow + m.Orange + m.Blue
}

// Weight returns the raw configured value for c.
func (m Mix) Weight(c tile.Color) float64 {
	switch c {
	case tile.White:
		return m.White
	case tile.Yellow:
		return m.Yellow
	case tile.Orange:
		return m.Orange
	case tile.Blue:
		return m.Blue
	}
	return 0
}

// Validate reports whether the mix can drive a sampler.
func (m Mix) Validate() error {
	if math.IsNaN(m.White) || m.White < 0 || m.White > 1 {
		return fmt.Errorf("%w: white probability %v outside [0,1]", ErrInvalidMix, m.White)
	}
	for i, w := range m.Accents() {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: %s weight is %v", ErrInvalidMix, tile.Accents[i], w)
		}
	}
	if m.White < 1 && m.AccentSum() <= 0 {
		return fmt.Errorf("%w: accent weights sum to zero while white is %v", ErrInvalidMix, m.White)
	}
	return nil
}

// Viable returns how many accents have a nonzero weight.
func (m Mix) Viable() int {
	n := 0
	for _, w := range m.Accents() {
		if w > 0 {
			n++
		}
	}
	return n
}

// CheckNoRepeat returns ErrDegenerateMix when the no-repeat rule would have
// at most one accent to pick from.
func (m Mix) CheckNoRepeat() error {
	if m.White < 1 && m.Viable() <= 1 {
		return fmt.Errorf("%w: %d viable accent(s)", ErrDegenerateMix, m.Viable())
	}
	return nil
}

// Effective returns the share of all tiles expected to be c, the
// "percent of tile overall" figure.
func (m Mix) Effective(c tile.Color) float64 {
	if c == tile.White {
		return m.White
	}
	if !c.IsAccent() {
		return 0
	}
	sum := m.AccentSum()
	if sum <= 0 {
		return 0
	}
	return m.Weight(c) / sum * (1 - m.White)
}

// Percentages returns Effective for every paintable color, scaled to 100.
func (m Mix) Percentages() map[tile.Color]float64 {
	out := make(map[tile.Color]float64, len(tile.All))
	for _, c := range tile.All {
		out[c] = m.Effective(c) * 100
	}
	return out
}
