package grid

import (
	"math"

	"github.com/example/tilewall/internal/sampler"
	"github.com/example/tilewall/internal/tile"
)

// Row is the realized share of one color next to its target.
type Row struct {
	Color  tile.Color `json:"color" yaml:"color"`
	Count  int        `json:"count" yaml:"count"`
	Actual float64    `json:"actual" yaml:"actual"` // percent of all tiles
	Target float64    `json:"target" yaml:"target"` // percent of all tiles
}

// Stats is the realized distribution of a wall.
type Stats struct {
	Total int   `json:"total" yaml:"total"`
	Rows  []Row `json:"rows" yaml:"rows"`
}

// Compute tallies colors against the percentages mix asks for. Black only
// gets a row when it occurs.
func Compute(colors []tile.Color, mix sampler.Mix) Stats {
	counts := sampler.Counts{}
	for _, c := range colors {
		counts[c]++
	}
	s := Stats{Total: len(colors)}
	targets := mix.Percentages()
	order := append([]tile.Color{}, tile.All...)
	if counts[tile.Black] > 0 {
		order = append(order, tile.Black)
	}
	for _, c := range order {
		row := Row{Color: c, Count: counts[c], Target: targets[c]}
		if s.Total > 0 {
			row.Actual = float64(row.Count) / float64(s.Total) * 100
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// MaxDeviation returns the largest gap, in percentage points, between a
// realized share and its target.
func (s Stats) MaxDeviation() float64 {
	var d float64
	for _, r := range s.Rows {
		d = math.Max(d, math.Abs(r.Actual-r.Target))
	}
	return d
}
