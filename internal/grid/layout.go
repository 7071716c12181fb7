// Package grid lays out a diamond tile wall and fills it from a sampler.
package grid

// Cell is a tile position in tile units. Flip marks tiles pointing down.
type Cell struct {
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	Flip bool    `json:"flip,omitempty" yaml:"flip,omitempty"`
}

// Layout describes the wall: Columns x Rows pairs of tiles, one upright
// and one flipped, optionally with the three edge tiles that close the
// top-left corner.
type Layout struct {
	Columns int  `json:"columns" yaml:"columns"`
	Rows    int  `json:"rows" yaml:"rows"`
	Extras  bool `json:"extras" yaml:"extras"`
}

// DefaultLayout is the 10x8 showroom wall.
func DefaultLayout() Layout {
	return Layout{Columns: 10, Rows: 8, Extras: true}
}

var extraCells = []Cell{
	{X: 1, Y: -1.5, Flip: true},
	{X: 1, Y: 1, Flip: true},
	{X: 3, Y: 1, Flip: true},
}

// Count returns the number of tiles in the layout.
func (l Layout) Count() int {
	n := 2 * max(l.Columns, 0) * max(l.Rows, 0)
	if l.Extras {
		n += len(extraCells)
	}
	return n
}

// Cells returns tile positions in fill order.
func (l Layout) Cells() []Cell {
	cells := make([]Cell, 0, l.Count())
	if l.Extras {
		cells = append(cells, extraCells...)
	}
	for c := 0; c < l.Columns; c++ {
		for r := 0; r < l.Rows; r++ {
			x, y := float64(c)*2, float64(r)*2.5
			cells = append(cells,
				Cell{X: x, Y: y},
				Cell{X: x + 1, Y: y - 1.5, Flip: true},
			)
		}
	}
	return cells
}
