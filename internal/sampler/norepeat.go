package sampler

import (
	"log"

	"github.com/example/tilewall/internal/tile"
)

// DefaultMaxRetries bounds how often NoRepeat redraws before giving up.
const DefaultMaxRetries = 64

// NoRepeat keeps two consecutive accent tiles from sharing a color.
// White is exempt and does not reset the memory.
type NoRepeat struct {
	base Source
	last tile.Color
	seen bool

	// MaxRetries caps redraws per call. Zero means DefaultMaxRetries.
	MaxRetries int

	stalls int
}

// NewNoRepeat wraps base with an empty last-color memory.
func NewNoRepeat(base Source) *NoRepeat {
	return &NoRepeat{base: base}
}

// Next draws from the base source, redrawing while the result repeats the
// previous accent. After MaxRetries redraws the repeat is returned as is.
func (n *NoRepeat) Next() (tile.Color, error) {
	c, err := n.base.Next()
	if err != nil || c == tile.White {
		return c, err
	}
	limit := n.MaxRetries
	if limit <= 0 {
		limit = DefaultMaxRetries
	}
	for tries := 0; n.seen && c == n.last; tries++ {
		if tries >= limit {
			n.stalls++
			log.Printf("sampler: no-repeat gave up after %d redraws, repeating %s", limit, c)
			break
		}
		c, err = n.base.Next()
		if err != nil || c == tile.White {
			return c, err
		}
	}
	n.last, n.seen = c, true
	return c, nil
}

// Last returns the most recent accent handed out, if any.
func (n *NoRepeat) Last() (tile.Color, bool) {
	return n.last, n.seen
}

// Stalls reports how many calls hit the retry cap.
func (n *NoRepeat) Stalls() int {
	return n.stalls
}
