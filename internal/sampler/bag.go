package sampler

import (
	"fmt"
	"math"
	"strings"

	"github.com/example/tilewall/internal/tile"
)

// OverrunPolicy decides what happens when rounding leaves more tiles in a
// bag than the wall has cells.
type OverrunPolicy int

const (
	// OverrunTruncate trims the shuffled bag to the requested total.
	OverrunTruncate OverrunPolicy = iota
	// OverrunAccept keeps every tile the counts produced.
	OverrunAccept
)

func (p OverrunPolicy) String() string {
	switch p {
	case OverrunTruncate:
		return "truncate"
	case OverrunAccept:
		return "accept"
	}
	return fmt.Sprintf("overrun(%d)", int(p))
}

// ParseOverrun parses "truncate" or "accept".
func ParseOverrun(s string) (OverrunPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truncate", "":
		return OverrunTruncate, nil
	case "accept":
		return OverrunAccept, nil
	}
	return 0, fmt.Errorf("unknown overrun policy %q", s)
}

// BagOptions tunes how tile counts are derived from a Mix.
type BagOptions struct {
	// Normalize divides each accent by the accent sum before applying it
	// to the non-white remainder. Without it the raw accent value is used,
	// which overfills or underfills the bag unless the accents sum to 1.
	Normalize bool
	Overrun   OverrunPolicy
}

// DefaultBagOptions normalizes accents and truncates overruns.
func DefaultBagOptions() BagOptions {
	return BagOptions{Normalize: true, Overrun: OverrunTruncate}
}

// Counts maps colors to tile counts.
type Counts map[tile.Color]int

// Total sums all counts.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// ceilCount rounds up, ignoring float noise just above an integer.
func ceilCount(x float64) int {
	n := int(math.Ceil(x - 1e-9))
	if n < 0 {
		return 0
	}
	return n
}

// BagCounts returns the per-color tile counts BuildBag would use, before
// any overrun truncation.
func BagCounts(total int, mix Mix, opts BagOptions) (Counts, error) {
	if total < 0 {
		return nil, fmt.Errorf("negative tile count %d", total)
	}
	if err := mix.Validate(); err != nil {
		return nil, err
	}
	white := ceilCount(float64(total) * mix.White)
	remaining := total - white
	sum := mix.AccentSum()

	counts := Counts{tile.White: white}
	for i, w := range mix.Accents() {
		p := w
		if opts.Normalize {
			if sum <= 0 {
				p = 0
			} else {
				p = w / sum
			}
		}
		counts[tile.Accents[i]] = ceilCount(float64(remaining) * p)
	}
	return counts, nil
}

// Bag is a shuffled, finite supply of tiles consumed one draw at a time.
type Bag struct {
	tiles []tile.Color
	size  int
}

// BuildBag fills a bag for total tiles following mix and shuffles it with rng.
func BuildBag(total int, mix Mix, opts BagOptions, rng Rand) (*Bag, error) {
	counts, err := BagCounts(total, mix, opts)
	if err != nil {
		return nil, err
	}
	tiles := make([]tile.Color, 0, counts.Total())
	for _, c := range tile.All {
		for i := 0; i < counts[c]; i++ {
			tiles = append(tiles, c)
		}
	}
	shuffle(tiles, rng)
	if opts.Overrun == OverrunTruncate && len(tiles) > total {
		tiles = tiles[:total]
	}
	return &Bag{tiles: tiles, size: len(tiles)}, nil
}

// shuffle is a Fisher-Yates shuffle.
func shuffle(tiles []tile.Color, rng Rand) {
	for i := len(tiles) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}

// Next pops a tile. An empty bag yields tile.Black and ErrExhaustedBag.
func (b *Bag) Next() (tile.Color, error) {
	if len(b.tiles) == 0 {
		return tile.Black, ErrExhaustedBag
	}
	last := len(b.tiles) - 1
	c := b.tiles[last]
	b.tiles = b.tiles[:last]
	return c, nil
}

// Len returns the number of tiles left.
func (b *Bag) Len() int {
	return len(b.tiles)
}

// Cap returns the number of tiles the bag started with.
func (b *Bag) Cap() int {
	return b.size
}

// Counts tallies the tiles still in the bag.
func (b *Bag) Counts() Counts {
	out := Counts{}
	for _, c := range b.tiles {
		out[c]++
	}
	return out
}
