package sampler

import (
	"fmt"
	"log"
	"math"
)

// Chooser picks indexes with probability proportional to their weight.
type Chooser struct {
	rng    Rand
	faults int
}

// NewChooser returns a Chooser drawing from rng.
func NewChooser(rng Rand) *Chooser {
	return &Chooser{rng: rng}
}

// Choose returns an index into weights. Weights need not be normalized but
// must be non-negative with a positive sum. Exactly one value is drawn from
// the random source per successful call.
func (c *Chooser) Choose(weights []float64) (int, error) {
	if len(weights) == 0 {
		return -1, fmt.Errorf("%w: no weights", ErrInvalidWeights)
	}
	var sum float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return -1, fmt.Errorf("%w: weight %d is %v", ErrInvalidWeights, i, w)
		}
		sum += w
	}
	if sum <= 0 || math.IsInf(sum, 0) {
		return -1, fmt.Errorf("%w: weights sum to %v", ErrInvalidWeights, sum)
	}

	r := c.rng.Float64()
	var acc float64
	last := -1
	for i, w := range weights {
		if w == 0 {
			continue
		}
		last = i
		acc += w / sum
		if acc > r {
			return i, nil
		}
	}

	// Only reachable when the normalized weights round to just below r.
	c.faults++
	log.Printf("sampler: weighted choice fell through at r=%v (cumulative %v), using index %d", r, acc, last)
	return last, nil
}

// Faults reports how many draws fell through the cumulative sum.
func (c *Chooser) Faults() int {
	return c.faults
}
