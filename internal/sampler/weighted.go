package sampler

import (
	"github.com/example/tilewall/internal/tile"
)

// Weighted draws every tile independently from a Mix.
type Weighted struct {
	mix     Mix
	rng     Rand
	chooser *Chooser
}

// NewWeighted validates mix and returns a sampler drawing from rng.
func NewWeighted(mix Mix, rng Rand) (*Weighted, error) {
	if err := mix.Validate(); err != nil {
		return nil, err
	}
	return &Weighted{mix: mix, rng: rng, chooser: NewChooser(rng)}, nil
}

// Next returns White with probability mix.White, otherwise an accent
// chosen by relative weight.
func (w *Weighted) Next() (tile.Color, error) {
	if w.rng.Float64() < w.mix.White {
		return tile.White, nil
	}
	idx, err := w.chooser.Choose(w.mix.Accents())
	if err != nil {
		return tile.Black, err
	}
	return tile.Accents[idx], nil
}

// Faults reports chooser fall-throughs seen by this sampler.
func (w *Weighted) Faults() int {
	return w.chooser.Faults()
}
