// Package sampler produces tile color sequences whose proportions follow a
// user supplied Mix.
//
// Two strategies are available. A Bag is built up front for a known tile
// count and matches the target proportions up to rounding. Weighted draws
// each tile independently and only converges on the targets; wrap it in
// NoRepeat to break up runs of the same accent.
//
// Samplers hold per-pass state and are not safe for concurrent use. Build a
// new one for every grid fill.
package sampler

import (
	"math/rand/v2"

	"github.com/example/tilewall/internal/tile"
)

// Rand is the random source samplers draw from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Source produces the next tile color of a fill pass.
type Source interface {
	Next() (tile.Color, error)
}

// NewRand returns a PCG generator. A zero seed picks a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
