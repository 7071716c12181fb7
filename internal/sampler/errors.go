package sampler

import "errors"

// ErrInvalidWeights is returned when a weight vector is empty, negative,
// non-finite or sums to zero.
var ErrInvalidWeights = errors.New("invalid weights")

// ErrInvalidMix is returned when a Mix cannot drive a sampler.
var ErrInvalidMix = errors.New("invalid mix")

// ErrExhaustedBag is returned by Bag.Next once every tile has been drawn.
var ErrExhaustedBag = errors.New("bag of tiles exhausted")

// ErrDegenerateMix is returned when a mix leaves the no-repeat rule at
// most one accent to alternate between.
var ErrDegenerateMix = errors.New("mix has fewer than two accents for no-repeat")
