package builder

import "errors"

// ErrTooFewVertices indicates an order or grid size below the minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")
