package eval

import (
	"math/rand"
)

// Random is a randomized noise generator, adding a small amount of randomness to leaf
// evaluations. limit is the range, in millipawns, noise is drawn uniformly from the
// integers in [-limit/2; limit-limit/2), so the upper bound itself is never drawn. The zero
// value always returns zero.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

// Noise returns a pawns-scaled noise sample to add to a leaf rating.
func (n Random) Noise() float64 {
	if n.limit <= 0 {
		return 0
	}
	return float64(n.rand.Intn(n.limit)-n.limit/2) / 1000
}
