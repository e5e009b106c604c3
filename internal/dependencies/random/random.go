package random

import (
	"math/rand/v2"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Seed resets the generator so the following sequence depends only on seed
	Seed(seed uint64)
}

// seedMix spreads a single seed across both PCG state words
const seedMix = 0x9e3779b97f4a7c15

// PCGRandom implements Random using a seeded PCG generator, so a game with a
// fixed seed always lays out the same minefield
type PCGRandom struct {
	src *rand.PCG
	rng *rand.Rand
}

// New creates a new PCGRandom seeded with seed
func New(seed uint64) *PCGRandom {
	src := rand.NewPCG(seed, seed^seedMix)
	return &PCGRandom{
		src: src,
		rng: rand.New(src),
	}
}

// Intn returns a pseudo-random int in [0, n)
func (r *PCGRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// Seed reseeds the underlying source
func (r *PCGRandom) Seed(seed uint64) {
	r.src.Seed(seed, seed^seedMix)
}
