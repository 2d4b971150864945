package deck

import "math/rand/v2"

// permutation returns a random permutation of 0..size-1 drawn from rng.
func permutation(rng *rand.Rand, size int) []int {
	return rng.Perm(size)
}

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
