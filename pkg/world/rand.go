package world

import "math/rand"

// Rand is the deterministic pseudo-random stream that all generation
// routines draw from. A fixed seed always reproduces the same sequence,
// which is what lets save files regenerate walls and obstacles from the
// recorded seed and bounds instead of storing them.
type Rand struct {
	seed int64
	rng  *rand.Rand
}

// NewRand creates a stream positioned at the fresh state for seed.
func NewRand(seed int64) *Rand {
	r := &Rand{}
	r.Reseed(seed)
	return r
}

// Reseed resets the stream to the exact state a new process would have
// with this seed, discarding any prior draw history.
func (r *Rand) Reseed(seed int64) {
	r.seed = seed
	r.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed the stream was last reseeded with.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Uniform returns a uniformly distributed value in [min, max).
func (r *Rand) Uniform(min, max float64) float64 {
	return min + (max-min)*r.rng.Float64()
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.rng.Float64() < p
}

// Intn returns a uniformly distributed int in [0, n).
func (r *Rand) Intn(n int) int {
	return r.rng.Intn(n)
}
