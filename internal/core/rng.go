// Package core provides small dependency-free utilities shared by the
// simulation and platform layers.
package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. All simulation randomness flows through an explicitly seeded RNG
// so runs are reproducible; the global rand source is never used.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). Panics if n <= 0, same as rand/v2.
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Int64 returns a non-negative random int64, used to derive child seeds.
func (r *RNG) Int64() int64 {
	return r.r.Int64()
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}
