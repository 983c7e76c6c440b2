package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// It is not safe for concurrent use; give each goroutine its own stream.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewStreamRNG creates a generator for one of many independent streams sharing
// a base seed.
func NewStreamRNG(base, stream uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(base, stream))}
}

// Uint32 returns a uniformly distributed 32-bit roll.
func (r *RNG) Uint32() uint32 { return r.r.Uint32() }

// Uint64 returns a uniformly distributed 64-bit value.
func (r *RNG) Uint64() uint64 { return r.r.Uint64() }

// Seed2 returns a uniform two-bit value in [0, 4).
func (r *RNG) Seed2() uint8 { return uint8(r.r.Uint32() & 0x3) }

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
