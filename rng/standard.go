package rng

import "math/rand"

// Standard is a seeded math/rand stream exposing the Source contract.
// It does not reproduce legacy NETGEN output.
type Standard struct {
	seed int64
	r    *rand.Rand
}

// NewStandard seeds a math/rand backed Source.
func NewStandard(seed int64) (*Standard, error) {
	if err := ValidSeed(seed); err != nil {
		return nil, err
	}

	return &Standard{seed: seed, r: rand.New(rand.NewSource(seed))}, nil
}

// Seed returns the seed the source was created with.
func (s *Standard) Seed() int64 { return s.seed }

// Reset rewinds to that seed.
func (s *Standard) Reset() { s.r = rand.New(rand.NewSource(s.seed)) }

// Next returns a raw value in [1, Modulus-1].
func (s *Standard) Next() int64 { return s.r.Int63n(Modulus-1) + 1 }

// Int returns a value in [a, b]; for b <= a it consumes one draw and returns b.
func (s *Standard) Int(a, b int64) int64 {
	if b <= a {
		s.r.Int63()
		return b
	}

	return a + s.r.Int63n(b-a+1)
}
