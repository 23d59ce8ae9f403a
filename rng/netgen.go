package rng

// Fixed-width operands of the recurrence. Every intermediate value of Next fits
// in int32, matching a 32-bit C long.
const (
	multiplier32 int32 = 16807
	modulus32    int32 = 2147483647
)

// Netgen is the legacy NETGEN generator. The zero value is not usable; build
// one with NewNetgen.
type Netgen struct {
	seed  int32
	state int32
}

// NewNetgen seeds a legacy generator. Returns ErrBadSeed outside the domain.
func NewNetgen(seed int64) (*Netgen, error) {
	if err := ValidSeed(seed); err != nil {
		return nil, err
	}

	return &Netgen{seed: int32(seed), state: int32(seed)}, nil
}

// Seed returns the seed the source was created with.
func (r *Netgen) Seed() int64 { return int64(r.seed) }

// Reset rewinds to that seed.
func (r *Netgen) Reset() { r.state = r.seed }

// State returns the previously generated raw value (the seed before any draw).
func (r *Netgen) State() int64 { return int64(r.state) }

// Next computes state·16807 mod (2^31−1) with the 16-bit split:
// hi/lo products never exceed 2^31, so no intermediate overflows.
func (r *Netgen) Next() int64 {
	s := r.state
	hi := multiplier32 * (s >> 16)
	lo := multiplier32 * (s & 0xffff)
	hi += lo >> 16
	lo &= 0xffff
	lo += hi >> 15
	hi &= 0x7fff
	lo -= modulus32
	s = (hi << 16) + lo
	if s < 0 {
		s += modulus32
	}
	r.state = s

	return int64(s)
}

// Int draws once and maps the raw value onto [a, b] by remainder.
func (r *Netgen) Int(a, b int64) int64 {
	v := r.Next()
	if b <= a {
		return b
	}

	return a + v%(b-a+1)
}
