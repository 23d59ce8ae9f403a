// Package rng provides the deterministic random sources used by the flowgen
// constructors.
//
// The default source, Netgen, replicates the generator of the 1989 C NETGEN
// (Park–Miller "minimal standard": x' = 16807·x mod (2³¹−1)) using the
// legacy 16-bit hi/lo split in explicit int32 arithmetic. Identical seeds and
// identical call shapes yield bit-identical streams on every platform, which
// is what makes generated instances reproducible across reimplementations.
//
// Standard is an alternative stream backed by math/rand, kept for users who
// want a different, still seeded, sequence.
//
// Contract shared by every Source:
//
//   - Every call to Next or Int advances the state exactly once.
//   - Int(a, b) returns b whenever b <= a (state still advances); otherwise
//     a value in [a, b].
//   - Seeds must lie in [MinSeed, MaxSeed]; anything else is ErrBadSeed.
//
// Concurrency: sources are NOT goroutine-safe. One Source belongs to exactly
// one generation run; concurrent runs create their own (see package batch).
package rng
