// SPDX-License-Identifier: MIT
// Package: flowgen/rng
//
// source.go — Source interface, seed domain, kind selection and helpers.

package rng

import (
	"errors"
	"fmt"
)

// Generator constants of the legacy recurrence.
const (
	Modulus    int64 = 2147483647 // 2^31 - 1
	Multiplier int64 = 16807      // 7^5
	MinSeed    int64 = 1
	MaxSeed    int64 = Modulus - 1
)

// ErrBadSeed indicates a seed outside [MinSeed, MaxSeed].
var ErrBadSeed = errors.New("rng: seed out of range")

// ErrUnknownKind indicates an unsupported generator selector.
var ErrUnknownKind = errors.New("rng: unknown generator kind")

// Source is a seeded, stateful stream of integers.
type Source interface {
	// Seed returns the seed the stream was created with.
	Seed() int64
	// Reset rewinds the stream to its seed.
	Reset()
	// Next advances the state and returns the raw value in [1, Modulus-1].
	Next() int64
	// Int advances the state and returns a value in [a, b]; b when b <= a.
	Int(a, b int64) int64
}

// Kind selects a Source implementation.
type Kind uint8

const (
	// KindNetgen is the legacy NETGEN generator (default).
	KindNetgen Kind = iota
	// KindStandard is the math/rand backed generator.
	KindStandard
)

func (k Kind) String() string {
	switch k {
	case KindNetgen:
		return "netgen"
	case KindStandard:
		return "standard"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps the numeric CLI selector (0 = netgen, 1 = standard).
func ParseKind(i int64) (Kind, error) {
	switch i {
	case 0:
		return KindNetgen, nil
	case 1:
		return KindStandard, nil
	default:
		return 0, fmt.Errorf("ParseKind(%d): %w", i, ErrUnknownKind)
	}
}

// ValidSeed reports ErrBadSeed when seed lies outside the generator domain.
func ValidSeed(seed int64) error {
	if seed < MinSeed || seed > MaxSeed {
		return fmt.Errorf("seed=%d not in [%d,%d]: %w", seed, MinSeed, MaxSeed, ErrBadSeed)
	}

	return nil
}

// New returns a fresh Source of the given kind.
func New(kind Kind, seed int64) (Source, error) {
	switch kind {
	case KindNetgen:
		return NewNetgen(seed)
	case KindStandard:
		return NewStandard(seed)
	default:
		return nil, fmt.Errorf("New(%v): %w", kind, ErrUnknownKind)
	}
}

// Intn returns a value in [0, n). For n < 1 the state still advances and 0 is
// returned.
func Intn(src Source, n int64) int64 {
	if n < 1 {
		src.Next()
		return 0
	}

	return src.Int(0, n-1)
}

// Float64 returns a real sample in (0, 1) derived from one raw draw.
func Float64(src Source) float64 {
	return float64(src.Next()) / float64(Modulus)
}
