// SPDX-License-Identifier: MIT
// Package: flowgen/network
//
// errors.go — sentinel errors and the shortfall detail type.
//
// Error policy:
//   • Sentinels only; callers branch with errors.Is / errors.As.
//   • Implementations attach context with "%w" and a method prefix.
//   • ErrOutOfRange and ErrInconsistent both wrap ErrConfiguration, so a caller
//     that only cares about "bad parameters" can test the umbrella.

package network

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the umbrella for malformed or contradictory parameters.
var ErrConfiguration = errors.New("network: invalid configuration")

// ErrOutOfRange indicates a single parameter outside its declared domain.
var ErrOutOfRange = fmt.Errorf("%w: parameter out of range", ErrConfiguration)

// ErrInconsistent indicates parameters that are individually valid but
// contradict each other (e.g. sources+sinks > nodes, min > max).
var ErrInconsistent = fmt.Errorf("%w: inconsistent parameters", ErrConfiguration)

// ErrInfeasible indicates the skeleton could not be built so that every unit
// of supply reaches a sink.
var ErrInfeasible = errors.New("network: infeasible construction")

// ErrDensityUnachievable indicates the requested arc count cannot be reached
// with distinct admissible arcs, or the bounded redraw budget ran out.
var ErrDensityUnachievable = errors.New("network: density unachievable")

// Model invariant violations reported by AddArc / AddSupply / SetRole.
var (
	ErrSelfLoop     = errors.New("network: self-loop arc")
	ErrDuplicateArc = errors.New("network: duplicate arc bound exceeded")
	ErrNodeRange    = errors.New("network: node id out of range")
	ErrBadBounds    = errors.New("network: arc bounds must satisfy 0 <= lower <= upper")
)

// ShortfallError reports how many arcs were requested and how many could be
// placed. It unwraps to ErrDensityUnachievable.
type ShortfallError struct {
	Requested int    // arcs requested (density)
	Placed    int    // arcs actually placed
	Reason    string // short cause, e.g. "index lists exhausted"
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("network: placed %d of %d requested arcs (%s)", e.Placed, e.Requested, e.Reason)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ShortfallError) Unwrap() error { return ErrDensityUnachievable }
