// SPDX-License-Identifier: MIT
// Package: flowgen/params
//
// records.go — parameter records shared by both constructors.

package params

import (
	"github.com/katalvlaran/flowgen/network"
	"github.com/katalvlaran/flowgen/rng"
)

// Common carries the fields both constructors draw from.
type Common struct {
	Seed        int64    // generator seed in [rng.MinSeed, rng.MaxSeed]
	MinCost     int64    // lower bound of random arc costs
	MaxCost     int64    // upper bound of random arc costs
	Supply      int64    // total supply
	HiCost      int      // percent of skeleton arcs given the maximum cost
	Capacitated int      // percent of arcs given a random finite capacity
	MinCap      int64    // lower bound of random capacities
	MaxCap      int64    // upper bound of random capacities
	RNG         rng.Kind // generator selection
}

// Netgen is the NETGEN parameter record.
type Netgen struct {
	Common

	Nodes    int // total node count N
	Sources  int // source count S, nodes 1..S
	Sinks    int // sink count K, nodes N-K+1..N
	Density  int // requested arc count
	TSources int // transshipment sources: the last TSources sources accept arcs
	TSinks   int // transshipment sinks: the first TSinks sinks emit arcs

	// AllowShortfall accepts an instance with fewer arcs than requested
	// instead of returning a *network.ShortfallError.
	AllowShortfall bool
}

// Grid is the grid parameter record.
type Grid struct {
	Common

	Rows     int  // grid height
	Columns  int  // grid width
	Diagonal bool // add NE and SE arcs (plus NW, SW when Reverse)
	Reverse  bool // add backward arcs (W, and NW/SW when Diagonal)
	Wrap     bool // make rows cyclic: south of the last row is row 0
}

// ValidNetgen is a Netgen record accepted by ValidateNetgen.
type ValidNetgen struct {
	Netgen
	Problem network.Problem
}

// ValidGrid is a Grid record accepted by ValidateGrid.
type ValidGrid struct {
	Grid
	Problem network.Problem
}

// Nodes returns the node count of the grid network (two master terminals plus
// one node per cell).
func (g Grid) Nodes() int { return g.Rows*g.Columns + 2 }

// Cell returns the node id of grid cell (r, c), both 0-based.
func (g Grid) Cell(r, c int) network.NodeID { return network.NodeID(2 + r*g.Columns + c) }

// MasterSource is the single grid source.
func (g Grid) MasterSource() network.NodeID { return 1 }

// MasterSink is the single grid sink.
func (g Grid) MasterSink() network.NodeID { return network.NodeID(g.Rows*g.Columns + 2) }

// AdmissiblePairs returns the number of distinct ordered (tail, head) pairs
// NETGEN may join: tails are non-sinks plus transshipment sinks, heads are
// non-sources plus transshipment sources, minus the self pairs among nodes
// that are both.
func (p Netgen) AdmissiblePairs() int64 {
	n, s, k := int64(p.Nodes), int64(p.Sources), int64(p.Sinks)
	ts, tk := int64(p.TSources), int64(p.TSinks)
	if p.isAssignment() {
		return (n / 2) * (n - s)
	}
	tails := n - k + tk
	heads := n - s + ts
	both := ts + (n - s - k) + tk

	return tails*heads - both
}

// isAssignment applies the assignment classification: every node is a pure
// source or pure sink, both sides have equal size, and each source ships one
// unit.
func (p Netgen) isAssignment() bool {
	if p.TSources != 0 || p.TSinks != 0 {
		return false
	}

	return p.Sources+p.Sinks == p.Nodes && p.Sources == p.Sinks && int64(p.Sources) == p.Supply
}

// isMaxFlow applies the max-flow classification.
func (c Common) isMaxFlow(sources int) bool {
	return c.MinCost == 1 && c.MaxCost == 1 && c.Supply != int64(sources)
}

// Classify returns the problem kind of the record without validating it.
func (p Netgen) Classify() network.Problem {
	switch {
	case p.isAssignment():
		return network.Assignment
	case p.isMaxFlow(p.Sources):
		return network.MaxFlow
	default:
		return network.MinCost
	}
}

// Classify returns the problem kind of the record without validating it.
// The grid has a single source.
func (g Grid) Classify() network.Problem {
	if g.isMaxFlow(1) {
		return network.MaxFlow
	}

	return network.MinCost
}
