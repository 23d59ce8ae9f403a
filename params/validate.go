// SPDX-License-Identifier: MIT
// Package: flowgen/params
//
// validate.go — the parameter validator.
//
// Checks run in a fixed order so that the reported error is stable:
//   1. seed domain (rng.ErrBadSeed)
//   2. single-value domains (network.ErrOutOfRange)
//   3. cross-field relations (network.ErrInconsistent)
//   4. achievable density (network.ErrDensityUnachievable, NETGEN only)

package params

import (
	"fmt"

	"github.com/katalvlaran/flowgen/network"
	"github.com/katalvlaran/flowgen/rng"
)

// ValidateNetgen checks p and classifies it.
func ValidateNetgen(p Netgen) (ValidNetgen, error) {
	if err := p.Common.validate(methodNetgen); err != nil {
		return ValidNetgen{}, err
	}

	switch {
	case p.Nodes < 1 || p.Nodes > MaxNodes:
		return ValidNetgen{}, outOfRange(methodNetgen, "nodes", int64(p.Nodes), 1, MaxNodes)
	case p.Sources < 1 || p.Sources > MaxNodes:
		return ValidNetgen{}, outOfRange(methodNetgen, "sources", int64(p.Sources), 1, MaxNodes)
	case p.Sinks < 1 || p.Sinks > MaxNodes:
		return ValidNetgen{}, outOfRange(methodNetgen, "sinks", int64(p.Sinks), 1, MaxNodes)
	case p.TSources < 0 || p.TSources > MaxNodes:
		return ValidNetgen{}, outOfRange(methodNetgen, "tsources", int64(p.TSources), 0, MaxNodes)
	case p.TSinks < 0 || p.TSinks > MaxNodes:
		return ValidNetgen{}, outOfRange(methodNetgen, "tsinks", int64(p.TSinks), 0, MaxNodes)
	case p.Density < 1 || p.Density > MaxArcs:
		return ValidNetgen{}, outOfRange(methodNetgen, "density", int64(p.Density), 1, MaxArcs)
	}

	switch {
	case p.Sources+p.Sinks > p.Nodes:
		return ValidNetgen{}, inconsistent(methodNetgen, "sources+sinks=%d exceeds nodes=%d", p.Sources+p.Sinks, p.Nodes)
	case p.TSources > p.Sources:
		return ValidNetgen{}, inconsistent(methodNetgen, "tsources=%d exceeds sources=%d", p.TSources, p.Sources)
	case p.TSinks > p.Sinks:
		return ValidNetgen{}, inconsistent(methodNetgen, "tsinks=%d exceeds sinks=%d", p.TSinks, p.Sinks)
	case p.Density < p.Nodes:
		return ValidNetgen{}, inconsistent(methodNetgen, "density=%d below nodes=%d", p.Density, p.Nodes)
	}
	if err := p.Common.validatePairs(methodNetgen); err != nil {
		return ValidNetgen{}, err
	}

	problem := p.Classify()
	if problem != network.MaxFlow && p.Supply < int64(p.Sources) {
		return ValidNetgen{}, inconsistent(methodNetgen, "supply=%d below sources=%d", p.Supply, p.Sources)
	}

	if pairs := p.AdmissiblePairs(); int64(p.Density) > pairs {
		return ValidNetgen{}, fmt.Errorf("%s: density=%d exceeds %d admissible arcs: %w",
			methodNetgen, p.Density, pairs, network.ErrDensityUnachievable)
	}

	return ValidNetgen{Netgen: p, Problem: problem}, nil
}

// ValidateGrid checks g and classifies it.
func ValidateGrid(g Grid) (ValidGrid, error) {
	if err := g.Common.validate(methodGrid); err != nil {
		return ValidGrid{}, err
	}

	switch {
	case g.Rows < 1 || g.Rows > MaxNodes:
		return ValidGrid{}, outOfRange(methodGrid, "rows", int64(g.Rows), 1, MaxNodes)
	case g.Columns < 1 || g.Columns > MaxNodes:
		return ValidGrid{}, outOfRange(methodGrid, "columns", int64(g.Columns), 1, MaxNodes)
	case int64(g.Rows)*int64(g.Columns)+2 > MaxNodes:
		return ValidGrid{}, outOfRange(methodGrid, "rows*columns+2", int64(g.Rows)*int64(g.Columns)+2, 3, MaxNodes)
	}

	if g.Wrap && g.Rows < MinWrapRows {
		return ValidGrid{}, inconsistent(methodGrid, "wrap needs rows>=%d, got %d", MinWrapRows, g.Rows)
	}
	if err := g.Common.validatePairs(methodGrid); err != nil {
		return ValidGrid{}, err
	}

	problem := g.Classify()
	if problem != network.MaxFlow && g.Supply < 1 {
		return ValidGrid{}, inconsistent(methodGrid, "supply=%d below sources=1", g.Supply)
	}

	return ValidGrid{Grid: g, Problem: problem}, nil
}

// validate checks the shared single-value domains.
func (c Common) validate(method string) error {
	if err := rng.ValidSeed(c.Seed); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if c.RNG != rng.KindNetgen && c.RNG != rng.KindStandard {
		return fmt.Errorf("%s: rng=%v: %w", method, c.RNG, network.ErrOutOfRange)
	}

	values := []struct {
		name string
		v    int64
	}{
		{"mincost", c.MinCost},
		{"maxcost", c.MaxCost},
		{"supply", c.Supply},
		{"mincap", c.MinCap},
		{"maxcap", c.MaxCap},
	}
	for _, f := range values {
		if f.v < 0 || f.v > MaxValue {
			return outOfRange(method, f.name, f.v, 0, MaxValue)
		}
	}
	if c.HiCost < 0 || c.HiCost > MaxPercent {
		return outOfRange(method, "hicost", int64(c.HiCost), 0, MaxPercent)
	}
	if c.Capacitated < 0 || c.Capacitated > MaxPercent {
		return outOfRange(method, "capacitated", int64(c.Capacitated), 0, MaxPercent)
	}

	return nil
}

// validatePairs rejects inverted min/max pairs.
func (c Common) validatePairs(method string) error {
	if c.MinCost > c.MaxCost {
		return inconsistent(method, "mincost=%d exceeds maxcost=%d", c.MinCost, c.MaxCost)
	}
	if c.MinCap > c.MaxCap {
		return inconsistent(method, "mincap=%d exceeds maxcap=%d", c.MinCap, c.MaxCap)
	}

	return nil
}

func outOfRange(method, name string, v, lo, hi int64) error {
	return fmt.Errorf("%s: %s=%d not in [%d,%d]: %w", method, name, v, lo, hi, network.ErrOutOfRange)
}

func inconsistent(method, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), network.ErrInconsistent)
}
