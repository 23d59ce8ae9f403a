// SPDX-License-Identifier: MIT
// Package: flowgen/params
//
// options.go — functional options resolved on top of the defaults.
//
// Contract:
//   • Option constructors panic on programmer error only (unknown generator
//     kind, percentage outside [0,100]).
//   • Everything a user can get wrong from the command line is left to the
//     validator so it surfaces as a classified error.
//   • Options apply in order; later options override earlier ones.

package params

import (
	"fmt"

	"github.com/katalvlaran/flowgen/rng"
)

// Option mutates the fields shared by both records.
type Option func(*Common)

// NetgenOption mutates a Netgen record.
type NetgenOption func(*Netgen)

// GridOption mutates a Grid record.
type GridOption func(*Grid)

// DefaultCommon returns the shared defaults.
func DefaultCommon() Common {
	return Common{
		Seed:        DefaultSeed,
		MinCost:     DefaultMinCost,
		MaxCost:     DefaultMaxCost,
		Supply:      DefaultSupply,
		HiCost:      DefaultHiCost,
		Capacitated: DefaultCapacitated,
		MinCap:      DefaultMinCap,
		MaxCap:      DefaultMaxCap,
		RNG:         rng.KindNetgen,
	}
}

// DefaultNetgen returns "1 10 3 3 30 10 99 1000 0 0 0 100 100 1000".
func DefaultNetgen() Netgen {
	return Netgen{
		Common:  DefaultCommon(),
		Nodes:   DefaultNodes,
		Sources: DefaultSources,
		Sinks:   DefaultSinks,
		Density: DefaultDensity,
	}
}

// DefaultGrid returns "1 3 4 1 1 0 10 99 1000 0 100 100 1000".
func DefaultGrid() Grid {
	return Grid{
		Common:   DefaultCommon(),
		Rows:     DefaultRows,
		Columns:  DefaultColumns,
		Diagonal: DefaultDiagonal,
		Reverse:  DefaultReverse,
		Wrap:     DefaultWrap,
	}
}

// NewNetgen resolves shared options, then NETGEN options, over the defaults.
func NewNetgen(shared []Option, opts ...NetgenOption) Netgen {
	p := DefaultNetgen()
	for _, o := range shared {
		o(&p.Common)
	}
	for _, o := range opts {
		o(&p)
	}

	return p
}

// NewGrid resolves shared options, then grid options, over the defaults.
func NewGrid(shared []Option, opts ...GridOption) Grid {
	g := DefaultGrid()
	for _, o := range shared {
		o(&g.Common)
	}
	for _, o := range opts {
		o(&g)
	}

	return g
}

// WithSeed sets the generator seed. Range is checked by the validator.
func WithSeed(seed int64) Option {
	return func(c *Common) { c.Seed = seed }
}

// WithRNG selects the generator. Panics on an unknown kind.
func WithRNG(k rng.Kind) Option {
	if k != rng.KindNetgen && k != rng.KindStandard {
		panic(fmt.Sprintf("params: WithRNG(%v)", k))
	}

	return func(c *Common) { c.RNG = k }
}

// WithCostRange sets [min, max] of random arc costs.
func WithCostRange(min, max int64) Option {
	return func(c *Common) { c.MinCost, c.MaxCost = min, max }
}

// WithCapacityRange sets [min, max] of random capacities.
func WithCapacityRange(min, max int64) Option {
	return func(c *Common) { c.MinCap, c.MaxCap = min, max }
}

// WithSupply sets the total supply.
func WithSupply(supply int64) Option {
	return func(c *Common) { c.Supply = supply }
}

// WithHiCost sets the percentage of skeleton arcs given the maximum cost.
// Panics outside [0,100].
func WithHiCost(pct int) Option {
	mustPercent("WithHiCost", pct)

	return func(c *Common) { c.HiCost = pct }
}

// WithCapacitated sets the percentage of arcs with a random finite capacity.
// Panics outside [0,100].
func WithCapacitated(pct int) Option {
	mustPercent("WithCapacitated", pct)

	return func(c *Common) { c.Capacitated = pct }
}

func mustPercent(name string, pct int) {
	if pct < 0 || pct > MaxPercent {
		panic(fmt.Sprintf("params: %s(%d) outside [0,%d]", name, pct, MaxPercent))
	}
}

// WithNodes sets the total node count.
func WithNodes(n int) NetgenOption {
	return func(p *Netgen) { p.Nodes = n }
}

// WithTerminals sets the source and sink counts.
func WithTerminals(sources, sinks int) NetgenOption {
	return func(p *Netgen) { p.Sources, p.Sinks = sources, sinks }
}

// WithDensity sets the requested arc count.
func WithDensity(arcs int) NetgenOption {
	return func(p *Netgen) { p.Density = arcs }
}

// WithTransshipment sets how many sources accept and how many sinks emit arcs.
func WithTransshipment(tsources, tsinks int) NetgenOption {
	return func(p *Netgen) { p.TSources, p.TSinks = tsources, tsinks }
}

// WithShortfall accepts instances with fewer arcs than requested.
func WithShortfall() NetgenOption {
	return func(p *Netgen) { p.AllowShortfall = true }
}

// WithShape sets the grid dimensions.
func WithShape(rows, columns int) GridOption {
	return func(g *Grid) { g.Rows, g.Columns = rows, columns }
}

// WithDiagonal toggles diagonal arcs.
func WithDiagonal(on bool) GridOption {
	return func(g *Grid) { g.Diagonal = on }
}

// WithReverse toggles backward arcs.
func WithReverse(on bool) GridOption {
	return func(g *Grid) { g.Reverse = on }
}

// WithWrap toggles cyclic rows.
func WithWrap(on bool) GridOption {
	return func(g *Grid) { g.Wrap = on }
}
