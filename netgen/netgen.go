// SPDX-License-Identifier: MIT
// Package: flowgen/netgen
//
// netgen.go — entry points and the per-call generator state.

package netgen

import (
	"fmt"

	"github.com/katalvlaran/flowgen/network"
	"github.com/katalvlaran/flowgen/params"
	"github.com/katalvlaran/flowgen/rng"
)

// MaxLimitDraws caps the redraws of a tail's filler-arc limit. The legacy
// loop is unbounded; exhausting the cap is reported as a shortfall.
const MaxLimitDraws = 1000

// generator owns everything one Generate call mutates.
type generator struct {
	p   params.ValidNetgen
	src rng.Source
	g   *network.Graph

	supply    []int64 // 1-based supply per node
	nodesLeft int     // tails still to receive filler arcs
	short     string  // first shortfall cause, if any
}

// Generate builds a NETGEN network from validated parameters, drawing every
// random value from src in the legacy call order. src is owned by the call.
//
// Errors:
//   - network.ErrInfeasible if the constructed supplies do not balance.
//   - *network.ShortfallError (network.ErrDensityUnachievable) when fewer
//     than Density arcs were placed and AllowShortfall is not set.
func Generate(p params.ValidNetgen, src rng.Source) (*network.Graph, error) {
	if src == nil {
		return nil, fmt.Errorf("Generate: nil source: %w", network.ErrConfiguration)
	}
	g, err := network.New(p.Nodes, p.Problem)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	gen := &generator{
		p:         p,
		src:       src,
		g:         g,
		supply:    make([]int64, p.Nodes+1),
		nodesLeft: p.Nodes - p.Sinks + p.TSinks,
	}
	if p.Problem == network.Assignment {
		err = gen.assignment()
	} else {
		err = gen.network()
	}
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	if err = gen.finish(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	return g, nil
}

// Run validates p, seeds the selected generator and calls Generate.
func Run(p params.Netgen) (*network.Graph, error) {
	v, err := params.ValidateNetgen(p)
	if err != nil {
		return nil, err
	}
	src, err := rng.New(v.RNG, v.Seed)
	if err != nil {
		return nil, err
	}

	return Generate(v, src)
}

// network runs the general construction: supplies, chains, skeleton and
// filler arcs, then the transshipment sinks.
func (gen *generator) network() error {
	p := gen.p
	gen.distributeSupply()
	pred := gen.chains()
	for s := 1; s <= p.Sources; s++ {
		if err := gen.skeleton(s, pred); err != nil {
			return err
		}
	}

	first := p.Nodes - p.Sinks + 1
	for tail := first; tail < first+p.TSinks; tail++ {
		handle := gen.headList()
		handle.remove(tail)
		if err := gen.pickHead(handle, tail); err != nil {
			return err
		}
	}

	return nil
}

// finish assigns roles and supplies and checks the result.
func (gen *generator) finish() error {
	p := gen.p
	sources, sinkStart := p.Sources, p.Nodes-p.Sinks+1
	if p.Problem == network.Assignment {
		sources, sinkStart = p.Nodes/2, p.Nodes/2+1
	}
	for i := 1; i <= p.Nodes; i++ {
		id := network.NodeID(i)
		role := network.Transshipment
		switch {
		case i <= sources:
			role = network.Source
		case i >= sinkStart:
			role = network.Sink
		}
		if err := gen.g.SetRole(id, role); err != nil {
			return err
		}
		if err := gen.g.AddSupply(id, gen.supply[i]); err != nil {
			return err
		}
	}

	if !gen.g.Balanced() {
		return fmt.Errorf("supply %d against demand %d: %w",
			gen.g.TotalSupply(), gen.g.TotalDemand(), network.ErrInfeasible)
	}
	tails := make(map[network.NodeID]bool)
	for _, a := range gen.g.SkeletonArcs() {
		tails[a.From] = true
	}
	for _, id := range gen.g.Sources() {
		if n, _ := gen.g.Node(id); n.Supply > 0 && !tails[id] {
			return fmt.Errorf("source %d has no skeleton arc: %w", id, network.ErrInfeasible)
		}
	}

	placed := gen.g.ArcCount()
	if gen.short == "" && placed < p.Density {
		gen.short = "index lists exhausted"
	}
	if gen.short != "" && !p.AllowShortfall {
		return &network.ShortfallError{Requested: p.Density, Placed: placed, Reason: gen.short}
	}

	return nil
}

// draw returns a value in [a, b] from the owned source.
func (gen *generator) draw(a, b int64) int64 { return gen.src.Int(a, b) }

// drawPos draws a 1-based position against the list's pseudo size.
func (gen *generator) drawPos(l indexList) int64 {
	return gen.draw(1, int64(l.pseudoSize()))
}

// headList returns the index list of admissible heads: transshipment
// sources, transshipment nodes and all sinks.
func (gen *generator) headList() indexList {
	p := gen.p
	lo := p.Sources - p.TSources + 1

	return newIndexList(lo, p.Nodes, p.Density/max(gen.nodesLeft, 1)+1)
}

func (gen *generator) addArc(tail, head int, upper, cost int64, skeleton bool) error {
	return gen.g.AddArc(network.Arc{
		From:     network.NodeID(tail),
		To:       network.NodeID(head),
		Upper:    upper,
		Cost:     cost,
		Skeleton: skeleton,
	})
}
