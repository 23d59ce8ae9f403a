// SPDX-License-Identifier: MIT
// Package: flowgen/grid
//
// grid.go — lattice network constructor.
//
// Contract:
//   • Node 1 is the master source, cell (r,c) is node 2+r·C+c, node R·C+2 is
//     the master sink.
//   • Arcs are emitted group by group in the fixed order of Groups(); inside a
//     group tails are visited row-major.
//   • In the min-cost variant the row-0 path source→(0,0)→…→(0,C-1)→sink is
//     the skeleton: capacity = supply, cost = maxcost unless the hicost draw
//     fails. Every other arc draws its capacity then its cost.
//   • Never panics; model violations surface as wrapped sentinel errors.
//
// Complexity: O(R·C) time and arcs.

package grid

import (
	"fmt"

	"github.com/katalvlaran/flowgen/network"
	"github.com/katalvlaran/flowgen/params"
	"github.com/katalvlaran/flowgen/rng"
)

const methodGenerate = "Generate"

// builder owns the state of one Generate call.
type builder struct {
	p   params.ValidGrid
	src rng.Source
	g   *network.Graph
}

// Generate builds the grid network for validated parameters, drawing from
// src in emission order.
func Generate(p params.ValidGrid, src rng.Source) (*network.Graph, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: nil source: %w", methodGenerate, network.ErrConfiguration)
	}
	g, err := network.New(p.Nodes(), p.Problem)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	b := &builder{p: p, src: src, g: g}

	if err = b.terminals(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	if err = b.masterArcs(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	for _, d := range directions {
		if !d.enabled(p.Grid) {
			continue
		}
		if err = b.cellArcs(d); err != nil {
			return nil, fmt.Errorf("%s: %s arcs: %w", methodGenerate, d.group, err)
		}
	}

	return g, nil
}

// Run validates p, seeds the selected generator and calls Generate.
func Run(p params.Grid) (*network.Graph, error) {
	v, err := params.ValidateGrid(p)
	if err != nil {
		return nil, err
	}
	src, err := rng.New(v.RNG, v.Seed)
	if err != nil {
		return nil, err
	}

	return Generate(v, src)
}

// terminals marks the two master nodes and gives them +supply / -supply.
func (b *builder) terminals() error {
	s, t := b.p.MasterSource(), b.p.MasterSink()
	if err := b.g.SetRole(s, network.Source); err != nil {
		return err
	}
	if err := b.g.SetRole(t, network.Sink); err != nil {
		return err
	}
	if err := b.g.AddSupply(s, b.p.Supply); err != nil {
		return err
	}

	return b.g.AddSupply(t, -b.p.Supply)
}

// masterArcs joins the master source to column 0 and column C-1 to the
// master sink. The row-0 arcs belong to the skeleton.
func (b *builder) masterArcs() error {
	p := b.p
	for r := 0; r < p.Rows; r++ {
		if err := b.add(p.MasterSource(), p.Cell(r, 0), GroupSource, r == 0); err != nil {
			return err
		}
	}
	for r := 0; r < p.Rows; r++ {
		if err := b.add(p.Cell(r, p.Columns-1), p.MasterSink(), GroupSink, r == 0); err != nil {
			return err
		}
	}

	return nil
}

// cellArcs emits every arc of direction d.
func (b *builder) cellArcs(d direction) error {
	p := b.p
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Columns; c++ {
			hr, hc, ok := d.head(p.Grid, r, c)
			if !ok {
				continue
			}
			skeleton := d.group == GroupEast && r == 0
			if err := b.add(p.Cell(r, c), p.Cell(hr, hc), d.group, skeleton); err != nil {
				return err
			}
		}
	}

	return nil
}

// add draws the arc's attributes and appends it. skeleton only applies to
// the min-cost variant.
func (b *builder) add(from, to network.NodeID, group string, skeleton bool) error {
	p := b.p
	skeleton = skeleton && p.Problem == network.MinCost

	var upper, cost int64
	if skeleton {
		upper = p.Supply
		cost = p.MaxCost
		if b.src.Int(1, 100) > int64(p.HiCost) {
			cost = b.src.Int(p.MinCost, p.MaxCost)
		}
	} else {
		upper = p.Supply
		if b.src.Int(1, 100) <= int64(p.Capacitated) {
			upper = b.src.Int(p.MinCap, p.MaxCap)
		}
		cost = b.src.Int(p.MinCost, p.MaxCost)
	}

	return b.g.AddArc(network.Arc{
		From:     from,
		To:       to,
		Upper:    upper,
		Cost:     cost,
		Skeleton: skeleton,
		Group:    group,
	})
}

// ArcCount returns the number of arcs Generate emits for p.
func ArcCount(p params.Grid) int {
	n := 2 * p.Rows
	for _, d := range directions {
		if !d.enabled(p) {
			continue
		}
		rows := p.Rows
		if d.dr != 0 && !p.Wrap {
			rows--
		}
		cols := p.Columns
		if d.dc != 0 {
			cols--
		}
		n += rows * cols
	}

	return n
}
