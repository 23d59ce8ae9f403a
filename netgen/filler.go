// SPDX-License-Identifier: MIT
// Package: flowgen/netgen
//
// filler.go — random filler arcs and the assignment variant.

package netgen

import "fmt"

// pickHead adds random filler arcs out of tail. The number of arcs is
// spread so that the remaining density is shared by the tails still to
// come; heads are drawn from handle, which already excludes tail and every
// head tail reaches through the skeleton.
func (gen *generator) pickHead(handle indexList, tail int) error {
	p := gen.p
	nonSources := int64(p.Nodes - p.Sources + p.TSources)
	remaining := int64(p.Density - gen.g.ArcCount())

	gen.nodesLeft--
	left := int64(gen.nodesLeft)
	if 2*left >= remaining {
		return nil
	}

	var limit int64
	if (remaining+nonSources-int64(handle.pseudoSize())-1)/(left+1) >= nonSources-1 {
		limit = nonSources
	} else {
		upper := 2 * (remaining/(left+1) - 1)
		for draws := 1; ; draws++ {
			limit = gen.draw(1, upper)
			if left == 0 {
				limit = remaining
			}
			if left*(nonSources-1) >= remaining-limit {
				break
			}
			if draws >= MaxLimitDraws {
				gen.shortfall(fmt.Sprintf("filler limit for node %d not found in %d draws", tail, MaxLimitDraws))
				return nil
			}
		}
	}

	for ; limit > 0; limit-- {
		head := handle.choose(gen.drawPos(handle))
		upper := p.Supply
		if gen.draw(1, 100) <= int64(p.Capacitated) {
			upper = gen.draw(p.MinCap, p.MaxCap)
		}
		if head == 0 {
			continue
		}
		if err := gen.addArc(tail, head, upper, gen.draw(p.MinCost, p.MaxCost), false); err != nil {
			return err
		}
	}

	return nil
}

// shortfall records the first cause of a density shortfall.
func (gen *generator) shortfall(reason string) {
	if gen.short == "" {
		gen.short = reason
	}
}

// assignment builds the assignment variant: nodes 1..N/2 each supply one
// unit, the others each demand one; every source gets one unit-capacity
// skeleton arc to a distinct sink plus filler arcs.
func (gen *generator) assignment() error {
	p := gen.p
	half := p.Nodes / 2
	for i := 1; i <= p.Nodes; i++ {
		if i <= half {
			gen.supply[i] = 1
		} else {
			gen.supply[i] = -1
		}
	}

	sinks := newIndexList(p.Sources+1, p.Nodes, half)
	for src := 1; src <= half; src++ {
		head := sinks.choose(gen.draw(1, int64(sinks.size())))
		if err := gen.addArc(src, head, 1, gen.draw(p.MinCost, p.MaxCost), true); err != nil {
			return err
		}
		handle := gen.headList()
		handle.remove(head)
		if err := gen.pickHead(handle, src); err != nil {
			return err
		}
	}

	return nil
}
