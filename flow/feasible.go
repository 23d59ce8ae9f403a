package flow

import (
	"fmt"

	"github.com/katalvlaran/flowgen/network"
)

// Feasible checks that the supplies of g can be routed to its demands.
//
// A super source is connected to every positive-supply node with capacity
// equal to its supply, and every negative-supply node to a super sink with
// capacity equal to its demand. The max-flow routine then runs over the
// skeleton arcs only, or over every arc when opts.AllArcs is set. Lower
// bounds are subtracted from capacities.
//
// The returned Report is valid even when Routed < Required; an error is
// returned only for a nil graph, an unknown algorithm or cancellation.
func Feasible(g *network.Graph, opts FlowOptions) (Report, error) {
	if g == nil {
		return Report{}, ErrNilGraph
	}
	opts.normalize()

	rep := Report{Algorithm: opts.Algorithm}
	cm, source, sink, required, offered, err := buildCapMap(opts.Ctx, g, opts.AllArcs)
	if err != nil {
		return rep, fmt.Errorf("flow: build residual: %w", err)
	}
	rep.Required, rep.Arcs = required, offered

	var routed int64
	switch opts.Algorithm {
	case Dinic:
		routed, err = dinic(opts.Ctx, cm, source, sink, opts.LevelRebuildInterval)
	case EdmondsKarp:
		routed, err = edmondsKarp(opts.Ctx, cm, source, sink)
	case FordFulkerson:
		routed, err = fordFulkerson(opts.Ctx, cm, source, sink)
	default:
		return rep, fmt.Errorf("flow: %v: %w", opts.Algorithm, ErrUnknownAlgorithm)
	}
	rep.Routed = routed
	if err != nil {
		return rep, fmt.Errorf("flow: %v: %w", opts.Algorithm, err)
	}

	return rep, nil
}
