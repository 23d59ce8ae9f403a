// Package flowgen generates reproducible network flow problem instances.
//
// 🚀 What is flowgen?
//
//	A pure-Go rendition of the classic NETGEN generator and of a grid-based
//	generator, emitting minimum cost flow, maximum flow and assignment
//	instances in DIMACS text format:
//		• rng:     the Park–Miller source NETGEN used, bit for bit, plus a math/rand source
//		• params:  parameter records, functional options and validation
//		• netgen:  the NETGEN constructor (skeleton + random filler arcs)
//		• grid:    rows×columns grid between a master source and a master sink
//		• network: the generated graph and the shared error taxonomy
//		• dimacs:  DIMACS serializer with legacy parameter headers
//		• flow:    max-flow check that the skeleton carries every unit of supply
//		• batch:   concurrent multi-seed generation
//
// ✨ Guarantees
//
//   - Deterministic – the same parameters and seed give the same arcs in the
//     same order, on every platform.
//   - Feasible – every source's supply can reach the sinks over skeleton arcs.
//   - Simple – no self-loops, no parallel arcs, 0 ≤ lower ≤ upper.
//   - Explicit errors – sentinels in package network, matched with errors.Is.
//
// Under the hood every run follows one path:
//
//	params.ValidateNetgen | params.ValidateGrid → rng.New(seed)
//	    → netgen.Generate | grid.Generate → *network.Graph
//	    → dimacs.Write (→ flow.Feasible)
//
// Quick start:
//
//	g, err := netgen.Run(params.DefaultNetgen())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = dimacs.Write(os.Stdout, g)
//
// The flowgen command (cmd/flowgen) exposes the same generators with the
// positional argument order of the 1989 NETGEN program:
//
//	flowgen netgen help
//	flowgen -f out.min netgen 42 10 2 2 20 10 99 100
package flowgen
