// Package flow verifies that a generated network can carry its supply.
//
// Generators in this module guarantee feasibility by construction: every
// source's supply is routed along skeleton arcs whose capacities are at least
// the supply they carry. Feasible checks that claim independently by running
// a maximum-flow routine between a super source and a super sink:
//
//	super source ──supply──▶ sources ──arcs──▶ sinks ──demand──▶ super sink
//
// The instance is feasible when the maximum flow equals the total supply.
//
// Three routines are available:
//
//   - Dinic (default)
//     Level graph + blocking flow.
//     Time:   O(V² · E), close to O(E · √V) on the unit-capacity networks
//     produced by the assignment variant.
//
//   - Edmonds–Karp
//     Shortest augmenting paths by BFS.
//     Time:   O(V · E²).
//
//   - Ford–Fulkerson
//     Any augmenting path by DFS.
//     Time:   O(E · F), F = total supply. Useful as a cross-check on small
//     instances.
//
// All routines share one residual representation, a slice of maps indexed
// by node ID with the super source at 0 and the super sink at N+1. Parallel
// arcs are summed and zero-capacity arcs dropped.
//
// # Options
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // cancellation; checked between augmentations
//	    AllArcs              bool            // use every arc, not just the skeleton
//	    Algorithm            Algorithm       // Dinic, EdmondsKarp, FordFulkerson
//	    LevelRebuildInterval int             // Dinic only
//	}
//
// # Example
//
//	g, _ := netgen.Run(params.DefaultNetgen())
//	rep, err := flow.Feasible(g, flow.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rep.Feasible())
//
// A max-flow instance with zero supply has nothing to route and reports
// Required == Routed == 0.
package flow
