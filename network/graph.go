// SPDX-License-Identifier: MIT
// Package: flowgen/network
//
// graph.go — Graph record: build-time mutators and read-only accessors.
//
// Contract:
//   • New allocates nodes 1..n with Role=Transshipment and Supply=0.
//   • Mutators validate every invariant and return sentinel errors; they never
//     panic. Constructors propagate these errors as internal failures.
//   • Accessors return copies; the record behind them is never exposed.
//
// Complexity:
//   • AddArc O(1) amortized (one map probe for multiplicity).
//   • Sources/Sinks/TotalSupply O(N); Arcs/SkeletonArcs O(A).

package network

import "fmt"

// Graph is the in-memory network produced by one constructor run.
type Graph struct {
	problem  Problem
	nodes    []Node // nodes[i].ID == i+1
	arcs     []Arc
	pairs    map[pairKey]int
	dupBound int
}

// New allocates a graph with n nodes for the given problem variant.
// Returns ErrOutOfRange when n < 1.
func New(n int, problem Problem) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("New: n=%d < 1: %w", n, ErrOutOfRange)
	}
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{ID: NodeID(i + 1), Role: Transshipment}
	}

	return &Graph{
		problem:  problem,
		nodes:    nodes,
		pairs:    make(map[pairKey]int),
		dupBound: DefaultDuplicateBound,
	}, nil
}

func (g *Graph) inRange(id NodeID) bool {
	return id >= 1 && int(id) <= len(g.nodes)
}

// SetRole fixes the partition of node id.
func (g *Graph) SetRole(id NodeID, r Role) error {
	if !g.inRange(id) {
		return fmt.Errorf("SetRole(%d): %w", id, ErrNodeRange)
	}
	g.nodes[id-1].Role = r

	return nil
}

// AddSupply adds delta (possibly negative) to the supply of node id.
func (g *Graph) AddSupply(id NodeID, delta int64) error {
	if !g.inRange(id) {
		return fmt.Errorf("AddSupply(%d): %w", id, ErrNodeRange)
	}
	g.nodes[id-1].Supply += delta

	return nil
}

// AddArc appends a after checking the model invariants.
func (g *Graph) AddArc(a Arc) error {
	if !g.inRange(a.From) || !g.inRange(a.To) {
		return fmt.Errorf("AddArc(%d→%d): %w", a.From, a.To, ErrNodeRange)
	}
	if a.From == a.To {
		return fmt.Errorf("AddArc(%d→%d): %w", a.From, a.To, ErrSelfLoop)
	}
	if a.Lower < 0 || a.Lower > a.Upper {
		return fmt.Errorf("AddArc(%d→%d, [%d,%d]): %w", a.From, a.To, a.Lower, a.Upper, ErrBadBounds)
	}
	key := pairKey{a.From, a.To}
	if g.pairs[key] >= g.dupBound {
		return fmt.Errorf("AddArc(%d→%d): bound %d: %w", a.From, a.To, g.dupBound, ErrDuplicateArc)
	}
	g.pairs[key]++
	g.arcs = append(g.arcs, a)

	return nil
}

// Clone returns an independent deep copy of g; mutating either graph never
// affects the other.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		problem:  g.problem,
		nodes:    make([]Node, len(g.nodes)),
		arcs:     make([]Arc, len(g.arcs)),
		pairs:    make(map[pairKey]int, len(g.pairs)),
		dupBound: g.dupBound,
	}
	copy(c.nodes, g.nodes)
	copy(c.arcs, g.arcs)
	for k, v := range g.pairs {
		c.pairs[k] = v
	}

	return c
}

// Problem returns the instance classification.
func (g *Graph) Problem() Problem { return g.problem }

// NodeCount returns N.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// ArcCount returns the number of arcs placed.
func (g *Graph) ArcCount() int { return len(g.arcs) }

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) (Node, bool) {
	if !g.inRange(id) {
		return Node{}, false
	}

	return g.nodes[id-1], true
}

// Nodes returns a copy of all nodes ordered by id.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Arc returns the i-th arc in generation order (0-based).
func (g *Graph) Arc(i int) (Arc, bool) {
	if i < 0 || i >= len(g.arcs) {
		return Arc{}, false
	}

	return g.arcs[i], true
}

// Arcs returns a copy of all arcs in generation order.
func (g *Graph) Arcs() []Arc {
	out := make([]Arc, len(g.arcs))
	copy(out, g.arcs)

	return out
}

// SkeletonArcs returns the skeleton subset in generation order.
func (g *Graph) SkeletonArcs() []Arc {
	var out []Arc
	for _, a := range g.arcs {
		if a.Skeleton {
			out = append(out, a)
		}
	}

	return out
}

// Sources returns the ids with Role == Source.
func (g *Graph) Sources() []NodeID { return g.withRole(Source) }

// Sinks returns the ids with Role == Sink.
func (g *Graph) Sinks() []NodeID { return g.withRole(Sink) }

func (g *Graph) withRole(r Role) []NodeID {
	var out []NodeID
	for _, n := range g.nodes {
		if n.Role == r {
			out = append(out, n.ID)
		}
	}

	return out
}

// TotalSupply is the sum of all positive supplies.
func (g *Graph) TotalSupply() int64 {
	var s int64
	for _, n := range g.nodes {
		if n.Supply > 0 {
			s += n.Supply
		}
	}

	return s
}

// TotalDemand is the magnitude of the sum of all negative supplies.
func (g *Graph) TotalDemand() int64 {
	var d int64
	for _, n := range g.nodes {
		if n.Supply < 0 {
			d -= n.Supply
		}
	}

	return d
}

// Balanced reports whether supplies sum to zero.
func (g *Graph) Balanced() bool {
	return g.TotalSupply() == g.TotalDemand()
}

// Multiplicity returns how many arcs join from→to.
func (g *Graph) Multiplicity(from, to NodeID) int {
	return g.pairs[pairKey{from, to}]
}

// DuplicateBound returns the parallel-arc bound enforced by AddArc.
func (g *Graph) DuplicateBound() int { return g.dupBound }
