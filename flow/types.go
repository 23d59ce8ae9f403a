package flow

import (
	"context"
	"errors"
	"fmt"
)

// ErrNilGraph is returned when Feasible is given no graph.
var ErrNilGraph = errors.New("flow: nil graph")

// ErrUnknownAlgorithm is returned for an Algorithm outside the declared set.
var ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")

// Algorithm selects the max-flow routine.
type Algorithm uint8

const (
	// Dinic uses level graphs and blocking flows (default).
	Dinic Algorithm = iota
	// EdmondsKarp augments along BFS shortest paths.
	EdmondsKarp
	// FordFulkerson augments along DFS paths.
	FordFulkerson
)

func (a Algorithm) String() string {
	switch a {
	case Dinic:
		return "dinic"
	case EdmondsKarp:
		return "edmonds-karp"
	case FordFulkerson:
		return "ford-fulkerson"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// FlowOptions configures Feasible.
//   - Ctx: cancellation; nil means context.Background().
//   - AllArcs: route over every arc instead of the skeleton only.
//   - Algorithm: max-flow routine.
//   - LevelRebuildInterval: Dinic only, rebuild the level graph every N pushes.
type FlowOptions struct {
	Ctx                  context.Context
	AllArcs              bool
	Algorithm            Algorithm
	LevelRebuildInterval int
}

// DefaultOptions returns skeleton-only Dinic with a background context.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background(), Algorithm: Dinic}
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// Report is the outcome of a feasibility check.
type Report struct {
	Required  int64     // total positive supply
	Routed    int64     // flow that reached the sinks
	Arcs      int       // arcs offered to the routine
	Algorithm Algorithm // routine used
}

// Feasible reports whether every unit of supply was routed.
func (r Report) Feasible() bool { return r.Routed == r.Required }
