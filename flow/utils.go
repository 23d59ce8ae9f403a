package flow

import (
	"context"

	"github.com/katalvlaran/flowgen/network"
)

// capMap holds residual capacities: capMap[u][v] is the remaining capacity
// of u→v. Index 0 is the super source, 1..N the network nodes and N+1 the
// super sink.
type capMap []map[int]int64

// buildCapMap constructs the residual network of g: one arc per offered arc
// (parallel arcs summed, zero capacities dropped), super source arcs carrying
// each positive supply and super sink arcs carrying each demand.
//
// Returns the map, the super source/sink indices, the required flow and the
// number of arcs offered.
//
// Complexity: O(V + E) time and memory.
func buildCapMap(ctx context.Context, g *network.Graph, allArcs bool) (capMap, int, int, int64, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, 0, 0, 0, err
	}

	n := g.NodeCount()
	source, sink := 0, n+1
	cm := make(capMap, n+2)
	for i := range cm {
		cm[i] = make(map[int]int64)
	}

	var required int64
	for _, node := range g.Nodes() {
		id := int(node.ID)
		switch {
		case node.Supply > 0:
			cm[source][id] += node.Supply
			required += node.Supply
		case node.Supply < 0:
			cm[id][sink] += -node.Supply
		}
	}

	offered := 0
	for _, a := range g.Arcs() {
		if !allArcs && !a.Skeleton {
			continue
		}
		offered++
		if c := a.Upper - a.Lower; c > 0 {
			cm[int(a.From)][int(a.To)] += c
		}
	}

	return cm, source, sink, required, offered, nil
}

// augment pushes delta along the node path, updating forward and reverse
// residual capacities.
func (cm capMap) augment(path []int, delta int64) {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		cm[u][v] -= delta
		cm[v][u] += delta
	}
}
