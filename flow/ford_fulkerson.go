package flow

import (
	"context"
	"math"
)

// fordFulkerson computes the maximum flow by augmenting along any residual
// path found with an iterative DFS.
//
// Complexity: O(E · F) time where F is the flow value, O(V + E) memory.
// Suitable for small networks; Dinic is the default.
func fordFulkerson(ctx context.Context, cm capMap, source, sink int) (int64, error) {
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		path, bottle := dfsAugmentingPath(cm, source, sink)
		if len(path) == 0 {
			break
		}
		cm.augment(path, bottle)
		total += bottle
	}

	return total, nil
}

// dfsAugmentingPath walks the residual network depth first with an explicit
// stack and returns the first path to sink with its bottleneck.
func dfsAugmentingPath(cm capMap, source, sink int) ([]int, int64) {
	parent := make([]int, len(cm))
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source

	stack := []int{source}
	for len(stack) > 0 && parent[sink] < 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v, c := range cm[u] {
			if c > 0 && parent[v] < 0 {
				parent[v] = u
				stack = append(stack, v)
			}
		}
	}
	if parent[sink] < 0 {
		return nil, 0
	}

	var path []int
	bottle := int64(math.MaxInt64)
	for v := sink; v != source; v = parent[v] {
		path = append(path, v)
		bottle = min(bottle, cm[parent[v]][v])
	}
	path = append(path, source)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, bottle
}
