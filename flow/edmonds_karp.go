package flow

import (
	"context"
	"math"
)

// edmondsKarp computes the maximum flow by repeatedly augmenting along the
// shortest (fewest-arc) residual path found by BFS.
//
// Complexity: O(V · E²) time, O(V + E) memory.
func edmondsKarp(ctx context.Context, cm capMap, source, sink int) (int64, error) {
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		path, bottle := bfsAugmentingPath(cm, source, sink)
		if len(path) == 0 {
			break
		}
		cm.augment(path, bottle)
		total += bottle
	}

	return total, nil
}

// bfsAugmentingPath returns the shortest positive-capacity path and its
// bottleneck, or nil when the sink is unreachable.
func bfsAugmentingPath(cm capMap, source, sink int) ([]int, int64) {
	parent := make([]int, len(cm))
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source
	bottle := make([]int64, len(cm))
	bottle[source] = math.MaxInt64

	queue := []int{source}
	for i := 0; i < len(queue) && parent[sink] < 0; i++ {
		u := queue[i]
		for v, c := range cm[u] {
			if c <= 0 || parent[v] >= 0 {
				continue
			}
			parent[v] = u
			bottle[v] = min(bottle[u], c)
			queue = append(queue, v)
		}
	}
	if parent[sink] < 0 {
		return nil, 0
	}

	var path []int
	for v := sink; v != source; v = parent[v] {
		path = append(path, v)
	}
	path = append(path, source)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, bottle[sink]
}
