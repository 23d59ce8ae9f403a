package flow

import (
	"context"
	"math"
)

// dinic computes the maximum flow from source to sink over cm using Dinic's
// algorithm (level graph + blocking flows), updating cm in place.
//
// Steps:
//  1. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS from source to assign levels.
//     c. Build the level-graph adjacency next[u].
//     d. Push blocking flow by DFS, optionally breaking every
//     rebuildEvery augmentations to rebuild the level graph.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V + E).
func dinic(ctx context.Context, cm capMap, source, sink, rebuildEvery int) (int64, error) {
	var total int64
	augmentCount := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		level := make([]int, len(cm))
		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue := []int{source}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for v, c := range cm[u] {
				if c > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		next := make([][]int, len(cm))
		for u, nbrs := range cm {
			for v, c := range nbrs {
				if c > 0 && level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		iter := make([]int, len(cm))
		for {
			if err := ctx.Err(); err != nil {
				return total, err
			}
			pushed := dinicPush(cm, next, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			total += pushed
			augmentCount++
			if rebuildEvery > 0 && augmentCount%rebuildEvery == 0 {
				break
			}
		}
	}

	return total, nil
}

// dinicPush pushes flow along the level graph from u and returns the amount
// that reached sink.
func dinicPush(cm capMap, next [][]int, iter []int, u, sink int, available int64) int64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(next[u]); iter[u]++ {
		v := next[u][iter[u]]
		c := cm[u][v]
		if c <= 0 {
			continue
		}
		pushed := dinicPush(cm, next, iter, v, sink, min(available, c))
		if pushed > 0 {
			cm[u][v] -= pushed
			cm[v][u] += pushed

			return pushed
		}
	}

	return 0
}
