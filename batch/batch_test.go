package batch_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgen/batch"
	"github.com/katalvlaran/flowgen/grid"
	"github.com/katalvlaran/flowgen/netgen"
	"github.com/katalvlaran/flowgen/network"
	"github.com/katalvlaran/flowgen/params"
	"github.com/katalvlaran/flowgen/rng"
)

func TestSeeds(t *testing.T) {
	seeds, err := batch.Seeds(5, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6, 7}, seeds)

	seeds, err = batch.Seeds(rng.MaxSeed-1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{rng.MaxSeed - 1, rng.MaxSeed, 1, 2}, seeds)

	seeds, err = batch.Seeds(1, 0)
	require.NoError(t, err)
	assert.Empty(t, seeds)

	_, err = batch.Seeds(0, 3)
	assert.ErrorIs(t, err, rng.ErrBadSeed)
	_, err = batch.Seeds(1, -1)
	assert.ErrorIs(t, err, network.ErrOutOfRange)
}

func TestGenerate_MatchesSequential(t *testing.T) {
	seeds, err := batch.Seeds(1, 12)
	require.NoError(t, err)
	jobs := append(
		batch.NetgenJobs(params.DefaultNetgen(), seeds),
		batch.GridJobs(params.DefaultGrid(), seeds[:4])...,
	)

	for _, limit := range []int{0, 1, 3} {
		results, err := batch.Generate(context.Background(), jobs, limit)
		require.NoError(t, err, "limit %d", limit)
		require.Len(t, results, len(jobs))
		for i, r := range results {
			require.NoError(t, r.Err)
			var want *network.Graph
			if r.Job.Netgen != nil {
				want, err = netgen.Run(*r.Job.Netgen)
			} else {
				want, err = grid.Run(*r.Job.Grid)
			}
			require.NoError(t, err)
			assert.Equal(t, want.Arcs(), r.Graph.Arcs(), "job %d", i)
			assert.Equal(t, want.Nodes(), r.Graph.Nodes(), "job %d", i)
			assert.Equal(t, jobs[i].Seed(), r.Job.Seed())
		}
	}
}

func TestGenerate_DuplicateJobs(t *testing.T) {
	p := params.DefaultNetgen()
	jobs := []batch.Job{{Netgen: &p}, {Netgen: &p}, {Netgen: &p}}
	results, err := batch.Generate(context.Background(), jobs, 0)
	require.NoError(t, err)
	for _, r := range results {
		require.NotNil(t, r.Graph)
		assert.Equal(t, results[0].Graph.Arcs(), r.Graph.Arcs())
	}

	// Coalesced or not, no two results alias one graph.
	assert.NotSame(t, results[0].Graph, results[1].Graph)
	assert.NotSame(t, results[1].Graph, results[2].Graph)
	before := results[1].Graph.ArcCount()
	require.NoError(t, results[0].Graph.AddSupply(1, 7))
	require.NoError(t, results[0].Graph.AddArc(network.Arc{From: 9, To: 1, Upper: 1}))
	assert.Equal(t, before, results[1].Graph.ArcCount())
	assert.Equal(t, results[1].Graph.Nodes(), results[2].Graph.Nodes())
}

func TestGenerate_Errors(t *testing.T) {
	bad := params.DefaultNetgen()
	bad.Seed = 0
	good := params.DefaultNetgen()

	results, err := batch.Generate(context.Background(), []batch.Job{{Netgen: &bad}}, 1)
	assert.ErrorIs(t, err, rng.ErrBadSeed)
	assert.ErrorIs(t, results[0].Err, rng.ErrBadSeed)
	assert.Nil(t, results[0].Graph)

	_, err = batch.Generate(context.Background(), []batch.Job{{}}, 1)
	assert.ErrorIs(t, err, batch.ErrEmptyJob)

	g := params.DefaultGrid()
	_, err = batch.Generate(context.Background(), []batch.Job{{Netgen: &good, Grid: &g}}, 1)
	assert.ErrorIs(t, err, batch.ErrEmptyJob)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err = batch.Generate(ctx, []batch.Job{{Netgen: &good}, {Netgen: &good}}, 1)
	assert.True(t, errors.Is(err, context.Canceled))
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func ExampleGenerate() {
	seeds, _ := batch.Seeds(1, 3)
	results, err := batch.Generate(context.Background(), batch.NetgenJobs(params.DefaultNetgen(), seeds), 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range results {
		fmt.Println(r.Job.Seed(), r.Graph.ArcCount())
	}
	// Output:
	// 1 30
	// 2 30
	// 3 30
}
