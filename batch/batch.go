package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/flowgen/grid"
	"github.com/katalvlaran/flowgen/netgen"
	"github.com/katalvlaran/flowgen/network"
	"github.com/katalvlaran/flowgen/params"
	"github.com/katalvlaran/flowgen/rng"
)

// ErrEmptyJob is returned for a Job that names neither constructor.
var ErrEmptyJob = errors.New("batch: job has no parameters")

// Job is one generation request. Exactly one of Netgen and Grid is set.
type Job struct {
	Netgen *params.Netgen
	Grid   *params.Grid
}

// key identifies jobs whose output is necessarily identical.
func (j Job) key() (string, error) {
	switch {
	case j.Netgen != nil && j.Grid == nil:
		return fmt.Sprintf("netgen%+v", *j.Netgen), nil
	case j.Grid != nil && j.Netgen == nil:
		return fmt.Sprintf("grid%+v", *j.Grid), nil
	default:
		return "", ErrEmptyJob
	}
}

// Seed returns the seed of whichever record the job carries.
func (j Job) Seed() int64 {
	switch {
	case j.Netgen != nil:
		return j.Netgen.Seed
	case j.Grid != nil:
		return j.Grid.Seed
	default:
		return 0
	}
}

func (j Job) run() (*network.Graph, error) {
	if j.Netgen != nil {
		return netgen.Run(*j.Netgen)
	}

	return grid.Run(*j.Grid)
}

// Result is the outcome of the job at the same index.
type Result struct {
	Job    Job
	Graph  *network.Graph
	Err    error
	Shared bool // Graph came from a coalesced run; it is still a private copy
}

// Generate runs jobs with at most limit in flight (limit <= 0 means
// unbounded). The first failing job cancels the jobs not yet started; its
// error is returned and every Result records its own outcome.
func Generate(ctx context.Context, jobs []Job, limit int) ([]Result, error) {
	results := make([]Result, len(jobs))
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	var sf singleflight.Group
	for i, job := range jobs {
		i, job := i, job
		results[i].Job = job
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			key, err := job.key()
			if err != nil {
				results[i].Err = fmt.Errorf("job %d: %w", i, err)
				return results[i].Err
			}
			v, err, shared := sf.Do(key, func() (interface{}, error) {
				return job.run()
			})
			if err != nil {
				results[i].Err = fmt.Errorf("job %d (seed %d): %w", i, job.Seed(), err)
				return results[i].Err
			}
			g := v.(*network.Graph)
			if shared {
				g = g.Clone()
			}
			results[i].Graph, results[i].Shared = g, shared

			return nil
		})
	}

	return results, eg.Wait()
}

// Seeds returns n consecutive seeds starting at base, wrapping from
// rng.MaxSeed back to rng.MinSeed.
func Seeds(base int64, n int) ([]int64, error) {
	if err := rng.ValidSeed(base); err != nil {
		return nil, fmt.Errorf("Seeds: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("Seeds: n=%d < 0: %w", n, network.ErrOutOfRange)
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = (base-rng.MinSeed+int64(i))%(rng.MaxSeed-rng.MinSeed+1) + rng.MinSeed
	}

	return out, nil
}

// NetgenJobs clones p once per seed.
func NetgenJobs(p params.Netgen, seeds []int64) []Job {
	jobs := make([]Job, len(seeds))
	for i, s := range seeds {
		q := p
		q.Seed = s
		jobs[i] = Job{Netgen: &q}
	}

	return jobs
}

// GridJobs clones p once per seed.
func GridJobs(p params.Grid, seeds []int64) []Job {
	jobs := make([]Job, len(seeds))
	for i, s := range seeds {
		q := p
		q.Seed = s
		jobs[i] = Job{Grid: &q}
	}

	return jobs
}
