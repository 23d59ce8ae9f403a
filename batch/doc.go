// Package batch generates many independent instances concurrently.
//
// Each Job carries its own parameter record and therefore its own seed; the
// generator it runs owns a private rng.Source, so results are identical to
// sequential runs regardless of scheduling. Jobs run on an errgroup bounded
// by a caller-supplied limit; identical jobs in flight are coalesced with a
// singleflight group; each coalesced result receives its own copy of the
// graph.
//
//	seeds, _ := batch.Seeds(1, 8)
//	jobs := batch.NetgenJobs(params.DefaultNetgen(), seeds)
//	results, err := batch.Generate(ctx, jobs, 4)
//
// Results are returned in job order.
package batch
