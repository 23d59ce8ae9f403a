package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/katalvlaran/flowgen/network"
	"github.com/katalvlaran/flowgen/params"
	"github.com/katalvlaran/flowgen/rng"
)

// randomSeed is the positional seed value that asks for a time-derived seed.
const randomSeed = -1

// positional binds one positional argument to a record field.
type positional struct {
	name string
	set  func(v int64) error
}

func intField(dst *int) func(int64) error {
	return func(v int64) error { *dst = int(v); return nil }
}

func int64Field(dst *int64) func(int64) error {
	return func(v int64) error { *dst = v; return nil }
}

func boolField(dst *bool) func(int64) error {
	return func(v int64) error { *dst = v != 0; return nil }
}

func kindField(dst *rng.Kind) func(int64) error {
	return func(v int64) error {
		k, err := rng.ParseKind(v)
		if err != nil {
			return err
		}
		*dst = k

		return nil
	}
}

func netgenPositionals(p *params.Netgen) []positional {
	return []positional{
		{"seed", int64Field(&p.Seed)},
		{"nodes", intField(&p.Nodes)},
		{"sources", intField(&p.Sources)},
		{"sinks", intField(&p.Sinks)},
		{"density", intField(&p.Density)},
		{"mincost", int64Field(&p.MinCost)},
		{"maxcost", int64Field(&p.MaxCost)},
		{"supply", int64Field(&p.Supply)},
		{"tsources", intField(&p.TSources)},
		{"tsinks", intField(&p.TSinks)},
		{"hicost", intField(&p.HiCost)},
		{"capacitated", intField(&p.Capacitated)},
		{"mincap", int64Field(&p.MinCap)},
		{"maxcap", int64Field(&p.MaxCap)},
		{"rng", kindField(&p.RNG)},
	}
}

func gridPositionals(p *params.Grid) []positional {
	return []positional{
		{"seed", int64Field(&p.Seed)},
		{"rows", intField(&p.Rows)},
		{"columns", intField(&p.Columns)},
		{"diagonal", boolField(&p.Diagonal)},
		{"reverse", boolField(&p.Reverse)},
		{"wrap", boolField(&p.Wrap)},
		{"mincost", int64Field(&p.MinCost)},
		{"maxcost", int64Field(&p.MaxCost)},
		{"supply", int64Field(&p.Supply)},
		{"hicost", intField(&p.HiCost)},
		{"capacitated", intField(&p.Capacitated)},
		{"mincap", int64Field(&p.MinCap)},
		{"maxcap", int64Field(&p.MaxCap)},
		{"rng", kindField(&p.RNG)},
	}
}

// bind assigns args to the positionals in order. Missing trailing arguments
// keep their defaults.
func bind(method string, table []positional, args []string) error {
	if len(args) > len(table) {
		return fmt.Errorf("%s takes at most %d arguments, got %d: %w",
			method, len(table), len(args), network.ErrConfiguration)
	}
	for i, s := range args {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%s argument %d (%s) %q: not an integer: %w",
				method, i+1, table[i].name, s, network.ErrConfiguration)
		}
		if err = table[i].set(v); err != nil {
			return fmt.Errorf("%s argument %d (%s): %w", method, i+1, table[i].name, err)
		}
	}

	return nil
}

func parseNetgen(args []string) (params.Netgen, error) {
	p := params.DefaultNetgen()
	if err := bind("netgen", netgenPositionals(&p), args); err != nil {
		return p, err
	}
	if p.Seed == randomSeed {
		p.Seed = timeSeed(time.Now())
	}

	return p, nil
}

func parseGrid(args []string) (params.Grid, error) {
	p := params.DefaultGrid()
	if err := bind("grid", gridPositionals(&p), args); err != nil {
		return p, err
	}
	if p.Seed == randomSeed {
		p.Seed = timeSeed(time.Now())
	}

	return p, nil
}

// timeSeed maps a wall-clock time into the seed domain.
func timeSeed(t time.Time) int64 {
	ns := t.UnixNano()
	if ns < 0 {
		ns = -ns
	}

	return ns%rng.MaxSeed + rng.MinSeed
}
