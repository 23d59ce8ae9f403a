package params_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgen/network"
	"github.com/katalvlaran/flowgen/params"
	"github.com/katalvlaran/flowgen/rng"
)

func TestDefaults(t *testing.T) {
	p := params.DefaultNetgen()
	assert.Equal(t, int64(1), p.Seed)
	assert.Equal(t, []int{10, 3, 3, 30, 0, 0}, []int{p.Nodes, p.Sources, p.Sinks, p.Density, p.TSources, p.TSinks})
	assert.Equal(t, []int64{10, 99, 1000, 100, 1000}, []int64{p.MinCost, p.MaxCost, p.Supply, p.MinCap, p.MaxCap})
	assert.Equal(t, 0, p.HiCost)
	assert.Equal(t, 100, p.Capacitated)

	g := params.DefaultGrid()
	assert.Equal(t, []int{3, 4}, []int{g.Rows, g.Columns})
	assert.True(t, g.Diagonal)
	assert.True(t, g.Reverse)
	assert.False(t, g.Wrap)
	assert.Equal(t, 14, g.Nodes())
	assert.Equal(t, network.NodeID(14), g.MasterSink())
	assert.Equal(t, network.NodeID(7), g.Cell(1, 1))

	vp, err := params.ValidateNetgen(p)
	require.NoError(t, err)
	assert.Equal(t, network.MinCost, vp.Problem)

	vg, err := params.ValidateGrid(g)
	require.NoError(t, err)
	assert.Equal(t, network.MinCost, vg.Problem)
}

func TestOptions_OrderAndOverride(t *testing.T) {
	p := params.NewNetgen(
		[]params.Option{params.WithSeed(5), params.WithSeed(42), params.WithCostRange(1, 7)},
		params.WithNodes(20), params.WithTerminals(4, 5), params.WithDensity(60),
		params.WithTransshipment(1, 2), params.WithShortfall(),
	)
	assert.Equal(t, int64(42), p.Seed)
	assert.Equal(t, int64(1), p.MinCost)
	assert.Equal(t, int64(7), p.MaxCost)
	assert.Equal(t, 20, p.Nodes)
	assert.Equal(t, 4, p.Sources)
	assert.Equal(t, 5, p.Sinks)
	assert.Equal(t, 2, p.TSinks)
	assert.True(t, p.AllowShortfall)

	g := params.NewGrid([]params.Option{params.WithRNG(rng.KindStandard)},
		params.WithShape(5, 6), params.WithDiagonal(false), params.WithReverse(false), params.WithWrap(true))
	assert.Equal(t, rng.KindStandard, g.RNG)
	assert.Equal(t, 32, g.Nodes())
	assert.False(t, g.Diagonal)
	assert.True(t, g.Wrap)
}

func TestOptions_PanicOnProgrammerError(t *testing.T) {
	assert.Panics(t, func() { params.WithHiCost(101) })
	assert.Panics(t, func() { params.WithCapacitated(-1) })
	assert.Panics(t, func() { params.WithRNG(rng.Kind(7)) })
	assert.NotPanics(t, func() { params.WithHiCost(0) })
}

func TestValidateNetgen_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*params.Netgen)
		want error
	}{
		{"seed zero", func(p *params.Netgen) { p.Seed = 0 }, rng.ErrBadSeed},
		{"seed modulus", func(p *params.Netgen) { p.Seed = rng.Modulus }, rng.ErrBadSeed},
		{"nodes zero", func(p *params.Netgen) { p.Nodes = 0 }, network.ErrOutOfRange},
		{"nodes huge", func(p *params.Netgen) { p.Nodes = params.MaxNodes + 1 }, network.ErrOutOfRange},
		{"no sources", func(p *params.Netgen) { p.Sources = 0 }, network.ErrOutOfRange},
		{"no sinks", func(p *params.Netgen) { p.Sinks = 0 }, network.ErrOutOfRange},
		{"negative tsinks", func(p *params.Netgen) { p.TSinks = -1 }, network.ErrOutOfRange},
		{"density zero", func(p *params.Netgen) { p.Density = 0 }, network.ErrOutOfRange},
		{"hicost", func(p *params.Netgen) { p.HiCost = 101 }, network.ErrOutOfRange},
		{"capacitated", func(p *params.Netgen) { p.Capacitated = -3 }, network.ErrOutOfRange},
		{"negative cost", func(p *params.Netgen) { p.MinCost = -1 }, network.ErrOutOfRange},
		{"unknown rng", func(p *params.Netgen) { p.RNG = rng.Kind(4) }, network.ErrOutOfRange},
		{"terminals exceed nodes", func(p *params.Netgen) { p.Sources, p.Sinks = 6, 5 }, network.ErrInconsistent},
		{"tsources exceed sources", func(p *params.Netgen) { p.TSources = 4 }, network.ErrInconsistent},
		{"tsinks exceed sinks", func(p *params.Netgen) { p.TSinks = 4 }, network.ErrInconsistent},
		{"density below nodes", func(p *params.Netgen) { p.Density = 9 }, network.ErrInconsistent},
		{"cost inverted", func(p *params.Netgen) { p.MinCost, p.MaxCost = 50, 40 }, network.ErrInconsistent},
		{"cap inverted", func(p *params.Netgen) { p.MinCap, p.MaxCap = 5, 4 }, network.ErrInconsistent},
		{"supply below sources", func(p *params.Netgen) { p.Supply = 2 }, network.ErrInconsistent},
		{"density unreachable", func(p *params.Netgen) { p.Density = 1000 }, network.ErrDensityUnachievable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := params.DefaultNetgen()
			tc.mut(&p)
			_, err := params.ValidateNetgen(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_ConfigurationUmbrella(t *testing.T) {
	p := params.DefaultNetgen()
	p.Nodes = -4
	_, err := params.ValidateNetgen(p)
	assert.ErrorIs(t, err, network.ErrConfiguration)

	p = params.DefaultNetgen()
	p.MinCost, p.MaxCost = 9, 1
	_, err = params.ValidateNetgen(p)
	assert.ErrorIs(t, err, network.ErrConfiguration)
	assert.NotErrorIs(t, err, network.ErrOutOfRange)
}

func TestAdmissiblePairs(t *testing.T) {
	// 7 tails (N-K) times 7 heads (N-S), minus the 4 pure transshipment nodes.
	p := params.DefaultNetgen()
	assert.Equal(t, int64(45), p.AdmissiblePairs())

	p.Density = 45
	_, err := params.ValidateNetgen(p)
	assert.NoError(t, err)
	p.Density = 46
	_, err = params.ValidateNetgen(p)
	assert.ErrorIs(t, err, network.ErrDensityUnachievable)

	// Transshipment terminals widen both sides.
	p.TSources, p.TSinks = 1, 1
	assert.Equal(t, int64(8*8-6), p.AdmissiblePairs())
}

func TestClassify(t *testing.T) {
	mf := params.DefaultNetgen()
	mf.MinCost, mf.MaxCost, mf.Supply = 1, 1, 0
	v, err := params.ValidateNetgen(mf)
	require.NoError(t, err, "max flow accepts supply below the source count")
	assert.Equal(t, network.MaxFlow, v.Problem)

	// Supply equal to the source count keeps the min-cost reading.
	mf.Supply = 3
	assert.Equal(t, network.MinCost, mf.Classify())

	asn := params.NewNetgen([]params.Option{params.WithSupply(5)},
		params.WithNodes(10), params.WithTerminals(5, 5), params.WithDensity(20))
	v, err = params.ValidateNetgen(asn)
	require.NoError(t, err)
	assert.Equal(t, network.Assignment, v.Problem)
	assert.Equal(t, int64(25), asn.AdmissiblePairs())

	asn.TSources, asn.TSinks = 1, 1
	assert.NotEqual(t, network.Assignment, asn.Classify())

	g := params.DefaultGrid()
	g.MinCost, g.MaxCost = 1, 1
	assert.Equal(t, network.MaxFlow, g.Classify())
	g.Supply = 1
	assert.Equal(t, network.MinCost, g.Classify())
}

func TestValidateGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*params.Grid)
		want error
	}{
		{"seed", func(g *params.Grid) { g.Seed = -2 }, rng.ErrBadSeed},
		{"rows", func(g *params.Grid) { g.Rows = 0 }, network.ErrOutOfRange},
		{"columns", func(g *params.Grid) { g.Columns = -1 }, network.ErrOutOfRange},
		{"too many cells", func(g *params.Grid) { g.Rows, g.Columns = 1<<13, 1<<13 }, network.ErrOutOfRange},
		{"negative supply", func(g *params.Grid) { g.Supply = -1 }, network.ErrOutOfRange},
		{"wrap two rows", func(g *params.Grid) { g.Rows, g.Wrap = 2, true }, network.ErrInconsistent},
		{"cost inverted", func(g *params.Grid) { g.MinCost = 100 }, network.ErrInconsistent},
		{"zero supply min cost", func(g *params.Grid) { g.Supply = 0 }, network.ErrInconsistent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := params.DefaultGrid()
			tc.mut(&g)
			_, err := params.ValidateGrid(g)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	g := params.DefaultGrid()
	g.Rows, g.Wrap = 3, true
	_, err := params.ValidateGrid(g)
	assert.NoError(t, err)
}

func ExampleValidateNetgen() {
	p := params.NewNetgen([]params.Option{params.WithSeed(42), params.WithSupply(100)},
		params.WithNodes(10), params.WithTerminals(2, 2), params.WithDensity(20))
	v, err := params.ValidateNetgen(p)
	if err != nil {
		panic(err)
	}
	fmt.Println(v.Problem.Token(), v.AdmissiblePairs())
	// Output: min 58
}
