package params

import "math"

// Declared maxima.
const (
	// MaxNodes bounds the node count of any instance.
	MaxNodes = 1 << 24
	// MaxArcs bounds the requested NETGEN density.
	MaxArcs = 1 << 26
	// MaxValue bounds costs, capacities and supplies (a 32-bit C long).
	MaxValue int64 = math.MaxInt32
	// MaxPercent is the upper bound of HiCost and Capacitated.
	MaxPercent = 100
	// MinWrapRows is the smallest row count for which wrapping adds no
	// duplicate or self-loop arcs.
	MinWrapRows = 3
)

// NETGEN defaults (seed nodes sources sinks density mincost maxcost supply
// tsources tsinks hicost capacitated mincap maxcap).
const (
	DefaultSeed        int64 = 1
	DefaultNodes             = 10
	DefaultSources           = 3
	DefaultSinks             = 3
	DefaultDensity           = 30
	DefaultMinCost     int64 = 10
	DefaultMaxCost     int64 = 99
	DefaultSupply      int64 = 1000
	DefaultHiCost            = 0
	DefaultCapacitated       = 100
	DefaultMinCap      int64 = 100
	DefaultMaxCap      int64 = 1000
)

// Grid defaults.
const (
	DefaultRows     = 3
	DefaultColumns  = 4
	DefaultDiagonal = true
	DefaultReverse  = true
	DefaultWrap     = false
)

// Method names used as error prefixes.
const (
	methodNetgen = "ValidateNetgen"
	methodGrid   = "ValidateGrid"
)
