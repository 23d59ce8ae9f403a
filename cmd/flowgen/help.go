package main

const usageText = `usage: flowgen [-v] [-q] [-f FILE] [-n COUNT] [-j JOBS] [-check] [-allow-short] [-verbose] netgen|grid [ARGS ...]

Generates random network flow problem instances in DIMACS format.

Methods:
    netgen  -- the NETGEN generator (Klingman, Napier and Stutz 1974)
    grid    -- a grid network with a master source and a master sink

Long forms: --version (-v), --quiet (-q), --file FILE (-f FILE).

For the positional arguments of a method use:
    flowgen netgen help
    flowgen grid help

Flags:
`

const netgenHelp = `usage: flowgen [flags] netgen [ARGS ...]

Positional arguments, in order (all integer, trailing ones may be omitted):
    seed        -- random number generator seed (default 1; -1 for random)
    nodes       -- number of nodes (default 10)
    sources     -- number of source nodes (default 3)
    sinks       -- number of sink nodes (default 3)
    density     -- number of arcs (default 30)
    mincost     -- minimum arc cost (default 10)
    maxcost     -- maximum arc cost (default 99)
    supply      -- total supply (default 1000)
    tsources    -- number of transshipment sources (default 0)
    tsinks      -- number of transshipment sinks (default 0)
    hicost      -- percent of skeleton arcs (0-100) given maximum cost (default 0)
    capacitated -- percent of arcs (0-100) that are capacitated (default 100)
    mincap      -- minimum arc capacity (default 100)
    maxcap      -- maximum arc capacity (default 1000)
    rng         -- random source (default 0):
                     0: the NETGEN Park-Miller generator
                     1: the Go standard library generator

The instance is an assignment problem when sources + sinks = nodes, sources =
sinks = supply and there are no transshipment sources or sinks. It is a
maximum flow problem when mincost = maxcost = 1 and it is not an assignment
problem. Otherwise it is a minimum cost flow problem.

Skeleton arcs run from every source through a chain of transshipment nodes to
its sinks. They carry the whole supply, so every instance is feasible; hicost
percent of them get the maximum cost to keep solutions off the skeleton.

When density exceeds what the random head selection can place, generation
fails with exit code 3 unless -allow-short is given.
`

const gridHelp = `usage: flowgen [flags] grid [ARGS ...]

Positional arguments, in order (all integer, trailing ones may be omitted):
    seed        -- random number generator seed (default 1; -1 for random)
    rows        -- number of grid rows (default 3)
    columns     -- number of grid columns (default 4)
    diagonal    -- include diagonal arcs, 0 or 1 (default 1)
    reverse     -- include westward arcs, 0 or 1 (default 1)
    wrap        -- treat the first and last rows as adjacent, 0 or 1 (default 0)
    mincost     -- minimum arc cost (default 10)
    maxcost     -- maximum arc cost (default 99)
    supply      -- total supply at the master source (default 1000)
    hicost      -- percent of skeleton arcs (0-100) given maximum cost (default 0)
    capacitated -- percent of arcs (0-100) that are capacitated (default 100)
    mincap      -- minimum arc capacity (default 100)
    maxcap      -- maximum arc capacity (default 1000)
    rng         -- random source, as for netgen (default 0)

The master source sits west of the grid and feeds every row; the master sink
sits east and drains every row. Cells feed their east, north and south
neighbours, plus the western and diagonal directions when enabled.

Arcs are listed in groups separated by comments: master source, master sink,
east, west, south, north, south-east, north-east, north-west, south-west. The
first row's east arcs and its master arcs form the skeleton.

The instance is a maximum flow problem when mincost = maxcost = 1 and supply
is not 1. Assignment problems cannot be generated.
`
