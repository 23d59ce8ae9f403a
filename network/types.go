package network

// NodeID is a 1-based node identifier, contiguous in [1, N].
type NodeID int

// Role is the partition a node belongs to. It is fixed by the constructor and
// independent of the supply value, so a max-flow instance with zero total
// supply still knows its sources and sinks.
type Role uint8

const (
	// Transshipment nodes neither supply nor demand flow.
	Transshipment Role = iota
	// Source nodes carry positive supply (min-cost) or the "s" flag (max flow).
	Source
	// Sink nodes carry negative supply (min-cost) or the "t" flag (max flow).
	Sink
)

func (r Role) String() string {
	switch r {
	case Source:
		return "source"
	case Sink:
		return "sink"
	default:
		return "transshipment"
	}
}

// Problem is the tagged instance classification computed by the validator.
type Problem uint8

const (
	// MinCost is the default minimum-cost flow instance ("p min").
	MinCost Problem = iota
	// MaxFlow is the unit-cost variant serialized as "p max".
	MaxFlow
	// Assignment is the NETGEN assignment variant serialized as "p asn".
	Assignment
)

// Token returns the DIMACS problem-line keyword.
func (p Problem) Token() string {
	switch p {
	case MaxFlow:
		return "max"
	case Assignment:
		return "asn"
	default:
		return "min"
	}
}

// String returns a human readable name used in header comments.
func (p Problem) String() string {
	switch p {
	case MaxFlow:
		return "Maximum flow"
	case Assignment:
		return "Assignment"
	default:
		return "Minimum cost flow"
	}
}

// Node is one vertex of the generated network.
type Node struct {
	ID     NodeID
	Role   Role
	Supply int64
}

// Arc is a directed, capacitated, costed arc.
//
// Group names the arc family it was emitted in (e.g. "east" for grid row
// arcs). An empty Group means the constructor does not separate families.
type Arc struct {
	From, To NodeID
	Lower    int64
	Upper    int64
	Cost     int64
	Skeleton bool
	Group    string
}

// DefaultDuplicateBound is the number of parallel arcs allowed per ordered
// pair. Both constructors produce simple digraphs.
const DefaultDuplicateBound = 1

type pairKey struct{ from, to NodeID }
