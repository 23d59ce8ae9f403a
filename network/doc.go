// Package network is the passive, in-memory record produced by the flowgen
// constructors (netgen, grid) and consumed by the DIMACS serializer.
//
// A Graph owns:
//
//   - nodes 1..N, each with a fixed Role (source, sink, transshipment) and a
//     signed supply (positive = supply, negative = demand);
//   - arcs (From, To, Lower, Upper, Cost) in generation order, some of them
//     flagged as skeleton arcs that on their own carry every unit of supply;
//   - the Problem classification (min-cost flow, max flow, assignment)
//     computed once by the parameter validator.
//
// Invariants enforced at insertion time:
//
//	From ≠ To                      (ErrSelfLoop)
//	1 ≤ From, To ≤ N               (ErrNodeRange)
//	0 ≤ Lower ≤ Upper              (ErrBadBounds)
//	multiplicity(From,To) ≤ bound  (ErrDuplicateArc, bound = DefaultDuplicateBound)
//
// The mutators (SetRole, AddSupply, AddArc) exist for constructors only. Once a
// constructor returns the Graph it is treated as immutable; accessors return
// copies so callers cannot alter the record behind the serializer's back.
//
// The package also hosts the error taxonomy shared by params, netgen and grid:
// ErrConfiguration (with ErrOutOfRange / ErrInconsistent), ErrInfeasible and
// ErrDensityUnachievable (with the *ShortfallError detail type).
//
// Concurrency: a Graph is not safe for concurrent mutation. Concurrent readers
// are fine once construction has finished.
package network
