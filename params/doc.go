// Package params holds the immutable generation parameter records for the
// NETGEN and grid constructors, their functional options and the parameter
// validator.
//
// Records are plain values with documented defaults (DefaultNetgen,
// DefaultGrid). Options resolve in order on top of those defaults and later
// options override earlier ones. Option constructors panic only on programmer
// error (e.g. a percentage outside [0,100]); everything else is left to the
// validator.
//
// Validation is a pure function returning either a ValidNetgen / ValidGrid
// (the record plus its Problem classification) or a classified error:
//
//	network.ErrOutOfRange          a single value outside its domain
//	network.ErrInconsistent        values contradicting each other
//	network.ErrDensityUnachievable arcs requested > admissible ordered pairs
//	rng.ErrBadSeed                 seed outside the generator domain
//
// Constructors accept only validated records, so the classification is
// computed once and threaded through construction and serialization.
//
// Min/max pairs are rejected when inverted, never swapped.
package params
