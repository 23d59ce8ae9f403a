// Package netgen builds NETGEN instances: capacitated networks with
// sources, sinks and transshipment nodes whose skeleton guarantees that all
// supply can reach the sinks, padded with random filler arcs up to the
// requested density.
//
// The construction follows the 1989 NETGEN generator call for call, so a
// given seed reproduces the legacy instance when the legacy random source
// (rng.KindNetgen) is used. Two legacy defects are corrected: a source never
// feeds more sinks than exist, and the source supply used for the rounding
// remainder is taken before the sinks are charged.
//
// Node layout:
//
//	1 .. S                 sources; the last TSources also accept arcs
//	S+1 .. N-K             transshipment nodes
//	N-K+1 .. N             sinks; the first TSinks also emit arcs
//
// Generate never panics and never loops without bound: the filler limit
// redraw is capped by MaxLimitDraws. Skeleton arcs are mandatory, so an
// instance may carry a few more arcs than requested; fewer arcs than
// requested is an error unless AllowShortfall is set.
package netgen
