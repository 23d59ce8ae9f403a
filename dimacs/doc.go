// Package dimacs serializes generated networks in the DIMACS network-flow
// text format.
//
// Layout, one record per line:
//
//	c <comment>                 header block, problem banner, arc group labels
//	p min|max|asn NODES ARCS    problem line
//	n ID SUPPLY                 min-cost: every node with nonzero supply
//	n ID s | n ID t             max flow: sources and sinks, by role
//	n ID                        assignment: sources
//	a SRC DST LOW CAP COST      min-cost arc
//	a SRC DST CAP               max-flow arc
//	a SRC DST COST              assignment arc
//
// The problem keyword comes from the classification stored on the graph, so
// the same network always renders the same way. WithQuiet drops every
// comment line.
package dimacs
