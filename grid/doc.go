// Package grid builds lattice networks: an R×C grid of transshipment nodes
// fed by a master source on the west side and drained by a master sink on
// the east side.
//
// Node numbering:
//
//	1                 master source, arcs into every cell of column 0
//	2 + r·C + c       cell (r, c), row-major
//	R·C + 2           master sink, arcs from every cell of column C-1
//
// Cells are joined east and, when Reverse is set, west; south and north
// arcs are always present (for more than one row); Diagonal adds south-east
// and north-east arcs, plus north-west and south-west with Reverse. With
// Wrap the rows are cyclic, which needs at least three rows to stay simple.
//
// Without Reverse every arc leads to the same or a later column.
package grid
