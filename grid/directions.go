package grid

import "github.com/katalvlaran/flowgen/params"

// Arc group names, in emission order.
const (
	GroupSource    = "source"
	GroupSink      = "sink"
	GroupEast      = "east"
	GroupWest      = "west"
	GroupSouth     = "south"
	GroupNorth     = "north"
	GroupSouthEast = "south-east"
	GroupNorthEast = "north-east"
	GroupNorthWest = "north-west"
	GroupSouthWest = "south-west"
)

// direction is one family of cell-to-cell arcs: the head sits at offset
// (dr, dc) from the tail.
type direction struct {
	group    string
	dr, dc   int
	reverse  bool // needs Reverse
	diagonal bool // needs Diagonal
}

var directions = []direction{
	{group: GroupEast, dr: 0, dc: 1},
	{group: GroupWest, dr: 0, dc: -1, reverse: true},
	{group: GroupSouth, dr: 1, dc: 0},
	{group: GroupNorth, dr: -1, dc: 0},
	{group: GroupSouthEast, dr: 1, dc: 1, diagonal: true},
	{group: GroupNorthEast, dr: -1, dc: 1, diagonal: true},
	{group: GroupNorthWest, dr: -1, dc: -1, reverse: true, diagonal: true},
	{group: GroupSouthWest, dr: 1, dc: -1, reverse: true, diagonal: true},
}

func (d direction) enabled(p params.Grid) bool {
	return (!d.reverse || p.Reverse) && (!d.diagonal || p.Diagonal)
}

// head returns the head cell for tail (r, c), wrapping rows when p.Wrap.
func (d direction) head(p params.Grid, r, c int) (int, int, bool) {
	hc := c + d.dc
	if hc < 0 || hc >= p.Columns {
		return 0, 0, false
	}
	hr := r + d.dr
	if p.Wrap {
		hr = (hr + p.Rows) % p.Rows
	} else if hr < 0 || hr >= p.Rows {
		return 0, 0, false
	}

	return hr, hc, true
}

// Groups returns the group names in emission order.
func Groups() []string {
	out := []string{GroupSource, GroupSink}
	for _, d := range directions {
		out = append(out, d.group)
	}

	return out
}
