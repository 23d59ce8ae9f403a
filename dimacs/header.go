package dimacs

import (
	"fmt"

	"github.com/katalvlaran/flowgen/params"
)

// field is one "label: value" row of a parameter block; depth 1 rows sit
// under a "-" group row.
type field struct {
	depth int
	label string
	value string
}

func num[T ~int | ~int64](v T) string { return fmt.Sprintf("%d", v) }

func pct(v int) string { return fmt.Sprintf("%d%%", v) }

func flag(on bool) string {
	if on {
		return "yes"
	}
	return "no"
}

// render lays the fields out in the legacy column format.
func render(title string, fields []field) []string {
	lines := []string{title, " Problem input parameters", " ---------------------------"}
	for _, f := range fields {
		if f.value == "" {
			lines = append(lines, fmt.Sprintf("   %s -", f.label))
			continue
		}
		indent := "   "
		width := 22
		if f.depth > 0 {
			indent = "     "
			width = 20
		}
		lines = append(lines, fmt.Sprintf("%s%-*s%s", indent, width, f.label+":", f.value))
	}

	return lines
}

// NetgenHeader returns the parameter block of a NETGEN instance.
func NetgenHeader(p params.ValidNetgen) []string {
	return render("NETGEN flow network generator", []field{
		{0, "Random seed", num(p.Seed)},
		{0, "Number of nodes", num(p.Nodes)},
		{0, "Source nodes", num(p.Sources)},
		{0, "Sink nodes", num(p.Sinks)},
		{0, "Number of arcs", num(p.Density)},
		{0, "Minimum arc cost", num(p.MinCost)},
		{0, "Maximum arc cost", num(p.MaxCost)},
		{0, "Total supply", num(p.Supply)},
		{0, "Transshipment", ""},
		{1, "Sources", num(p.TSources)},
		{1, "Sinks", num(p.TSinks)},
		{0, "Skeleton arcs", ""},
		{1, "With max cost", pct(p.HiCost)},
		{1, "Capacitated", pct(p.Capacitated)},
		{0, "Minimum arc capacity", num(p.MinCap)},
		{0, "Maximum arc capacity", num(p.MaxCap)},
		{0, "Random generator", p.RNG.String()},
	})
}

// GridHeader returns the parameter block of a grid instance.
func GridHeader(p params.ValidGrid) []string {
	return render("Grid flow network generator", []field{
		{0, "Random seed", num(p.Seed)},
		{0, "Grid rows", num(p.Rows)},
		{0, "Grid columns", num(p.Columns)},
		{0, "Number of nodes", num(p.Nodes())},
		{0, "Diagonal arcs", flag(p.Diagonal)},
		{0, "Reverse arcs", flag(p.Reverse)},
		{0, "Wrapped rows", flag(p.Wrap)},
		{0, "Minimum arc cost", num(p.MinCost)},
		{0, "Maximum arc cost", num(p.MaxCost)},
		{0, "Total supply", num(p.Supply)},
		{0, "Skeleton arcs", ""},
		{1, "With max cost", pct(p.HiCost)},
		{1, "Capacitated", pct(p.Capacitated)},
		{0, "Minimum arc capacity", num(p.MinCap)},
		{0, "Maximum arc capacity", num(p.MaxCap)},
		{0, "Random generator", p.RNG.String()},
	})
}
