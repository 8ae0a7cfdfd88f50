package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/unionfind/gridgraph"
	"github.com/katalvlaran/unionfind/kruskal"
)

func newTable(out io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)

	return tw
}

// renderSets prints one row per component: its index, size and members.
func renderSets(out io.Writer, sets [][]int) {
	tw := newTable(out)
	tw.AppendHeader(table.Row{"#", "Size", "Members"})
	for i, set := range sets {
		tw.AppendRow(table.Row{i, len(set), joinInts(set)})
	}
	tw.Render()
}

// renderIslands prints one row per island with its cells as (x,y) coordinates.
func renderIslands(out io.Writer, gg *gridgraph.GridGraph, comps [][]int) {
	tw := newTable(out)
	tw.AppendHeader(table.Row{"#", "Cells", "Coordinates"})
	for i, comp := range comps {
		coords := make([]string, len(comp))
		for j, idx := range comp {
			x, y := gg.Coordinate(idx)
			coords[j] = fmt.Sprintf("(%d,%d)", x, y)
		}
		tw.AppendRow(table.Row{i, len(comp), strings.Join(coords, " ")})
	}
	tw.Render()
}

// renderEdges prints the chosen edges and their total weight in the footer.
func renderEdges(out io.Writer, edges []kruskal.Edge, total int64) {
	tw := newTable(out)
	tw.AppendHeader(table.Row{"From", "To", "Weight"})
	for _, e := range edges {
		tw.AppendRow(table.Row{e.From, e.To, e.Weight})
	}
	tw.AppendFooter(table.Row{"", "Total", total})
	tw.Render()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, " ")
}
