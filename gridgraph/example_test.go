// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/unionfind/gridgraph"
)

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous “islands” of non-zero cells in a 2D grid.
// Scenario:
//
//	1 1 0 0
//	0 1 0 1
//	1 0 0 1
//
//   - Conn4 yields three islands; the lone cell (0,2) only touches (1,1) diagonally.
//   - Conn8 merges (0,2) into the first island.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{1, 1, 0, 0},
		{0, 1, 0, 1},
		{1, 0, 0, 1},
	}
	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		gg, _ := gridgraph.From2D(grid, conn)
		comps := gg.ConnectedComponents()
		fmt.Println("components:", len(comps))
		for i, comp := range comps {
			fmt.Printf("component %d:", i)
			for _, idx := range comp {
				x, y := gg.Coordinate(idx)
				fmt.Printf(" (%d,%d)", x, y)
			}
			fmt.Println()
		}
	}

	// Output:
	// components: 3
	// component 0: (0,0) (1,0) (1,1)
	// component 1: (3,1) (3,2)
	// component 2: (0,2)
	// components: 2
	// component 0: (0,0) (1,0) (1,1) (0,2)
	// component 1: (3,1) (3,2)
}
