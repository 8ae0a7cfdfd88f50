package gridgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/unionfind/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid under Conn4.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	gg, err := gridgraph.NewGridGraph(grid, opts)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

//----------------------------------------------------------------------------//
// Index, Coordinate and ComponentOf Tests
//----------------------------------------------------------------------------//

// TestIndexCoordinate_RoundTrip checks row-major addressing on a 3×2 grid.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 0, 0}, {0, 0, 0}}, gridgraph.Conn4)
	require.NoError(t, err)

	assert.Equal(t, 5, gg.Index(2, 1))
	for idx := 0; idx < gg.Width*gg.Height; idx++ {
		x, y := gg.Coordinate(idx)
		assert.Equal(t, idx, gg.Index(x, y))
	}
}

// TestComponentOf verifies lookups for land, water and out-of-bounds cells.
//
// Grid:
//
//	1 1 0
//	0 0 1
func TestComponentOf(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 1, 0}, {0, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	k, err := gg.ComponentOf(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, k)

	k, err = gg.ComponentOf(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, k)

	_, err = gg.ComponentOf(2, 0)
	assert.ErrorIs(t, err, gridgraph.ErrWater)
	_, err = gg.ComponentOf(0, -1)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = gg.ComponentOf(3, 0)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// ReadGrid Tests
//----------------------------------------------------------------------------//

// TestReadGrid covers spaced cells, compact digit rows, comments and bad tokens.
func TestReadGrid(t *testing.T) {
	in := "# map\n1 0 2\n\n010\n 3 3 3 \n"
	grid, err := gridgraph.ReadGrid(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0, 2}, {0, 1, 0}, {3, 3, 3}}, grid)

	_, err = gridgraph.ReadGrid(strings.NewReader("1 x\n"))
	assert.Error(t, err)

	// Ragged rows are read as-is and rejected by NewGridGraph.
	grid, err = gridgraph.ReadGrid(strings.NewReader("1 1\n1\n"))
	require.NoError(t, err)
	_, err = gridgraph.From2D(grid, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

// TestComponentOf_MatchesComponents checks every land cell against ConnectedComponents,
// on a grid whose islands interleave in row-major order.
//
// Grid:
//
//	1 0 1 0 1
//	1 0 0 0 1
//	1 1 0 1 1
func TestComponentOf_MatchesComponents(t *testing.T) {
	grid := [][]int{
		{1, 0, 1, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 0, 1, 1},
	}
	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		gg, err := gridgraph.From2D(grid, conn)
		require.NoError(t, err)

		for want, comp := range gg.ConnectedComponents() {
			for _, idx := range comp {
				x, y := gg.Coordinate(idx)
				got, err := gg.ComponentOf(x, y)
				require.NoError(t, err)
				assert.Equal(t, want, got, "conn=%d cell (%d,%d)", conn, x, y)
			}
		}
	}
}

// TestNeighborOffsets checks the neighbor deltas for both connectivities.
func TestNeighborOffsets(t *testing.T) {
	gg4, err := gridgraph.From2D([][]int{{1}}, gridgraph.Conn4)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}, gg4.NeighborOffsets())

	gg8, err := gridgraph.From2D([][]int{{1}}, gridgraph.Conn8)
	require.NoError(t, err)
	offsets := gg8.NeighborOffsets()
	assert.Len(t, offsets, 8)
	assert.Contains(t, offsets, [2]int{1, 1})
	assert.Contains(t, offsets, [2]int{-1, -1})
	assert.NotContains(t, offsets, [2]int{0, 0})
}
