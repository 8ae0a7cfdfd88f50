// Package gridgraph treats a 2D grid of cells as a graph and finds its
// connected “islands” with a disjoint-set forest.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold
//     by unioning adjacent land cells in a disjointset.DisjointSet.
//   - Counts islands and locates the island holding a given cell.
//
// Why:
//
//   - Game maps: contiguous land detection.
//   - Image analysis: connected-component labelling of binary masks.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d×α(W×H)), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - CountComponents:     same time, no per-component output.
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrWater: coordinate holds a water cell.
package gridgraph
