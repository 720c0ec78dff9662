// Package gridgraph treats a rectangular 2D grid of cells as a graph and
// labels its connected regions.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are "occupied"; the rest are free.
//   - ConnectedComponents groups occupied cells into regions by BFS.
//   - ComponentLabels paints every cell with its region index (or -1).
//
// Why:
//
//   - Disk maps: count contiguous regions of used squares.
//   - Game maps: contiguous land detection.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)  (d = 4 or 8 neighbors).
//   - ComponentLabels:     O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered occupied.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
