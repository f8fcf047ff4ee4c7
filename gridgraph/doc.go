// Package gridgraph treats a 2D grid of cells as the state space of a
// pathfinding problem consumed by the gridsearch strategies.
//
// What:
//
//   - Grid wraps a rectangular [][]int of Free (0), Wall (1) and Zone (2) cells.
//   - PathFinding implements core.Problem[Coord]: successors under Conn4
//     (N, S, W, E) or Conn8 (adds NE, NW, SE, SW), every move costing 1.
//   - Diesel movers are kept out of restricted zones; Electric movers are not.
//   - Terrain queries (ObstacleDensity, DeadEnd, Deviation) feed the
//     table-driven IDA* variant.
//   - Regions/Connected label reachable areas independently of any search.
//   - Maps load from ASCII art (ParseASCII) or the JSON map document (MapDoc).
//
// Coordinates:
//
//	X grows east and Y grows north: N = (x, y+1), S = (x, y-1),
//	E = (x+1, y), W = (x-1, y). values[y][x] holds the cell at (x, y).
//
// Complexity:
//
//   - Successors:   O(d), d = 4 or 8.
//   - Regions:      O(W×H×d), Memory: O(W×H).
//   - NewGrid:      O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellValue: unsupported cell value or ASCII glyph.
//   - ErrOutOfBounds: start, goal or document cell outside the grid.
//   - ErrBlockedCell: start or goal not traversable for the mover.
//   - ErrUnknownMover, ErrUnknownAction, ErrMissingMarker.
package gridgraph
