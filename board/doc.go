// Package board implements the hex-grid board and its straight-line
// reachability primitive for the Fish tournament runtime.
//
// Core Types:
//
//   - TileId: opaque, dense identifier for a tile. Encodes position as
//     col*rows + row on the canonical grid; callers outside this
//     package must treat it as opaque.
//   - Tile: a single hex cell with a fish count and up to six
//     neighbors (North, South, Northeast, Northwest, Southeast,
//     Southwest — East/West are never neighbors on a pointy-top,
//     staggered-column hex grid).
//   - Board: the tile arena. Tiles reference each other by TileId, not
//     by pointer, so that removing a tile is a simple reciprocal
//     id-nulling rather than a graph surgery.
//
// Usage:
//
//	b := board.WithNoHoles(3, 5, 3)
//	reachable := b.AllReachableTiles(board.TileId(0), nil)
//
// Game Rules:
//
// A penguin on tile T may move to any tile reachable from T in a
// straight line, stopping just short of a hole or an occupied tile.
// Removing a tile (e.g. because a penguin vacated it during a move)
// nulls every neighbor link that pointed at it, on both sides.
package board
