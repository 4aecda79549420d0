package board

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidPosition is returned when a caller requests an
// out-of-bounds (col, row) pair. It is never returned for holes —
// holes are in-bounds but simply absent from Board.tiles.
var ErrInvalidPosition = errors.New("board: position out of bounds")

// ErrTooManyHoles is returned by WithHoles when punching the
// requested holes would leave fewer than minOneFishTiles intact
// tiles.
var ErrTooManyHoles = errors.New("board: too many holes requested for minimum 1-fish tile count")

// Board is the hex-grid tile arena. Tiles reference each other by
// TileId, not by pointer (spec.md §9: "never a pointer graph"), so
// that removing a tile is a simple reciprocal id-nulling.
type Board struct {
	Rows  int
	Cols  int
	tiles map[TileId]*Tile
}

// TileId computes the dense identifier for a (col, row) pair on this
// board's canonical layout: col*rows + row.
func (b *Board) TileId(col, row int) (TileId, error) {
	if col < 0 || col >= b.Cols || row < 0 || row >= b.Rows {
		return 0, fmt.Errorf("%w: col=%d row=%d on %dx%d board", ErrInvalidPosition, col, row, b.Cols, b.Rows)
	}
	return TileId(col*b.Rows + row), nil
}

// TilePosition inverts TileId back to (col, row).
func (b *Board) TilePosition(id TileId) Position {
	return Position{Col: int(id) / b.Rows, Row: int(id) % b.Rows}
}

// Tile returns the tile at id, or (nil, false) if id is a hole or out
// of bounds.
func (b *Board) Tile(id TileId) (*Tile, bool) {
	t, ok := b.tiles[id]
	return t, ok
}

// NumTiles returns the number of non-hole tiles on the board.
func (b *Board) NumTiles() int {
	return len(b.tiles)
}

// AllTileIds returns every non-hole tile id, in ascending order.
func (b *Board) AllTileIds() []TileId {
	ids := make([]TileId, 0, len(b.tiles))
	for id := range b.tiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// WithNoHoles builds a board with every tile present and the same
// fish count, wiring each tile to every in-bounds neighbor under the
// staggered layout: for a tile at (col, row),
//
//	NE=(col+(row%2),   row-1)
//	NW=(col-((row+1)%2), row-1)
//	N =(col,            row-2)
//	S =(col,            row+2)
//	SE=(col+(row%2),   row+1)
//	SW=(col-((row+1)%2), row+1)
func WithNoHoles(rows, cols, fishPerTile int) *Board {
	b := &Board{Rows: rows, Cols: cols, tiles: make(map[TileId]*Tile, rows*cols)}
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			id := TileId(col*rows + row)
			b.tiles[id] = &Tile{Id: id, FishCount: fishPerTile}
		}
	}
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			b.linkNeighbors(col, row)
		}
	}
	return b
}

// WithHoles builds a board at 1 fish per tile, then removes the given
// holes (deduplicated). Fails with ErrTooManyHoles if doing so would
// leave fewer than minOneFishTiles tiles standing.
func WithHoles(rows, cols int, holes []Position, minOneFishTiles int) (*Board, error) {
	b := WithNoHoles(rows, cols, 1)

	seen := make(map[Position]bool, len(holes))
	deduped := make([]Position, 0, len(holes))
	for _, h := range holes {
		if !seen[h] {
			seen[h] = true
			deduped = append(deduped, h)
		}
	}

	if rows*cols-len(deduped) < minOneFishTiles {
		return nil, fmt.Errorf("%w: %dx%d board minus %d holes leaves fewer than %d tiles",
			ErrTooManyHoles, rows, cols, len(deduped), minOneFishTiles)
	}

	for _, h := range deduped {
		id, err := b.TileId(h.Col, h.Row)
		if err != nil {
			return nil, err
		}
		b.RemoveTile(id)
	}
	return b, nil
}

func (b *Board) linkNeighbors(col, row int) {
	id := TileId(col*b.Rows + row)
	t := b.tiles[id]
	isOddRow := row % 2
	isEvenRow := (row + 1) % 2

	links := [6]struct {
		dir      Direction
		col, row int
	}{
		{Northeast, col + isOddRow, row - 1},
		{Northwest, col - isEvenRow, row - 1},
		{North, col, row - 2},
		{South, col, row + 2},
		{Southeast, col + isOddRow, row + 1},
		{Southwest, col - isEvenRow, row + 1},
	}
	for _, l := range links {
		if l.col < 0 || l.col >= b.Cols || l.row < 0 || l.row >= b.Rows {
			continue
		}
		nid := TileId(l.col*b.Rows + l.row)
		if _, ok := b.tiles[nid]; ok {
			t.setNeighbor(l.dir, nid)
		}
	}
}

// Clone deep-copies the board: tiles are re-allocated, but the
// neighbor-id pointers within them (which are never mutated through,
// only replaced or nulled) are safely shared with the original.
func (b *Board) Clone() *Board {
	nb := &Board{Rows: b.Rows, Cols: b.Cols, tiles: make(map[TileId]*Tile, len(b.tiles))}
	for id, t := range b.tiles {
		nt := &Tile{Id: t.Id, FishCount: t.FishCount}
		nt.neighbors = t.neighbors
		nb.tiles[id] = nt
	}
	return nb
}

// RemoveTile deletes the tile (turning its position into a hole) and
// unlinks it reciprocally from every neighbor that pointed at it.
func (b *Board) RemoveTile(id TileId) {
	t, ok := b.tiles[id]
	if !ok {
		return
	}
	for _, d := range Directions {
		nid, ok := t.Neighbor(d)
		if !ok {
			continue
		}
		if n, ok := b.tiles[nid]; ok {
			n.clearNeighbor(d.Opposite())
		}
	}
	delete(b.tiles, id)
}

// AllReachableTilesInDirection walks T.D, T.D.D, ... until either the
// link is null or the next tile is in occupied, returning the tiles
// visited (excluding T).
func (b *Board) AllReachableTilesInDirection(from TileId, d Direction, occupied map[TileId]bool) []TileId {
	var result []TileId
	t, ok := b.tiles[from]
	if !ok {
		return result
	}
	current := t
	for {
		nid, ok := current.Neighbor(d)
		if !ok {
			break
		}
		next, ok := b.tiles[nid]
		if !ok {
			break
		}
		if occupied[nid] {
			break
		}
		result = append(result, nid)
		current = next
	}
	return result
}

// AllReachableTiles is the board's single movement primitive: the
// concatenation, across all six directions in Directions order, of
// AllReachableTilesInDirection, excluding T itself. If T is itself
// occupied, the result is empty — the penguin on T does not block
// itself when T is walked away from, but a penguin cannot move from a
// tile that (by construction of the caller) is not its own.
func (b *Board) AllReachableTiles(from TileId, occupied map[TileId]bool) []TileId {
	if occupied[from] {
		return nil
	}
	var result []TileId
	for _, d := range Directions {
		result = append(result, b.AllReachableTilesInDirection(from, d, occupied)...)
	}
	return result
}

// CanReach reports whether to is in the straight-line reachable set
// from from given occupied.
func (b *Board) CanReach(from, to TileId, occupied map[TileId]bool) bool {
	for _, id := range b.AllReachableTiles(from, occupied) {
		if id == to {
			return true
		}
	}
	return false
}
