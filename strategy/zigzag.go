package strategy

import "github.com/wricardo/fishtournament/game"

// ZigZag places on the first existing, unoccupied tile scanning rows
// top-to-bottom and, within each row, columns left-to-right.
type ZigZag struct{}

// FindPlacement implements Strategy. It panics if every tile is
// occupied or a hole — a caller invariant (spec.md §4.4): the
// placement phase guarantees a free tile exists whenever this is
// called.
func (ZigZag) FindPlacement(state *game.GameState) game.Placement {
	occupied := state.OccupiedTiles()
	for row := 0; row < state.Board.Rows; row++ {
		for col := 0; col < state.Board.Cols; col++ {
			id, err := state.Board.TileId(col, row)
			if err != nil {
				continue
			}
			if _, ok := state.Board.Tile(id); !ok {
				continue
			}
			if occupied[id] {
				continue
			}
			return game.Placement{Tile: id}
		}
	}
	panic("strategy: zigzag found no free tile to place on")
}

// FindMove panics: ZigZag only implements placement. Use ZigZagMinMax
// (or any Strategy pairing ZigZag placement with a move strategy) for
// a complete Strategy.
func (ZigZag) FindMove(tree *game.GameTree) game.Move {
	panic("strategy: ZigZag does not implement move selection")
}
