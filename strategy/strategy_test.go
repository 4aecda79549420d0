package strategy

import (
	"testing"

	"github.com/wricardo/fishtournament/board"
	"github.com/wricardo/fishtournament/game"
)

func placeAllZigZag(t *testing.T, state *game.GameState) {
	t.Helper()
	z := ZigZag{}
	for !state.AllPenguinsPlaced() {
		p := z.FindPlacement(state)
		if err := state.Place(p); err != nil {
			t.Fatalf("zigzag placement failed: %v", err)
		}
	}
}

func TestZigZagSkipsHole(t *testing.T) {
	b, err := board.WithHoles(3, 4, []board.Position{{Col: 0, Row: 0}}, 1)
	if err != nil {
		t.Fatalf("WithHoles: %v", err)
	}
	state := game.NewGameState(b, []game.PlayerId{1, 2})

	p := ZigZag{}.FindPlacement(state)
	want, err := b.TileId(1, 0)
	if err != nil {
		t.Fatalf("TileId: %v", err)
	}
	if p.Tile != want {
		t.Fatalf("expected zigzag to skip the hole at (0,0) and place at tile %d, got %d", want, p.Tile)
	}
}

// Scenario B (spec.md §8): default 3x5 board, 3 fish/tile, 2 players,
// both use zig-zag placement for all 4 penguins each. First move by
// player 1: penguin at (0,0) -> (0,2) (lowest From, lowest To among
// equal-value candidates).
func TestZigZagMinMaxFirstMove_ScenarioB(t *testing.T) {
	b := board.WithNoHoles(3, 5, 3)
	state := game.NewGameState(b, []game.PlayerId{1, 2})
	placeAllZigZag(t, state)

	tree := game.NewGameTree(state)
	if tree.IsEnd() {
		t.Fatalf("expected legal moves to exist after placement")
	}

	move := ZigZagMinMax{Lookahead: 2}.FindMove(tree)

	wantFrom, _ := b.TileId(0, 0)
	wantTo, _ := b.TileId(0, 2)
	if move.From != wantFrom || move.To != wantTo {
		t.Fatalf("first move = %d->%d, want %d->%d", move.From, move.To, wantFrom, wantTo)
	}
}

// Scenario E (spec.md §8): 2x4, 1-fish board, 8 total penguin slots
// across 2 players exactly fill the board, so nobody can move and the
// game is over the instant placement finishes.
func TestFindMinMaxMovePanicsOnFinishedGame(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when searching an already-over tree")
		}
	}()
	b := board.WithNoHoles(2, 4, 1)
	state := game.NewGameState(b, []game.PlayerId{1, 2})
	placeAllZigZag(t, state)

	tree := game.NewGameTree(state)
	if !tree.IsEnd() {
		t.Fatalf("expected a fully-occupied board to end the game immediately")
	}
	FindMinMaxMove(tree, 2)
}
