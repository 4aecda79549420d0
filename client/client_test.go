package client

import (
	"context"
	"testing"

	"github.com/wricardo/fishtournament/board"
	"github.com/wricardo/fishtournament/game"
	"github.com/wricardo/fishtournament/strategy"
)

func TestInProcessGetPlacementUsesStrategy(t *testing.T) {
	b := board.WithNoHoles(3, 5, 3)
	state := game.NewGameState(b, []game.PlayerId{1, 2})
	c := NewInProcess(strategy.ZigZag{})

	p, err := c.GetPlacement(context.Background(), state)
	if err != nil {
		t.Fatalf("GetPlacement: %v", err)
	}
	want, _ := b.TileId(0, 0)
	if p.Tile != want {
		t.Fatalf("expected zigzag's first placement at %d, got %d", want, p.Tile)
	}
}

func TestInProcessGetMoveRebuildsTree(t *testing.T) {
	b := board.WithNoHoles(3, 5, 3)
	state := game.NewGameState(b, []game.PlayerId{1, 2})
	z := strategy.ZigZag{}
	for !state.AllPenguinsPlaced() {
		if err := state.Place(z.FindPlacement(state)); err != nil {
			t.Fatalf("Place: %v", err)
		}
	}
	tree := game.NewGameTree(state)

	c := NewInProcess(strategy.NewZigZagMinMax())
	move, err := c.GetMove(context.Background(), tree, nil)
	if err != nil {
		t.Fatalf("GetMove: %v", err)
	}
	wantFrom, _ := b.TileId(0, 0)
	wantTo, _ := b.TileId(0, 2)
	if move.From != wantFrom || move.To != wantTo {
		t.Fatalf("move = %d->%d, want %d->%d", move.From, move.To, wantFrom, wantTo)
	}
}

type countingClient struct {
	calls int
}

func (c *countingClient) TournamentStarting(ctx context.Context) error { c.calls++; return nil }
func (c *countingClient) TournamentEnding(ctx context.Context, won bool) error {
	c.calls++
	return nil
}
func (c *countingClient) InitializeGame(ctx context.Context, state *game.GameState, color game.PlayerColor) error {
	c.calls++
	return nil
}
func (c *countingClient) GetPlacement(ctx context.Context, state *game.GameState) (game.Placement, error) {
	c.calls++
	return game.Placement{}, nil
}
func (c *countingClient) GetMove(ctx context.Context, tree *game.GameTree, since []game.PlayerMove) (game.Move, error) {
	c.calls++
	return game.Move{}, nil
}

func TestHandleNoOpsAfterKick(t *testing.T) {
	inner := &countingClient{}
	h := NewHandle(inner)

	if err := h.TournamentStarting(context.Background()); err != nil {
		t.Fatalf("TournamentStarting: %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 call before kick, got %d", inner.calls)
	}

	h.Kick()
	if !h.Kicked() {
		t.Fatalf("expected Kicked() true after Kick()")
	}
	if err := h.TournamentStarting(context.Background()); err != nil {
		t.Fatalf("TournamentStarting after kick should no-op without error: %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected no further calls after kick, got %d total", inner.calls)
	}
}
