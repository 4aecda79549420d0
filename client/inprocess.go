package client

import (
	"context"

	"github.com/wricardo/fishtournament/game"
	"github.com/wricardo/fishtournament/strategy"
)

// InProcess wraps a strategy.Strategy as a Client that never fails:
// every call resolves immediately against the given state/tree. Per
// server/ai_client.rs, GetMove builds a brand new GameTree from the
// gamestate it is handed on every call rather than reusing one across
// turns — an in-process agent has no transport-level state to keep
// in sync, so there is nothing to gain by caching the tree, and doing
// so would risk searching a stale position if the caller passed a
// tree rooted somewhere unexpected.
type InProcess struct {
	Strategy strategy.Strategy
}

// NewInProcess wraps s as an in-process Client.
func NewInProcess(s strategy.Strategy) *InProcess {
	return &InProcess{Strategy: s}
}

func (c *InProcess) TournamentStarting(ctx context.Context) error {
	return nil
}

func (c *InProcess) TournamentEnding(ctx context.Context, won bool) error {
	return nil
}

func (c *InProcess) InitializeGame(ctx context.Context, state *game.GameState, color game.PlayerColor) error {
	return nil
}

func (c *InProcess) GetPlacement(ctx context.Context, state *game.GameState) (game.Placement, error) {
	return c.Strategy.FindPlacement(state), nil
}

// GetMove ignores the tree it is handed and rebuilds its own rooted
// at tree.State(), matching server/ai_client.rs's get_move.
func (c *InProcess) GetMove(ctx context.Context, tree *game.GameTree, sinceLastTurn []game.PlayerMove) (game.Move, error) {
	fresh := game.NewGameTree(tree.State())
	return c.Strategy.FindMove(fresh), nil
}
