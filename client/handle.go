package client

import (
	"context"
	"sync"

	"github.com/wricardo/fishtournament/game"
)

// Handle is the single owning reference to a Client shared between a
// Tournament Manager and the Referees it spawns across rounds
// (spec.md §9: "realise as an owning handle with interior mutation
// guarded by a lock; never duplicate the underlying transport"). Both
// sides hold the same *Handle; only one call is ever in flight at a
// time because the manager runs a given player in at most one game
// per round.
type Handle struct {
	mu     sync.Mutex
	client Client
	kicked bool
}

// NewHandle wraps c in a Handle.
func NewHandle(c Client) *Handle {
	return &Handle{client: c}
}

// Kicked reports whether this handle has been kicked. Once kicked,
// every call below becomes a no-op success: per spec.md §4.6, "future
// sends are no-ops" for a kicked client.
func (h *Handle) Kicked() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.kicked
}

// Kick marks the handle kicked. Idempotent.
func (h *Handle) Kick() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.kicked = true
}

func (h *Handle) TournamentStarting(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.kicked {
		return nil
	}
	return h.client.TournamentStarting(ctx)
}

func (h *Handle) TournamentEnding(ctx context.Context, won bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.kicked {
		return nil
	}
	return h.client.TournamentEnding(ctx, won)
}

func (h *Handle) InitializeGame(ctx context.Context, state *game.GameState, color game.PlayerColor) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.kicked {
		return nil
	}
	return h.client.InitializeGame(ctx, state, color)
}

func (h *Handle) GetPlacement(ctx context.Context, state *game.GameState) (game.Placement, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.kicked {
		return game.Placement{}, nil
	}
	return h.client.GetPlacement(ctx, state)
}

func (h *Handle) GetMove(ctx context.Context, tree *game.GameTree, sinceLastTurn []game.PlayerMove) (game.Move, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.kicked {
		return game.Move{}, nil
	}
	return h.client.GetMove(ctx, tree, sinceLastTurn)
}
