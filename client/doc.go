// Package client defines the uniform request/response contract a
// Referee and Tournament Manager use to address a participant,
// whether it runs in-process (a Strategy, wrapped directly) or over a
// remote transport (a whitespace-delimited JSON stream, see the wire
// subpackage). Both implementations satisfy the same Client
// interface, so callers never know which kind they're holding.
package client

import (
	"context"

	"github.com/wricardo/fishtournament/game"
)

// Client is the capability contract every participant — in-process or
// remote — must satisfy (spec.md §4.5). tournament_ending/end are a
// single per-tournament notification, not a per-game one: the wire
// protocol (§6) never tells a client when one of its games, as
// opposed to the whole tournament, has ended. Every method can fail:
// a remote client can time out, disconnect, or reply with garbage,
// and any such failure is reported the same way (the caller kicks).
// An in-process Client never fails these calls except by programmer
// bug, but still returns the same error type so callers need not care
// which kind they're holding.
type Client interface {
	// TournamentStarting tells the client the tournament is about to
	// begin.
	TournamentStarting(ctx context.Context) error
	// TournamentEnding tells the client the tournament is over and
	// whether it won.
	TournamentEnding(ctx context.Context, won bool) error
	// InitializeGame tells the client which game it has been placed
	// into (it derives its opponents' colors from state itself) and
	// its assigned color.
	InitializeGame(ctx context.Context, state *game.GameState, color game.PlayerColor) error
	// GetPlacement asks the client for its next placement given the
	// current state.
	GetPlacement(ctx context.Context, state *game.GameState) (game.Placement, error)
	// GetMove asks the client for its next move given the current
	// tree (whose root state is the game as the client last observed
	// it) and the moves made since this client's own last turn.
	GetMove(ctx context.Context, tree *game.GameTree, sinceLastTurn []game.PlayerMove) (game.Move, error)
}
