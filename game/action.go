package game

import "github.com/wricardo/fishtournament/board"

// Move is a penguin slide from one tile to another. Fields are named
// From/To (not PenguinId/TileId): original_source/.../common/action.rs
// is a stale early-milestone snapshot using the latter shape, but
// every functional call site in the same source tree (referee.rs,
// strategy.rs, message.rs, ai_client.rs, remote_client.rs) as well as
// spec.md §3 use From/To, which this type follows.
type Move struct {
	From board.TileId
	To   board.TileId
}

// Placement is a single penguin placement during the placing phase.
type Placement struct {
	Tile board.TileId
}

// PlayerMove is a Move annotated with the mover's color, kept in a
// Referee's move history.
type PlayerMove struct {
	Move
	Color PlayerColor
}
