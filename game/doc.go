// Package game implements the Fish game's state model: players,
// penguins, the board-backed GameState, the lazy GameTree used for
// move validation and search, and the GamePhase envelope that ties
// them together across a game's lifecycle.
//
// Core Types:
//
//   - GameState: the mutable heart of one in-progress game — board,
//     players keyed by PlayerId, turn order, and (once the game ends)
//     the winning players.
//   - GameTree: an immutable-per-node, lazily-expanded tree of
//     GameStates reachable by legal moves, used by both move
//     validation and the minimax search.
//   - GamePhase: the tagged envelope {Starting, Placing, Moving, Done}
//     that a Referee drives forward one action at a time.
//
// Usage:
//
//	ids := []game.PlayerId{1, 2}
//	state := game.NewGameState(board.WithNoHoles(3, 5, 3), ids)
//	if err := state.Place(game.Placement{Tile: 0}); err != nil { ... }
//
// Game Rules:
//
// Placement and movement alternate in strict turn order (with a
// skip-stuck rule during movement: a player with no legal move is
// skipped). A player's penguins vanish entirely, and their seat in
// the turn order disappears, the moment they are removed — whether
// by their own choice or by a referee's kick.
package game

// PenguinFactor is the constant a player's penguin count is derived
// from: a game with N players gives each player PenguinFactor-N
// penguins. Named here (rather than left as a
// magic 6) per the arithmetic in the original implementation's
// message-deserialization path.
const PenguinFactor = 6
