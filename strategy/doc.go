// Package strategy implements the Strategy contract: a pure function
// from game state (or tree) to a Placement or Move. Two strategies
// are provided: ZigZag (deterministic placement scan) and MinMax
// (maximin search over the game tree).
//
// Usage:
//
//	var s strategy.Strategy = strategy.ZigZagMinMax{Lookahead: 2}
//	placement := s.FindPlacement(state)
//	move := s.FindMove(tree)
package strategy

import (
	"github.com/wricardo/fishtournament/game"
)

// Strategy is the pure decision function a Client delegates to.
// Built-in strategy internals are out of scope per spec.md §1; only
// this contract matters to callers.
type Strategy interface {
	FindPlacement(state *game.GameState) game.Placement
	FindMove(tree *game.GameTree) game.Move
}
