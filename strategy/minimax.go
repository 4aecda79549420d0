package strategy

import (
	"github.com/wricardo/fishtournament/board"
	"github.com/wricardo/fishtournament/game"
)

// ZigZagMinMax pairs ZigZag placement with a maximin move search
// truncated to Lookahead rounds (a round being a full cycle back to
// the searching player's own turn). This is the default strategy
// used by an in-process client (server/ai_client.rs's default of
// lookahead=2).
type ZigZagMinMax struct {
	Lookahead int
}

// NewZigZagMinMax returns the default-tuned strategy (lookahead 2).
func NewZigZagMinMax() ZigZagMinMax {
	return ZigZagMinMax{Lookahead: 2}
}

// FindPlacement implements Strategy via ZigZag.
func (z ZigZagMinMax) FindPlacement(state *game.GameState) game.Placement {
	return ZigZag{}.FindPlacement(state)
}

// FindMove implements Strategy via a bounded maximin search rooted at
// tree (whose CurrentTurn is the searching player).
func (z ZigZagMinMax) FindMove(tree *game.GameTree) game.Move {
	return FindMinMaxMove(tree, z.Lookahead)
}

type cacheEntry struct {
	score   int
	move    game.Move
	hasMove bool
}

// FindMinMaxMove runs the maximin search described in spec.md §4.4,
// rooted at tree. The searching player is tree.State().CurrentTurn at
// the root. Panics if tree is already over — callers must not ask for
// a move in a finished game (this mirrors server/strategy.rs's
// find_minmax_move, which expects an already-checked-not-over tree).
func FindMinMaxMove(tree *game.GameTree, lookahead int) game.Move {
	player := tree.State().CurrentTurn
	cache := make(map[uint64]cacheEntry)
	_, move := findBestScoreAndMove(tree, player, lookahead, cache)
	if move == nil {
		panic("strategy: FindMinMaxMove called on an already-over game")
	}
	return *move
}

func findBestScoreAndMove(tree *game.GameTree, player game.PlayerId, lookahead int, cache map[uint64]cacheEntry) (int, *game.Move) {
	state := tree.State()
	if tree.IsEnd() || lookahead == 0 {
		return state.PlayerScore(player), nil
	}

	h := state.Hash()
	if entry, ok := cache[h]; ok {
		if entry.hasMove {
			m := entry.move
			return entry.score, &m
		}
		return entry.score, nil
	}

	nextLookahead := lookahead
	if state.CurrentTurn == player {
		nextLookahead = lookahead - 1
	}

	scores := game.MapChildren(tree, func(child *game.GameTree) int {
		score, _ := findBestScoreAndMove(child, player, nextLookahead, cache)
		return score
	})

	type candidate struct {
		move  game.Move
		score int
	}
	candidates := make([]candidate, 0, len(scores))
	for m, score := range scores {
		candidates = append(candidates, candidate{move: m, score: score})
	}

	maximize := state.CurrentTurn == player
	best := candidates[0]
	for _, c := range candidates[1:] {
		betterScore := c.score > best.score
		if !maximize {
			betterScore = c.score < best.score
		}
		tie := c.score == best.score && tieBreakLess(c.move, best.move, state.Board)
		if betterScore || tie {
			best = c
		}
	}

	cache[h] = cacheEntry{score: best.score, move: best.move, hasMove: true}
	m := best.move
	return best.score, &m
}

// tieBreakLess implements spec.md §4.4's deterministic tie-break:
// prefer the move whose From tile has the lexicographically smaller
// (row, col), then whose To tile does.
func tieBreakLess(a, b game.Move, brd *board.Board) bool {
	fa, fb := brd.TilePosition(a.From), brd.TilePosition(b.From)
	if fa != fb {
		return fa.Less(fb)
	}
	ta, tb := brd.TilePosition(a.To), brd.TilePosition(b.To)
	return ta.Less(tb)
}
