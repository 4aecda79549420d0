package game

import (
	"reflect"
	"sort"
	"testing"

	"github.com/wricardo/fishtournament/board"
)

func TestGameTreeChildrenMatchLegalMoves(t *testing.T) {
	b := board.WithNoHoles(3, 3, 3)
	s := NewGameState(b, []PlayerId{1, 2})
	zigzagPlace(t, s)

	tree := NewGameTree(s)
	if tree.IsEnd() {
		t.Skip("no legal moves from this fully-placed position")
	}

	gotMoves := tree.Moves()
	wantMoves := s.LegalMovesForPlayer(s.CurrentTurn)

	sortMoves := func(ms []Move) {
		sort.Slice(ms, func(i, j int) bool {
			if ms[i].From != ms[j].From {
				return ms[i].From < ms[j].From
			}
			return ms[i].To < ms[j].To
		})
	}
	sortMoves(gotMoves)
	sortMoves(wantMoves)
	if !reflect.DeepEqual(gotMoves, wantMoves) {
		t.Fatalf("tree children = %v, want %v", gotMoves, wantMoves)
	}
}

func TestLazyTreeMemoizes(t *testing.T) {
	calls := 0
	lt := newLazyTree(func() *GameTree {
		calls++
		return &GameTree{isEnd: true}
	})
	lt.Force()
	lt.Force()
	if calls != 1 {
		t.Fatalf("expected compute to run once, ran %d times", calls)
	}
}

func TestGetAfterMoveRejectsIllegalMove(t *testing.T) {
	b := board.WithNoHoles(3, 3, 3)
	s := NewGameState(b, []PlayerId{1, 2})
	zigzagPlace(t, s)
	tree := NewGameTree(s)
	if tree.IsEnd() {
		t.Skip("no moves to test against")
	}
	_, err := tree.GetAfterMove(Move{From: 9999, To: 9998})
	if err == nil {
		t.Fatalf("expected an error for an illegal move")
	}
}
