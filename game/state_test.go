package game

import (
	"testing"

	"github.com/wricardo/fishtournament/board"
)

func zigzagPlace(t *testing.T, s *GameState) {
	t.Helper()
	for !s.AllPenguinsPlaced() {
		placed := false
		for col := 0; col < s.Board.Cols && !placed; col++ {
			for row := 0; row < s.Board.Rows && !placed; row++ {
				id, err := s.Board.TileId(col, row)
				if err != nil {
					continue
				}
				if _, ok := s.Board.Tile(id); !ok {
					continue
				}
				occ := s.occupiedTiles()
				if occ[id] {
					continue
				}
				if err := s.Place(Placement{Tile: id}); err == nil {
					placed = true
				}
			}
		}
		if !placed {
			t.Fatalf("zigzag placement stuck with board not full")
		}
	}
}

func TestNewGameStateAssignsColorsAndPenguins(t *testing.T) {
	b := board.WithNoHoles(3, 5, 3)
	s := NewGameState(b, []PlayerId{1, 2})
	if s.Players[1].Color != Red || s.Players[2].Color != White {
		t.Fatalf("unexpected colors: %v %v", s.Players[1].Color, s.Players[2].Color)
	}
	if len(s.Players[1].Penguins) != PenguinFactor-2 {
		t.Fatalf("expected %d penguins, got %d", PenguinFactor-2, len(s.Players[1].Penguins))
	}
	if s.CurrentTurn != 1 {
		t.Fatalf("expected current turn 1, got %d", s.CurrentTurn)
	}
}

func TestPlaceAdvancesTurnAndRejectsOccupied(t *testing.T) {
	b := board.WithNoHoles(2, 2, 3)
	s := NewGameState(b, []PlayerId{1, 2})
	id, _ := b.TileId(0, 0)
	if err := s.Place(Placement{Tile: id}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if s.CurrentTurn != 2 {
		t.Fatalf("expected turn to advance to player 2, got %d", s.CurrentTurn)
	}
	if err := s.Place(Placement{Tile: id}); err == nil {
		t.Fatalf("expected ErrTileOccupied")
	}
}

func TestMoveScoresAndRemovesFromTile(t *testing.T) {
	b := board.WithNoHoles(3, 5, 4)
	s := NewGameState(b, []PlayerId{1, 2})
	zigzagPlace(t, s)

	moves := s.LegalMovesForPlayer(s.CurrentTurn)
	if len(moves) == 0 {
		t.Fatalf("expected at least one legal move after placement")
	}
	mover := s.CurrentTurn
	m := moves[0]
	scoreBefore := s.Players[mover].Score
	if err := s.Move(m); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if s.Players[mover].Score != scoreBefore+4 {
		t.Fatalf("expected score += 4, got %d", s.Players[mover].Score)
	}
	if _, ok := s.Board.Tile(m.From); ok {
		t.Fatalf("from-tile %d should have been removed", m.From)
	}
}

func TestRemovePlayerVanishesPenguinsAndSeat(t *testing.T) {
	b := board.WithNoHoles(3, 3, 2)
	s := NewGameState(b, []PlayerId{1, 2, 3})
	zigzagPlace(t, s)

	if err := s.RemovePlayer(2); err != nil {
		t.Fatalf("RemovePlayer: %v", err)
	}
	if _, ok := s.Players[2]; ok {
		t.Fatalf("player 2 should be gone")
	}
	for _, id := range s.TurnOrder {
		if id == 2 {
			t.Fatalf("player 2 should not be in turn order")
		}
	}
}

func TestRemovePlayerAdvancesToSuccessorSeatNotFront(t *testing.T) {
	b := board.WithNoHoles(5, 5, 2)
	s := NewGameState(b, []PlayerId{1, 2, 3, 4})
	s.CurrentTurn = 3

	if err := s.RemovePlayer(3); err != nil {
		t.Fatalf("RemovePlayer: %v", err)
	}
	if s.CurrentTurn != 4 {
		t.Fatalf("expected CurrentTurn to land on the removed seat's successor (4), got %d", s.CurrentTurn)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := board.WithNoHoles(3, 3, 3)
	s := NewGameState(b, []PlayerId{1, 2})
	zigzagPlace(t, s)
	clone := s.Clone()

	moves := s.LegalMovesForPlayer(s.CurrentTurn)
	if len(moves) == 0 {
		t.Skip("no legal moves to exercise independence with")
	}
	if err := clone.Move(moves[0]); err != nil {
		t.Fatalf("Move on clone: %v", err)
	}
	if _, ok := s.Board.Tile(moves[0].From); !ok {
		t.Fatalf("original board was mutated by clone's move")
	}
}

func TestEqualStructural(t *testing.T) {
	b1 := board.WithNoHoles(2, 2, 1)
	b2 := board.WithNoHoles(2, 2, 1)
	s1 := NewGameState(b1, []PlayerId{1, 2})
	s2 := NewGameState(b2, []PlayerId{1, 2})
	if !s1.Equal(s2) {
		t.Fatalf("expected fresh identical states to be equal")
	}
}
