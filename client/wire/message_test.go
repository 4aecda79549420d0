package wire

import (
	"encoding/json"
	"testing"

	"github.com/wricardo/fishtournament/board"
	"github.com/wricardo/fishtournament/game"
)

func TestEncodeGameStateRotatesCurrentPlayerFirst(t *testing.T) {
	b := board.WithNoHoles(2, 2, 3)
	s := game.NewGameState(b, []game.PlayerId{1, 2})
	s.CurrentTurn = 2

	js := EncodeGameState(s)
	if len(js.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(js.Players))
	}
	if js.Players[0].Color != string(game.White) {
		t.Fatalf("expected player 2 (white) first, got %s", js.Players[0].Color)
	}
	if len(js.Board) != 2 || len(js.Board[0]) != 2 {
		t.Fatalf("expected 2x2 board grid, got %dx%d", len(js.Board), len(js.Board[0]))
	}
}

func TestEncodeGameStateHolesAreZero(t *testing.T) {
	b, err := board.WithHoles(2, 2, []board.Position{{Col: 0, Row: 0}}, 1)
	if err != nil {
		t.Fatalf("WithHoles: %v", err)
	}
	s := game.NewGameState(b, []game.PlayerId{1})
	js := EncodeGameState(s)
	if js.Board[0][0] != 0 {
		t.Fatalf("expected hole at (row=0,col=0) to encode as 0, got %d", js.Board[0][0])
	}
}

func TestStartMessageShape(t *testing.T) {
	raw, err := StartMessage()
	if err != nil {
		t.Fatalf("StartMessage: %v", err)
	}
	var decoded []json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected a 2-element tagged array, got %d elements", len(decoded))
	}
	var name string
	json.Unmarshal(decoded[0], &name)
	if name != "start" {
		t.Fatalf("expected tag %q, got %q", "start", name)
	}
	if string(decoded[1]) != "[true]" {
		t.Fatalf("expected args [true], got %s", decoded[1])
	}
}

func TestParseClientReplyVoid(t *testing.T) {
	r, err := ParseClientReply([]byte(`"void"`))
	if err != nil {
		t.Fatalf("ParseClientReply: %v", err)
	}
	if r.Kind != ReplyVoid {
		t.Fatalf("expected ReplyVoid, got %v", r.Kind)
	}
}

func TestParseClientReplyPlacement(t *testing.T) {
	r, err := ParseClientReply([]byte(`[1,2]`))
	if err != nil {
		t.Fatalf("ParseClientReply: %v", err)
	}
	if r.Kind != ReplyPlacement || r.Placement != [2]int{1, 2} {
		t.Fatalf("unexpected reply: %+v", r)
	}
}

func TestParseClientReplyMove(t *testing.T) {
	r, err := ParseClientReply([]byte(`[[0,0],[0,2]]`))
	if err != nil {
		t.Fatalf("ParseClientReply: %v", err)
	}
	if r.Kind != ReplyMove || r.Move != [2][2]int{{0, 0}, {0, 2}} {
		t.Fatalf("unexpected reply: %+v", r)
	}
}

func TestParseClientReplyRejectsGarbage(t *testing.T) {
	if _, err := ParseClientReply([]byte(`{"oops":true}`)); err == nil {
		t.Fatalf("expected an error for an unrecognized shape")
	}
}

func TestEncodeDecodeGameStateRoundTrip(t *testing.T) {
	b := board.WithNoHoles(2, 3, 2)
	s := game.NewGameState(b, []game.PlayerId{10, 20})
	s.Players[10].Penguins[0] = game.Penguin{Tile: mustTile(b, 0, 0), Placed: true}
	s.Players[20].Penguins[0] = game.Penguin{Tile: mustTile(b, 1, 0), Placed: true}
	s.Players[10].Score = 4

	js := EncodeGameState(s)
	colorToId := map[game.PlayerColor]game.PlayerId{game.Red: 10, game.White: 20}
	decoded, err := DecodeGameState(js, colorToId)
	if err != nil {
		t.Fatalf("DecodeGameState: %v", err)
	}
	if decoded.Players[10].Score != 4 {
		t.Fatalf("expected decoded score 4, got %d", decoded.Players[10].Score)
	}
	if !decoded.Players[10].Penguins[0].Placed || decoded.Players[10].Penguins[0].Tile != mustTile(b, 0, 0) {
		t.Fatalf("expected decoded penguin at (0,0), got %+v", decoded.Players[10].Penguins[0])
	}
}

func TestDecodeGameStatePadsShortRowsWithHoles(t *testing.T) {
	js := JSONState{Board: [][]int{{3, 3, 3}, {3, 3}}}
	decoded, err := DecodeGameState(js, nil)
	if err != nil {
		t.Fatalf("DecodeGameState: %v", err)
	}
	id, err := decoded.Board.TileId(2, 1)
	if err != nil {
		t.Fatalf("TileId: %v", err)
	}
	if _, ok := decoded.Board.Tile(id); ok {
		t.Fatalf("expected (col=2,row=1) to be a hole for a short row, but it is a live tile")
	}
}

func mustTile(b *board.Board, col, row int) board.TileId {
	id, err := b.TileId(col, row)
	if err != nil {
		panic(err)
	}
	return id
}
