package wire

import (
	"encoding/json"
	"fmt"

	"github.com/wricardo/fishtournament/board"
	"github.com/wricardo/fishtournament/game"
)

// JSONPlayer is one entry of a state message's "players" array. The
// first entry is always whose turn it is (spec.md §6); Places lists
// only already-placed penguins, as [row, col] pairs.
type JSONPlayer struct {
	Color  string    `json:"color"`
	Score  int       `json:"score"`
	Places [][2]int `json:"places"`
}

// JSONState is the wire encoding of a GameState: a rows×cols fish
// grid (0 = hole) and the rotated player list.
type JSONState struct {
	Board   [][]int      `json:"board"`
	Players []JSONPlayer `json:"players"`
}

// EncodeGameState builds the wire state for s, rotating Players so
// the current player appears first.
func EncodeGameState(s *game.GameState) JSONState {
	js := JSONState{Board: make([][]int, s.Board.Rows)}
	for row := 0; row < s.Board.Rows; row++ {
		js.Board[row] = make([]int, s.Board.Cols)
		for col := 0; col < s.Board.Cols; col++ {
			id, err := s.Board.TileId(col, row)
			if err != nil {
				continue
			}
			if t, ok := s.Board.Tile(id); ok {
				js.Board[row][col] = t.FishCount
			}
		}
	}

	order := rotatedToCurrent(s.TurnOrder, s.CurrentTurn)
	js.Players = make([]JSONPlayer, 0, len(order))
	for _, id := range order {
		p, ok := s.Players[id]
		if !ok {
			continue
		}
		jp := JSONPlayer{Color: string(p.Color), Score: p.Score}
		for _, pg := range p.Penguins {
			if !pg.Placed {
				continue
			}
			pos := s.Board.TilePosition(pg.Tile)
			jp.Places = append(jp.Places, [2]int{pos.Row, pos.Col})
		}
		js.Players = append(js.Players, jp)
	}
	return js
}

func rotatedToCurrent(order []game.PlayerId, current game.PlayerId) []game.PlayerId {
	idx := 0
	for i, id := range order {
		if id == current {
			idx = i
			break
		}
	}
	rotated := make([]game.PlayerId, len(order))
	for i := range order {
		rotated[i] = order[(idx+i)%len(order)]
	}
	return rotated
}

// DecodeGameState rebuilds a GameState from its wire form. colorToId
// supplies the PlayerId each wire color maps to — the wire protocol
// never carries PlayerIds, only colors (spec.md §6) — and rows/cols
// must match an already-agreed board shape; fish counts of 0 become
// holes. The reconstructed state carries only placed penguins: it is
// intended for mid-game resync (setup/take-turn), not for round-
// tripping a placement-phase state with unplaced penguins still
// outstanding.
func DecodeGameState(js JSONState, colorToId map[game.PlayerColor]game.PlayerId) (*game.GameState, error) {
	rows := len(js.Board)
	cols := 0
	if rows > 0 {
		cols = len(js.Board[0])
	}
	b := board.WithNoHoles(rows, cols, 1)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			id, err := b.TileId(col, row)
			if err != nil {
				return nil, err
			}
			if col >= len(js.Board[row]) || js.Board[row][col] == 0 {
				b.RemoveTile(id)
				continue
			}
			if t, ok := b.Tile(id); ok {
				t.FishCount = js.Board[row][col]
			}
		}
	}

	ids := make([]game.PlayerId, 0, len(js.Players))
	for _, jp := range js.Players {
		id, ok := colorToId[game.PlayerColor(jp.Color)]
		if !ok {
			return nil, fmt.Errorf("wire: no PlayerId known for color %q", jp.Color)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return game.NewGameState(b, nil), nil
	}

	state := game.NewGameState(b, ids)
	state.CurrentTurn = ids[0]
	for i, jp := range js.Players {
		p := state.Players[ids[i]]
		p.Score = jp.Score
		p.Penguins = p.Penguins[:0]
		for _, rc := range jp.Places {
			id, err := b.TileId(rc[1], rc[0])
			if err != nil {
				return nil, err
			}
			p.Penguins = append(p.Penguins, game.Penguin{Tile: id, Placed: true})
		}
	}
	return state, nil
}

// --- Server -> Client tagged-array messages ---

func tagged(name string, args ...interface{}) ([]byte, error) {
	return json.Marshal([2]interface{}{name, args})
}

// StartMessage is ["start", [true]].
func StartMessage() ([]byte, error) {
	return tagged("start", true)
}

// PlayingAsMessage is ["playing-as", [color]].
func PlayingAsMessage(c game.PlayerColor) ([]byte, error) {
	return tagged("playing-as", string(c))
}

// PlayingWithMessage is ["playing-with", [[color, ...]]].
func PlayingWithMessage(colors []game.PlayerColor) ([]byte, error) {
	strs := make([]string, len(colors))
	for i, c := range colors {
		strs[i] = string(c)
	}
	return tagged("playing-with", strs)
}

// SetupMessage is ["setup", [state]].
func SetupMessage(s *game.GameState) ([]byte, error) {
	return tagged("setup", EncodeGameState(s))
}

// wireAction is the JSON encoding of a single PlayerMove within a
// take-turn message's action history: [[fromRow,fromCol],[toRow,toCol]].
type wireAction [2][2]int

func encodeAction(m game.Move, b *board.Board) wireAction {
	from := b.TilePosition(m.From)
	to := b.TilePosition(m.To)
	return wireAction{{from.Row, from.Col}, {to.Row, to.Col}}
}

// TakeTurnMessage is ["take-turn", [state, [action, ...]]]. actions is
// every move made since this client's own last turn, oldest first.
func TakeTurnMessage(s *game.GameState, actions []game.PlayerMove) ([]byte, error) {
	wireActions := make([]wireAction, len(actions))
	for i, a := range actions {
		wireActions[i] = encodeAction(a.Move, s.Board)
	}
	return tagged("take-turn", EncodeGameState(s), wireActions)
}

// EndMessage is ["end", [won]].
func EndMessage(won bool) ([]byte, error) {
	return tagged("end", won)
}

// --- Client -> Server untagged messages ---

// ClientReplyKind discriminates the three untagged shapes a client
// may send back.
type ClientReplyKind int

const (
	ReplyVoid ClientReplyKind = iota
	ReplyPlacement
	ReplyMove
)

// ClientReply is a decoded client->server message: an ack, a
// placement [row,col], or a move [[row,col],[row,col]].
type ClientReply struct {
	Kind      ClientReplyKind
	Placement [2]int
	Move      [2][2]int
}

// ParseClientReply decodes one whitespace-delimited JSON value into a
// ClientReply. Any shape other than "void", a 2-element int array, or
// a 2x2 int array is a Protocol error.
func ParseClientReply(raw []byte) (ClientReply, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "void" {
			return ClientReply{Kind: ReplyVoid}, nil
		}
		return ClientReply{}, fmt.Errorf("wire: %w: unrecognized string reply %q", ErrProtocol, asString)
	}

	var asMove [][]int
	if err := json.Unmarshal(raw, &asMove); err == nil && len(asMove) == 2 && len(asMove[0]) == 2 && len(asMove[1]) == 2 {
		move := [2][2]int{{asMove[0][0], asMove[0][1]}, {asMove[1][0], asMove[1][1]}}
		return ClientReply{Kind: ReplyMove, Move: move}, nil
	}

	var asPlacement []int
	if err := json.Unmarshal(raw, &asPlacement); err == nil && len(asPlacement) == 2 {
		return ClientReply{Kind: ReplyPlacement, Placement: [2]int{asPlacement[0], asPlacement[1]}}, nil
	}

	return ClientReply{}, fmt.Errorf("wire: %w: unrecognized client reply shape", ErrProtocol)
}

// TileFromRowCol converts a decoded [row,col] placement into a
// board.TileId given the board it applies to.
func TileFromRowCol(b *board.Board, rowCol [2]int) (board.TileId, error) {
	return b.TileId(rowCol[1], rowCol[0])
}

// MoveFromWire converts a decoded [[row,col],[row,col]] reply into a
// game.Move given the board it applies to.
func MoveFromWire(b *board.Board, m [2][2]int) (game.Move, error) {
	from, err := b.TileId(m[0][1], m[0][0])
	if err != nil {
		return game.Move{}, err
	}
	to, err := b.TileId(m[1][1], m[1][0])
	if err != nil {
		return game.Move{}, err
	}
	return game.Move{From: from, To: to}, nil
}

// --- Tournament control messages ---

// StartTournamentMessage announces a player's assigned id at
// tournament start.
type StartTournamentMessage struct {
	Type             string `json:"type"`
	AssignedPlayerID int    `json:"assigned_player_id"`
}

// NewStartTournamentMessage builds a StartTournamentMessage for id.
func NewStartTournamentMessage(id game.PlayerId) StartTournamentMessage {
	return StartTournamentMessage{Type: "StartTournament", AssignedPlayerID: int(id)}
}

// TournamentFinishedMessage announces the overall tournament winners.
type TournamentFinishedMessage struct {
	Type    string `json:"type"`
	Winners []int  `json:"winners"`
}

// NewTournamentFinishedMessage builds a TournamentFinishedMessage for
// winners.
func NewTournamentFinishedMessage(winners []game.PlayerId) TournamentFinishedMessage {
	ids := make([]int, len(winners))
	for i, w := range winners {
		ids[i] = int(w)
	}
	return TournamentFinishedMessage{Type: "TournamentFinished", Winners: ids}
}
