package game

import (
	"errors"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/wricardo/fishtournament/board"
)

var (
	// ErrUnknownTile is returned when a placement or move names a
	// tile id that does not exist on the board (hole or out of
	// bounds).
	ErrUnknownTile = errors.New("game: unknown tile")
	// ErrTileOccupied is returned when a placement targets an
	// already-occupied tile.
	ErrTileOccupied = errors.New("game: tile already occupied")
	// ErrNoUnplacedPenguin is returned when the current player has no
	// more penguins left to place.
	ErrNoUnplacedPenguin = errors.New("game: current player has no unplaced penguin")
	// ErrPenguinNotOwned is returned when a move's From tile does not
	// hold a penguin belonging to the current player.
	ErrPenguinNotOwned = errors.New("game: from-tile is not the current player's penguin")
	// ErrPenguinNotPlaced is returned when a move is attempted before
	// all placements are complete.
	ErrPenguinNotPlaced = errors.New("game: penguin has not been placed yet")
	// ErrIllegalMove is returned when To is not in the straight-line
	// reachable set from From.
	ErrIllegalMove = errors.New("game: move is not a legal straight-line slide")
	// ErrUnknownPlayer is returned by RemovePlayer for an id not in
	// the game.
	ErrUnknownPlayer = errors.New("game: unknown player id")
)

// GameState is the mutable core of one in-progress (or finished)
// game: the board, every player keyed by id, the turn order, whose
// turn it is, and — once the game has ended — the winning players.
type GameState struct {
	Board          *board.Board
	Players        map[PlayerId]*Player
	TurnOrder      []PlayerId
	CurrentTurn    PlayerId
	WinningPlayers []PlayerId

	initialPlayerCount int
}

// NewGameState places players in the given (age-ordered) turn order,
// assigns colors red/white/brown/black in that order, and gives each
// player PenguinFactor-len(ids) unplaced penguins.
func NewGameState(b *board.Board, ids []PlayerId) *GameState {
	s := &GameState{
		Board:              b,
		Players:            make(map[PlayerId]*Player, len(ids)),
		TurnOrder:          append([]PlayerId{}, ids...),
		initialPlayerCount: len(ids),
	}
	penguinCount := PenguinFactor - len(ids)
	for i, id := range ids {
		s.Players[id] = &Player{
			Id:       id,
			Color:    turnOrderColors[i%len(turnOrderColors)],
			Penguins: newPenguins(penguinCount),
		}
	}
	if len(ids) > 0 {
		s.CurrentTurn = ids[0]
	}
	return s
}

// Clone deep-copies the state (board included) so that mutating the
// copy never affects the original — used by GameTree to explore moves
// without side effects.
func (s *GameState) Clone() *GameState {
	ns := &GameState{
		Board:              s.Board.Clone(),
		TurnOrder:          append([]PlayerId{}, s.TurnOrder...),
		CurrentTurn:        s.CurrentTurn,
		initialPlayerCount: s.initialPlayerCount,
	}
	ns.Players = make(map[PlayerId]*Player, len(s.Players))
	for id, p := range s.Players {
		ns.Players[id] = p.Clone()
	}
	if s.WinningPlayers != nil {
		ns.WinningPlayers = append([]PlayerId{}, s.WinningPlayers...)
	}
	return ns
}

// occupiedTiles returns the set of tiles currently holding a placed
// penguin, across every player.
func (s *GameState) occupiedTiles() map[board.TileId]bool {
	occ := make(map[board.TileId]bool)
	for _, p := range s.Players {
		for _, pg := range p.Penguins {
			if pg.Placed {
				occ[pg.Tile] = true
			}
		}
	}
	return occ
}

// OccupiedTiles returns the set of tiles currently holding a placed
// penguin, across every player.
func (s *GameState) OccupiedTiles() map[board.TileId]bool {
	return s.occupiedTiles()
}

// AllPenguinsPlaced is the all-placed predicate: every player has
// every one of their penguins on a tile.
func (s *GameState) AllPenguinsPlaced() bool {
	for _, p := range s.Players {
		if !p.AllPlaced() {
			return false
		}
	}
	return true
}

// Place assigns the current player's next unplaced penguin to tile,
// then advances CurrentTurn to the next player in TurnOrder.
func (s *GameState) Place(placement Placement) error {
	if _, ok := s.Board.Tile(placement.Tile); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTile, placement.Tile)
	}
	occ := s.occupiedTiles()
	if occ[placement.Tile] {
		return fmt.Errorf("%w: %d", ErrTileOccupied, placement.Tile)
	}
	current, ok := s.Players[s.CurrentTurn]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, s.CurrentTurn)
	}
	idx := -1
	for i, pg := range current.Penguins {
		if !pg.Placed {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: player %d", ErrNoUnplacedPenguin, current.Id)
	}
	current.Penguins[idx] = Penguin{Tile: placement.Tile, Placed: true}
	s.advanceTurnCyclic()
	return nil
}

// advanceTurnCyclic moves CurrentTurn to the next seat in TurnOrder,
// with no skip check (used during placement, where every player has
// an equal number of penguins left to place).
func (s *GameState) advanceTurnCyclic() {
	idx := s.indexInTurnOrder(s.CurrentTurn)
	if idx == -1 || len(s.TurnOrder) == 0 {
		return
	}
	s.CurrentTurn = s.TurnOrder[(idx+1)%len(s.TurnOrder)]
}

func (s *GameState) indexInTurnOrder(id PlayerId) int {
	for i, pid := range s.TurnOrder {
		if pid == id {
			return i
		}
	}
	return -1
}

// LegalMovesFrom returns the straight-line reachable tiles from tile,
// treating every other placed penguin (but not the one currently
// sitting on tile) as an obstacle.
func (s *GameState) LegalMovesFrom(tile board.TileId) []board.TileId {
	occ := s.occupiedTiles()
	delete(occ, tile)
	return s.Board.AllReachableTiles(tile, occ)
}

// LegalMovesForPlayer returns every legal Move available to id's
// placed penguins.
func (s *GameState) LegalMovesForPlayer(id PlayerId) []Move {
	p, ok := s.Players[id]
	if !ok {
		return nil
	}
	var moves []Move
	for _, pg := range p.Penguins {
		if !pg.Placed {
			continue
		}
		for _, to := range s.LegalMovesFrom(pg.Tile) {
			moves = append(moves, Move{From: pg.Tile, To: to})
		}
	}
	return moves
}

func (s *GameState) hasLegalMove(id PlayerId) bool {
	p, ok := s.Players[id]
	if !ok {
		return false
	}
	for _, pg := range p.Penguins {
		if !pg.Placed {
			continue
		}
		if len(s.LegalMovesFrom(pg.Tile)) > 0 {
			return true
		}
	}
	return false
}

// Move slides the current player's penguin from From to To, scores
// the fish under From, removes the From tile from the board, then
// advances CurrentTurn around TurnOrder to the next player with a
// legal move (the skip-stuck rule). If no such player exists, the
// game ends: WinningPlayers is set to every player tied for the
// maximum score.
func (s *GameState) Move(m Move) error {
	current, ok := s.Players[s.CurrentTurn]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, s.CurrentTurn)
	}
	if !s.AllPenguinsPlaced() {
		return fmt.Errorf("%w: placement phase not complete", ErrPenguinNotPlaced)
	}
	idx := -1
	for i, pg := range current.Penguins {
		if pg.Placed && pg.Tile == m.From {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: tile %d", ErrPenguinNotOwned, m.From)
	}
	if !s.Board.CanReach(m.From, m.To, withoutTile(s.occupiedTiles(), m.From)) {
		return fmt.Errorf("%w: %d -> %d", ErrIllegalMove, m.From, m.To)
	}

	fromTile, _ := s.Board.Tile(m.From)
	current.Score += fromTile.FishCount
	current.Penguins[idx] = Penguin{Tile: m.To, Placed: true}
	s.Board.RemoveTile(m.From)

	s.advanceTurnSkippingStuck()
	return nil
}

func withoutTile(occ map[board.TileId]bool, id board.TileId) map[board.TileId]bool {
	delete(occ, id)
	return occ
}

// advanceTurnSkippingStuck implements the skip-stuck rule: walk the
// turn order starting just after the current player, landing on the
// first player (possibly wrapping back to the mover) who still has a
// legal move. If nobody does, the game ends.
func (s *GameState) advanceTurnSkippingStuck() {
	idx := s.indexInTurnOrder(s.CurrentTurn)
	n := len(s.TurnOrder)
	if idx == -1 || n == 0 {
		return
	}
	for i := 1; i <= n; i++ {
		candidate := s.TurnOrder[(idx+i)%n]
		if s.hasLegalMove(candidate) {
			s.CurrentTurn = candidate
			return
		}
	}
	s.WinningPlayers = s.computeWinners()
}

func (s *GameState) computeWinners() []PlayerId {
	best := -1
	for _, id := range s.TurnOrder {
		if p := s.Players[id]; p.Score > best {
			best = p.Score
		}
	}
	var winners []PlayerId
	for _, id := range s.TurnOrder {
		if s.Players[id].Score == best {
			winners = append(winners, id)
		}
	}
	return winners
}

// IsGameOver is true once every penguin is placed and no remaining
// player has any legal move.
func (s *GameState) IsGameOver() bool {
	if !s.AllPenguinsPlaced() {
		return false
	}
	if s.WinningPlayers != nil {
		return true
	}
	for _, id := range s.TurnOrder {
		if s.hasLegalMove(id) {
			return false
		}
	}
	return true
}

// EnsureGameOverComputed lazily populates WinningPlayers the first
// time a state is discovered to be over (e.g. right after the final
// placement, before any move has been attempted).
func (s *GameState) EnsureGameOverComputed() {
	if s.WinningPlayers != nil {
		return
	}
	if !s.AllPenguinsPlaced() {
		return
	}
	for _, id := range s.TurnOrder {
		if s.hasLegalMove(id) {
			return
		}
	}
	s.WinningPlayers = s.computeWinners()
}

// RemovePlayer drops id from the game entirely: their penguins vanish
// (tiles already under them on the board are left as-is — this is
// not a move, so no tile is freed), and their seat disappears from
// TurnOrder. If id was the current player, the turn advances (skip-
// stuck, since removal can change who is stuck).
func (s *GameState) RemovePlayer(id PlayerId) error {
	if _, ok := s.Players[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}
	wasCurrent := s.CurrentTurn == id
	removedIdx := -1
	for i, pid := range s.TurnOrder {
		if pid == id {
			removedIdx = i
			s.TurnOrder = append(s.TurnOrder[:i], s.TurnOrder[i+1:]...)
			break
		}
	}
	delete(s.Players, id)
	if len(s.TurnOrder) == 0 {
		s.WinningPlayers = nil
		return nil
	}
	if wasCurrent {
		s.CurrentTurn = s.TurnOrder[removedIdx%len(s.TurnOrder)]
		if s.AllPenguinsPlaced() {
			s.advanceIfCurrentStuckOrLand()
		}
	} else if s.indexInTurnOrder(s.CurrentTurn) == -1 {
		s.CurrentTurn = s.TurnOrder[0]
	}
	return nil
}

// advanceIfCurrentStuckOrLand lands CurrentTurn on the first player
// (starting from the current seat) with a legal move, after a
// removal has reshuffled TurnOrder.
func (s *GameState) advanceIfCurrentStuckOrLand() {
	idx := s.indexInTurnOrder(s.CurrentTurn)
	n := len(s.TurnOrder)
	if idx == -1 || n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		candidate := s.TurnOrder[(idx+i)%n]
		if s.hasLegalMove(candidate) {
			s.CurrentTurn = candidate
			return
		}
	}
	s.WinningPlayers = s.computeWinners()
}

// Equal reports structural equality between two states: same board
// tiles/fish, same players/penguins/scores, same turn order and
// current turn. Used by GameTree to find a matching child when the
// referee's phase is re-synced to an externally-provided state.
func (s *GameState) Equal(other *GameState) bool {
	if other == nil {
		return false
	}
	if s.CurrentTurn != other.CurrentTurn {
		return false
	}
	if len(s.TurnOrder) != len(other.TurnOrder) {
		return false
	}
	for i := range s.TurnOrder {
		if s.TurnOrder[i] != other.TurnOrder[i] {
			return false
		}
	}
	if len(s.Players) != len(other.Players) {
		return false
	}
	for id, p := range s.Players {
		op, ok := other.Players[id]
		if !ok || p.Color != op.Color || p.Score != op.Score {
			return false
		}
		if len(p.Penguins) != len(op.Penguins) {
			return false
		}
		aPg := append([]Penguin{}, p.Penguins...)
		bPg := append([]Penguin{}, op.Penguins...)
		sortPenguins(aPg)
		sortPenguins(bPg)
		for i := range aPg {
			if aPg[i] != bPg[i] {
				return false
			}
		}
	}
	aIds := s.Board.AllTileIds()
	bIds := other.Board.AllTileIds()
	if len(aIds) != len(bIds) {
		return false
	}
	for i := range aIds {
		if aIds[i] != bIds[i] {
			return false
		}
		at, _ := s.Board.Tile(aIds[i])
		bt, _ := other.Board.Tile(bIds[i])
		if at.FishCount != bt.FishCount {
			return false
		}
	}
	return true
}

func sortPenguins(pg []Penguin) {
	sort.Slice(pg, func(i, j int) bool {
		if pg[i].Placed != pg[j].Placed {
			return !pg[i].Placed
		}
		return pg[i].Tile < pg[j].Tile
	})
}

// Hash returns a deterministic FNV-1a hash over the board, turn
// order, current turn, and each player's color/score/penguin
// positions, for use as a minimax memoization key. Per spec.md §9,
// the exact hash distribution is implementation-dependent and
// irrelevant to correctness: the cache only ever affects performance,
// never the move selected.
func (s *GameState) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "turn:%d|order:%v|", s.CurrentTurn, s.TurnOrder)
	for _, id := range s.Board.AllTileIds() {
		t, _ := s.Board.Tile(id)
		fmt.Fprintf(h, "t%d:%d|", id, t.FishCount)
	}
	ids := make([]PlayerId, 0, len(s.Players))
	for id := range s.Players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		p := s.Players[id]
		fmt.Fprintf(h, "p%d:%s:%d:", id, p.Color, p.Score)
		pg := append([]Penguin{}, p.Penguins...)
		sortPenguins(pg)
		fmt.Fprintf(h, "%v|", pg)
	}
	return h.Sum64()
}

// PlayerScore returns id's current score (0 if unknown — e.g. already
// kicked).
func (s *GameState) PlayerScore(id PlayerId) int {
	if p, ok := s.Players[id]; ok {
		return p.Score
	}
	return 0
}
