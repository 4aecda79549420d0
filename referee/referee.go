package referee

import (
	"context"
	"log"

	"github.com/wricardo/fishtournament/board"
	"github.com/wricardo/fishtournament/client"
	"github.com/wricardo/fishtournament/game"
)

// ClientStatus is a participant's outcome at the end of a game.
type ClientStatus int

const (
	Lost ClientStatus = iota
	Won
	Kicked
)

func (s ClientStatus) String() string {
	switch s {
	case Won:
		return "Won"
	case Kicked:
		return "Kicked"
	default:
		return "Lost"
	}
}

// Participant pairs a stable, tournament-wide PlayerId with the
// shared client.Handle the Referee addresses it through.
type Participant struct {
	Id     game.PlayerId
	Handle *client.Handle
}

// GameResult is the outcome of one refereed game: the final state
// (for statistics) and each participant's status, in the same order
// as the Participant list the Referee was built with.
type GameResult struct {
	FinalState *game.GameState
	Statuses   []ClientStatus
}

// Referee drives one game of Fish from Starting through Done,
// enforcing the kick policy of spec.md §4.6: any Fail from a client,
// or any well-formed but illegal placement/move, kicks that client's
// participant immediately. There is no retry — retries would invite
// nondeterminism into the minimax search's view of opponents
// (spec.md §7).
type Referee struct {
	participants []Participant
	phase        *game.GamePhase
	moveHistory  []game.PlayerMove
	kicked       map[game.PlayerId]bool
}

// NewReferee builds a Referee over participants (already carrying
// their tournament-assigned PlayerIds), on b (defaulting to a 5x5
// uniform 3-fish board, per spec.md §4.6, when b is nil).
func NewReferee(participants []Participant, b *board.Board) *Referee {
	if b == nil {
		b = board.WithNoHoles(5, 5, 3)
	}
	ids := make([]game.PlayerId, len(participants))
	for i, p := range participants {
		ids[i] = p.Id
	}
	state := game.NewGameState(b, ids)
	phase := game.NewStartingPhase()
	if len(ids) == 0 {
		phase.UpdateFromGameState(state)
	} else {
		phase.BeginPlacing(state)
	}

	return &Referee{
		participants: participants,
		phase:        phase,
		kicked:       make(map[game.PlayerId]bool),
	}
}

// Run drives the game to completion and returns its result. Clients
// are told the game has started (initialize_game) before the first
// turn; any client that fails this is kicked before play begins.
func (r *Referee) Run(ctx context.Context) GameResult {
	r.initializeClients(ctx)

	for !r.phase.IsGameOver() {
		r.doPlayerTurn(ctx)
	}

	return r.result()
}

func (r *Referee) initializeClients(ctx context.Context) {
	state := r.phase.State()
	var toKick []game.PlayerId
	for _, p := range r.participants {
		color := r.colorOf(p.Id)
		if err := p.Handle.InitializeGame(ctx, state, color); err != nil {
			log.Printf("referee: player %d failed initialize_game: %v", p.Id, err)
			toKick = append(toKick, p.Id)
		}
	}
	for _, id := range toKick {
		r.kickPlayer(id)
	}
}

func (r *Referee) doPlayerTurn(ctx context.Context) {
	var err error
	switch r.phase.Kind() {
	case game.PhasePlacing:
		err = r.doPlacement(ctx)
	case game.PhaseMoving:
		err = r.doMove(ctx)
	default:
		return
	}
	if err != nil {
		log.Printf("referee: kicking player %d: %v", r.phase.CurrentTurn(), err)
		r.kickCurrentPlayer()
	}
}

func (r *Referee) doPlacement(ctx context.Context) error {
	current := r.currentParticipant()
	placement, err := current.Handle.GetPlacement(ctx, r.phase.State())
	if err != nil {
		return err
	}
	return r.phase.TryDoPlacement(placement)
}

func (r *Referee) doMove(ctx context.Context) error {
	current := r.currentParticipant()
	history := r.historySince(current.Id)

	move, err := current.Handle.GetMove(ctx, r.phase.Tree(), history)
	if err != nil {
		return err
	}
	color := r.colorOf(current.Id)
	if err := r.phase.TryDoMove(move); err != nil {
		return err
	}
	r.moveHistory = append(r.moveHistory, game.PlayerMove{Move: move, Color: color})
	return nil
}

// historySince returns the suffix of moveHistory strictly after id's
// own previous move (or the whole history, if id has not moved yet
// this game), oldest first — spec.md §4.6's "move history per
// client".
func (r *Referee) historySince(id game.PlayerId) []game.PlayerMove {
	color := r.colorOf(id)
	var reversed []game.PlayerMove
	for i := len(r.moveHistory) - 1; i >= 0; i-- {
		m := r.moveHistory[i]
		if m.Color == color {
			break
		}
		reversed = append(reversed, m)
	}
	history := make([]game.PlayerMove, len(reversed))
	for i, m := range reversed {
		history[len(reversed)-1-i] = m
	}
	return history
}

func (r *Referee) colorOf(id game.PlayerId) game.PlayerColor {
	if p, ok := r.phase.State().Players[id]; ok {
		return p.Color
	}
	return ""
}

func (r *Referee) currentParticipant() Participant {
	current := r.phase.CurrentTurn()
	for _, p := range r.participants {
		if p.Id == current {
			return p
		}
	}
	panic("referee: current_turn does not match any known participant")
}

// kickPlayer removes id from the game (their penguins vanish, their
// turn slot disappears), marks them kicked so future sends are
// no-ops, rebuilds the phase from the mutated state, and clears
// move_history (tied to participants that may no longer exist).
func (r *Referee) kickPlayer(id game.PlayerId) {
	r.kicked[id] = true
	for _, p := range r.participants {
		if p.Id == id {
			p.Handle.Kick()
		}
	}

	state := r.phase.State()
	state.RemovePlayer(id)
	r.phase.UpdateFromGameState(state)
	r.moveHistory = nil
}

func (r *Referee) kickCurrentPlayer() {
	r.kickPlayer(r.phase.CurrentTurn())
}

func (r *Referee) result() GameResult {
	finalState := r.phase.State()
	winning := make(map[game.PlayerId]bool, len(finalState.WinningPlayers))
	for _, id := range finalState.WinningPlayers {
		winning[id] = true
	}

	statuses := make([]ClientStatus, len(r.participants))
	for i, p := range r.participants {
		switch {
		case r.kicked[p.Id]:
			statuses[i] = Kicked
		case winning[p.Id]:
			statuses[i] = Won
		default:
			statuses[i] = Lost
		}
	}
	return GameResult{FinalState: finalState, Statuses: statuses}
}
