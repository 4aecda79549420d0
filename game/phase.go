package game

import "errors"

// ErrWrongPhase is returned when an operation (placement/move) is
// attempted in a GamePhase that does not support it.
var ErrWrongPhase = errors.New("game: operation not valid in current phase")

// PhaseKind names which variant of the GamePhase envelope is active.
type PhaseKind int

const (
	PhaseStarting PhaseKind = iota
	PhasePlacing
	PhaseMoving
	PhaseDone
)

// GamePhase is the tagged envelope {Starting, Placing(GameState),
// Moving(GameTree), Done(GameState)} from spec.md §3/§4.3/§9. It is
// deliberately a single struct with a kind tag, not a type hierarchy
// with a common "phase" interface: the four variants share almost no
// operations (spec.md §9).
type GamePhase struct {
	kind  PhaseKind
	state *GameState
	tree  *GameTree
}

// NewStartingPhase returns a fresh Starting phase.
func NewStartingPhase() *GamePhase {
	return &GamePhase{kind: PhaseStarting}
}

// Kind reports which variant is currently active.
func (p *GamePhase) Kind() PhaseKind {
	return p.kind
}

// IsGameOver reports whether this phase is Done.
func (p *GamePhase) IsGameOver() bool {
	return p.kind == PhaseDone
}

// State returns the GameState backing this phase. Panics if called on
// a Starting phase, which has none.
func (p *GamePhase) State() *GameState {
	switch p.kind {
	case PhasePlacing, PhaseDone:
		return p.state
	case PhaseMoving:
		return p.tree.State()
	default:
		panic("game: tried to get the state of a Starting GamePhase")
	}
}

// Tree returns the GameTree backing a Moving phase, or nil otherwise.
func (p *GamePhase) Tree() *GameTree {
	if p.kind != PhaseMoving {
		return nil
	}
	return p.tree
}

// CurrentTurn returns whose turn it currently is. Panics on Starting.
func (p *GamePhase) CurrentTurn() PlayerId {
	return p.State().CurrentTurn
}

// BeginPlacing transitions a Starting phase into Placing(state).
func (p *GamePhase) BeginPlacing(state *GameState) {
	*p = GamePhase{kind: PhasePlacing, state: state}
}

// TryDoPlacement applies a placement to the current Placing phase,
// then advances to Moving once every penguin is placed (or straight
// to Done if the resulting position has no legal moves at all).
func (p *GamePhase) TryDoPlacement(pl Placement) error {
	if p.kind != PhasePlacing {
		return ErrWrongPhase
	}
	if err := p.state.Place(pl); err != nil {
		return err
	}
	if p.state.AllPenguinsPlaced() {
		p.state.EnsureGameOverComputed()
		if p.state.IsGameOver() {
			*p = GamePhase{kind: PhaseDone, state: p.state}
		} else {
			*p = GamePhase{kind: PhaseMoving, tree: NewGameTree(p.state)}
		}
	}
	return nil
}

// TryDoMove validates and applies m against the current Moving
// phase's tree, advancing to the child node (or to Done, if that
// child turns out to be a terminal node).
func (p *GamePhase) TryDoMove(m Move) error {
	if p.kind != PhaseMoving {
		return ErrWrongPhase
	}
	child, err := p.tree.GetAfterMove(m)
	if err != nil {
		return err
	}
	if child.IsEnd() {
		*p = GamePhase{kind: PhaseDone, state: child.State()}
	} else {
		*p = GamePhase{kind: PhaseMoving, tree: child}
	}
	return nil
}

// updateGametreePosition searches the current Moving phase's children
// for one whose state structurally matches childState, reusing that
// subtree; if none matches (or the phase wasn't Moving), it builds a
// fresh tree from childState.
func (p *GamePhase) updateGametreePosition(childState *GameState) *GameTree {
	if p.kind == PhaseMoving {
		for _, m := range p.tree.Moves() {
			candidate, err := p.tree.GetAfterMove(m)
			if err == nil && candidate.State().Equal(childState) {
				return candidate
			}
		}
	}
	return NewGameTree(childState)
}

// UpdateFromGameState re-syncs this phase to match an externally
// mutated GameState (e.g. after a Referee kicks a client): Placing if
// penguins remain unplaced, Done if the state is over, else Moving —
// reusing a matching subtree of the current tree when one exists
// rather than rebuilding from scratch.
func (p *GamePhase) UpdateFromGameState(state *GameState) {
	if !state.AllPenguinsPlaced() {
		*p = GamePhase{kind: PhasePlacing, state: state}
		return
	}
	state.EnsureGameOverComputed()
	if state.IsGameOver() {
		*p = GamePhase{kind: PhaseDone, state: state}
		return
	}
	tree := p.updateGametreePosition(state)
	*p = GamePhase{kind: PhaseMoving, tree: tree}
}
