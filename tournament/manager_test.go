package tournament

import (
	"context"
	"testing"

	"github.com/wricardo/fishtournament/board"
	"github.com/wricardo/fishtournament/client"
	"github.com/wricardo/fishtournament/game"
	"github.com/wricardo/fishtournament/referee"
	"github.com/wricardo/fishtournament/strategy"
)

func zigzagParticipants(n int) []referee.Participant {
	ps := make([]referee.Participant, n)
	for i := range ps {
		ps[i] = referee.Participant{
			Id:     game.PlayerId(i),
			Handle: client.NewHandle(client.NewInProcess(strategy.NewZigZagMinMax())),
		}
	}
	return ps
}

func TestRunTournamentNoPlayers(t *testing.T) {
	statuses := Run(context.Background(), nil, nil)
	if len(statuses) != 0 {
		t.Fatalf("expected no statuses for an empty tournament, got %v", statuses)
	}
}

func TestRunTournamentSinglePlayerWinsWithoutPlaying(t *testing.T) {
	statuses := Run(context.Background(), zigzagParticipants(1), nil)
	if len(statuses) != 1 || statuses[0] != referee.Won {
		t.Fatalf("expected a lone entrant to win by default, got %v", statuses)
	}
}

func TestRunTournamentEightPlayersProducesWellFormedStatuses(t *testing.T) {
	b := board.WithNoHoles(3, 4, 3)
	statuses := Run(context.Background(), zigzagParticipants(8), b)
	if len(statuses) != 8 {
		t.Fatalf("expected 8 statuses, got %d", len(statuses))
	}
	wins := 0
	for _, s := range statuses {
		if s == referee.Won {
			wins++
		}
	}
	if wins == 0 {
		t.Fatalf("expected at least one overall winner, got statuses %v", statuses)
	}
}

func TestRunTournamentHaltsWhenRoundSizeRepeats(t *testing.T) {
	// A 1-fish-per-tile, tightly constrained board tends to produce
	// many ties (every player can reach the same max score), so a
	// round of 8 can easily re-produce 8 winners and halt immediately
	// per the "same winner count two rounds running" rule rather than
	// looping forever.
	b := board.WithNoHoles(2, 4, 1)
	statuses := Run(context.Background(), zigzagParticipants(8), b)
	if len(statuses) != 8 {
		t.Fatalf("expected 8 statuses, got %d", len(statuses))
	}
}

func TestNotifyStartingKicksFailingParticipant(t *testing.T) {
	ok := client.NewHandle(client.NewInProcess(strategy.NewZigZagMinMax()))
	failing := client.NewHandle(&failingClient{})
	participants := []referee.Participant{
		{Id: 0, Handle: ok},
		{Id: 1, Handle: failing},
	}
	results := map[game.PlayerId]referee.ClientStatus{0: referee.Won, 1: referee.Won}
	active := notifyStarting(context.Background(), participants, results)
	if len(active) != 1 || active[0].Id != 0 {
		t.Fatalf("expected only participant 0 to remain active, got %v", active)
	}
	if results[1] != referee.Kicked {
		t.Fatalf("expected participant 1 to be marked Kicked, got %v", results[1])
	}
}

func TestNotifyFinishedDemotesWinnerThatRejectsEnding(t *testing.T) {
	failing := client.NewHandle(&failingClient{})
	participants := []referee.Participant{{Id: 0, Handle: failing}}
	statuses := []referee.ClientStatus{referee.Won}
	notifyFinished(context.Background(), participants, statuses)
	if statuses[0] != referee.Lost {
		t.Fatalf("expected a winner that rejects tournament_ending to be demoted to Lost, got %v", statuses[0])
	}
}

// failingClient rejects every call; used to exercise the kick-on-Fail
// paths of notifyStarting/notifyFinished without a real strategy.
type failingClient struct{}

func (*failingClient) TournamentStarting(ctx context.Context) error { return errFake }
func (*failingClient) TournamentEnding(ctx context.Context, won bool) error { return errFake }
func (*failingClient) InitializeGame(ctx context.Context, state *game.GameState, color game.PlayerColor) error {
	return errFake
}
func (*failingClient) GetPlacement(ctx context.Context, state *game.GameState) (game.Placement, error) {
	return game.Placement{}, errFake
}
func (*failingClient) GetMove(ctx context.Context, tree *game.GameTree, sinceLastTurn []game.PlayerMove) (game.Move, error) {
	return game.Move{}, errFake
}

var errFake = fakeErr("tournament: simulated client failure")

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
