package tournament

import (
	"context"
	"log"
	"sync"

	"github.com/wricardo/fishtournament/board"
	"github.com/wricardo/fishtournament/game"
	"github.com/wricardo/fishtournament/referee"
)

// Run executes a complete tournament over participants (already
// assigned their stable tournament-wide PlayerIds, ascending by age),
// on b (nil defers to each Referee's own default board). It returns
// one status per participant, in the same order participants was
// given (spec.md §4.7).
//
// Per spec.md §4.7: clients win by default until they lose a game or
// are kicked — a lone entrant, or a tournament too small to ever run
// a single game, wins without playing.
func Run(ctx context.Context, participants []referee.Participant, b *board.Board) []referee.ClientStatus {
	results := make(map[game.PlayerId]referee.ClientStatus, len(participants))
	for _, p := range participants {
		results[p.Id] = referee.Won
	}

	active := notifyStarting(ctx, participants, results)

	var mu sync.Mutex
	runRec(ctx, active, b, false, 0, results, &mu)

	statuses := make([]referee.ClientStatus, len(participants))
	for i, p := range participants {
		statuses[i] = results[p.Id]
	}
	notifyFinished(ctx, participants, statuses)
	return statuses
}

// notifyStarting tells every participant the tournament is beginning.
// A participant that fails to accept is kicked from the tournament
// before any bracket is formed and excluded from the returned active
// list (order preserved).
func notifyStarting(ctx context.Context, participants []referee.Participant, results map[game.PlayerId]referee.ClientStatus) []referee.Participant {
	active := make([]referee.Participant, 0, len(participants))
	for _, p := range participants {
		if err := p.Handle.TournamentStarting(ctx); err != nil {
			log.Printf("tournament: player %d failed tournament_starting: %v", p.Id, err)
			p.Handle.Kick()
			results[p.Id] = referee.Kicked
			continue
		}
		active = append(active, p)
	}
	return active
}

// notifyFinished tells every still-active participant whether they
// won the tournament overall. A winner who fails to accept this
// final message is demoted to Lost (spec.md §4.7).
func notifyFinished(ctx context.Context, participants []referee.Participant, statuses []referee.ClientStatus) {
	for i, p := range participants {
		won := statuses[i] == referee.Won
		if err := p.Handle.TournamentEnding(ctx, won); err != nil && won {
			statuses[i] = referee.Lost
		}
	}
}

// runRec is the bracket recursion: form a bracket from clients, run
// it, then recurse on the winners with the previous round's size
// recorded for the halting check.
func runRec(ctx context.Context, clients []referee.Participant, b *board.Board, hasPrevious bool, previousCount int, results map[game.PlayerId]referee.ClientStatus, mu *sync.Mutex) {
	groups, ok := nextBracket(clients, hasPrevious, previousCount)
	if !ok {
		return
	}
	winners := runRound(ctx, groups, b, results, mu)
	runRec(ctx, winners, b, true, len(clients), results, mu)
}

// runRound plays every group of one bracket concurrently (spec.md's
// ambient stack favors goroutines over sequential play for
// independent games), merging each referee's outcome into results
// under mu, and returns the winners across every group, group order
// preserved.
func runRound(ctx context.Context, groups [][]referee.Participant, b *board.Board, results map[game.PlayerId]referee.ClientStatus, mu *sync.Mutex) []referee.Participant {
	gameResults := make([]referee.GameResult, len(groups))

	var wg sync.WaitGroup
	for i, group := range groups {
		wg.Add(1)
		go func(i int, group []referee.Participant) {
			defer wg.Done()
			r := referee.NewReferee(group, b)
			gameResults[i] = r.Run(ctx)
		}(i, group)
	}
	wg.Wait()

	var winners []referee.Participant
	for i, group := range groups {
		res := gameResults[i]
		for j, p := range group {
			mu.Lock()
			results[p.Id] = res.Statuses[j]
			mu.Unlock()
			if res.Statuses[j] == referee.Won {
				winners = append(winners, p)
			}
		}
	}
	return winners
}
