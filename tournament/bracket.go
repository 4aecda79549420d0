package tournament

import "github.com/wricardo/fishtournament/referee"

// MinPerGame and MaxPerGame bound how many participants one referee
// game may hold (spec.md §4.7).
const (
	MinPerGame = 2
	MaxPerGame = 4
)

// nextBracket decides whether another round should run, and if so,
// how clients divide into games. hasPrevious/previousCount track the
// size of the immediately preceding round: per spec.md §9's "same
// winners two rounds in a row" halting rule (a count comparison, not
// a set-identity one, kept for fidelity to the source this was
// distilled from), the tournament also ends once a round produces
// exactly as many winners as the round before it.
func nextBracket(clients []referee.Participant, hasPrevious bool, previousCount int) ([][]referee.Participant, bool) {
	if len(clients) < MinPerGame {
		return nil, false
	}
	if hasPrevious && previousCount == len(clients) {
		return nil, false
	}
	return allocateGroupings(clients), true
}

// allocateGroupings is the backtracking allocator of spec.md §4.7/§8
// scenario F: split clients (assumed sorted ascending by age) into
// groups of MaxPerGame, then — if a leftover remainder would be
// smaller than MinPerGame — pop the most recently formed group back
// onto the remainder and retry one player fewer per group, until
// every player is placed. Panics if exactly one player is given and
// returns no groups for zero (callers must check via nextBracket
// first).
func allocateGroupings(clients []referee.Participant) [][]referee.Participant {
	var groups [][]referee.Participant
	perGame := MaxPerGame
	remaining := append([]referee.Participant{}, clients...)

	for len(remaining) > 0 {
		if len(remaining) < perGame {
			if len(remaining) >= MinPerGame {
				groups = append(groups, remaining)
				remaining = nil
			} else if len(groups) > 0 && perGame > MinPerGame {
				last := groups[len(groups)-1]
				groups = groups[:len(groups)-1]
				remaining = append(remaining, last...)
				perGame--
			} else {
				panic("tournament: not enough players to allocate a final group")
			}
		} else {
			groups = append(groups, append([]referee.Participant{}, remaining[:perGame]...))
			remaining = remaining[perGame:]
		}
	}
	return groups
}
