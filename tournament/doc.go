// Package tournament runs a full tournament of Fish across many
// rounds: it allocates survivors into brackets of 2-4 players each
// round, runs one referee.Referee per bracket group (concurrently),
// and halts once too few players remain or two consecutive rounds
// produce the same number of winners (spec.md §4.7).
package tournament
