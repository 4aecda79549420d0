// Package registry tracks active and finished tournaments/games for the
// admin introspection API, entirely in memory — process-lifetime
// bookkeeping only, never written to disk.
//
// Core Types:
//
// Manager is the in-memory store. TournamentRecord and GameRecord are
// the two kinds of thing it tracks: a tournament's overall lifecycle
// (created, running, finished with final statuses) and the individual
// refereed games run within it.
//
// Concurrency:
//
// The registry is thread-safe: multiple goroutines (the tournament
// manager reporting progress, the admin API reading it) may safely
// operate on it concurrently.
//
// Usage:
//
//	reg := registry.NewManager()
//	id := reg.CreateTournament(8)
//	reg.RecordGame(id, 1, []game.PlayerId{0, 1, 2, 3}, result)
//	reg.FinishTournament(id, statuses)
//	t, err := reg.GetTournament(id)
package registry
