// Package referee runs one complete game of Fish end-to-end: it owns
// the GamePhase, drives the placement and movement loop, and enforces
// the kick-on-misbehavior policy (spec.md §4.6). There is exactly one
// Referee per game; a Tournament Manager spawns one per bracket group
// per round.
package referee
