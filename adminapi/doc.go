// Package adminapi is the tournament host's introspection surface: a
// REST API over the in-memory registry plus board presets, and a
// websocket stream of structural tournament lifecycle events. The Hub
// relays whatever Events its host publishes; cmd/fishtournament
// publishes "tournament_started" and "tournament_finished" only, and
// publishes no round or kick events.
//
// This is an observer/operator channel, not a player-facing one: it
// never streams per-move board state to anyone, which is the fanout
// spec.md §1's Non-goals excludes. What a client receives over its own
// connection is entirely the wire protocol in client/wire.
//
// Architecture:
//
// A central Hub manages websocket connections keyed by tournament id,
// the same hub-and-spoke shape as a game-state broadcaster, but the
// payload here is a lifecycle Event rather than a board snapshot.
//
// Usage:
//
//	hub := adminapi.NewHub()
//	go hub.Run()
//	srv := adminapi.NewServer(registry.NewManager(), cfgManager, hub)
//	http.ListenAndServe(":8080", srv)
package adminapi
