// Package config loads the named board presets a tournament host picks
// from: small JSON files describing a board's dimensions, fish count,
// and (optionally) a fixed set of holes.
//
// Configuration Format:
//
// Board presets are stored as JSON files in the configs directory.
// Each preset defines:
//   - the board's row/column dimensions (2-5 in the tournament default
//     config, per spec.md §6)
//   - a uniform fish-per-tile count (1-5)
//   - an optional list of holes to punch before play begins (a board
//     with holes has 1 fish per tile)
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	preset, err := manager.LoadConfig("tournament-default")
//	b, err := preset.Board()
//	defaultPreset := manager.GetDefault()
package config
