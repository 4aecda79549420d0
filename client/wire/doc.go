// Package wire implements the length-unframed, whitespace-delimited
// JSON wire protocol between a Referee/Tournament Manager and a
// remote Client (spec.md §6). Only this package knows about the
// tagged-array message shapes and the row/col axis swap between the
// engine's internal (col, row) positions and the wire's [row, col]
// pairs; callers elsewhere in the module never see raw JSON.
package wire
