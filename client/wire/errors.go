package wire

import "errors"

// ErrProtocol marks a malformed or unexpected wire value: bad JSON,
// wrong shape, or anything else that cannot be reconciled with
// spec.md §6's message grammar. Callers collapse it (along with
// timeouts and illegal actions) into a single kick outcome.
var ErrProtocol = errors.New("wire: protocol violation")
