package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/wricardo/fishtournament/client/wire"
	"github.com/wricardo/fishtournament/game"
)

// DefaultCallTimeout is the per-remote-call wall-clock budget used
// when ctx carries no deadline of its own (spec.md §6).
const DefaultCallTimeout = 30 * time.Second

// ErrClientFailed is returned for any remote-client failure: a
// malformed reply, a closed stream, a write error, or a deadline
// exceeded. Per spec.md §7, Protocol, Timeout, and IllegalAction are
// all collapsed into this single outcome — a Referee never needs to
// distinguish them, only kick.
var ErrClientFailed = errors.New("client: remote call failed")

// Remote is a Client backed by a whitespace-delimited JSON stream
// (spec.md §6), grounded on server/remote_client.rs: one JSON value
// written per call, one read back. conn must be a net.Conn so that
// per-call deadlines can be enforced with SetDeadline.
type Remote struct {
	conn    net.Conn
	dec     *json.Decoder
	timeout time.Duration
}

// NewRemote wraps conn as a remote Client with the given per-call
// timeout (DefaultCallTimeout if timeout <= 0).
func NewRemote(conn net.Conn, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &Remote{conn: conn, dec: json.NewDecoder(conn), timeout: timeout}
}

func (c *Remote) deadline(ctx context.Context) time.Time {
	if dl, ok := ctx.Deadline(); ok {
		return dl
	}
	return time.Now().Add(c.timeout)
}

func (c *Remote) call(ctx context.Context, payload []byte) (wire.ClientReply, error) {
	dl := c.deadline(ctx)
	if err := c.conn.SetDeadline(dl); err != nil {
		return wire.ClientReply{}, fmt.Errorf("%w: %v", ErrClientFailed, err)
	}
	if _, err := c.conn.Write(payload); err != nil {
		return wire.ClientReply{}, fmt.Errorf("%w: write: %v", ErrClientFailed, err)
	}

	var raw json.RawMessage
	if err := c.dec.Decode(&raw); err != nil {
		return wire.ClientReply{}, fmt.Errorf("%w: read: %v", ErrClientFailed, err)
	}
	reply, err := wire.ParseClientReply(raw)
	if err != nil {
		return wire.ClientReply{}, fmt.Errorf("%w: %v", ErrClientFailed, err)
	}
	return reply, nil
}

func (c *Remote) expectVoid(ctx context.Context, payload []byte) error {
	reply, err := c.call(ctx, payload)
	if err != nil {
		return err
	}
	if reply.Kind != wire.ReplyVoid {
		return fmt.Errorf("%w: expected an ack, got shape %d", ErrClientFailed, reply.Kind)
	}
	return nil
}

func (c *Remote) TournamentStarting(ctx context.Context) error {
	payload, err := wire.StartMessage()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClientFailed, err)
	}
	return c.expectVoid(ctx, payload)
}

func (c *Remote) TournamentEnding(ctx context.Context, won bool) error {
	payload, err := wire.EndMessage(won)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClientFailed, err)
	}
	return c.expectVoid(ctx, payload)
}

func (c *Remote) InitializeGame(ctx context.Context, state *game.GameState, color game.PlayerColor) error {
	asPayload, err := wire.PlayingAsMessage(color)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClientFailed, err)
	}
	if err := c.expectVoid(ctx, asPayload); err != nil {
		return err
	}

	var opponents []game.PlayerColor
	for _, id := range state.TurnOrder {
		if p, ok := state.Players[id]; ok && p.Color != color {
			opponents = append(opponents, p.Color)
		}
	}
	withPayload, err := wire.PlayingWithMessage(opponents)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClientFailed, err)
	}
	return c.expectVoid(ctx, withPayload)
}

func (c *Remote) GetPlacement(ctx context.Context, state *game.GameState) (game.Placement, error) {
	payload, err := wire.SetupMessage(state)
	if err != nil {
		return game.Placement{}, fmt.Errorf("%w: %v", ErrClientFailed, err)
	}
	reply, err := c.call(ctx, payload)
	if err != nil {
		return game.Placement{}, err
	}
	if reply.Kind != wire.ReplyPlacement {
		return game.Placement{}, fmt.Errorf("%w: expected a placement, got shape %d", ErrClientFailed, reply.Kind)
	}
	tile, err := wire.TileFromRowCol(state.Board, reply.Placement)
	if err != nil {
		return game.Placement{}, fmt.Errorf("%w: %v", ErrClientFailed, err)
	}
	return game.Placement{Tile: tile}, nil
}

func (c *Remote) GetMove(ctx context.Context, tree *game.GameTree, sinceLastTurn []game.PlayerMove) (game.Move, error) {
	state := tree.State()
	payload, err := wire.TakeTurnMessage(state, sinceLastTurn)
	if err != nil {
		return game.Move{}, fmt.Errorf("%w: %v", ErrClientFailed, err)
	}
	reply, err := c.call(ctx, payload)
	if err != nil {
		return game.Move{}, err
	}
	if reply.Kind != wire.ReplyMove {
		return game.Move{}, fmt.Errorf("%w: expected a move, got shape %d", ErrClientFailed, reply.Kind)
	}
	move, err := wire.MoveFromWire(state.Board, reply.Move)
	if err != nil {
		return game.Move{}, fmt.Errorf("%w: %v", ErrClientFailed, err)
	}
	return move, nil
}
