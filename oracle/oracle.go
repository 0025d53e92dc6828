// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package oracle implements send-and-await messaging to the
// chain-selection, approval-voting, and dispute-coordinator
// subsystems over a shared overseer bus (§4.2). Every operation is a
// suspension point: the caller blocks on a single-element reply
// channel until the destination subsystem answers or drops it.
package oracle

import (
	"context"
	"errors"

	"github.com/luxfi/pararelay/chain"
)

// ErrOverseerDisconnected is returned when a reply channel is closed
// by the bus without a value ever being sent on it — the Go analogue
// of a dropped oneshot sender. Callers surface this as a consensus
// error (§7).
var ErrOverseerDisconnected = errors.New("oracle: overseer disconnected")

// BlockDescription describes one relay-chain block above a base
// height (§3).
type BlockDescription struct {
	BlockHash           chain.Hash
	CandidateHashPerCore []chain.Hash
}

// HighestApprovedAncestor is the approval-voting subsystem's reply
// shape (§3).
type HighestApprovedAncestor struct {
	Hash         chain.Hash
	Number       chain.BlockNumber
	Descriptions []BlockDescription
}

// UndisputedChain is the dispute-coordinator's reply shape for
// DetermineUndisputedChain.
type UndisputedChain struct {
	Number chain.BlockNumber
	Hash   chain.Hash
}

// Bus is the overseer's message-passing contract (§6 Oracle
// messages): one method per message variant, each taking the reply
// channel the caller will block on. A real overseer implementation
// delivers the request to the owning subsystem and has that subsystem
// send exactly once on reply; if the subsystem (or the bus itself) is
// gone, it closes reply without sending.
type Bus interface {
	SendLeaves(origin string, reply chan<- []chain.Hash)
	SendBestLeafContaining(origin string, target chain.Hash, reply chan<- *chain.Hash)
	SendApprovedAncestor(origin string, head chain.Hash, base chain.BlockNumber, reply chan<- *HighestApprovedAncestor)
	SendDetermineUndisputedChain(origin string, base chain.BlockNumber, descriptions []BlockDescription, reply chan<- *UndisputedChain)
}

// ConnectionChecker reports whether the bus currently has a live
// overseer behind it, used by the fallback dispatch in §4.4. It is
// its own interface because a bus under test may be permanently
// connected.
type ConnectionChecker interface {
	IsConnected() bool
}

// origin tags every request for diagnostics only (§4.2); it never
// affects routing or semantics.
const origin = "pararelay/selection"

// Client sends typed requests over Bus and awaits single-shot
// replies, translating a dropped reply into ErrOverseerDisconnected.
type Client struct {
	Bus Bus
}

// NewClient wraps bus behind the Client capability.
func NewClient(bus Bus) *Client {
	return &Client{Bus: bus}
}

// await blocks on reply until a value arrives, reply is closed, or
// ctx is done. A closed channel with no value is read as a dropped
// oneshot, i.e. overseer disconnection; there is no explicit cancel
// message (§5).
func await[T any](ctx context.Context, reply <-chan T) (T, error) {
	var zero T
	select {
	case v, ok := <-reply:
		if !ok {
			return zero, ErrOverseerDisconnected
		}
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Leaves asks chain-selection for every current leaf.
func (c *Client) Leaves(ctx context.Context) ([]chain.Hash, error) {
	reply := make(chan []chain.Hash, 1)
	c.Bus.SendLeaves(origin, reply)
	return await(ctx, reply)
}

// BestLeafContaining asks chain-selection for the best leaf
// descending from target, or nil if none is viable.
func (c *Client) BestLeafContaining(ctx context.Context, target chain.Hash) (*chain.Hash, error) {
	reply := make(chan *chain.Hash, 1)
	c.Bus.SendBestLeafContaining(origin, target, reply)
	return await(ctx, reply)
}

// ApprovedAncestor asks approval-voting for the highest ancestor of
// head, above base, that is fully approved.
func (c *Client) ApprovedAncestor(ctx context.Context, head chain.Hash, base chain.BlockNumber) (*HighestApprovedAncestor, error) {
	reply := make(chan *HighestApprovedAncestor, 1)
	c.Bus.SendApprovedAncestor(origin, head, base, reply)
	return await(ctx, reply)
}

// UndisputedChain asks the dispute coordinator to narrow
// [base+1..base+len(descriptions)] to the longest undisputed prefix.
func (c *Client) UndisputedChain(ctx context.Context, base chain.BlockNumber, descriptions []BlockDescription) (*UndisputedChain, error) {
	reply := make(chan *UndisputedChain, 1)
	c.Bus.SendDetermineUndisputedChain(origin, base, descriptions, reply)
	return await(ctx, reply)
}
