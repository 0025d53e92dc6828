// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package oracle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/pararelay/chain"
	"github.com/luxfi/pararelay/internal/testutil"
	"github.com/luxfi/pararelay/oracle"
)

func TestLeavesHappyPath(t *testing.T) {
	want := []chain.Hash{{1}, {2}}
	bus := &testutil.FakeBus{LeavesResult: want}
	client := oracle.NewClient(bus)

	got, err := client.Leaves(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLeavesDisconnected(t *testing.T) {
	bus := &testutil.FakeBus{LeavesDisconnected: true}
	client := oracle.NewClient(bus)

	_, err := client.Leaves(context.Background())
	require.ErrorIs(t, err, oracle.ErrOverseerDisconnected)
}

func TestBestLeafContainingNone(t *testing.T) {
	bus := &testutil.FakeBus{BestLeafResult: nil}
	client := oracle.NewClient(bus)

	got, err := client.BestLeafContaining(context.Background(), chain.Hash{9})
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestApprovedAncestorDisconnected(t *testing.T) {
	bus := &testutil.FakeBus{ApprovedAncestorDisconnected: true}
	client := oracle.NewClient(bus)

	_, err := client.ApprovedAncestor(context.Background(), chain.Hash{1}, 5)
	require.ErrorIs(t, err, oracle.ErrOverseerDisconnected)
}

func TestContextCancellation(t *testing.T) {
	bus := &blockingBus{}
	client := oracle.NewClient(bus)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Leaves(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// blockingBus never replies, used to exercise ctx.Done() cancellation.
type blockingBus struct{}

func (blockingBus) SendLeaves(string, chan<- []chain.Hash)                                    {}
func (blockingBus) SendBestLeafContaining(string, chain.Hash, chan<- *chain.Hash)              {}
func (blockingBus) SendApprovedAncestor(string, chain.Hash, chain.BlockNumber, chan<- *oracle.HighestApprovedAncestor) {
}
func (blockingBus) SendDetermineUndisputedChain(string, chain.BlockNumber, []oracle.BlockDescription, chan<- *oracle.UndisputedChain) {
}
