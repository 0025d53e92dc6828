// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/pararelay/chain"
	"github.com/luxfi/pararelay/internal/testutil"
	"github.com/luxfi/pararelay/oracle"
	"github.com/luxfi/pararelay/selection"
)

type staticChecker struct{ connected bool }

func (c staticChecker) IsConnected() bool { return c.connected }

func TestWithFallbackUsesSelectorWhenConnected(t *testing.T) {
	backend := testutil.NewMemBackend()
	target := backend.Put(chain.Header{Number: 1})
	facade := chain.NewFacade(backend)

	bus := &testutil.FakeBus{BestLeafResult: &target}
	client := oracle.NewClient(bus)
	sel := selection.NewSelector(facade, client, selection.Config{})
	fb := selection.NewFallback(facade, staticLeaves{hashes: []chain.Hash{target}})

	wf := selection.NewWithFallback(sel, fb, staticChecker{connected: true})
	got, err := wf.FinalityTarget(context.Background(), target, nil)
	require.NoError(t, err)
	require.Equal(t, target, *got)
}

func TestWithFallbackUsesFallbackWhenDisconnected(t *testing.T) {
	backend := testutil.NewMemBackend()
	target := backend.Put(chain.Header{Number: 1})
	facade := chain.NewFacade(backend)

	bus := &testutil.FakeBus{BestLeafDisconnected: true}
	client := oracle.NewClient(bus)
	sel := selection.NewSelector(facade, client, selection.Config{})
	fb := selection.NewFallback(facade, staticLeaves{hashes: []chain.Hash{target}})

	wf := selection.NewWithFallback(sel, fb, staticChecker{connected: false})
	got, err := wf.BestChain(context.Background())
	require.NoError(t, err)
	require.Equal(t, chain.BlockNumber(1), got.Number)
}

func TestWithFallbackLeavesPropagatesSelectorError(t *testing.T) {
	backend := testutil.NewMemBackend()
	facade := chain.NewFacade(backend)

	bus := &testutil.FakeBus{LeavesDisconnected: true}
	client := oracle.NewClient(bus)
	sel := selection.NewSelector(facade, client, selection.Config{})
	fb := selection.NewFallback(facade, staticLeaves{})

	wf := selection.NewWithFallback(sel, fb, staticChecker{connected: true})
	_, err := wf.Leaves(context.Background())
	require.Error(t, err)
}
