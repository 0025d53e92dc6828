// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/pararelay/chain"
	"github.com/luxfi/pararelay/internal/testutil"
	"github.com/luxfi/pararelay/selection"
)

type staticLeaves struct {
	hashes []chain.Hash
	err    error
}

func (s staticLeaves) Leaves() ([]chain.Hash, error) { return s.hashes, s.err }

func TestFallbackFinalityTargetPicksLongestDescendant(t *testing.T) {
	backend := testutil.NewMemBackend()
	heights := buildLinearChain(backend, 20)
	target := heights[5]

	// a second, shorter fork off height 5 that doesn't reach as far
	shortFork := chain.Header{ParentHash: target, Number: 6}
	shortForkHash := backend.Put(shortFork)

	leaves := staticLeaves{hashes: []chain.Hash{shortForkHash, heights[20]}}
	facade := chain.NewFacade(backend)
	fb := selection.NewFallback(facade, leaves)

	got, err := fb.FinalityTarget(context.Background(), target, nil)
	require.NoError(t, err)
	require.Equal(t, heights[20], *got)
}

func TestFallbackFinalityTargetNoDescendant(t *testing.T) {
	backend := testutil.NewMemBackend()
	heights := buildLinearChain(backend, 20)
	target := heights[5]

	// a second chain, rooted at a distinct genesis so its hashes never
	// coincide with the target's chain, that reaches past target's height
	// without ever descending from it.
	otherGenesis := chain.Header{Number: 0, StateRoot: chain.Hash{0x7A}}
	otherHashes := make([]chain.Hash, 11)
	otherHashes[0] = backend.Put(otherGenesis)
	parent := otherGenesis
	for i := 1; i <= 10; i++ {
		h := chain.Header{ParentHash: parent.Hash(), Number: chain.BlockNumber(i)}
		otherHashes[i] = backend.Put(h)
		parent = h
	}

	leaves := staticLeaves{hashes: []chain.Hash{otherHashes[10]}}
	facade := chain.NewFacade(backend)
	fb := selection.NewFallback(facade, leaves)

	got, err := fb.FinalityTarget(context.Background(), target, nil)
	require.NoError(t, err)
	require.Equal(t, target, *got)
}

func TestFallbackBestChainEmptyLeaves(t *testing.T) {
	backend := testutil.NewMemBackend()
	facade := chain.NewFacade(backend)
	fb := selection.NewFallback(facade, staticLeaves{})

	_, err := fb.BestChain(context.Background())
	require.ErrorIs(t, err, selection.ErrEmptyLeaves)
}

func TestFallbackFinalityTargetRespectsMax(t *testing.T) {
	backend := testutil.NewMemBackend()
	heights := buildLinearChain(backend, 20)
	target := heights[0]
	leaves := staticLeaves{hashes: []chain.Hash{heights[20]}}
	facade := chain.NewFacade(backend)
	fb := selection.NewFallback(facade, leaves)

	max := chain.BlockNumber(10)
	got, err := fb.FinalityTarget(context.Background(), target, &max)
	require.NoError(t, err)
	require.Equal(t, heights[10], *got)
}
