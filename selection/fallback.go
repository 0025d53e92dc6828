// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import (
	"context"

	"github.com/luxfi/pararelay/chain"
)

// LeafSource is the longest-chain backend capability (§4.4): the
// chain backend's notion of "current leaves", used only while the
// overseer is disconnected.
type LeafSource interface {
	Leaves() ([]chain.Hash, error)
}

// Fallback is the longest-chain selector used at startup, shutdown,
// or on a deployment that never enabled parachains. It never talks to
// the oracle bus.
type Fallback struct {
	facade chain.Facade
	leaves LeafSource
}

// NewFallback builds a Fallback over facade and leaves.
func NewFallback(facade chain.Facade, leaves LeafSource) *Fallback {
	return &Fallback{facade: facade, leaves: leaves}
}

func (f *Fallback) Leaves(context.Context) ([]chain.Hash, error) {
	return f.leaves.Leaves()
}

func (f *Fallback) BestChain(ctx context.Context) (chain.Header, error) {
	leaves, err := f.leaves.Leaves()
	if err != nil {
		return chain.Header{}, err
	}
	if len(leaves) == 0 {
		return chain.Header{}, ErrEmptyLeaves
	}
	return f.facade.Header(leaves[0])
}

// FinalityTarget applies only the longest-chain rule: the best leaf
// descending from target, clamped to max if given. There is no
// approval-voting or dispute constraint to apply while disconnected.
func (f *Fallback) FinalityTarget(ctx context.Context, targetHash chain.Hash, max *chain.BlockNumber) (*chain.Hash, error) {
	leaves, err := f.leaves.Leaves()
	if err != nil {
		return nil, err
	}

	targetNumber, err := f.facade.Number(targetHash)
	if err != nil {
		return nil, err
	}

	var best *chain.Header
	var bestHash chain.Hash
	for _, leafHash := range leaves {
		leaf, err := f.facade.Header(leafHash)
		if err != nil {
			return nil, err
		}
		if leaf.Number < targetNumber {
			continue
		}
		ancestorHash, _, err := chain.WalkBackwards(f.facade, targetNumber, leaf)
		if err != nil {
			return nil, err
		}
		if ancestorHash != targetHash {
			continue
		}
		if best == nil || leaf.Number > best.Number {
			leafCopy := leaf
			best = &leafCopy
			bestHash = leafHash
		}
	}

	if best == nil {
		return &targetHash, nil
	}

	if max == nil || best.Number <= *max {
		return &bestHash, nil
	}

	ancestorHash, _, err := chain.WalkBackwards(f.facade, *max, *best)
	if err != nil {
		return nil, err
	}
	return &ancestorHash, nil
}
