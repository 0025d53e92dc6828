// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import (
	"context"

	"github.com/luxfi/pararelay/chain"
	"github.com/luxfi/pararelay/oracle"
)

// WithFallback is the consensus-facing selector: it dispatches every
// call to the bare Selector when the overseer is connected, and to
// the longest-chain Fallback otherwise. The switch is a runtime
// predicate checked on every call — no caching (§4.4).
type WithFallback struct {
	selector *Selector
	fallback *Fallback
	checker  oracle.ConnectionChecker
}

// NewWithFallback wires selector and fallback behind checker's
// connected/disconnected predicate.
func NewWithFallback(selector *Selector, fallback *Fallback, checker oracle.ConnectionChecker) *WithFallback {
	return &WithFallback{selector: selector, fallback: fallback, checker: checker}
}

func (w *WithFallback) disconnected() bool {
	return !w.checker.IsConnected()
}

func (w *WithFallback) Leaves(ctx context.Context) ([]chain.Hash, error) {
	if w.disconnected() {
		return w.fallback.Leaves(ctx)
	}
	return w.selector.Leaves(ctx)
}

func (w *WithFallback) BestChain(ctx context.Context) (chain.Header, error) {
	if w.disconnected() {
		return w.fallback.BestChain(ctx)
	}
	return w.selector.BestChain(ctx)
}

func (w *WithFallback) FinalityTarget(ctx context.Context, targetHash chain.Hash, max *chain.BlockNumber) (*chain.Hash, error) {
	if w.disconnected() {
		return w.fallback.FinalityTarget(ctx, targetHash, max)
	}
	return w.selector.FinalityTarget(ctx, targetHash, max)
}
