// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package testutil holds hand-written fakes shared by this module's
// test suites, in the manner of the teacher's beamtest and
// sendertest packages rather than generated mocks.
package testutil

import (
	"github.com/luxfi/pararelay/chain"
	"github.com/luxfi/pararelay/oracle"
)

// FakeBus is a scripted, synchronous implementation of oracle.Bus.
// Each Send method answers immediately from the scripted fields
// below, or closes the reply channel without sending when the
// matching *Disconnected flag is set, simulating a dropped oneshot.
type FakeBus struct {
	LeavesResult []chain.Hash
	LeavesDisconnected bool

	BestLeafResult       *chain.Hash
	BestLeafDisconnected bool

	ApprovedAncestorResult       *oracle.HighestApprovedAncestor
	ApprovedAncestorDisconnected bool

	UndisputedChainResult       *oracle.UndisputedChain
	UndisputedChainDisconnected bool

	Connected bool
}

func (b *FakeBus) SendLeaves(_ string, reply chan<- []chain.Hash) {
	if b.LeavesDisconnected {
		close(reply)
		return
	}
	reply <- b.LeavesResult
}

func (b *FakeBus) SendBestLeafContaining(_ string, _ chain.Hash, reply chan<- *chain.Hash) {
	if b.BestLeafDisconnected {
		close(reply)
		return
	}
	reply <- b.BestLeafResult
}

func (b *FakeBus) SendApprovedAncestor(_ string, _ chain.Hash, _ chain.BlockNumber, reply chan<- *oracle.HighestApprovedAncestor) {
	if b.ApprovedAncestorDisconnected {
		close(reply)
		return
	}
	reply <- b.ApprovedAncestorResult
}

func (b *FakeBus) SendDetermineUndisputedChain(_ string, _ chain.BlockNumber, _ []oracle.BlockDescription, reply chan<- *oracle.UndisputedChain) {
	if b.UndisputedChainDisconnected {
		close(reply)
		return
	}
	reply <- b.UndisputedChainResult
}

func (b *FakeBus) IsConnected() bool { return b.Connected }

// MemBackend is an in-memory chain.Backend keyed by header hash.
type MemBackend struct {
	Headers map[chain.Hash]chain.Header
	Err     error
}

func NewMemBackend() *MemBackend {
	return &MemBackend{Headers: make(map[chain.Hash]chain.Header)}
}

func (m *MemBackend) Put(h chain.Header) chain.Hash {
	hash := h.Hash()
	m.Headers[hash] = h
	return hash
}

func (m *MemBackend) HeaderByHash(hash chain.Hash) (chain.Header, bool, error) {
	if m.Err != nil {
		return chain.Header{}, false, m.Err
	}
	h, ok := m.Headers[hash]
	return h, ok, nil
}

func (m *MemBackend) NumberByHash(hash chain.Hash) (chain.BlockNumber, bool, error) {
	if m.Err != nil {
		return 0, false, m.Err
	}
	h, ok := m.Headers[hash]
	return h.Number, ok, nil
}
