// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chain provides the narrow, by-hash header lookup capability
// the finality selector needs from the block store, and nothing else.
package chain

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/luxfi/ids"
)

// Hash identifies a block. It is a thin alias over the node-wide ID
// type so that chain data and p2p/validator identifiers share one
// representation, the same convention the rest of the consensus stack
// uses for ids.ID.
type Hash = ids.ID

// BlockNumber is a relay-chain height. Subtraction saturates at zero
// because lag computations (§3 Finality-lag counters) must never wrap.
type BlockNumber uint64

// SaturatingSub returns n-other, or 0 if that would underflow.
func (n BlockNumber) SaturatingSub(other BlockNumber) BlockNumber {
	if other >= n {
		return 0
	}
	return n - other
}

// Header is the minimal relay-chain header shape the selector and the
// inherent processor need.
type Header struct {
	ParentHash Hash
	Number     BlockNumber
	StateRoot  Hash
}

// Hash deterministically hashes the header's fields. Swap for a real
// trie/SCALE-style encode+hash in a concrete chain implementation;
// this exists so parent-header checks in the inherent processor
// compare against something independent of the caller's recollection
// of its own hash.
func (h Header) Hash() Hash {
	var buf [8 + 32 + 32]byte
	binary.BigEndian.PutUint64(buf[0:8], uint64(h.Number))
	copy(buf[8:40], h.ParentHash[:])
	copy(buf[40:72], h.StateRoot[:])
	return Hash(sha256.Sum256(buf[:]))
}

// Backend is the external header store. Only by-hash lookups are in
// scope (§4.1); the node's real header/number indices live elsewhere.
type Backend interface {
	HeaderByHash(hash Hash) (Header, bool, error)
	NumberByHash(hash Hash) (BlockNumber, bool, error)
}

// LookupError reports a failed header or number lookup against a
// Backend. Missing distinguishes "no such header" from a genuine
// backend error, mirroring the two branches the original selector's
// block_header/block_number helpers returned.
type LookupError struct {
	Hash    Hash
	Missing bool
	Cause   error
}

func (e *LookupError) Error() string {
	if e.Missing {
		return fmt.Sprintf("chain lookup: missing header with hash %s", e.Hash)
	}
	return fmt.Sprintf("chain lookup: lookup failed for hash %s: %v", e.Hash, e.Cause)
}

func (e *LookupError) Unwrap() error { return e.Cause }

// Facade is the narrow capability (§4.1, design note "Backend
// abstraction") the selector is given instead of the whole Backend,
// so tests can substitute an in-memory map without touching the real
// block store.
type Facade interface {
	Header(hash Hash) (Header, error)
	Number(hash Hash) (BlockNumber, error)
}

// BackendFacade adapts a Backend into a Facade, translating "not
// found" and backend errors into a uniform *LookupError.
type BackendFacade struct {
	Backend Backend
}

// NewFacade wraps backend behind the Facade capability.
func NewFacade(backend Backend) *BackendFacade {
	return &BackendFacade{Backend: backend}
}

func (f *BackendFacade) Header(hash Hash) (Header, error) {
	h, ok, err := f.Backend.HeaderByHash(hash)
	if err != nil {
		return Header{}, &LookupError{Hash: hash, Cause: err}
	}
	if !ok {
		return Header{}, &LookupError{Hash: hash, Missing: true}
	}
	return h, nil
}

func (f *BackendFacade) Number(hash Hash) (BlockNumber, error) {
	n, ok, err := f.Backend.NumberByHash(hash)
	if err != nil {
		return 0, &LookupError{Hash: hash, Cause: err}
	}
	if !ok {
		return 0, &LookupError{Hash: hash, Missing: true}
	}
	return n, nil
}

// WalkBackwards follows ParentHash from `from` until it reaches
// `target`, using only Number and ParentHash of fetched headers. It
// is the shared helper design note §9 calls for: used by both the
// max-number clamp and the safety-net clamp, and runs in
// O(height difference).
func WalkBackwards(facade Facade, target BlockNumber, from Header) (Hash, Header, error) {
	if from.Number < target {
		return Hash{}, Header{}, fmt.Errorf("chain: walk backwards target %d is above starting height %d", target, from.Number)
	}
	current := from
	currentHash := from.Hash()
	for current.Number > target {
		h, err := facade.Header(current.ParentHash)
		if err != nil {
			return Hash{}, Header{}, err
		}
		currentHash = current.ParentHash
		current = h
	}
	return currentHash, current, nil
}
