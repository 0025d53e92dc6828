// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/pararelay/chain"
)

type memBackend struct {
	headers map[chain.Hash]chain.Header
	numbers map[chain.Hash]chain.BlockNumber
	err     error
}

func (m *memBackend) HeaderByHash(hash chain.Hash) (chain.Header, bool, error) {
	if m.err != nil {
		return chain.Header{}, false, m.err
	}
	h, ok := m.headers[hash]
	return h, ok, nil
}

func (m *memBackend) NumberByHash(hash chain.Hash) (chain.BlockNumber, bool, error) {
	if m.err != nil {
		return 0, false, m.err
	}
	n, ok := m.numbers[hash]
	return n, ok, nil
}

func TestFacadeHeaderMissing(t *testing.T) {
	backend := &memBackend{headers: map[chain.Hash]chain.Header{}}
	facade := chain.NewFacade(backend)

	_, err := facade.Header(chain.Hash{1})
	require.Error(t, err)

	var lookupErr *chain.LookupError
	require.True(t, errors.As(err, &lookupErr))
	require.True(t, lookupErr.Missing)
}

func TestFacadeNumberBackendError(t *testing.T) {
	backend := &memBackend{err: errors.New("disk fault")}
	facade := chain.NewFacade(backend)

	_, err := facade.Number(chain.Hash{1})
	require.Error(t, err)

	var lookupErr *chain.LookupError
	require.True(t, errors.As(err, &lookupErr))
	require.False(t, lookupErr.Missing)
	require.ErrorContains(t, err, "disk fault")
}

func TestSaturatingSub(t *testing.T) {
	require.Equal(t, chain.BlockNumber(0), chain.BlockNumber(5).SaturatingSub(10))
	require.Equal(t, chain.BlockNumber(5), chain.BlockNumber(10).SaturatingSub(5))
}

func buildChain(base chain.Header, n int) []chain.Header {
	headers := make([]chain.Header, 0, n)
	parent := base
	for i := 0; i < n; i++ {
		h := chain.Header{ParentHash: parent.Hash(), Number: parent.Number + 1}
		headers = append(headers, h)
		parent = h
	}
	return headers
}

func TestWalkBackwards(t *testing.T) {
	genesis := chain.Header{Number: 0}
	chainHeaders := buildChain(genesis, 10)

	backend := &memBackend{headers: map[chain.Hash]chain.Header{genesis.Hash(): genesis}}
	for _, h := range chainHeaders {
		backend.headers[h.Hash()] = h
	}
	facade := chain.NewFacade(backend)

	tip := chainHeaders[len(chainHeaders)-1]
	hash, header, err := chain.WalkBackwards(facade, 4, tip)
	require.NoError(t, err)
	require.Equal(t, chain.BlockNumber(4), header.Number)
	require.Equal(t, chainHeaders[3].Hash(), hash)
}

func TestWalkBackwardsAboveStart(t *testing.T) {
	facade := chain.NewFacade(&memBackend{})
	_, _, err := chain.WalkBackwards(facade, 10, chain.Header{Number: 3})
	require.Error(t, err)
}
