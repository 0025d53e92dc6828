// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package selection implements the Finality Target Selector (§4.3)
// and its longest-chain fallback (§4.4): the component the consensus
// voter asks "what should I vote to finalize next".
package selection

import (
	"context"

	"github.com/luxfi/log"

	"github.com/luxfi/pararelay/chain"
	"github.com/luxfi/pararelay/metrics"
	"github.com/luxfi/pararelay/oracle"
)

// DefaultMaxFinalityLag is MAX_FINALITY_LAG (§6): the most unfinalized
// blocks the selector tolerates before forcing a vote regardless of
// what approval voting or disputes report.
const DefaultMaxFinalityLag chain.BlockNumber = 50

// OracleClient is the subset of oracle.Client the selector drives.
// Declared narrowly so tests can substitute a scripted fake without
// standing up a real Bus.
type OracleClient interface {
	Leaves(ctx context.Context) ([]chain.Hash, error)
	BestLeafContaining(ctx context.Context, target chain.Hash) (*chain.Hash, error)
	ApprovedAncestor(ctx context.Context, head chain.Hash, base chain.BlockNumber) (*oracle.HighestApprovedAncestor, error)
	UndisputedChain(ctx context.Context, base chain.BlockNumber, descriptions []oracle.BlockDescription) (*oracle.UndisputedChain, error)
}

// Config tunes a Selector. The zero value is usable: it falls back to
// DefaultMaxFinalityLag, a no-op logger, and a discarding metrics
// sink, matching the teacher's pattern of optional-metrics
// constructors (metrics/metric.go's NewAveragerWithErrs).
type Config struct {
	MaxFinalityLag chain.BlockNumber
	Logger         log.Logger
	Metrics        *metrics.Metrics
}

func (c Config) withDefaults() Config {
	if c.MaxFinalityLag == 0 {
		c.MaxFinalityLag = DefaultMaxFinalityLag
	}
	if c.Logger == nil {
		c.Logger = log.NewNoOpLogger()
	}
	if c.Metrics == nil {
		c.Metrics = metrics.New(nil)
	}
	return c
}

// Selector is the bare, overseer-required implementation (the
// original's SelectRelayChain). It holds only read-only references: a
// header Facade and a cloneable OracleClient, so multiple
// FinalityTarget calls may run concurrently (§5).
type Selector struct {
	facade chain.Facade
	oracle OracleClient
	cfg    Config
}

// NewSelector builds a Selector over facade and oracle.
func NewSelector(facade chain.Facade, oracleClient OracleClient, cfg Config) *Selector {
	return &Selector{facade: facade, oracle: oracleClient, cfg: cfg.withDefaults()}
}

// Leaves returns whatever chain-selection currently reports.
func (s *Selector) Leaves(ctx context.Context) ([]chain.Hash, error) {
	return s.oracle.Leaves(ctx)
}

// BestChain returns the header of the first leaf. An empty leaf set
// is the one place this whole subsystem treats as fatal.
func (s *Selector) BestChain(ctx context.Context) (chain.Header, error) {
	leaves, err := s.Leaves(ctx)
	if err != nil {
		return chain.Header{}, err
	}
	if len(leaves) == 0 {
		return chain.Header{}, ErrEmptyLeaves
	}
	return s.facade.Header(leaves[0])
}

// FinalityTarget runs the four-stage pipeline plus safety-net clamp
// described in §4.3. It returns a non-nil hash; target itself is
// always a safe answer since the caller already considers it
// finalizable.
func (s *Selector) FinalityTarget(ctx context.Context, targetHash chain.Hash, max *chain.BlockNumber) (*chain.Hash, error) {
	// Stage 1: best leaf containing target.
	bestLeaf, err := s.oracle.BestLeafContaining(ctx, targetHash)
	if err != nil {
		return nil, err
	}
	if bestLeaf == nil {
		return &targetHash, nil
	}
	subchainHead := *bestLeaf

	targetNumber, err := s.facade.Number(targetHash)
	if err != nil {
		return nil, err
	}

	// Stage 2: max-number clamp.
	if max != nil {
		if *max <= targetNumber {
			if *max < targetNumber {
				s.cfg.Logger.Warn("finality_target max number is less than target number",
					"maxNumber", *max, "targetNumber", targetNumber)
			}
			return &targetHash, nil
		}

		subchainHeader, err := s.facade.Header(subchainHead)
		if err != nil {
			return nil, err
		}
		if subchainHeader.Number > *max {
			ancestorHash, _, err := chain.WalkBackwards(s.facade, *max, subchainHeader)
			if err != nil {
				return nil, err
			}
			subchainHead = ancestorHash
		}
	}

	initialLeaf := subchainHead
	initialLeafNumber, err := s.facade.Number(initialLeaf)
	if err != nil {
		return nil, err
	}

	// Stage 3: approved-ancestor constraint.
	var subchainNumber chain.BlockNumber
	var descriptions []oracle.BlockDescription
	ancestor, err := s.oracle.ApprovedAncestor(ctx, subchainHead, targetNumber)
	if err != nil {
		return nil, err
	}
	if ancestor == nil {
		subchainHead = targetHash
		subchainNumber = targetNumber
	} else {
		subchainHead = ancestor.Hash
		subchainNumber = ancestor.Number
		descriptions = ancestor.Descriptions
	}

	if expected, ok := checkedSub(subchainNumber, targetNumber); !ok || chain.BlockNumber(len(descriptions)) != expected {
		s.cfg.Logger.Error("mismatch of anticipated block descriptions and block number difference",
			"descriptions", len(descriptions), "targetNumber", targetNumber, "subchainNumber", subchainNumber)
		return &targetHash, nil
	}

	approvalLag := initialLeafNumber.SaturatingSub(subchainNumber)
	s.cfg.Metrics.NoteApprovalCheckingFinalityLag(uint64(approvalLag))

	// Stage 4: undisputed-chain constraint.
	undisputed, err := s.oracle.UndisputedChain(ctx, targetNumber, descriptions)
	if err != nil {
		return nil, err
	}
	if undisputed != nil {
		subchainNumber = undisputed.Number
		subchainHead = undisputed.Hash
	}

	disputeLag := initialLeafNumber.SaturatingSub(subchainNumber)
	s.cfg.Metrics.NoteDisputesFinalityLag(uint64(disputeLag))

	// Stage 5: safety-net clamp, evaluated against the approval lag
	// (not the post-dispute lag) exactly as the original does.
	if approvalLag > s.cfg.MaxFinalityLag {
		safeTargetNumber := initialLeafNumber.SaturatingSub(s.cfg.MaxFinalityLag)
		if safeTargetNumber <= targetNumber {
			return &targetHash, nil
		}

		initialLeafHeader, err := s.facade.Header(initialLeaf)
		if err != nil {
			return nil, err
		}
		forcedHash, _, err := chain.WalkBackwards(s.facade, safeTargetNumber, initialLeafHeader)
		if err != nil {
			return nil, err
		}
		return &forcedHash, nil
	}

	return &subchainHead, nil
}

// checkedSub mirrors Rust's checked_sub: ok is false if n < other.
func checkedSub(n, other chain.BlockNumber) (chain.BlockNumber, bool) {
	if other > n {
		return 0, false
	}
	return n - other, true
}
