// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package inherent implements the Parachains Inherent Processor
// (§4.5) and the Weight/Truncation Policy (§4.6): the single
// mandatory per-block transaction that absorbs one round of
// parachain activity.
package inherent

import "github.com/luxfi/pararelay/chain"

// CoreIndex identifies an availability core, a scheduling slot that
// can host one parachain at a time.
type CoreIndex uint32

// ParaID identifies a parachain.
type ParaID uint32

// GroupIndex identifies a validator group assigned to a core.
type GroupIndex uint32

// ValidatorIndex identifies a validator within a session.
type ValidatorIndex uint32

// FreedReason is why a compute slot became free, used by the
// scheduler to decide re-queuing policy (§3).
type FreedReason int

const (
	FreedConcluded FreedReason = iota
	FreedTimedOut
	FreedDisputeConcluded
)

func (r FreedReason) String() string {
	switch r {
	case FreedConcluded:
		return "concluded"
	case FreedTimedOut:
		return "timed_out"
	case FreedDisputeConcluded:
		return "dispute_concluded"
	default:
		return "unknown"
	}
}

// Freed pairs a core with the reason it was freed this block.
type Freed struct {
	Core   CoreIndex
	Reason FreedReason
}

// Bitfield is one validator's availability attestation: one bit per
// availability core.
type Bitfield []bool

// Commitments carries whatever a backed candidate commits to that the
// weight policy and inclusion processing care about. NewValidationCode is nil
// unless the candidate upgrades the parachain's validation code —
// distinct from an empty-but-present upgrade, so it is a pointer
// rather than a zero-length-means-absent slice.
type Commitments struct {
	NewValidationCode *[]byte
}

// HasCodeUpgrade reports whether this candidate carries a validation
// code upgrade.
func (c Commitments) HasCodeUpgrade() bool {
	return c.NewValidationCode != nil
}

// BackedCandidate is a parachain block proposal endorsed by a quorum
// of assigned validators.
type BackedCandidate struct {
	CandidateHash chain.Hash
	CoreIndex     CoreIndex
	Commitments   Commitments
}

// DisputeStatementSet is one multi-dispute statement bundle submitted
// in an inherent.
type DisputeStatementSet struct {
	CandidateHash chain.Hash
	Session       uint32
}

// FreshDispute is a dispute the dispute module accepted as new this
// block, tagged with the session it concerns.
type FreshDispute struct {
	Session       uint32
	CandidateHash chain.Hash
}

// FreedConcludedCandidate pairs a core with the candidate whose
// availability just concluded on it.
type FreedConcludedCandidate struct {
	Core          CoreIndex
	CandidateHash chain.Hash
}

// CoreAssignment is a scheduler's record of which para occupies which
// core, for which group is responsible for backing it.
type CoreAssignment struct {
	Core  CoreIndex
	Para  ParaID
	Group GroupIndex
}

// ParaInherentData is the payload of the single parachains inherent
// for one relay block (§3).
type ParaInherentData struct {
	Bitfields        []Bitfield
	BackedCandidates []BackedCandidate
	Disputes         []DisputeStatementSet
	ParentHeader     chain.Header
}

// PostInfo is the post-dispatch weight returned from Enter, used by
// the runtime to refund unused weight against the pre-declared
// mandatory-extrinsic weight.
type PostInfo struct {
	ActualWeight uint64
}

// Origin distinguishes how Enter was invoked. Only OriginNone
// (unsigned inherent origin) is accepted.
type Origin int

const (
	OriginNone Origin = iota
	OriginSigned
	OriginRoot
)

// Weight constants (§6). In the future these should be benchmarked;
// for now they are untested assumptions carried over unchanged from
// the original.
const (
	BackedCandidateWeight             uint64 = 100_000
	inclusionInherentClaimedWeight    uint64 = 1_000_000_000
	MinimalInclusionInherentWeight    uint64 = inclusionInherentClaimedWeight / 4
)

// InherentIdentifier is the fixed 8-byte tag used by the inherent-data
// provider registry to find this module's payload (§6).
var InherentIdentifier = [8]byte{'p', 'a', 'r', 'a', 'c', 'h', 'n', '0'}
