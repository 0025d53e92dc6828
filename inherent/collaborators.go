// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package inherent

import "github.com/luxfi/pararelay/chain"

// System is the narrow slice of runtime/system state Enter reads and
// is out of this module's scope to implement (§1): the parent hash it
// must match, the current session, the current block number, and the
// weight already consumed by the block before this inherent runs.
type System interface {
	ParentHash() chain.Hash
	BlockNumber() chain.BlockNumber
	SessionIndex() uint32
	ConsumedWeight() uint64
}

// AvailabilityTimeoutPredicate reports whether a pending core has
// timed out waiting for availability.
type AvailabilityTimeoutPredicate func(CoreIndex) bool

// GroupValidatorsFunc resolves which validators belong to a group.
type GroupValidatorsFunc func(GroupIndex) []ValidatorIndex

// DisputesHandler is the dispute-coordinator's runtime-side contract
// (§4.5 steps 2, 3, 4, 8; out of scope to implement per §1).
type DisputesHandler interface {
	// ProvideMultiDisputeData ingests a batch of dispute statement
	// sets and returns the subset that are fresh.
	ProvideMultiDisputeData(disputes []DisputeStatementSet) ([]FreshDispute, error)
	// IsFrozen reports whether a supermajority-validity dispute has
	// concluded against a finalized block, freezing the chain.
	IsFrozen() bool
	// NoteIncluded records that a candidate was included this
	// session and block, so disputes can later be raised against it.
	NoteIncluded(session uint32, candidateHash chain.Hash, now chain.BlockNumber)
	// CouldBeInvalid reports whether the candidate's hash is flagged
	// as potentially invalid for the given session.
	CouldBeInvalid(session uint32, candidateHash chain.Hash) bool
	// FilterMultiDisputeData drops dispute statements that are
	// already stale, used by CreateInherent before the dry run.
	FilterMultiDisputeData(disputes []DisputeStatementSet) []DisputeStatementSet
}

// InclusionModule is the inclusion pallet's runtime-side contract
// (§4.5 steps 3, 4, 9; out of scope to implement per §1).
type InclusionModule interface {
	// CollectDisputed returns the cores occupied by the given
	// disputed candidate hashes.
	CollectDisputed(candidateHashes []chain.Hash) []CoreIndex
	// ProcessBitfields applies availability bitfields and returns the
	// (core, candidate) pairs whose availability just concluded.
	ProcessBitfields(expectedBits int, bitfields []Bitfield, coreToPara func(CoreIndex) (ParaID, bool)) ([]FreedConcludedCandidate, error)
	// CollectPending returns cores matching the availability-timeout
	// predicate.
	CollectPending(pred AvailabilityTimeoutPredicate) []CoreIndex
	// ProcessCandidates backs the surviving candidates against
	// scheduled cores and returns the cores newly occupied.
	ProcessCandidates(parentStorageRoot chain.Hash, candidates []BackedCandidate, scheduled []CoreAssignment, groupValidators GroupValidatorsFunc) ([]CoreIndex, error)
}

// Scheduler is the scheduler pallet's runtime-side contract (§4.5
// steps 4-6, 9; out of scope to implement per §1).
type Scheduler interface {
	AvailabilityCores() []CoreIndex
	AvailabilityTimeoutPredicate() (AvailabilityTimeoutPredicate, bool)
	CoreToPara(core CoreIndex) (ParaID, bool)
	Clear()
	Schedule(freed []Freed, now chain.BlockNumber)
	Scheduled() []CoreAssignment
	GroupValidators(group GroupIndex) []ValidatorIndex
	Occupied(cores []CoreIndex)
}

// UpwardMessages is the UMP pallet's runtime-side contract (§4.5 step
// 10; out of scope to implement per §1).
type UpwardMessages interface {
	ProcessPendingUpwardMessages()
}
