// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutil

import (
	"github.com/luxfi/pararelay/chain"
	"github.com/luxfi/pararelay/inherent"
)

// FakeSystem is a scripted inherent.System.
type FakeSystem struct {
	Parent   chain.Hash
	Number   chain.BlockNumber
	Session  uint32
	Consumed uint64
}

func (s *FakeSystem) ParentHash() chain.Hash        { return s.Parent }
func (s *FakeSystem) BlockNumber() chain.BlockNumber { return s.Number }
func (s *FakeSystem) SessionIndex() uint32           { return s.Session }
func (s *FakeSystem) ConsumedWeight() uint64         { return s.Consumed }

// FakeDisputes is a scripted inherent.DisputesHandler.
type FakeDisputes struct {
	Fresh              []inherent.FreshDispute
	ProvideErr         error
	Frozen             bool
	CouldBeInvalidSet  map[chain.Hash]bool
	FilteredOutHashes  map[chain.Hash]bool
	NotedIncluded      []chain.Hash
}

func (d *FakeDisputes) ProvideMultiDisputeData(_ []inherent.DisputeStatementSet) ([]inherent.FreshDispute, error) {
	return d.Fresh, d.ProvideErr
}

func (d *FakeDisputes) IsFrozen() bool { return d.Frozen }

func (d *FakeDisputes) NoteIncluded(_ uint32, candidateHash chain.Hash, _ chain.BlockNumber) {
	d.NotedIncluded = append(d.NotedIncluded, candidateHash)
}

func (d *FakeDisputes) CouldBeInvalid(_ uint32, candidateHash chain.Hash) bool {
	return d.CouldBeInvalidSet[candidateHash]
}

func (d *FakeDisputes) FilterMultiDisputeData(disputes []inherent.DisputeStatementSet) []inherent.DisputeStatementSet {
	if d.FilteredOutHashes == nil {
		return disputes
	}
	out := make([]inherent.DisputeStatementSet, 0, len(disputes))
	for _, ds := range disputes {
		if !d.FilteredOutHashes[ds.CandidateHash] {
			out = append(out, ds)
		}
	}
	return out
}

// FakeInclusion is a scripted inherent.InclusionModule.
type FakeInclusion struct {
	DisputedCores    map[chain.Hash]inherent.CoreIndex
	BitfieldsFreed   []inherent.FreedConcludedCandidate
	BitfieldsErr     error
	PendingCores     []inherent.CoreIndex
	ProcessOccupied  []inherent.CoreIndex
	ProcessErr       error
	ProcessedArgs    []inherent.BackedCandidate
}

func (i *FakeInclusion) CollectDisputed(candidateHashes []chain.Hash) []inherent.CoreIndex {
	out := make([]inherent.CoreIndex, 0, len(candidateHashes))
	for _, h := range candidateHashes {
		if core, ok := i.DisputedCores[h]; ok {
			out = append(out, core)
		}
	}
	return out
}

func (i *FakeInclusion) ProcessBitfields(_ int, _ []inherent.Bitfield, _ func(inherent.CoreIndex) (inherent.ParaID, bool)) ([]inherent.FreedConcludedCandidate, error) {
	return i.BitfieldsFreed, i.BitfieldsErr
}

func (i *FakeInclusion) CollectPending(_ inherent.AvailabilityTimeoutPredicate) []inherent.CoreIndex {
	return i.PendingCores
}

func (i *FakeInclusion) ProcessCandidates(_ chain.Hash, candidates []inherent.BackedCandidate, _ []inherent.CoreAssignment, _ inherent.GroupValidatorsFunc) ([]inherent.CoreIndex, error) {
	i.ProcessedArgs = candidates
	return i.ProcessOccupied, i.ProcessErr
}

// FakeScheduler is a scripted inherent.Scheduler.
type FakeScheduler struct {
	Cores             []inherent.CoreIndex
	TimeoutPredicate  inherent.AvailabilityTimeoutPredicate
	HasTimeout        bool
	CoreParas         map[inherent.CoreIndex]inherent.ParaID
	ScheduledAssigns  []inherent.CoreAssignment
	ClearCalled       bool
	ScheduledFreed    []inherent.Freed
	OccupiedCores     []inherent.CoreIndex
}

func (s *FakeScheduler) AvailabilityCores() []inherent.CoreIndex { return s.Cores }

func (s *FakeScheduler) AvailabilityTimeoutPredicate() (inherent.AvailabilityTimeoutPredicate, bool) {
	return s.TimeoutPredicate, s.HasTimeout
}

func (s *FakeScheduler) CoreToPara(core inherent.CoreIndex) (inherent.ParaID, bool) {
	p, ok := s.CoreParas[core]
	return p, ok
}

func (s *FakeScheduler) Clear() { s.ClearCalled = true }

func (s *FakeScheduler) Schedule(freed []inherent.Freed, _ chain.BlockNumber) {
	s.ScheduledFreed = freed
}

func (s *FakeScheduler) Scheduled() []inherent.CoreAssignment { return s.ScheduledAssigns }

func (s *FakeScheduler) GroupValidators(inherent.GroupIndex) []inherent.ValidatorIndex { return nil }

func (s *FakeScheduler) Occupied(cores []inherent.CoreIndex) { s.OccupiedCores = cores }

// FakeUMP is a scripted inherent.UpwardMessages.
type FakeUMP struct {
	Called bool
}

func (u *FakeUMP) ProcessPendingUpwardMessages() { u.Called = true }
