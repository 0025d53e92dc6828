// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package inherent

import (
	"sort"

	"github.com/luxfi/pararelay/chain"
)

// Processor runs the single mandatory parachains inherent for a
// relay-chain block (§4.5). It is strictly single-threaded and
// non-suspending within the transaction that contains it (§5). Enter
// writes to its collaborators step by step and does not undo those
// writes when a later step returns an error; only the Included flag
// is left unset on error. All-or-nothing commit comes from the
// transaction the caller runs Enter in.
type Processor struct {
	Disputes  DisputesHandler
	Inclusion InclusionModule
	Scheduler Scheduler
	UMP       UpwardMessages
	System    System

	included            IncludedCell
	maxBlockWeightValue uint64
}

// NewProcessor wires the inherent processor's collaborators. Included
// starts unset, as it must at the beginning of every block.
func NewProcessor(disputes DisputesHandler, inclusion InclusionModule, scheduler Scheduler, ump UpwardMessages, system System) *Processor {
	return &Processor{
		Disputes:  disputes,
		Inclusion: inclusion,
		Scheduler: scheduler,
		UMP:       ump,
		System:    system,
	}
}

// Enter runs the eleven-step pipeline of §4.5. It is the transaction
// body invoked exactly once per block.
func (p *Processor) Enter(origin Origin, data ParaInherentData) (PostInfo, error) {
	// Step 1: preconditions.
	if origin != OriginNone {
		return PostInfo{}, ErrBadOrigin
	}
	if p.included.IsSet() {
		return PostInfo{}, ErrTooManyInclusionInherents
	}
	if data.ParentHeader.Hash() != p.System.ParentHash() {
		return PostInfo{}, ErrInvalidParentHeader
	}

	currentSession := p.System.SessionIndex()

	// Step 2: dispute ingestion.
	fresh, err := p.Disputes.ProvideMultiDisputeData(data.Disputes)
	if err != nil {
		return PostInfo{}, err
	}
	if p.Disputes.IsFrozen() {
		// The relay chain we are on is invalid; no further
		// parachain work is safe this block.
		p.included.Set()
		return PostInfo{ActualWeight: MinimalInclusionInherentWeight}, nil
	}

	// Step 3: collect disputed cores.
	var currentSessionDisputes []chain.Hash
	for _, d := range fresh {
		if d.Session == currentSession {
			currentSessionDisputes = append(currentSessionDisputes, d.CandidateHash)
		}
	}
	var freedDisputed []Freed
	if len(currentSessionDisputes) > 0 {
		for _, core := range p.Inclusion.CollectDisputed(currentSessionDisputes) {
			freedDisputed = append(freedDisputed, Freed{Core: core, Reason: FreedConcluded})
		}
	}

	// Step 4: process bitfields.
	expectedBits := len(p.Scheduler.AvailabilityCores())
	freedConcluded, err := p.Inclusion.ProcessBitfields(expectedBits, data.Bitfields, p.Scheduler.CoreToPara)
	if err != nil {
		return PostInfo{}, err
	}
	now := p.System.BlockNumber()
	for _, fc := range freedConcluded {
		p.Disputes.NoteIncluded(currentSession, fc.CandidateHash, now)
	}

	// Step 5: timeout sweep.
	var freedTimeout []Freed
	if pred, ok := p.Scheduler.AvailabilityTimeoutPredicate(); ok {
		for _, core := range p.Inclusion.CollectPending(pred) {
			freedTimeout = append(freedTimeout, Freed{Core: core, Reason: FreedTimedOut})
		}
	}

	// Step 6: reschedule.
	freed := make([]Freed, 0, len(freedDisputed)+len(freedConcluded)+len(freedTimeout))
	freed = append(freed, freedDisputed...)
	for _, fc := range freedConcluded {
		freed = append(freed, Freed{Core: fc.Core, Reason: FreedConcluded})
	}
	freed = append(freed, freedTimeout...)
	freed = sortAndDedupeFreed(freed)

	p.Scheduler.Clear()
	p.Scheduler.Schedule(freed, p.System.BlockNumber())

	// Step 7: limit backed candidates.
	backed := LimitBackedCandidates(data.BackedCandidates, p.System.ConsumedWeight(), p.maxBlockWeight())

	// Step 8: dispute-validity filter.
	for _, candidate := range backed {
		if p.Disputes.CouldBeInvalid(currentSession, candidate.CandidateHash) {
			return PostInfo{}, ErrCandidateCouldBeInvalid
		}
	}

	// Step 9: process candidates.
	occupied, err := p.Inclusion.ProcessCandidates(
		data.ParentHeader.StateRoot,
		backed,
		p.Scheduler.Scheduled(),
		p.Scheduler.GroupValidators,
	)
	if err != nil {
		return PostInfo{}, err
	}
	p.Scheduler.Occupied(occupied)

	// Step 10: upward-message pump.
	p.UMP.ProcessPendingUpwardMessages()

	// Step 11: commit.
	p.included.Set()
	weight := MinimalInclusionInherentWeight + uint64(len(backed))*BackedCandidateWeight
	return PostInfo{ActualWeight: weight}, nil
}

// maxBlockWeight is the configured block weight ceiling the weight
// gate (§4.6) compares consumed weight against. It is a field rather
// than a constant so different runtimes can configure it; callers set
// it once via SetMaxBlockWeight before the first Enter of a block.
func (p *Processor) maxBlockWeight() uint64 {
	return p.maxBlockWeightValue
}

// SetMaxBlockWeight configures the weight gate's ceiling.
func (p *Processor) SetMaxBlockWeight(max uint64) {
	p.maxBlockWeightValue = max
}

// CreateInherent dry-runs Enter; on error it strips bitfields,
// candidates, and disputes, keeping only parent_header, exactly as
// the original's create_inherent degrades (§4.5 Trigger, §9 Open
// Question — this includes its one-block suppression of fresh
// dispute reports on a failed dry run, preserved rather than fixed).
// The Included flag is restored after the dry run, so the block's real
// Enter call still succeeds; writes the dry run made to collaborators
// are not undone here.
func (p *Processor) CreateInherent(data ParaInherentData) ParaInherentData {
	filtered := data
	filtered.Disputes = p.Disputes.FilterMultiDisputeData(data.Disputes)

	wasIncluded := p.included
	_, err := p.Enter(OriginNone, filtered)
	p.included = wasIncluded
	if err != nil {
		return ParaInherentData{ParentHeader: data.ParentHeader}
	}
	return filtered
}

// IsInherent reports whether a call originated from this module. This
// module has exactly one call shape (Enter), so any non-nil call is
// one.
func IsInherent(call *ParaInherentData) bool {
	return call != nil
}

// OnFinalize enforces "at least one parachains inherent per block":
// if Included was never set, it panics, mirroring the original's
// block-rejection signal (design note "Panicking on finalize").
// Either way it clears Included for the next block.
func (p *Processor) OnFinalize() {
	if !p.included.Take() {
		panic(errMissingInherentMsg)
	}
}

func sortAndDedupeFreed(freed []Freed) []Freed {
	sort.Slice(freed, func(i, j int) bool { return freed[i].Core < freed[j].Core })
	out := freed[:0:0]
	var last CoreIndex
	seen := false
	for _, f := range freed {
		if seen && f.Core == last {
			continue
		}
		out = append(out, f)
		last = f.Core
		seen = true
	}
	return out
}
