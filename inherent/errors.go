// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package inherent

import "errors"

var (
	// ErrBadOrigin is returned when Enter is invoked with anything
	// other than the unsigned inherent origin.
	ErrBadOrigin = errors.New("inherent: must be called with the inherent origin")
	// ErrTooManyInclusionInherents is returned on a second Enter call
	// within the same block.
	ErrTooManyInclusionInherents = errors.New("inherent: too many inclusion inherents")
	// ErrInvalidParentHeader is returned when the submitted parent
	// header's hash doesn't match the system's recorded parent hash.
	ErrInvalidParentHeader = errors.New("inherent: invalid parent header")
	// ErrCandidateCouldBeInvalid is returned when a surviving backed
	// candidate is flagged by the dispute module.
	ErrCandidateCouldBeInvalid = errors.New("inherent: candidate could be invalid")
)

// errMissingInherentMsg is the block-finalization signal (§4.5 "Block
// finalization hook"): OnFinalize panics with this message, matching
// the original's "reject this block" semantics, when Included was
// never set for the block.
const errMissingInherentMsg = "parachains inherent: bitfields and heads must be included every block"
