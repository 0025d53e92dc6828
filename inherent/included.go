// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package inherent

// IncludedCell is the block-scoped "has the inherent run yet" flag
// (§3 Included flag, design note "Single-block state cell"). A real
// runtime backs this with storage whose lifetime is the block; this
// in-memory version requires the caller to construct a fresh
// Processor, or to call OnFinalize (which clears it via Take), before
// the next block.
type IncludedCell struct {
	set bool
}

// IsSet reports whether the inherent has already run this block.
func (c *IncludedCell) IsSet() bool {
	return c.set
}

// Set marks the inherent as having run.
func (c *IncludedCell) Set() {
	c.set = true
}

// Take returns whether the cell was set, then clears it — the Go
// analogue of Included::take(), used by OnFinalize so the cell starts
// the next block unset without a separate on_initialize reset.
func (c *IncludedCell) Take() bool {
	was := c.set
	c.set = false
	return was
}
