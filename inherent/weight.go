// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package inherent

// maxCodeUpgrades is an artificial limitation around execution cost,
// not a protocol rule: at most one candidate per inherent may carry a
// validation-code upgrade.
const maxCodeUpgrades = 1

// LimitBackedCandidates decides how many backed candidates fit in the
// remaining block weight (§4.6). It first drops every code-upgrade
// candidate beyond the first, then applies an all-or-nothing weight
// gate: if the block is already over its weight ceiling, it drops
// everything rather than attempt a partial, order-dependent
// inclusion that would reward a byzantine provisioner.
func LimitBackedCandidates(candidates []BackedCandidate, consumedWeight, maxBlockWeight uint64) []BackedCandidate {
	filtered := make([]BackedCandidate, 0, len(candidates))
	codeUpgrades := 0
	for _, c := range candidates {
		if c.Commitments.HasCodeUpgrade() {
			if codeUpgrades >= maxCodeUpgrades {
				continue
			}
			codeUpgrades++
		}
		filtered = append(filtered, c)
	}

	if consumedWeight > maxBlockWeight {
		return nil
	}
	return filtered
}
