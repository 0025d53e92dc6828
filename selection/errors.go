// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import "errors"

// ErrEmptyLeaves is returned only by BestChain: an empty leaf set is
// tolerated everywhere else along the finality_target path, since the
// pipeline always has a safe fallback (§7).
var ErrEmptyLeaves = errors.New("selection: chain-selection returned no leaves")
