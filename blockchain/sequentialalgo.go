// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/badcoin-net/badcoind/blockindex"
	"github.com/badcoin-net/badcoind/chaincfg"
	"github.com/badcoin-net/badcoind/chainalgo"
)

// sequentialAlgoCapForHeight resolves the same-algorithm run cap in effect
// at height, per spec.md §4.6's sequential-algo rule cascade: the cap
// tightens from SequentialAlgoMaxCount1 to SequentialAlgoMaxCount2 at
// BlockSequentialAlgoRuleStart2, then relaxes again to
// SequentialAlgoMaxCount3 at Fork1MinBlock. A cap <= 0 means the rule is
// not yet active.
func sequentialAlgoCapForHeight(height int32, p *chaincfg.Params) int32 {
	switch {
	case height >= p.Fork1MinBlock:
		return p.SequentialAlgoMaxCount3
	case height >= p.BlockSequentialAlgoRuleStart2:
		return p.SequentialAlgoMaxCount2
	case height >= p.BlockSequentialAlgoRuleStart1:
		return p.SequentialAlgoMaxCount1
	default:
		return 0
	}
}

// CheckSequentialAlgo implements the sequential-same-algorithm cap
// acceptance hook (spec.md §4.6, testable property #12): it rejects a
// candidate block whose algorithm would extend the current tip's run of
// same-algorithm blocks past the height-selected cap.
func CheckSequentialAlgo(tip blockindex.View, newAlgo chainalgo.Algo, p *chaincfg.Params) error {
	height := int32(0)
	if tip != nil {
		height = tip.Height() + 1
	}

	maxRun := sequentialAlgoCapForHeight(height, p)
	if maxRun <= 0 {
		return nil
	}

	run := int32(1)
	for n := tip; n != nil && n.Algo() == newAlgo; n = n.Prev() {
		run++
		if run > maxRun {
			return ruleError(ErrSequentialAlgoCapExceeded,
				fmt.Sprintf("run of %d consecutive %s blocks exceeds cap %d", run, newAlgo, maxRun))
		}
	}

	return nil
}
