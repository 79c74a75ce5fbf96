// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/badcoin-net/badcoind/chaincfg"

// GetBlockSubsidy computes the block reward at height, halving every
// SubsidyHalvingInterval blocks the way the teacher's CalcShellBlockSubsidy
// does, but generalized to this chain's three post-activation "longblocks"
// extensions: once height crosses the third halving boundary
// (3*SubsidyHalvingInterval), the reward holds at its current value for
// SubsidyHalvingIntervalV2a, then V2b, then V2c blocks before halving
// resumes on a V2c cadence. This held-then-resume shape, including exactly
// three held halvings before the cadence switches, is grounded in the
// breakpoint table asserted by the original implementation's
// TestBlockSubsidyHalvings (src/test/main_tests.cpp): nHalvings 3, 4 and 5
// all reproduce the nHalvings==2 subsidy unchanged, and nHalvings==6 is the
// first to halve again, at height 3*SubsidyHalvingInterval+V2a+V2b+V2c.
func GetBlockSubsidy(height int32, p *chaincfg.Params) int64 {
	if p.SubsidyHalvingInterval == 0 {
		return p.BaseSubsidy
	}

	held1 := 3 * p.SubsidyHalvingInterval
	held2 := held1 + p.SubsidyHalvingIntervalV2a
	held3 := held2 + p.SubsidyHalvingIntervalV2b
	resume := held3 + p.SubsidyHalvingIntervalV2c

	var halvings int32
	switch {
	case height < held1:
		halvings = height / p.SubsidyHalvingInterval
	case height < resume:
		halvings = 2
	default:
		halvings = 3 + (height-resume)/p.SubsidyHalvingIntervalV2c
	}

	if halvings >= 64 {
		return 0
	}
	return p.BaseSubsidy >> uint(halvings)
}
