// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math"
	"math/big"

	"github.com/badcoin-net/badcoind/blockindex"
	"github.com/badcoin-net/badcoind/chaincfg"
	"github.com/badcoin-net/badcoind/chainalgo"
	"github.com/badcoin-net/badcoind/standalone"
)

// kgwMinBlocks and kgwMaxBlocks bound the Kimoto Gravity Well scan window.
// kgwMaxBlocks is roughly a week of same-algorithm blocks at the five-
// algorithm target spacing; kgwMinBlocks is the "event horizon" pivot used
// in the deviation formula below (spec.md §4.6).
const (
	kgwMinBlocks int32 = 144
	kgwMaxBlocks int32 = 4032
)

// GetNextWorkRequiredKGW computes the next compact target using the Kimoto
// Gravity Well algorithm: an incrementally averaged same-algorithm target
// combined with an "event horizon" deviation corridor that widens as the
// scan walks further back. It is documented for completeness (spec.md
// §4.6, §9) — no network in this module's chaincfg.Params selects
// RetargetKGW; GetNextWorkRequired (the V1/V2/longblocks engine) is the
// live path. Grounded on the Vertcoin-lineage calcDiffAdjustKGW.
func GetNextWorkRequiredKGW(last blockindex.View, newHeaderTime int64, algo chainalgo.Algo, p *chaincfg.Params) uint32 {
	if last == nil || last.Height()-1 < kgwMinBlocks {
		return p.PowLimitBits
	}

	spacing, _ := spacingForHeight(last.Height(), p)

	current := LastForAlgo(last, algo)
	if current == nil {
		return p.PowLimitBits
	}
	lastSolvedTime := current.Time()

	var blocksScanned int64
	var actualRate, targetRate int64
	var difficultyAverage, previousDifficultyAverage big.Int
	var rateAdjustmentRatio float64 = 1

	cur := current
	var i int32
	for i = 1; i <= kgwMaxBlocks; i++ {
		blocksScanned++

		target, negative, overflow := standalone.CompactToBig(cur.Bits())
		if negative || overflow {
			target = new(big.Int).Set(p.PowLimit)
		}

		if i == 1 {
			difficultyAverage = *target
		} else {
			diff := new(big.Int).Sub(target, &previousDifficultyAverage)
			diff.Div(diff, big.NewInt(int64(i)))
			diff.Add(diff, &previousDifficultyAverage)
			difficultyAverage = *diff
		}
		previousDifficultyAverage = difficultyAverage

		actualRate = lastSolvedTime - cur.Time()
		targetRate = spacing * int64(p.NumAlgos) * blocksScanned
		rateAdjustmentRatio = 1

		if actualRate < 0 {
			actualRate = 0
		}
		if actualRate != 0 && targetRate != 0 {
			rateAdjustmentRatio = float64(targetRate) / float64(actualRate)
		}

		eventHorizonDeviation := 1 + 0.7084*math.Pow(float64(blocksScanned)/float64(kgwMinBlocks), -1.228)
		eventHorizonDeviationFast := eventHorizonDeviation
		eventHorizonDeviationSlow := 1 / eventHorizonDeviation

		if blocksScanned >= int64(kgwMinBlocks) &&
			(rateAdjustmentRatio <= eventHorizonDeviationSlow || rateAdjustmentRatio >= eventHorizonDeviationFast) {
			break
		}

		prev := LastForAlgo(cur.Prev(), algo)
		if prev == nil {
			break
		}
		cur = prev
	}

	newTarget := difficultyAverage
	if actualRate != 0 && targetRate != 0 {
		newTarget.Mul(&newTarget, big.NewInt(actualRate))
		newTarget.Div(&newTarget, big.NewInt(targetRate))
	}

	if newTarget.Cmp(p.PowLimit) > 0 {
		newTarget = *p.PowLimit
	}

	return standalone.BigToCompact(&newTarget)
}
