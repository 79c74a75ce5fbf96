// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/badcoin-net/badcoind/blockindex"
	"github.com/badcoin-net/badcoind/chaincfg"
	"github.com/badcoin-net/badcoind/chainalgo"
	"github.com/badcoin-net/badcoind/standalone"
)

// dgwPastBlocks is the fixed same-algorithm window DarkGravityWave averages
// over (spec.md §4.6).
const dgwPastBlocks int64 = 24

// GetNextWorkRequiredDGW computes the next compact target using
// DarkGravityWave v3: a weighted running average of the last 24
// same-algorithm targets, retargeted by the ratio of actual to expected
// elapsed time and clamped to a third/triple corridor. It is documented
// for completeness (spec.md §4.6, §9) — no network in this module's
// chaincfg.Params selects RetargetDGW3; GetNextWorkRequired (the
// V1/V2/longblocks engine) is the live path. Grounded directly on
// DarkGravityWave in the original pow.cpp.
func GetNextWorkRequiredDGW(last blockindex.View, newHeaderTime int64, algo chainalgo.Algo, p *chaincfg.Params) uint32 {
	if last == nil || int64(last.Height()) < dgwPastBlocks {
		return p.PowLimitBits
	}

	spacing, _ := spacingForHeight(last.Height(), p)

	if p.AllowMinDifficultyBlocks {
		if newHeaderTime > last.Time()+2*60*60 {
			return p.PowLimitBits
		}
		if newHeaderTime > last.Time()+spacing*4 {
			bits, negative, overflow := standalone.CompactToBig(last.Bits())
			if negative || overflow {
				bits = new(big.Int).Set(p.PowLimit)
			}
			bnNew := new(big.Int).Mul(bits, big.NewInt(10))
			if bnNew.Cmp(p.PowLimit) > 0 {
				bnNew = p.PowLimit
			}
			return standalone.BigToCompact(bnNew)
		}
	}

	cur := LastForAlgo(last, algo)
	if cur == nil {
		return p.PowLimitBits
	}

	var pastTargetAvg big.Int
	var count int64
	for count = 1; cur != nil && count <= dgwPastBlocks; count++ {
		target, negative, overflow := standalone.CompactToBig(cur.Bits())
		if negative || overflow {
			target = new(big.Int).Set(p.PowLimit)
		}

		if count == 1 {
			pastTargetAvg = *target
		} else {
			sum := new(big.Int).Mul(&pastTargetAvg, big.NewInt(count))
			sum.Add(sum, target)
			sum.Div(sum, big.NewInt(count+1))
			pastTargetAvg = *sum
		}

		if cur.Prev() == nil {
			break
		}
		cur = LastForAlgo(cur.Prev(), algo)
	}

	if cur == nil {
		return p.PowLimitBits
	}

	newTarget := pastTargetAvg
	actualTimespan := last.Time() - cur.Time()
	targetTimespan := dgwPastBlocks * spacing * int64(p.NumAlgos)

	if actualTimespan < targetTimespan/3 {
		actualTimespan = targetTimespan / 3
	}
	if actualTimespan > targetTimespan*3 {
		actualTimespan = targetTimespan * 3
	}

	newTarget.Mul(&newTarget, big.NewInt(actualTimespan))
	newTarget.Div(&newTarget, big.NewInt(targetTimespan))

	if newTarget.Cmp(p.PowLimit) > 0 {
		newTarget = *p.PowLimit
	}

	return standalone.BigToCompact(&newTarget)
}
