// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain implements the consensus difficulty-retargeting engine
// (C6), work accounting (C7), and proof-of-work verifier (C8), grounded on
// EXCCoin-exccd's blockchain/difficulty.go structure and
// badcoin-net/Badcoin's src/pow.cpp. Every exported function here is a pure
// function over an immutable blockindex.View; none of them hold or mutate
// shared state (spec.md §5).
package blockchain

import (
	"math/big"

	"github.com/badcoin-net/badcoind/blockindex"
	"github.com/badcoin-net/badcoind/chaincfg"
	"github.com/badcoin-net/badcoind/chainalgo"
	"github.com/badcoin-net/badcoind/standalone"
)

// timeWarpMitigation is the height-selected variant C6 applies to the
// retarget window's elapsed-time measurement (spec.md §4.6, §9's
// {None, Swap1, SwapLoop, MedianTime} tag).
type timeWarpMitigation int

const (
	twpNone timeWarpMitigation = iota
	twpSwap1
	twpSwapLoop
	twpMedianTime
)

func selectTimeWarpMitigation(height int32, p *chaincfg.Params) timeWarpMitigation {
	switch {
	case height >= p.BlockTimeWarpPreventStart3:
		return twpMedianTime
	case height >= p.BlockTimeWarpPreventStart2:
		return twpSwapLoop
	case height >= p.BlockTimeWarpPreventStart1:
		return twpSwap1
	default:
		return twpNone
	}
}

// spacingForHeight resolves the per-algorithm target spacing in effect at
// height(last), applying the V1/V2 phase switch and, within V2, the
// longblocks cascade (spec.md §4.6: "Exactly one replacement of spacing is
// applied; cascading is by descending-height test, first match wins").
func spacingForHeight(height int32, p *chaincfg.Params) (spacing int64, isV2 bool) {
	if height < p.Phase2TimespanStart {
		return p.TargetSpacingV1, false
	}
	switch {
	case height >= p.LongblocksStartV1c:
		return p.TargetSpacingV3c, true
	case height >= p.LongblocksStartV1b:
		return p.TargetSpacingV3b, true
	case height >= p.LongblocksStartV1a:
		return p.TargetSpacingV3a, true
	default:
		return p.TargetSpacingV2, true
	}
}

func maxAdjustUpForHeight(height int32, isV2 bool, p *chaincfg.Params) int64 {
	if isV2 {
		return p.MaxAdjustUpV2
	}
	if height >= p.BlockDiffAdjustV2 {
		return p.MaxAdjustUpV2
	}
	return p.MaxAdjustUpV1
}

// GetNextWorkRequired computes the expected compact target for a new header
// building on last, on the given algorithm, per spec.md §4.6. newHeaderTime
// is the candidate header's declared timestamp (only consulted for the
// min-difficulty escape).
func GetNextWorkRequired(last blockindex.View, newHeaderTime int64, algo chainalgo.Algo, p *chaincfg.Params) uint32 {
	if p.PoWNoRetargeting {
		if last == nil {
			return p.PowLimitBits
		}
		return last.Bits()
	}

	if last == nil {
		return p.PowLimitBits
	}

	prev := LastForAlgo(last, algo)
	if prev == nil {
		return p.PowLimitBits
	}

	height := last.Height()
	spacing, isV2 := spacingForHeight(height, p)

	if p.AllowMinDifficultyBlocks && newHeaderTime > last.Time()+2*spacing {
		return p.PowLimitBits
	}

	first := WindowForAlgo(prev, algo, int(p.AveragingInterval))
	if first == nil {
		return p.PowLimitBits
	}

	var actualTimespan int64
	mitigation := selectTimeWarpMitigation(height, p)
	switch mitigation {
	case twpMedianTime:
		actualTimespan = prev.MedianTimePast() - first.MedianTimePast()
	case twpSwap1:
		if prevOfFirst := LastForAlgo(first.Prev(), algo); prevOfFirst != nil && prevOfFirst.Time() > first.Time() {
			first = prevOfFirst
		}
		actualTimespan = prev.Time() - first.Time()
		if actualTimespan < 0 {
			return prev.Bits()
		}
	case twpSwapLoop:
		for i := 0; i < int(p.AveragingInterval)+1; i++ {
			prevOfFirst := LastForAlgo(first.Prev(), algo)
			if prevOfFirst == nil || prevOfFirst.Time() <= first.Time() {
				break
			}
			first = prevOfFirst
		}
		actualTimespan = prev.Time() - first.Time()
		if actualTimespan < 0 {
			return prev.Bits()
		}
	default:
		actualTimespan = prev.Time() - first.Time()
	}

	maxAdjustUp := maxAdjustUpForHeight(height, isV2, p)

	targetSpacingPerAlgo := spacing * int64(p.NumAlgos)
	averagingTimespan := int64(p.AveragingInterval) * targetSpacingPerAlgo

	minTimespan := averagingTimespan * (100 - maxAdjustUp) / 100
	maxTimespan := averagingTimespan * (100 + p.MaxAdjustDown) / 100

	clamped := actualTimespan
	if clamped < minTimespan {
		clamped = minTimespan
	}
	if clamped > maxTimespan {
		clamped = maxTimespan
	}

	target, negative, overflow := standalone.CompactToBig(prev.Bits())
	if negative || overflow || target.Sign() <= 0 {
		target = new(big.Int).Set(p.PowLimit)
	}

	newTarget := new(big.Int).Mul(target, big.NewInt(clamped))
	newTarget.Div(newTarget, big.NewInt(averagingTimespan))

	if newTarget.Cmp(p.PowLimit) > 0 {
		newTarget = p.PowLimit
	}

	return standalone.BigToCompact(newTarget)
}
