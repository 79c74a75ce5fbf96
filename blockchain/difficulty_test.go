// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain_test

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/badcoin-net/badcoind/blockchain"
	"github.com/badcoin-net/badcoind/blockindex"
	"github.com/badcoin-net/badcoind/chaincfg"
	"github.com/badcoin-net/badcoind/chainalgo"
	"github.com/badcoin-net/badcoind/standalone"
)

// buildSingleAlgoChain builds a linear chain of n blocks all on algo,
// spaced evenly by spacing seconds starting at startTime, all sharing bits.
// It returns the tip.
func buildSingleAlgoChain(n int, startTime, spacing int64, bits uint32, algo chainalgo.Algo) *blockindex.Node {
	var prev *blockindex.Node
	work := standalone.ZeroChainWork()
	for i := 0; i < n; i++ {
		t := startTime + int64(i)*spacing
		work = work.Add(standalone.CalcWork(bits))
		prev = blockindex.NewNode(prev, int32(i), t, t, bits, algo, work, false, 0, chainhash.Hash{})
	}
	return prev
}

// buildSingleAlgoChainAtHeight is buildSingleAlgoChain but lets the caller
// pin the tip's height explicitly, for tests that key activation checks off
// specific heights rather than off a chain starting at genesis.
func buildSingleAlgoChainAtHeight(tipHeight int32, n int, startTime, spacing int64, bits uint32, algo chainalgo.Algo) *blockindex.Node {
	var prev *blockindex.Node
	work := standalone.ZeroChainWork()
	baseHeight := tipHeight - int32(n) + 1
	for i := 0; i < n; i++ {
		t := startTime + int64(i)*spacing
		work = work.Add(standalone.CalcWork(bits))
		prev = blockindex.NewNode(prev, baseHeight+int32(i), t, t, bits, algo, work, false, 0, chainhash.Hash{})
	}
	return prev
}

func testParams() *chaincfg.Params {
	p := chaincfg.MainNetParams
	return &p
}

func TestGetNextWorkRequiredNoChangeWhenTimespanMatchesTarget(t *testing.T) {
	p := testParams()
	// Picking a spacing whose averaging timespan divides evenly by the
	// window's 9 inter-block gaps (AveragingInterval-1) keeps the
	// arithmetic below exact, so the retarget is a true no-op rather than
	// landing one compact-bits notch off from rounding.
	p.TargetSpacingV1 = 45
	const bits = 0x1d00ffff

	spacing := p.TargetSpacingV1
	averagingTimespan := int64(p.NumAlgos) * spacing * int64(p.AveragingInterval)
	gap := averagingTimespan / (int64(p.AveragingInterval) - 1)

	tip := buildSingleAlgoChain(int(p.AveragingInterval)+1, 1000, gap, bits, chainalgo.SHA256D)

	newBits := blockchain.GetNextWorkRequired(tip, tip.Time()+spacing, chainalgo.SHA256D, p)
	require.Equal(t, uint32(bits), newBits)
}

func TestGetNextWorkRequiredClampsOnFastBlocks(t *testing.T) {
	p := testParams()
	const bits = 0x1d00ffff

	// Blocks arriving almost instantly: actualTimespan collapses toward 0,
	// so the lower clamp (100-MaxAdjustUpV1)/100 must engage (the chain's
	// low heights are pre-BlockDiffAdjustV2).
	tip := buildSingleAlgoChain(int(p.AveragingInterval)+1, 1000, 1, bits, chainalgo.SHA256D)

	newBits := blockchain.GetNextWorkRequired(tip, tip.Time()+1, chainalgo.SHA256D, p)
	target, _, _ := standalone.CompactToBig(newBits)
	prevTarget, _, _ := standalone.CompactToBig(bits)
	require.True(t, target.Cmp(prevTarget) < 0, "difficulty must increase (target shrink) when blocks arrive fast")
}

func TestGetNextWorkRequiredRegtestNoRetargeting(t *testing.T) {
	p := chaincfg.RegressionNetParams
	tip := buildSingleAlgoChain(5, 1000, 5, p.PowLimitBits, chainalgo.SHA256D)

	newBits := blockchain.GetNextWorkRequired(tip, tip.Time()+5, chainalgo.SHA256D, &p)
	require.Equal(t, tip.Bits(), newBits)
}

func TestGetNextWorkRequiredGenesisReturnsPowLimit(t *testing.T) {
	p := testParams()
	newBits := blockchain.GetNextWorkRequired(nil, 0, chainalgo.SHA256D, p)
	require.Equal(t, p.PowLimitBits, newBits)
}

// TestGetNextWorkRequiredClampsToCorridor exercises testable property #3:
// for any actual timespan, the clamped effective timespan driving the new
// target stays within [(100-MaxAdjustUpV1)/100, (100+MaxAdjustDown)/100] of
// the averaging timespan, and the resulting target never exceeds PowLimit.
// Heights are kept low (pre-Phase2TimespanStart) so the V1 skeleton with no
// time-warp mitigation applies and actualTimespan is exactly gap*(N-1).
func TestGetNextWorkRequiredClampsToCorridor(t *testing.T) {
	p := testParams()
	const bits = 0x1c00ffff

	rapid.Check(t, func(rt *rapid.T) {
		gap := rapid.Int64Range(1, 100000).Draw(rt, "gap")

		tip := buildSingleAlgoChain(int(p.AveragingInterval)+1, 1000, gap, bits, chainalgo.SHA256D)
		newBits := blockchain.GetNextWorkRequired(tip, tip.Time()+gap, chainalgo.SHA256D, p)

		newTarget, negative, overflow := standalone.CompactToBig(newBits)
		require.False(rt, negative)
		require.False(rt, overflow)
		require.True(rt, newTarget.Cmp(p.PowLimit) <= 0)

		spacing := p.TargetSpacingV1
		averagingTimespan := int64(p.NumAlgos) * spacing * int64(p.AveragingInterval)
		minTimespan := averagingTimespan * (100 - p.MaxAdjustUpV1) / 100
		maxTimespan := averagingTimespan * (100 + p.MaxAdjustDown) / 100

		actualTimespan := gap * (int64(p.AveragingInterval) - 1)
		clamped := actualTimespan
		if clamped < minTimespan {
			clamped = minTimespan
		}
		if clamped > maxTimespan {
			clamped = maxTimespan
		}

		prevTarget, _, _ := standalone.CompactToBig(bits)
		want := new(big.Int).Mul(prevTarget, big.NewInt(clamped))
		want.Div(want, big.NewInt(averagingTimespan))
		if want.Cmp(p.PowLimit) > 0 {
			want = p.PowLimit
		}
		require.Equal(rt, standalone.BigToCompact(want), newBits)
	})
}

func TestGetNextWorkRequiredNeverExceedsPowLimit(t *testing.T) {
	p := testParams()
	tip := buildSingleAlgoChain(int(p.AveragingInterval)+1, 1000, 1, p.PowLimitBits, chainalgo.SHA256D)

	newBits := blockchain.GetNextWorkRequired(tip, tip.Time()+1, chainalgo.SHA256D, p)
	target, _, _ := standalone.CompactToBig(newBits)
	require.True(t, target.Cmp(p.PowLimit) <= 0)
}
