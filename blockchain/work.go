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

// decayWorkAtDistance computes proof_base(node)·(ceiling-d)/ceiling for the
// node that is exactly d same-chain hops behind some reference block,
// matching the literal decay-1/2/3 formulas in spec.md §4.7. node is that
// predecessor itself (already walked to).
func decayWorkAtDistance(node blockindex.View, d, ceiling int32, floorAtPowLimit bool, p *chaincfg.Params) *big.Int {
	if node == nil || d >= ceiling {
		if floorAtPowLimit {
			return new(big.Int).Set(p.PowLimit)
		}
		return big.NewInt(0)
	}

	base := blockProofBase(node.Bits(), p)
	result := new(big.Int).Mul(base, big.NewInt(int64(ceiling-d)))
	result.Div(result, big.NewInt(int64(ceiling)))

	if floorAtPowLimit && result.Cmp(p.PowLimit) < 0 {
		return new(big.Int).Set(p.PowLimit)
	}
	return result
}

// lastAndDistanceForAlgo walks prev links from node (inclusive, at distance
// 0) until it finds the nearest block of algo, returning that block and its
// distance in total chain hops (not same-algo hops) from node. Callers pass
// a block's predecessor, so the block itself is never considered.
func lastAndDistanceForAlgo(node blockindex.View, algo chainalgo.Algo) (blockindex.View, int32) {
	var d int32
	for n := node; n != nil; n, d = n.Prev(), d+1 {
		if n.Algo() == algo {
			return n, d
		}
	}
	return nil, 0
}

// blockProofBase implements proof_base = floor(2^256 / (T+1)), computed by
// CalcWork, returning zero for a
// degenerate (zero, negative, overflowing) bits encoding.
func blockProofBase(bits uint32, p *chaincfg.Params) *big.Int {
	target, negative, overflow := standalone.CompactToBig(bits)
	if negative || overflow || target.Sign() <= 0 {
		return big.NewInt(0)
	}
	return standalone.CalcWork(bits)
}

// weightedOtherAlgoWork resolves W_a(block), the decayed-or-plain lookup of
// algo a's most recent work contribution as seen from node, per the three
// cases spec.md §4.7 lists under the normalised-work formula.
func weightedOtherAlgoWork(node blockindex.View, a chainalgo.Algo, p *chaincfg.Params) *big.Int {
	height := node.Height()
	prevOfAlgo, d := lastAndDistanceForAlgo(node.Prev(), a)

	switch {
	case height >= p.BlockAlgoNormalisedWorkDecayStart2:
		return decayWorkAtDistance(prevOfAlgo, d, 32, false, p)
	case height >= p.BlockAlgoNormalisedWorkDecayStart1:
		return decayWorkAtDistance(prevOfAlgo, d, 32, true, p)
	default:
		if prevOfAlgo == nil {
			return new(big.Int).Set(p.PowLimit)
		}
		return blockProofBase(prevOfAlgo.Bits(), p)
	}
}

// geoMeanOtherAlgoWork resolves the decay-3 lookup used by the geometric-
// mean formula (spec.md §4.7 item 1): always the 100-block-ceiling decay,
// regardless of the normalised-work decay activation heights.
func geoMeanOtherAlgoWork(node blockindex.View, a chainalgo.Algo, p *chaincfg.Params) *big.Int {
	prevOfAlgo, d := lastAndDistanceForAlgo(node.Prev(), a)
	return decayWorkAtDistance(prevOfAlgo, d, 100, false, p)
}

// BlockProof computes block_proof(block) for node per spec.md §4.7's
// height-gated enrichment: geometric mean across all five algos, weighted
// normalised work, fixed algorithm-weighted work, or the plain base
// formula, in that order of precedence by activation height.
func BlockProof(node blockindex.View, p *chaincfg.Params) *big.Int {
	base := blockProofBase(node.Bits(), p)
	if base.Sign() == 0 {
		return big.NewInt(0)
	}

	height := node.Height()
	algo := node.Algo()

	switch {
	case height >= p.GeoAvgWorkStart:
		product := new(big.Int).Set(base)
		for a := chainalgo.Algo(0); int(a) < int(p.NumAlgos); a++ {
			if a == algo {
				continue
			}
			w := geoMeanOtherAlgoWork(node, a, p)
			if w.Sign() == 0 {
				continue
			}
			product.Mul(product, w)
		}
		// The root degree is always NumAlgos (spec.md §4.2/§4.7: "integer
		// n-th root, n=5"), regardless of how many other-algo factors were
		// actually nonzero — only the product excludes zero factors.
		root := standalone.NthRoot(product, int(p.NumAlgos))
		return root.Lsh(root, 8)

	case height >= p.BlockAlgoNormalisedWorkStart:
		sum := new(big.Int).Set(base)
		for a := chainalgo.Algo(0); int(a) < int(p.NumAlgos); a++ {
			if a == algo {
				continue
			}
			sum.Add(sum, weightedOtherAlgoWork(node, a, p))
		}
		sum.Div(sum, big.NewInt(int64(p.NumAlgos)))
		return sum

	case height >= p.BlockAlgoWorkWeightStart:
		factor := chaincfg.AlgoWorkFactor[algo]
		return new(big.Int).Mul(base, big.NewInt(factor))

	default:
		return base
	}
}

// ChainWork computes chain_work(node) = chain_work(prev) + block_proof(node)
// as a 256-bit saturating accumulator, matching node.ChainWork() when node
// was built via blockindex.NewNode with the correct running total; this
// function is the independent reference computation used by tests and by
// callers assembling a view from raw header data.
func ChainWork(node blockindex.View, p *chaincfg.Params) *standalone.ChainWork {
	if node == nil {
		return standalone.ZeroChainWork()
	}
	prevWork := ChainWork(node.Prev(), p)
	return prevWork.Add(BlockProof(node, p))
}

// EquivalentTime computes spec.md §4.7's equivalent_time(to, from, tip):
// the elapsed wall-clock time a work difference between to and from would
// represent at tip's difficulty, signed by which side has more work and
// saturating to ±int64 max on overflow.
func EquivalentTime(to, from, tip blockindex.View, p *chaincfg.Params) int64 {
	toWork := to.ChainWork().Big()
	fromWork := from.ChainWork().Big()

	diff := new(big.Int).Sub(toWork, fromWork)
	sign := int64(1)
	if diff.Sign() < 0 {
		sign = -1
		diff.Neg(diff)
	}
	if diff.Sign() == 0 {
		return 0
	}

	tipProof := BlockProof(tip, p)
	if tipProof.Sign() == 0 {
		return 0
	}

	spacing := p.TargetSpacingV2
	diff.Mul(diff, big.NewInt(spacing))
	diff.Div(diff, tipProof)

	maxInt64 := big.NewInt(1<<63 - 1)
	if diff.Cmp(maxInt64) > 0 {
		return sign * (1<<63 - 1)
	}
	return sign * diff.Int64()
}
