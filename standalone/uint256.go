// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package standalone houses the primitive, allocation-free-where-practical
// helpers consensus code needs to convert between a block header's compact
// "bits" encoding and the 256-bit unsigned target/work values they
// represent.  It has no dependency on the rest of the module so it can be
// imported by chain-index, retarget and work-accounting code alike without
// creating import cycles.
package standalone

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	// bigOne is 1 represented as a big.Int.  Defined once to avoid the
	// overhead of allocating it on every call.
	bigOne = big.NewInt(1)

	// oneLsh256 is 1 shifted left 256 bits, i.e. 2^256.
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)

	// maxChainWork is the saturation ceiling for ChainWork: 2^256 - 1.
	maxChainWork = new(big.Int).Sub(oneLsh256, bigOne)
)

// ChainWork is a 256-bit unsigned cumulative work value that saturates at
// 2^256-1 instead of wrapping, matching spec.md §4.7 ("256-bit saturating").
type ChainWork struct {
	v big.Int
}

// ZeroChainWork returns the additive identity, the work of an empty chain.
func ZeroChainWork() *ChainWork {
	return &ChainWork{}
}

// NewChainWorkFromBig builds a ChainWork from an existing big.Int, clamping
// negative inputs to zero and oversized inputs to the saturation ceiling.
func NewChainWorkFromBig(v *big.Int) *ChainWork {
	cw := &ChainWork{}
	switch {
	case v.Sign() <= 0:
	case v.Cmp(maxChainWork) > 0:
		cw.v.Set(maxChainWork)
	default:
		cw.v.Set(v)
	}
	return cw
}

// Add returns a new ChainWork equal to cw + delta, saturating at 2^256-1.
// delta is typically the output of CalcWork for the block being appended.
func (cw *ChainWork) Add(delta *big.Int) *ChainWork {
	sum := new(big.Int).Add(&cw.v, delta)
	return NewChainWorkFromBig(sum)
}

// Big returns the underlying value as a *big.Int. The caller must not
// mutate the result.
func (cw *ChainWork) Big() *big.Int {
	return &cw.v
}

// Cmp compares cw against other the way big.Int.Cmp does.
func (cw *ChainWork) Cmp(other *ChainWork) int {
	return cw.v.Cmp(&other.v)
}

// Sub returns cw - other as a (possibly negative) big.Int: the signed
// difference between two chain-work values, not a saturating one.
func (cw *ChainWork) Sub(other *ChainWork) *big.Int {
	return new(big.Int).Sub(&cw.v, &other.v)
}

// HashToBig converts a chainhash.Hash into a big.Int that can be used to
// perform math comparisons.
func HashToBig(hash *chainhash.Hash) *big.Int {
	// A Hash is in little-endian, but the big package wants the bytes in
	// big-endian, so reverse them.
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}

	return new(big.Int).SetBytes(buf[:])
}

// CompactToBig converts a compact representation of a whole number N to an
// unsigned 32-bit number.  The representation is similar to IEEE754 floating
// point numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa.  They are broken out as follows:
//
//   - the most significant 8 bits represent the unsigned base 256 exponent
//   - bit 23 (the 24th bit) represents the sign bit
//   - the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// CompactToBig additionally reports the two flags a consensus caller needs:
// negative (the sign bit was set) and overflow (the mantissa is non-zero and
// the exponent is 34 or more). Only the exponent is tested: an exponent of
// 33 with a large mantissa can decode to a value of 2^256 or more without
// setting overflow.
func CompactToBig(compact uint32) (n *big.Int, negative bool, overflow bool) {
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := uint(compact >> 24)

	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	if isNegative {
		bn = bn.Neg(bn)
	}

	overflow = mantissa != 0 && exponent >= 34
	return bn, isNegative, overflow
}

// BigToCompact converts a whole number N to a compact representation using
// an unsigned 32-bit number.  The compact representation only provides 23
// bits of precision, so values larger than (2^23 - 1) only encode the most
// significant digits of the number.  See CompactToBig for details.
func BigToCompact(n *big.Int) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	var mantissa uint32
	exponent := uint(len(n.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit into the available 23 bits, so divide the number by
	// 256 and increment the exponent accordingly.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}

// CalcWork calculates the proof-of-work value contributed by a block whose
// header declares the given compact difficulty bits:
//
//	proof_base = floor(2^256 / (target + 1))
//
// computed directly as 2^256 / (target+1) with math/big, which yields the
// same value as the (^target / (target+1)) + 1 identity fixed-width
// 256-bit implementations use. CalcWork returns zero
// when the decoded target is zero, negative, or overflows, since none of
// those represent a target a valid block could have satisfied.
func CalcWork(bits uint32) *big.Int {
	target, negative, overflow := CompactToBig(bits)
	if negative || overflow || target.Sign() <= 0 {
		return new(big.Int)
	}

	// (1 << 256) / (target + 1)
	denominator := new(big.Int).Add(target, bigOne)
	return new(big.Int).Div(oneLsh256, denominator)
}

// NthRoot returns the integer n-th root of x, i.e. the largest y such that
// y^n <= x, using Newton's method. It is used by the geometric-mean work
// variant (n=5) and is exact for perfect n-th powers.
//
// NthRoot panics if n <= 0; it returns zero for x <= 0.
func NthRoot(x *big.Int, n int) *big.Int {
	if n <= 0 {
		panic("standalone: NthRoot requires a positive degree")
	}
	if x.Sign() <= 0 {
		return new(big.Int)
	}
	if x.Cmp(bigOne) == 0 {
		return big.NewInt(1)
	}

	bigN := big.NewInt(int64(n))
	nMinusOne := big.NewInt(int64(n - 1))

	// Initial guess: a bit-length based estimate converges quickly via
	// Newton's method regardless of how rough it is.
	guess := new(big.Int).Lsh(bigOne, uint(x.BitLen()/n+1))

	for {
		// next = ((n-1)*guess + x/guess^(n-1)) / n
		powNMinusOne := new(big.Int).Exp(guess, nMinusOne, nil)
		if powNMinusOne.Sign() == 0 {
			powNMinusOne = bigOne
		}
		term := new(big.Int).Div(x, powNMinusOne)
		next := new(big.Int).Mul(guess, nMinusOne)
		next.Add(next, term)
		next.Div(next, bigN)

		if next.Cmp(guess) >= 0 {
			break
		}
		guess = next
	}

	// Newton's method for integer roots can settle one above the true
	// floor; step down while the candidate overshoots.
	for {
		pw := new(big.Int).Exp(guess, bigN, nil)
		if pw.Cmp(x) <= 0 {
			break
		}
		guess.Sub(guess, bigOne)
	}
	return guess
}
