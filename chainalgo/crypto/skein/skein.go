// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package skein implements Skein-512, the Threefish-512 block cipher run in
// Unique Block Iteration (UBI) chaining mode, truncated to a 256-bit output
// the way badcoin-net/Badcoin's GetPoWHash(ALGO_SKEIN) does. As with groestl,
// no ecosystem Go module carries Skein (see DESIGN.md); this follows the
// same internal-package idiom.
package skein

import "github.com/btcsuite/btcd/chaincfg/chainhash"

const (
	words  = 8
	rounds = 72
	c240   = 0x1BD11BDAA9FC1A22

	typeCfg   = 4
	typeMsg   = 48
	typeOut   = 63
	firstFlag = uint64(1) << 62
	finalFlag = uint64(1) << 63
)

// rotations holds Threefish-512's eight per-round-pair rotation constants.
var rotations = [8][4]uint{
	{46, 36, 19, 37},
	{33, 27, 14, 42},
	{17, 49, 36, 39},
	{44, 9, 54, 56},
	{39, 30, 34, 24},
	{13, 50, 10, 17},
	{25, 29, 39, 43},
	{8, 35, 56, 22},
}

// permute reorders the eight 64-bit words between MIX rounds, per the
// Threefish-512 specification.
var permute = [words]int{2, 1, 4, 7, 6, 5, 0, 3}

func rotl64(x uint64, n uint) uint64 {
	return (x << n) | (x >> (64 - n))
}

// threefish512 encrypts the 512-bit block p under an 8-word key and a
// 2-word tweak, returning the 512-bit ciphertext.
func threefish512(key [words]uint64, tweak [2]uint64, p [words]uint64) [words]uint64 {
	var ks [words + 1]uint64
	ks[words] = c240
	for i := 0; i < words; i++ {
		ks[i] = key[i]
		ks[words] ^= ks[i]
	}

	var ts [3]uint64
	ts[0], ts[1] = tweak[0], tweak[1]
	ts[2] = ts[0] ^ ts[1]

	v := p
	for d := 0; d < rounds/4; d++ {
		var sk [words]uint64
		for i := 0; i < words; i++ {
			sk[i] = ks[(d+i)%(words+1)]
		}
		sk[words-3] += ts[d%3]
		sk[words-2] += ts[(d+1)%3]
		sk[words-1] += uint64(d)

		for i := 0; i < words; i++ {
			v[i] += sk[i]
		}

		for r := 0; r < 4; r++ {
			rotSet := rotations[(d*4+r)%8]
			var mixed [words]uint64
			for pair := 0; pair < words/2; pair++ {
				x0, x1 := v[2*pair], v[2*pair+1]
				x1 = rotl64(x1, rotSet[pair%4])
				mixed[2*pair] = x0 + x1
				mixed[2*pair+1] = mixed[2*pair] ^ x1
			}
			var permuted [words]uint64
			for i := 0; i < words; i++ {
				permuted[i] = mixed[permute[i]]
			}
			v = permuted
		}
	}

	var sk [words]uint64
	for i := 0; i < words; i++ {
		sk[i] = ks[(rounds/4+i)%(words+1)]
	}
	sk[words-3] += ts[(rounds/4)%3]
	sk[words-2] += ts[(rounds/4+1)%3]
	sk[words-1] += uint64(rounds / 4)
	for i := 0; i < words; i++ {
		v[i] += sk[i]
	}
	return v
}

func bytesToWords(b []byte) [words]uint64 {
	var w [words]uint64
	for i := 0; i < words; i++ {
		for j := 0; j < 8; j++ {
			w[i] |= uint64(b[i*8+j]) << (8 * uint(j))
		}
	}
	return w
}

func wordsToBytes(w [words]uint64) []byte {
	out := make([]byte, words*8)
	for i := 0; i < words; i++ {
		for j := 0; j < 8; j++ {
			out[i*8+j] = byte(w[i] >> (8 * uint(j)))
		}
	}
	return out
}

// ubi runs one Unique Block Iteration chaining step: it encrypts msgBlock
// (zero padded to 64 bytes) under chaining value g as the Threefish key,
// with a tweak carrying position/type/first/final flags, then feeds the
// ciphertext back through Davies-Meyer (E(g,m) XOR m).
func ubi(g [words]uint64, msgBlock []byte, position uint64, blockType uint64, first, final bool) [words]uint64 {
	var padded [64]byte
	copy(padded[:], msgBlock)
	m := bytesToWords(padded[:])

	t1 := blockType << 56
	if first {
		t1 |= firstFlag
	}
	if final {
		t1 |= finalFlag
	}
	tweak := [2]uint64{position, t1}

	e := threefish512(g, tweak, m)
	var out [words]uint64
	for i := range out {
		out[i] = e[i] ^ m[i]
	}
	return out
}

// initialChain is Skein-512-256's configuration-block chaining value,
// derived by running UBI with the all-zero key over the 32-byte
// configuration string (schema "SHA3", version 1, output length 256 bits).
var initialChain = deriveInitialChain()

func deriveInitialChain() [words]uint64 {
	cfg := make([]byte, 32)
	copy(cfg[0:4], []byte{0x53, 0x48, 0x41, 0x33}) // "SHA3" schema identifier
	cfg[4], cfg[5] = 1, 0                          // version 1
	outBits := uint64(256)
	for i := 0; i < 8; i++ {
		cfg[8+i] = byte(outBits >> (8 * uint(i)))
	}

	var zero [words]uint64
	return ubi(zero, cfg, 32, typeCfg, true, true)
}

// Sum256 computes the Skein-512-256 digest of data.
func Sum256(data []byte) chainhash.Hash {
	g := initialChain

	if len(data) == 0 {
		g = ubi(g, nil, 0, typeMsg, true, true)
	} else {
		for off := 0; off < len(data); off += 64 {
			end := off + 64
			first := off == 0
			if end >= len(data) {
				end = len(data)
				g = ubi(g, data[off:end], uint64(end), typeMsg, first, true)
				break
			}
			g = ubi(g, data[off:end], uint64(end), typeMsg, first, false)
		}
	}

	out := ubi(g, []byte{0, 0, 0, 0, 0, 0, 0, 0}, 8, typeOut, true, true)
	full := wordsToBytes(out)

	var h chainhash.Hash
	copy(h[:], full[:32])
	return h
}
