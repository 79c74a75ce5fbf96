// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainalgo implements the proof-of-work hash dispatch (spec
// component C2): decoding which of the five mining algorithms a block
// header declares, and computing that algorithm's digest over the header
// bytes. It is grounded on badcoin-net/Badcoin's src/primitives/pureheader.cpp
// (GetAlgo / GetPoWHash / SetBaseVersion).
package chainalgo

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/scrypt"

	"github.com/badcoin-net/badcoind/chainalgo/crypto/groestl"
	"github.com/badcoin-net/badcoind/chainalgo/crypto/qubit"
	"github.com/badcoin-net/badcoind/chainalgo/crypto/skein"
	"github.com/badcoin-net/badcoind/chainalgo/crypto/yescrypt"
)

// Algo identifies one of the five proof-of-work hash functions a header may
// declare. The fifth slot (FifthSlot) is Qubit before a network's Yescrypt
// activation time and Yescrypt after it; callers resolve that rotation
// themselves (see chaincfg.Params.FifthSlotAlgoAt) and pass the result to
// PowHash as its fifth argument, which picks the concrete hash function
// behind the FifthSlot marker.
type Algo int

const (
	SHA256D Algo = iota
	SCRYPT
	GROESTL
	SKEIN
	FifthSlot
)

// NumAlgos is the number of concurrent mining algorithms the chain admits.
const NumAlgos = 5

func (a Algo) String() string {
	switch a {
	case SHA256D:
		return "sha256d"
	case SCRYPT:
		return "scrypt"
	case GROESTL:
		return "groestl"
	case SKEIN:
		return "skein"
	case FifthSlot:
		return "fifth"
	default:
		return "unknown"
	}
}

// Version-field bit layout. The three algorithm bits sit above the 9 low
// bits historically reserved for BIP9-style signaling, and the chain id used
// by AuxPoW occupies the bits above that, following the scheme
// badcoin-net/Badcoin inherited from Namecoin/Myriad-style merge mining.
const (
	blockVersionAlgoShift = 9
	blockVersionAlgoMask  = int32(7) << blockVersionAlgoShift // 0x00000E00

	blockVersionSHA256D  = int32(0) << blockVersionAlgoShift
	blockVersionScrypt   = int32(1) << blockVersionAlgoShift
	blockVersionGroestl  = int32(2) << blockVersionAlgoShift
	blockVersionSkein    = int32(3) << blockVersionAlgoShift
	blockVersionFifth    = int32(4) << blockVersionAlgoShift

	// VersionAuxpow flags that the header carries a merge-mining proof.
	VersionAuxpow = int32(1) << 8

	// VersionChainStart is the multiplier SetBaseVersion uses to pack a
	// 16-bit chain id above the algorithm and AuxPoW bits.
	VersionChainStart = int32(1) << 16
)

// AlgoFromVersion decodes the mining algorithm from a header's nVersion
// field using the BLOCK_VERSION_ALGO mask. It defaults to SHA256D when the
// field matches none of the known algorithm bit patterns, matching
// GetAlgo's fallthrough in the reference implementation.
func AlgoFromVersion(version int32) Algo {
	switch version & blockVersionAlgoMask {
	case blockVersionSHA256D:
		return SHA256D
	case blockVersionScrypt:
		return SCRYPT
	case blockVersionGroestl:
		return GROESTL
	case blockVersionSkein:
		return SKEIN
	case blockVersionFifth:
		return FifthSlot
	default:
		return SHA256D
	}
}

// ChainIDFromVersion extracts the 16-bit AuxPoW chain id packed above the
// algorithm and flag bits by SetBaseVersion.
func ChainIDFromVersion(version int32) int32 {
	return version / VersionChainStart
}

// IsAuxpowVersion reports whether the header's version flags an AuxPoW
// payload.
func IsAuxpowVersion(version int32) bool {
	return version&VersionAuxpow != 0
}

// SetBaseVersion packs a base version, algorithm-free low bits, and a
// 16-bit chain id the way the reference client's CPureBlockHeader does,
// refusing to do so on a header that already flags AuxPoW.
func SetBaseVersion(baseVersion int32, chainID int32) (int32, error) {
	if baseVersion&VersionAuxpow != 0 {
		return 0, errAlreadyAuxpow
	}
	return baseVersion | (chainID * VersionChainStart), nil
}

// FifthSlotAlgo resolves which real hash function the fifth rotating slot
// maps to: Qubit before the network's Yescrypt activation time, Yescrypt at
// or after it. Header blockTime is compared against activation in Unix
// seconds, matching spec.md §6 ("block-time based; not height based").
type FifthSlotAlgo int

const (
	Qubit FifthSlotAlgo = iota
	Yescrypt
)

// PowHash computes the 256-bit proof-of-work digest for header, dispatching
// on algo. fifth resolves which concrete hash function backs the rotating
// fifth slot; it is ignored for the other four algorithms.
//
// header must be the 80-byte serialized block header (version, prev block,
// merkle root, time, bits, nonce) exactly as it is hashed for proof-of-work
// purposes — serialization itself is an external collaborator's concern
// (spec.md §1); chainalgo only ever receives the already-serialized bytes.
func PowHash(algo Algo, fifth FifthSlotAlgo, header []byte) (chainhash.Hash, error) {
	switch algo {
	case SHA256D:
		return doubleSHA256(header), nil
	case SCRYPT:
		return scryptHash(header)
	case GROESTL:
		return groestl.Sum256(header), nil
	case SKEIN:
		return skein.Sum256(header), nil
	case FifthSlot:
		if fifth == Yescrypt {
			return yescrypt.Sum256(header), nil
		}
		return qubit.Sum256(header), nil
	default:
		return doubleSHA256(header), nil
	}
}

func doubleSHA256(b []byte) chainhash.Hash {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return chainhash.Hash(second)
}

func scryptHash(b []byte) (chainhash.Hash, error) {
	const (
		scryptN = 1024
		scryptR = 1
		scryptP = 1
		keyLen  = 32
	)
	out, err := scrypt.Key(b, b, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return chainhash.Hash{}, err
	}
	var h chainhash.Hash
	copy(h[:], out)
	return h, nil
}
