// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// checkpoint740001Hash and checkpoint1402167Hash pin two known-good blocks
// on the main network well past genesis, the way the original
// implementation's checkpointData table does (src/test/Checkpoints_tests.cpp).
var checkpoint740001Hash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0xaa, 0x6c, 0xd5, 0xca, 0x4c, 0xfb, 0x3c, 0x5c,
	0x9a, 0x1b, 0x9a, 0x1d, 0xaa, 0xf4, 0x79, 0x27,
	0x7d, 0xaf, 0xb5, 0x8e, 0x68, 0xad, 0xa3, 0xaa,
	0xc7, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
})

var checkpoint1402167Hash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0x29, 0xab, 0xb3, 0x5d, 0x06, 0x29, 0xf6, 0x6b,
	0xbb, 0xf8, 0x9d, 0x07, 0x01, 0x41, 0x05, 0x0f,
	0x44, 0xb4, 0xd4, 0xa9, 0x61, 0x43, 0x51, 0x74,
	0xbf, 0xb9, 0x2d, 0xeb, 0x9f, 0xcd, 0x15, 0x82,
})

// CheckBlock reports whether hash is an acceptable block at height against
// checkpoints: true if height carries no checkpoint, otherwise whether hash
// matches the checkpoint pinned there. It is the same gate the original
// implementation's Checkpoints::CheckBlock applies (spec.md §6), kept here
// as a value-returning helper rather than a validation-stage side effect —
// the core exposes checkpoints and this predicate, but never itself calls
// it during header or block acceptance.
func CheckBlock(checkpoints []Checkpoint, height int32, hash chainhash.Hash) bool {
	for _, c := range checkpoints {
		if c.Height == height {
			return c.Hash == hash
		}
	}
	return true
}

// GetTotalBlocksEstimate returns the height of the most recent checkpoint,
// a lower bound on the chain's total block count a syncing node can assume
// without having downloaded anything past it.
func GetTotalBlocksEstimate(checkpoints []Checkpoint) int32 {
	var best int32
	for _, c := range checkpoints {
		if c.Height > best {
			best = c.Height
		}
	}
	return best
}
