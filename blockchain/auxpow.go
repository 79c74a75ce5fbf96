// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/badcoin-net/badcoind/chaincfg"
	"github.com/badcoin-net/badcoind/chainalgo"
)

// mergeMinableAlgos is the historical set of algorithms permitted to carry
// an AuxPoW payload (spec.md §4.8, §6).
var mergeMinableAlgos = map[chainalgo.Algo]bool{
	chainalgo.SHA256D: true,
	chainalgo.SCRYPT:  true,
}

// Header is the minimal view of a block header C8 needs: its raw version
// and bits fields, the 80-byte serialization PowHash is computed over, and
// the header's own hash (used as the AuxPoW validator's own_hash input).
// Serialization and hashing of the wire format are an external
// collaborator's concern (spec.md §1); Header only ever carries
// already-computed bytes.
type Header struct {
	Version         int32
	Bits            uint32
	SerializedNoAux []byte
	Hash            chainhash.Hash
}

// AuxpowPayload is the external AuxPoW parent-proof interface named in
// spec.md §6: Check verifies the parent chain actually committed to
// own_hash under the expected chain id; ParentPowHash returns the parent
// header's own proof-of-work digest for the given algorithm, to be checked
// against this chain's target.
type AuxpowPayload interface {
	Check(ownHash chainhash.Hash, expectedChainID int32, p *chaincfg.Params) bool
	ParentPowHash(algo chainalgo.Algo) chainhash.Hash
}

// CheckAuxpowProofOfWork implements check_auxpow_proof_of_work (spec.md
// §4.8): it dispatches between a plain proof-of-work check and an AuxPoW
// parent-chain check depending on whether the header's version flags
// AuxPoW and whether an AuxPoW payload is actually present, rejecting any
// combination where those two signals disagree. height >= StartAuxPow is
// not checked here; that gate belongs to the block-acceptance layer.
func CheckAuxpowProofOfWork(h Header, aux AuxpowPayload, fifth chainalgo.FifthSlotAlgo, p *chaincfg.Params) error {
	algo := chainalgo.AlgoFromVersion(h.Version)
	isAuxpowVersion := chainalgo.IsAuxpowVersion(h.Version)

	// A "legacy-versioned" header is one that predates the chain-id
	// packing scheme entirely (no bits above the algorithm/auxpow flag
	// are set); those are exempt from the strict chain-id check, since
	// they were never given a chain id to compare against (spec.md §4.8).
	isLegacyVersion := h.Version < chainalgo.VersionChainStart
	if !isLegacyVersion && p.StrictChainID {
		if chainalgo.ChainIDFromVersion(h.Version) != p.AuxpowChainID {
			return ruleError(ErrWrongChainID, "header chain id does not match network")
		}
	}

	if aux == nil {
		if isAuxpowVersion {
			return ruleError(ErrAuxpowFlagMismatch, "header version flags auxpow but no payload is present")
		}
		hash, err := chainalgo.PowHash(algo, fifth, h.SerializedNoAux)
		if err != nil {
			return ruleError(ErrBadProofOfWork, err.Error())
		}
		return CheckProofOfWork(hash, h.Bits, p)
	}

	if !isAuxpowVersion {
		return ruleError(ErrAuxpowFlagMismatch, "auxpow payload present but header version does not flag it")
	}

	if !mergeMinableAlgos[algo] {
		return ruleError(ErrAlgoNotPermittedForAuxpow, "algorithm is not permitted for merge mining")
	}

	if !aux.Check(h.Hash, p.AuxpowChainID, p) {
		return ruleError(ErrAuxpowParentInvalid, "auxpow parent proof failed validation")
	}

	return CheckProofOfWork(aux.ParentPowHash(algo), h.Bits, p)
}
