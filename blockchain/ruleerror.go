// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "fmt"

// ErrorCode identifies a specific consensus rule a header or proof failed,
// mirroring the shape of btcd's and EXCCoin-exccd's blockchain.RuleError:
// a typed reason code plus a human-readable description, never a panic on
// attacker-controlled input (spec.md §10 AMBIENT STACK).
type ErrorCode int

const (
	// ErrNoPrevAlgoBlock describes a per-algorithm selector underflow while
	// walking back for a retarget window. The retarget functions in this
	// package do not return it; they return the network's PoW limit bits
	// in that case.
	ErrNoPrevAlgoBlock ErrorCode = iota
	// ErrBadProofOfWork indicates the claimed hash exceeds the target.
	ErrBadProofOfWork
	// ErrTargetOutOfRange indicates the decoded target is negative, zero,
	// overflowing, or greater than the network's PoW limit.
	ErrTargetOutOfRange
	// ErrWrongChainID indicates an AuxPoW header's embedded chain id does
	// not match the network's configured AuxpowChainID under StrictChainID.
	ErrWrongChainID
	// ErrAuxpowFlagMismatch indicates the header's AuxPoW version flag and
	// the presence or absence of an AuxPoW payload disagree.
	ErrAuxpowFlagMismatch
	// ErrAlgoNotPermittedForAuxpow indicates the header's algorithm is not
	// in the merge-minable set.
	ErrAlgoNotPermittedForAuxpow
	// ErrAuxpowParentInvalid indicates the external AuxPoW validator
	// rejected the parent-chain proof.
	ErrAuxpowParentInvalid
	// ErrSequentialAlgoCapExceeded indicates a block would extend a
	// same-algorithm run past the height-selected cap.
	ErrSequentialAlgoCapExceeded
)

var errorCodeStrings = map[ErrorCode]string{
	ErrNoPrevAlgoBlock:           "no previous block of the given algorithm",
	ErrBadProofOfWork:            "block hash exceeds target",
	ErrTargetOutOfRange:          "target out of valid range",
	ErrWrongChainID:              "auxpow chain id does not match network",
	ErrAuxpowFlagMismatch:        "auxpow version flag and payload presence disagree",
	ErrAlgoNotPermittedForAuxpow: "algorithm is not permitted for merge mining",
	ErrAuxpowParentInvalid:       "auxpow parent proof is invalid",
	ErrSequentialAlgoCapExceeded: "too many consecutive blocks of the same algorithm",
}

// String implements fmt.Stringer.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int(e))
}

// RuleError identifies a rule that was violated, carrying both the typed
// code (for programmatic dispatch) and a free-form description (for
// diagnostics). It is returned, never panicked, so the calling layer
// decides whether to reject a block or treat the failure as fatal.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error implements the error interface.
func (e RuleError) Error() string {
	return e.Description
}

func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
