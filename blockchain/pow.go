// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/badcoin-net/badcoind/chaincfg"
	"github.com/badcoin-net/badcoind/standalone"
)

// CheckProofOfWork verifies that hash satisfies the target encoded by bits,
// and that bits itself decodes to a target within the network's permitted
// range, per spec.md §4.8 step 1-3. It never panics on attacker-controlled
// input; every rejection path returns a RuleError carrying a typed reason
// code.
func CheckProofOfWork(hash chainhash.Hash, bits uint32, p *chaincfg.Params) error {
	target, negative, overflow := standalone.CompactToBig(bits)
	if negative || overflow || target.Sign() == 0 || target.Cmp(p.PowLimit) > 0 {
		return ruleError(ErrTargetOutOfRange, fmt.Sprintf("target for bits 0x%08x is out of range", bits))
	}

	hashNum := standalone.HashToBig(&hash)
	if hashNum.Cmp(target) > 0 {
		return ruleError(ErrBadProofOfWork, "block hash exceeds target")
	}

	return nil
}
