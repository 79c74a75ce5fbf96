// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone_test

import (
	"fmt"
	"math/big"

	"github.com/badcoin-net/badcoind/standalone"
)

// This example demonstrates how to convert the compact "bits" in a block
// header which represent the target difficulty to a big integer and display
// it using the typical hex notation.
func ExampleCompactToBig() {
	bits := uint32(0x1d00ffff)
	target, negative, overflow := standalone.CompactToBig(bits)
	fmt.Printf("%064x\n", target.Bytes())
	fmt.Println(negative, overflow)

	// Output:
	// 00000000ffff0000000000000000000000000000000000000000000000000000
	// false false
}

// This example demonstrates converting a target difficulty into the compact
// "bits" representation used in a block header.
func ExampleBigToCompact() {
	t := "00000000ffff0000000000000000000000000000000000000000000000000000"
	target, ok := new(big.Int).SetString(t, 16)
	if !ok {
		fmt.Println("invalid target difficulty")
		return
	}
	fmt.Println(standalone.BigToCompact(target))

	// Output:
	// 486604799
}

// This example demonstrates calculating the proof-of-work contribution of a
// block given its compact difficulty bits.
func ExampleCalcWork() {
	work := standalone.CalcWork(0x1d00ffff)
	fmt.Println(work.Sign() > 0)

	// Output:
	// true
}
