// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/badcoin-net/badcoind/standalone"
)

func TestCompactToBigFlags(t *testing.T) {
	tests := []struct {
		name      string
		bits      uint32
		negative  bool
		overflow  bool
	}{
		{name: "zero", bits: 0x00000000},
		{name: "positive", bits: 0x1d00ffff},
		{name: "sign bit set", bits: 0x01800001, negative: true},
		{name: "overflowing exponent", bits: 0x22010000, overflow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, negative, overflow := standalone.CompactToBig(tt.bits)
			require.Equal(t, tt.negative, negative)
			require.Equal(t, tt.overflow, overflow)
		})
	}
}

// TestCompactRoundTrip exercises testable property #2 from the spec: for
// every 256-bit target T <= powLimit, decode(encode(T)) == T up to the
// compact encoding's 24-bit mantissa truncation.
func TestCompactRoundTrip(t *testing.T) {
	powLimit := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	rapid.Check(t, func(rt *rapid.T) {
		bits := rapid.Uint32Range(0, 0x20ffffff).Draw(rt, "bits")
		target, negative, overflow := standalone.CompactToBig(bits)
		if negative || overflow || target.Sign() <= 0 || target.Cmp(powLimit) > 0 {
			return
		}

		reencoded := standalone.BigToCompact(target)
		redecoded, negative2, overflow2 := standalone.CompactToBig(reencoded)
		require.False(rt, negative2)
		require.False(rt, overflow2)

		// The mantissa only carries 23 significant bits, so re-encoding may
		// round down the low bits; the redecoded value must never exceed
		// the original.
		require.True(rt, redecoded.Cmp(target) <= 0)
	})
}

func TestCalcWorkDegenerate(t *testing.T) {
	require.Equal(t, 0, standalone.CalcWork(0x01800001).Sign(), "negative target must yield zero work")
	require.Equal(t, 0, standalone.CalcWork(0).Sign(), "zero target must yield zero work")
}

func TestCalcWorkMonotonic(t *testing.T) {
	// A smaller target (harder difficulty) must contribute more work than
	// a larger one.
	harder := standalone.CalcWork(0x1c00ffff)
	easier := standalone.CalcWork(0x1d00ffff)
	require.Equal(t, 1, harder.Cmp(easier))
}

func TestNthRootExact(t *testing.T) {
	x := new(big.Int).Exp(big.NewInt(7), big.NewInt(5), nil)
	require.Equal(t, big.NewInt(7), standalone.NthRoot(x, 5))
}

func TestNthRootFloor(t *testing.T) {
	x := new(big.Int).Exp(big.NewInt(7), big.NewInt(5), nil)
	x.Add(x, big.NewInt(1))
	root := standalone.NthRoot(x, 5)
	require.Equal(t, big.NewInt(7), root)
}

func TestNthRootZero(t *testing.T) {
	require.Equal(t, 0, standalone.NthRoot(big.NewInt(0), 5).Sign())
}
