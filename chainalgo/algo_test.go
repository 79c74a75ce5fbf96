// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainalgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badcoin-net/badcoind/chainalgo"
)

func TestAlgoFromVersionRoundTrip(t *testing.T) {
	tests := []struct {
		version int32
		algo    chainalgo.Algo
	}{
		{0x20000000, chainalgo.SHA256D},
		{0x20000200, chainalgo.SCRYPT},
		{0x20000400, chainalgo.GROESTL},
		{0x20000600, chainalgo.SKEIN},
		{0x20000800, chainalgo.FifthSlot},
	}
	for _, tt := range tests {
		require.Equal(t, tt.algo, chainalgo.AlgoFromVersion(tt.version))
	}
}

func TestAlgoFromVersionUnknownFallsBackToSHA256D(t *testing.T) {
	require.Equal(t, chainalgo.SHA256D, chainalgo.AlgoFromVersion(0x20000A00))
}

func TestSetBaseVersionPacksChainID(t *testing.T) {
	v, err := chainalgo.SetBaseVersion(0x00000200, 0x0021)
	require.NoError(t, err)
	require.Equal(t, chainalgo.SCRYPT, chainalgo.AlgoFromVersion(v))
	require.Equal(t, int32(0x0021), chainalgo.ChainIDFromVersion(v))
}

func TestSetBaseVersionRejectsAlreadyAuxpow(t *testing.T) {
	_, err := chainalgo.SetBaseVersion(0x20000200|chainalgo.VersionAuxpow, 1)
	require.Error(t, err)
}

func TestIsAuxpowVersion(t *testing.T) {
	require.True(t, chainalgo.IsAuxpowVersion(chainalgo.VersionAuxpow))
	require.False(t, chainalgo.IsAuxpowVersion(0))
}

func TestPowHashDispatchesPerAlgo(t *testing.T) {
	header := make([]byte, 80)
	for i := range header {
		header[i] = byte(i)
	}

	algos := []chainalgo.Algo{chainalgo.SHA256D, chainalgo.SCRYPT, chainalgo.GROESTL, chainalgo.SKEIN}
	seen := map[chainalgo.Algo][32]byte{}
	for _, a := range algos {
		h, err := chainalgo.PowHash(a, chainalgo.Qubit, header)
		require.NoError(t, err)
		seen[a] = h
	}
	// Every algorithm must produce a distinct digest over the same header.
	for i, a := range algos {
		for j, b := range algos {
			if i == j {
				continue
			}
			require.NotEqual(t, seen[a], seen[b], "%s and %s collided", a, b)
		}
	}
}

func TestPowHashFifthSlotRotation(t *testing.T) {
	header := make([]byte, 80)
	qubitHash, err := chainalgo.PowHash(chainalgo.FifthSlot, chainalgo.Qubit, header)
	require.NoError(t, err)
	yescryptHash, err := chainalgo.PowHash(chainalgo.FifthSlot, chainalgo.Yescrypt, header)
	require.NoError(t, err)
	require.NotEqual(t, qubitHash, yescryptHash)
}
