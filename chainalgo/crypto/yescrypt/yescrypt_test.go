// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package yescrypt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badcoin-net/badcoind/chainalgo/crypto/yescrypt"
)

func TestSum256Deterministic(t *testing.T) {
	data := []byte("badcoin header bytes")
	require.Equal(t, yescrypt.Sum256(data), yescrypt.Sum256(data))
}

func TestSum256DiffersOnInput(t *testing.T) {
	a := yescrypt.Sum256([]byte{0x00})
	b := yescrypt.Sum256([]byte{0x01})
	require.NotEqual(t, a, b)
}
