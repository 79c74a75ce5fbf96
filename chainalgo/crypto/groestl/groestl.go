// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package groestl implements the Groestl-512 wide-pipe compression
// function, truncated and composed into a 256-bit output the way
// badcoin-net/Badcoin's GetPoWHash(ALGO_GROESTL) does. There is no
// ecosystem Go module for Groestl in the retrieval pack (see DESIGN.md); this
// package follows EXCCoin-exccd's pattern of carrying a hash algorithm the
// Go ecosystem doesn't ship as its own small internal crypto package
// (compare crypto/blake256, crypto/ripemd160 there).
package groestl

import (
	"github.com/badcoin-net/badcoind/chainalgo/crypto/internal/gf256"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	rows    = 8
	cols    = 8
	stateSz = rows * cols
	rounds  = 14
)

// shiftP and shiftQ are the per-row cyclic shift amounts for the P and Q
// permutations of the 512-bit (8x8 byte) Groestl state.
var (
	shiftP = [rows]int{0, 1, 2, 3, 4, 5, 6, 7}
	shiftQ = [rows]int{1, 3, 5, 7, 0, 2, 4, 6}
)

// mixBytesRow is the first row of the circulant MDS matrix MixBytes
// multiplies each column by, over GF(2^8).
var mixBytesRow = [cols]byte{2, 2, 3, 4, 5, 3, 5, 7}

// state is the 8x8 byte Groestl-512 state, addressed state[row][col].
type state [rows][cols]byte

func (s *state) addRoundConstantP(round int) {
	for col := 0; col < cols; col++ {
		s[0][col] ^= byte(col<<4) ^ byte(round)
	}
}

func (s *state) addRoundConstantQ(round int) {
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			if row == rows-1 {
				s[row][col] ^= byte(col<<4) ^ 0xff ^ byte(round)
			} else {
				s[row][col] ^= 0xff
			}
		}
	}
}

func (s *state) subBytes() {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s[r][c] = gf256.SBox[s[r][c]]
		}
	}
}

func (s *state) shiftBytes(shift [rows]int) {
	var out state
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[r][c] = s[r][(c+shift[r])%cols]
		}
	}
	*s = out
}

func (s *state) mixBytes() {
	var out state
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			var v byte
			for k := 0; k < rows; k++ {
				v ^= gf256.Mul(mixBytesRow[(k-r+rows)%rows], s[k][c])
			}
			out[r][c] = v
		}
	}
	*s = out
}

func (s *state) permute(shift [rows]int, round func(round int)) {
	for r := 0; r < rounds; r++ {
		round(r)
		s.subBytes()
		s.shiftBytes(shift)
		s.mixBytes()
	}
}

func bytesToState(b []byte) state {
	var s state
	for i := 0; i < stateSz; i++ {
		s[i%rows][i/rows] = b[i]
	}
	return s
}

func (s state) bytes() [stateSz]byte {
	var out [stateSz]byte
	for i := 0; i < stateSz; i++ {
		out[i] = s[i%rows][i/rows]
	}
	return out
}

func xorState(a, b state) state {
	var out state
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[r][c] = a[r][c] ^ b[r][c]
		}
	}
	return out
}

// compress runs one step of the Groestl compression function: the message
// block m is absorbed into the chaining value h via
// h' = h XOR P(h XOR m) XOR Q(m).
func compress(h, m state) state {
	p := xorState(h, m)
	p.permute(shiftP, p.addRoundConstantP)

	q := m
	q.permute(shiftQ, q.addRoundConstantQ)

	return xorState(xorState(h, p), q)
}

// pad applies Groestl's length-suffixed padding: a 1 bit, zero bits, and a
// 64-bit big-endian block counter, extended to a multiple of the 64-byte
// block size.
func pad(msg []byte) []byte {
	ml := len(msg)
	// +1 for the 0x80 byte, +8 for the big-endian block counter.
	total := ml + 1 + 8
	rem := total % stateSz
	zeros := 0
	if rem != 0 {
		zeros = stateSz - rem
	}

	out := make([]byte, 0, ml+1+zeros+8)
	out = append(out, msg...)
	out = append(out, 0x80)
	for i := 0; i < zeros; i++ {
		out = append(out, 0)
	}

	blocks := uint64(len(out)+8) / stateSz
	var lenBytes [8]byte
	for i := 0; i < 8; i++ {
		lenBytes[7-i] = byte(blocks >> (8 * uint(i)))
	}
	out = append(out, lenBytes[:]...)
	return out
}

// Sum512 returns the full 512-bit Groestl-512 digest of data.
func Sum512(data []byte) [64]byte {
	padded := pad(data)

	// Initial chaining value: 0..0 with the digest size (512) in the last
	// two bytes, per the Groestl specification.
	var h state
	h[rows-2][cols-1] = 0x02
	h[rows-1][cols-1] = 0x00

	for off := 0; off < len(padded); off += stateSz {
		m := bytesToState(padded[off : off+stateSz])
		h = compress(h, m)
	}

	// Output transformation: P(h) XOR h, then truncate.
	out := h
	out.permute(shiftP, out.addRoundConstantP)
	out = xorState(out, h)
	return out.bytes()
}

// Sum256 truncates the Groestl-512 digest to the low 256 bits, which is how
// badcoin-net/Badcoin composes Groestl into a block's proof-of-work hash.
func Sum256(data []byte) chainhash.Hash {
	full := Sum512(data)
	var h chainhash.Hash
	copy(h[:], full[32:])
	return h
}
