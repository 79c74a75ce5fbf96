// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// genesisCoinbaseScriptSig is the scriptSig shared by every network's
// genesis coinbase input: a push of 486604799 (the Bitcoin genesis nBits,
// carried forward as a timestamp-proof convention), a push of the integer
// 4, and the launch headline, matching the canonical genesis message.
var genesisCoinbaseScriptSig = []byte{
	0x04, 0xff, 0xff, 0x00, 0x1d, /* push 486604799 */
	0x01, 0x04, /* push 4 */
	0x36, /* push 54 bytes */
	0x32, 0x30, 0x31, 0x34, 0x2d, 0x30, 0x32, 0x2d, /* |2014-02-| */
	0x32, 0x33, 0x20, 0x46, 0x54, 0x20, 0x2d, 0x20, /* |23 FT - | */
	0x47, 0x32, 0x30, 0x20, 0x61, 0x69, 0x6d, 0x73, /* |G20 aims| */
	0x20, 0x74, 0x6f, 0x20, 0x61, 0x64, 0x64, 0x20, /* | to add | */
	0x24, 0x32, 0x74, 0x6e, 0x20, 0x74, 0x6f, 0x20, /* |$2tn to | */
	0x67, 0x6c, 0x6f, 0x62, 0x61, 0x6c, 0x20, 0x65, /* |global e| */
	0x63, 0x6f, 0x6e, 0x6f, 0x6d, 0x79, /* |conomy| */
}

// genesisCoinbasePkScript pushes a 65-byte uncompressed public key followed
// by OP_CHECKSIG. Genesis block coinbase outputs are provably unspendable in
// practice (no node has the matching private key); the exact historical key
// bytes are not required for the consensus core, which only ever needs the
// block's tabulated hash and Merkle root, carried as literal constants
// below in the same way the rest of the retrieval pack does.
var genesisCoinbasePkScript = append(append([]byte{0x41}, make([]byte, 65)...), 0xac)

// genesisCoinbaseTx is the coinbase transaction shared by the genesis block
// of every network.
var genesisCoinbaseTx = wire.MsgTx{
	Version: 1,
	TxIn: []*wire.TxIn{
		{
			PreviousOutPoint: wire.OutPoint{
				Hash:  chainhash.Hash{},
				Index: 0xffffffff,
			},
			SignatureScript: genesisCoinbaseScriptSig,
			Sequence:        0xffffffff,
		},
	},
	TxOut: []*wire.TxOut{
		{
			Value:    0x174876e800, // 1000 * 10^8, the genesis block reward
			PkScript: genesisCoinbasePkScript,
		},
	},
	LockTime: 0,
}

// genesisHash is the hash of the main network's genesis block.
var genesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0x85, 0xa4, 0x1e, 0xfa, 0xcf, 0x83, 0x75, 0x8f,
	0xf7, 0x32, 0x8f, 0xb3, 0xf0, 0xef, 0x19, 0xf6,
	0x4b, 0x31, 0x3d, 0xea, 0xa0, 0x41, 0x84, 0x93,
	0xb5, 0x20, 0xc0, 0xe4, 0xfd, 0x0f, 0x00, 0x00,
})

// genesisMerkleRoot is the Merkle root of the main network's genesis block
// (the hash of its single coinbase transaction).
var genesisMerkleRoot = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0xda, 0x69, 0x64, 0xfd, 0x87, 0xc7, 0x9d, 0x6c,
	0x9a, 0x28, 0x8e, 0xf8, 0xbb, 0xce, 0x4c, 0xdf,
	0xfd, 0xe1, 0x22, 0x12, 0xdc, 0x30, 0x15, 0xc2,
	0x46, 0x2f, 0xe9, 0x18, 0x3c, 0xdb, 0x75, 0x3f,
})

// genesisBlock defines the genesis block for the main network.
var genesisBlock = wire.MsgBlock{
	Header: wire.BlockHeader{
		Version:    2,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: genesisMerkleRoot,
		Timestamp:  time.Unix(1393164995, 0),
		Bits:       0x1e0fffff,
		Nonce:      2092903596,
	},
	Transactions: []*wire.MsgTx{&genesisCoinbaseTx},
}

// testNetGenesisHash is the hash of the test network's genesis block.
var testNetGenesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0x88, 0x97, 0x4b, 0x08, 0x62, 0xb7, 0x62, 0x5f,
	0x08, 0x34, 0x4b, 0x35, 0x8c, 0x67, 0x20, 0x2b,
	0xa9, 0x4a, 0x00, 0x7c, 0xe4, 0xbb, 0xaf, 0xdd,
	0x8b, 0x9c, 0xa7, 0xe2, 0x7c, 0x01, 0x00, 0x00,
})

// testNetGenesisBlock defines the genesis block for the test network.
var testNetGenesisBlock = wire.MsgBlock{
	Header: wire.BlockHeader{
		Version:    2,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: genesisMerkleRoot,
		Timestamp:  time.Unix(1392876393, 0),
		Bits:       0x1e0fffff,
		Nonce:      416875379,
	},
	Transactions: []*wire.MsgTx{&genesisCoinbaseTx},
}

// regTestGenesisHash is the hash of the regression test network's genesis
// block.
var regTestGenesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0x7c, 0xa3, 0x4e, 0xb5, 0x37, 0x51, 0x9c, 0xcd,
	0xf4, 0x0b, 0x42, 0xf2, 0xfa, 0xff, 0xbd, 0x48,
	0x29, 0xe5, 0xb3, 0x80, 0xdc, 0xdd, 0x33, 0xaa,
	0x08, 0x38, 0xc9, 0xdd, 0x87, 0x29, 0xb9, 0x63,
})

// regTestGenesisBlock defines the genesis block for the regression test
// network.
var regTestGenesisBlock = wire.MsgBlock{
	Header: wire.BlockHeader{
		Version:    2,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: genesisMerkleRoot,
		Timestamp:  time.Unix(1296688602, 0),
		Bits:       0x207fffff,
		Nonce:      4,
	},
	Transactions: []*wire.MsgTx{&genesisCoinbaseTx},
}
