// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockindex defines the read-only, back-linked view of header
// summaries the retarget engine, work accounting, and PoW verifier walk
// (spec component C3). The core never mutates a node; it only ever
// dereferences prev links and reads the summary fields off the node it
// lands on. This mirrors btcd/EXCCoin-exccd's blockNode abstraction but
// narrows it to exactly the fields the consensus core consumes — block and
// header storage, forward links, and everything else blockNode normally
// carries are an external collaborator's concern (spec.md §1).
package blockindex

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/badcoin-net/badcoind/chainalgo"
	"github.com/badcoin-net/badcoind/standalone"
)

// View is the read-only interface the consensus core walks. Implementations
// are owned externally; the core borrows a reference for the duration of a
// single call and never retains it past that call returning.
type View interface {
	// Prev returns the node's predecessor, or nil at the genesis node.
	Prev() View

	// Height returns the node's height. Heights strictly increase by 1
	// along Prev links.
	Height() int32

	// Time returns the node's block time (Unix seconds).
	Time() int64

	// MedianTimePast returns the median of the preceding 11 block times
	// (including this node), monotonically non-decreasing along the chain.
	MedianTimePast() int64

	// Bits returns the node's compact-encoded target.
	Bits() uint32

	// Algo returns the mining algorithm this block was produced with.
	Algo() chainalgo.Algo

	// ChainWork returns cumulative work up to and including this node.
	ChainWork() *standalone.ChainWork

	// IsAuxpow reports whether the node's header flagged an AuxPoW
	// payload.
	IsAuxpow() bool

	// ChainID returns the AuxPoW chain id packed into the node's version,
	// meaningful only when IsAuxpow is true.
	ChainID() int32
}

// Node is an in-memory, arena-style implementation of View suitable for
// tests and for any host that keeps its block index resident in memory.
// Nodes are built bottom-up; once constructed a Node's fields never change,
// matching spec.md §4.3 ("the core never mutates nodes").
type Node struct {
	prev           *Node
	height         int32
	blockTime      int64
	medianTimePast int64
	bits           uint32
	algo           chainalgo.Algo
	chainWork      *standalone.ChainWork
	isAuxpow       bool
	chainID        int32
	hash           chainhash.Hash
}

// NewNode constructs a Node. medianTimePast must be computed by the caller
// (typically the median of the preceding 11 blocks' times, including this
// one) since the core treats it as an input, not a derived quantity it
// recomputes from raw timestamps.
func NewNode(prev *Node, height int32, blockTime, medianTimePast int64, bits uint32, algo chainalgo.Algo, chainWork *standalone.ChainWork, isAuxpow bool, chainID int32, hash chainhash.Hash) *Node {
	return &Node{
		prev:           prev,
		height:         height,
		blockTime:      blockTime,
		medianTimePast: medianTimePast,
		bits:           bits,
		algo:           algo,
		chainWork:      chainWork,
		isAuxpow:       isAuxpow,
		chainID:        chainID,
		hash:           hash,
	}
}

// Prev implements View.
func (n *Node) Prev() View {
	if n == nil || n.prev == nil {
		return nil
	}
	return n.prev
}

// PrevNode returns the concrete predecessor, or nil at genesis. Tests and
// other code operating purely in terms of *Node (rather than the View
// interface) use this to avoid a type assertion on every walk.
func (n *Node) PrevNode() *Node {
	if n == nil {
		return nil
	}
	return n.prev
}

// Height implements View.
func (n *Node) Height() int32 { return n.height }

// Time implements View.
func (n *Node) Time() int64 { return n.blockTime }

// MedianTimePast implements View.
func (n *Node) MedianTimePast() int64 { return n.medianTimePast }

// Bits implements View.
func (n *Node) Bits() uint32 { return n.bits }

// Algo implements View.
func (n *Node) Algo() chainalgo.Algo { return n.algo }

// ChainWork implements View.
func (n *Node) ChainWork() *standalone.ChainWork { return n.chainWork }

// IsAuxpow implements View.
func (n *Node) IsAuxpow() bool { return n.isAuxpow }

// ChainID implements View.
func (n *Node) ChainID() int32 { return n.chainID }

// Hash returns the node's block hash. Not part of the View interface (the
// core never needs a node's own hash to do its job) but useful for test
// fixtures and for callers resolving AuxPoW checkpoints.
func (n *Node) Hash() chainhash.Hash { return n.hash }
