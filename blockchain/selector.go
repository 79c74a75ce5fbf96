// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/badcoin-net/badcoind/blockindex"
	"github.com/badcoin-net/badcoind/chainalgo"
)

// LastForAlgo walks prev links starting at (and including) node, returning
// the first node whose Algo matches algo. It returns nil if the walk
// reaches genesis without finding one, mirroring the original
// GetLastBlockIndexForAlgo walk referenced throughout pow.cpp (spec
// component C5).
func LastForAlgo(node blockindex.View, algo chainalgo.Algo) blockindex.View {
	for n := node; n != nil; n = n.Prev() {
		if n.Algo() == algo {
			return n
		}
	}
	return nil
}

// WindowForAlgo returns the N-th same-algorithm predecessor of node
// (inclusive of node if node itself matches algo), i.e. it walks back
// through N-1 further same-algo blocks after the first match. It returns
// nil if fewer than N same-algo blocks are available, per spec.md §4.5.
func WindowForAlgo(node blockindex.View, algo chainalgo.Algo, n int) blockindex.View {
	cur := LastForAlgo(node, algo)
	if cur == nil {
		return nil
	}
	for i := 0; i < n-1; i++ {
		prev := cur.Prev()
		if prev == nil {
			return nil
		}
		cur = LastForAlgo(prev, algo)
		if cur == nil {
			return nil
		}
	}
	return cur
}
