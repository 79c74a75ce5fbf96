// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "errors"

var (
	// ErrUnknownNetwork is returned by SelectNetwork when given a name
	// other than "main", "test", or "regtest".
	ErrUnknownNetwork = errors.New("chaincfg: unknown network")

	// ErrNetworkAlreadySelected is returned by SelectNetwork when the
	// process-wide handle was already initialized by an earlier call with
	// a different network name.
	ErrNetworkAlreadySelected = errors.New("chaincfg: network already selected")
)
