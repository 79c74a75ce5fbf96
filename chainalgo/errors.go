// Copyright (c) 2025 The badcoind developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainalgo

import "errors"

// errAlreadyAuxpow is returned by SetBaseVersion when asked to stamp a chain
// id onto a header that already flags an AuxPoW payload.
var errAlreadyAuxpow = errors.New("chainalgo: header already flags auxpow")
