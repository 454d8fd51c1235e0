// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package remotestate provides access to the ledger state of a remote node
// through its state query service. All queries address immutable historical
// state identified by a state root, which makes their results cacheable for
// an unlimited time.
package remotestate

//go:generate mockgen -source client.go -destination client_mocks.go -package remotestate

import (
	"context"

	"github.com/Fantom-foundation/Mimic/common"
)

// ErrValueNotFound is returned when the remote node holds no value for the
// requested key. It is kept apart from transport failures so that callers
// can treat it as plain absence.
const ErrValueNotFound = common.ConstError("remote value not found")

// StateEntry is a single key/value pair of contract storage delivered by a
// range query.
type StateEntry struct {
	Key   []byte
	Value []byte
}

// StateClient is the query boundary towards the state service of a remote
// node. Transport, serialization and authentication are implementation
// concerns behind this interface.
type StateClient interface {
	// GetBlockHash resolves a block index to the hash of that block.
	GetBlockHash(ctx context.Context, index uint64) (common.Hash, error)

	// GetStateRoot resolves a block index to the state root valid at that
	// block.
	GetStateRoot(ctx context.Context, index uint64) (common.Hash, error)

	// GetProvenState retrieves a proven storage value of the given contract
	// under the given state root. A missing value is reported as
	// ErrValueNotFound.
	GetProvenState(ctx context.Context, root common.Hash, contract common.Address, key []byte) ([]byte, error)

	// FindStates retrieves up to count storage entries of the given contract
	// whose keys start with the prefix, continuing after the from key if one
	// is given.
	FindStates(ctx context.Context, root common.Hash, contract common.Address, prefix []byte, from []byte, count int) ([]StateEntry, error)

	// Close releases the connection to the remote node.
	Close()
}
