// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package remote

import (
	"context"
	"errors"

	"github.com/Fantom-foundation/Mimic/common"
	"github.com/Fantom-foundation/Mimic/remotestate"
	"github.com/Fantom-foundation/Mimic/storage"
)

// Store is a read-only storage.Store implementation serving the storage of a
// single contract at a fixed state root from a remote node. Lookups go
// through a remotestate.CachingClient, so every distinct key is fetched at
// most once; since the state behind a historical root never changes, cached
// entries stay valid for the lifetime of the store.
//
// Writes are not supported: Put, Delete and the Commit of snapshots created
// on this store fail with storage.ErrReadOnly, which callers can tell apart
// from a missing key. Local modifications on top of remote state are the job
// of the tracking store.
type Store struct {
	client   *remotestate.CachingClient
	root     common.Hash
	contract common.Address
}

// NewStore creates a read-only view on the given contract's storage at the
// given state root. The caching client may be shared between stores and
// remains owned by the caller.
func NewStore(client *remotestate.CachingClient, root common.Hash, contract common.Address) *Store {
	return &Store{
		client:   client,
		root:     root,
		contract: contract,
	}
}

func (s *Store) Get(key []byte) ([]byte, bool, error) {
	value, err := s.client.GetProvenState(context.Background(), s.root, s.contract, key)
	if err != nil {
		if errors.Is(err, remotestate.ErrValueNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (s *Store) Has(key []byte) (bool, error) {
	_, exists, err := s.Get(key)
	return exists, err
}

func (s *Store) Put(key []byte, value []byte) error {
	if value == nil {
		return storage.ErrNilValue
	}
	return storage.ErrReadOnly
}

func (s *Store) Delete(key []byte) error {
	return storage.ErrReadOnly
}

// CreateSnapshot provides a snapshot usable for speculative reads and writes
// that are meant to be released; committing it fails with ErrReadOnly.
func (s *Store) CreateSnapshot() (storage.Snapshot, error) {
	return storage.NewSnapshot(s, func(*storage.WriteSet) error {
		return storage.ErrReadOnly
	}), nil
}

func (s *Store) Flush() error {
	return nil
}

// Close is a no-op; the shared caching client is closed by its owner.
func (s *Store) Close() error {
	return nil
}
