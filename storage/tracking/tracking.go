// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tracking

import (
	"github.com/Fantom-foundation/Mimic/storage"
)

// Store keeps local modifications in memory on top of a backing store which
// it never writes to. Reads fall through to the backing store for keys
// without a local entry; puts and deletes stay local, a delete hiding the
// backing store's entry behind a tombstone.
//
// This is the store a forked chain runs on: a tracking store over a remote
// store pulls missing state from the remote node on first access while all
// modifications made by the local chain remain private.
type Store struct {
	backing storage.Reader
	writes  *storage.WriteSet
}

// NewStore creates a tracking store over the given backing store. The
// backing store stays owned by the caller; closing the tracking store does
// not close it.
func NewStore(backing storage.Reader) *Store {
	return &Store{
		backing: backing,
		writes:  storage.NewWriteSet(),
	}
}

func (s *Store) Get(key []byte) ([]byte, bool, error) {
	if value, buffered := s.writes.Get(key); buffered {
		return value, value != nil, nil
	}
	return s.backing.Get(key)
}

func (s *Store) Has(key []byte) (bool, error) {
	if value, buffered := s.writes.Get(key); buffered {
		return value != nil, nil
	}
	return s.backing.Has(key)
}

func (s *Store) Put(key []byte, value []byte) error {
	return s.writes.Put(key, value)
}

func (s *Store) Delete(key []byte) error {
	s.writes.Delete(key)
	return nil
}

func (s *Store) CreateSnapshot() (storage.Snapshot, error) {
	return storage.NewSnapshot(s, s.writes.Apply), nil
}

// LocalChanges returns the number of keys modified locally, deletions
// included.
func (s *Store) LocalChanges() int {
	return s.writes.Size()
}

func (s *Store) Flush() error {
	return nil // local changes are volatile
}

// Close drops all local modifications. The backing store is left open.
func (s *Store) Close() error {
	s.writes.Clear()
	return nil
}
