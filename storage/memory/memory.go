// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memory

import (
	"sync"

	"github.com/Fantom-foundation/Mimic/storage"
)

// Store is a volatile in-memory storage.Store implementation. Both Put and
// Get copy the exchanged values to keep the store's content isolated from
// later modifications of caller-owned buffers.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore constructs a new empty in-memory store.
func NewStore() *Store {
	return &Store{data: map[string][]byte{}}
}

func (s *Store) Get(key []byte) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, exists := s.data[string(key)]
	if !exists {
		return nil, false, nil
	}
	value := make([]byte, len(stored))
	copy(value, stored)
	return value, true, nil
}

func (s *Store) Has(key []byte) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.data[string(key)]
	return exists, nil
}

func (s *Store) Put(key []byte, value []byte) error {
	if value == nil {
		return storage.ErrNilValue
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.mu.Lock()
	s.data[string(key)] = stored // the string conversion copies the key
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(key []byte) error {
	s.mu.Lock()
	delete(s.data, string(key))
	s.mu.Unlock()
	return nil
}

func (s *Store) CreateSnapshot() (storage.Snapshot, error) {
	return storage.NewSnapshot(s, s.applyWriteSet), nil
}

// applyWriteSet folds a snapshot's buffered writes into the store under the
// store's write lock, making the commit atomic for all other users.
func (s *Store) applyWriteSet(writes *storage.WriteSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writes.ForEach(func(key string, value []byte) error {
		if value == nil {
			delete(s.data, key)
			return nil
		}
		stored := make([]byte, len(value))
		copy(stored, value)
		s.data[key] = stored
		return nil
	})
}

func (s *Store) Flush() error {
	return nil // no-op for in-memory store
}

func (s *Store) Close() error {
	return nil // no-op for in-memory store
}
