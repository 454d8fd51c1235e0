// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package filestore

import (
	"fmt"
	"sync"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/Fantom-foundation/Mimic/storage"
)

// Store is a persistent storage.Store implementation backed by a Badger
// log-structured database.
type Store struct {
	db       *badger.DB
	commitMu sync.Mutex
}

// OpenStore opens the Badger database in the given directory, creating it if
// it does not exist.
func OpenStore(path string) (*Store, error) {
	options := badger.DefaultOptions(path)
	options.Logger = nil
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open Badger at %s; %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key []byte) (value []byte, exists bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		exists = true
		value, err = item.ValueCopy(nil)
		if value == nil {
			value = []byte{} // an empty value is still a value
		}
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key; %w", err)
	}
	return value, exists, nil
}

func (s *Store) Has(key []byte) (exists bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		exists = true
		return nil
	})
	return exists, err
}

func (s *Store) Put(key []byte, value []byte) error {
	if value == nil {
		return storage.ErrNilValue
	}
	// Badger retains the slices until the transaction commits, so the store
	// works on its own copies to keep caller buffers out of the engine.
	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyCopy, valueCopy)
	})
}

func (s *Store) Delete(key []byte) error {
	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(keyCopy)
	})
}

func (s *Store) CreateSnapshot() (storage.Snapshot, error) {
	return storage.NewSnapshot(s, s.applyWriteSet), nil
}

// applyWriteSet commits a snapshot's buffered writes in one transaction.
func (s *Store) applyWriteSet(writes *storage.WriteSet) error {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()
	err := s.db.Update(func(txn *badger.Txn) error {
		return writes.ForEach(func(key string, value []byte) error {
			if value == nil {
				return txn.Delete([]byte(key))
			}
			return txn.Set([]byte(key), value)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to commit write set; %w", err)
	}
	return nil
}

func (s *Store) Flush() error {
	return s.db.Sync()
}

func (s *Store) Close() error {
	return s.db.Close()
}
