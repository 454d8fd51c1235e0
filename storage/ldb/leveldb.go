// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ldb

import (
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/Fantom-foundation/Mimic/storage"
)

// Store is a persistent storage.Store implementation backed by a LevelDB
// instance. Writes may be buffered by the engine, but they are visible to
// subsequent reads on the same store immediately. No extra value copies are
// made here - LevelDB returns its own copies on Get and does not retain the
// argument slices of Put beyond the call.
type Store struct {
	db       *leveldb.DB
	owned    bool
	commitMu sync.Mutex
}

// OpenStore opens the LevelDB database in the given directory, creating it
// if it does not exist, and wraps it into a store owning the database.
func OpenStore(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open LevelDB at %s; %w", path, err)
	}
	return &Store{db: db, owned: true}, nil
}

// NewStore wraps an already opened LevelDB instance. Closing the database
// remains the caller's responsibility.
func NewStore(db *leveldb.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(key []byte) ([]byte, bool, error) {
	value, err := s.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key; %w", err)
	}
	return value, true, nil
}

func (s *Store) Has(key []byte) (bool, error) {
	return s.db.Has(key, nil)
}

func (s *Store) Put(key []byte, value []byte) error {
	if value == nil {
		return storage.ErrNilValue
	}
	return s.db.Put(key, value, nil)
}

func (s *Store) Delete(key []byte) error {
	return s.db.Delete(key, nil)
}

func (s *Store) CreateSnapshot() (storage.Snapshot, error) {
	return storage.NewSnapshot(s, s.applyWriteSet), nil
}

// applyWriteSet converts a snapshot's buffered writes into a single batch,
// which LevelDB applies atomically. Commits are serialized on top of that,
// making concurrent commits of overlapping snapshots a well-defined
// last-commit-wins race.
func (s *Store) applyWriteSet(writes *storage.WriteSet) error {
	batch := new(leveldb.Batch)
	if err := writes.ForEach(func(key string, value []byte) error {
		if value == nil {
			batch.Delete([]byte(key))
		} else {
			batch.Put([]byte(key), value)
		}
		return nil
	}); err != nil {
		return err
	}
	s.commitMu.Lock()
	defer s.commitMu.Unlock()
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("failed to commit write set; %w", err)
	}
	return nil
}

func (s *Store) Flush() error {
	return nil // durability is engine-defined, writes are already handed over
}

func (s *Store) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}
