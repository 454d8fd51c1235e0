// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package storage

import "sync"

// WriteSet buffers inserts and deletes before they are applied to a store.
// A deleted key is kept as a tombstone, kept apart from keys that were never
// touched. The set retains private copies of all keys and values and hands
// out copies only, and it is safe for concurrent use.
type WriteSet struct {
	mu      sync.RWMutex
	changes map[string][]byte // nil value marks a tombstone
}

// NewWriteSet creates an empty write set.
func NewWriteSet() *WriteSet {
	return &WriteSet{changes: map[string][]byte{}}
}

// Get returns the value buffered for the key. The buffered flag reports
// whether the key is covered by the write set at all; a nil value combined
// with buffered set to true denotes a tombstone.
func (w *WriteSet) Get(key []byte) (value []byte, buffered bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	stored, buffered := w.changes[string(key)]
	if stored == nil {
		return nil, buffered
	}
	value = make([]byte, len(stored))
	copy(value, stored)
	return value, true
}

// Put buffers an insert or overwrite of the key.
func (w *WriteSet) Put(key []byte, value []byte) error {
	if value == nil {
		return ErrNilValue
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	w.mu.Lock()
	w.changes[string(key)] = stored
	w.mu.Unlock()
	return nil
}

// Delete buffers a tombstone for the key, covering any value buffered for it
// before.
func (w *WriteSet) Delete(key []byte) {
	w.mu.Lock()
	w.changes[string(key)] = nil
	w.mu.Unlock()
}

// ForEach calls the callback for every buffered change, with a nil value for
// tombstones. The value slices are the set's internal buffers; callbacks
// must not modify them and may retain them only as long as the set is not
// mutated. Iteration stops at the first error, which is passed on.
func (w *WriteSet) ForEach(callback func(key string, value []byte) error) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for key, value := range w.changes {
		if err := callback(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Apply folds all changes buffered in the other set into this one in a
// single critical section, so that no reader of this set can observe a
// partially applied state. Tombstones stay tombstones.
func (w *WriteSet) Apply(other *WriteSet) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return other.ForEach(func(key string, value []byte) error {
		if value == nil {
			w.changes[key] = nil
			return nil
		}
		stored := make([]byte, len(value))
		copy(stored, value)
		w.changes[key] = stored
		return nil
	})
}

// Size returns the number of buffered changes, tombstones included.
func (w *WriteSet) Size() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.changes)
}

// Clear drops all buffered changes.
func (w *WriteSet) Clear() {
	w.mu.Lock()
	w.changes = map[string][]byte{}
	w.mu.Unlock()
}
