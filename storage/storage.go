// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package storage defines the backend-agnostic contract of the key/value
// stores used for ledger state. All backends exchange opaque byte keys and
// byte values only; a value passed in or handed out never aliases the
// store's internal buffers, so callers and stores may freely modify their
// own copies afterwards.
package storage

import (
	"github.com/Fantom-foundation/Mimic/common"
)

const (
	// ErrNilValue is returned when a nil value is passed to Put. Storing nil
	// is a contract violation by the caller, not a recoverable condition;
	// an empty value is legal.
	ErrNilValue = common.ConstError("nil value must not be stored")

	// ErrCommitted is returned when a snapshot is used after its commit.
	ErrCommitted = common.ConstError("snapshot was already committed")

	// ErrReleased is returned when a snapshot is used after its release.
	ErrReleased = common.ConstError("snapshot was already released")

	// ErrReadOnly is returned by write operations on read-only stores. It is
	// distinct from a missing key so that callers can tell "this store does
	// not accept writes" from "this key is absent".
	ErrReadOnly = common.ConstError("store is read-only")
)

// Reader provides lookup access to stored key/value pairs.
type Reader interface {
	// Get returns a private copy of the value stored for the key. A missing
	// key is not an error; it is reported by the exists flag, keeping it
	// distinguishable from an empty value. The error channel is reserved
	// for backend failures.
	Get(key []byte) (value []byte, exists bool, err error)

	// Has checks the presence of a key without retrieving its value.
	Has(key []byte) (bool, error)
}

// Writer provides mutation access to stored key/value pairs.
type Writer interface {
	// Put inserts or overwrites the value stored for the key. The store
	// retains copies of both slices; the caller keeps ownership of its
	// buffers. A nil value is rejected with ErrNilValue.
	Put(key []byte, value []byte) error

	// Delete removes the key if present. Deleting a missing key is a no-op.
	Delete(key []byte) error
}

// Store is a mutable key/value store for ledger state. Implementations are
// safe for concurrent use by multiple goroutines.
type Store interface {
	Reader
	Writer

	// CreateSnapshot provides an isolated view on this store for a batch of
	// reads and speculative writes, to be committed or released.
	CreateSnapshot() (Snapshot, error)

	// Flush forces buffered content to the backing medium, where one exists.
	Flush() error

	// Close flushes and closes the store.
	Close() error
}

// Snapshot is a point-in-time view on a store, buffering its own writes in
// an overlay until they are committed back to the parent store. Reads hit
// the overlay first and fall through to the live parent for untouched keys;
// the parent is not frozen, so writes applied to it by others remain visible
// through the snapshot. Uncommitted writes are invisible to the parent.
//
// Commit applies the buffered writes to the parent in one atomic unit.
// A snapshot can be committed at most once; any use after Commit or Release
// is a contract violation reported as ErrCommitted or ErrReleased.
type Snapshot interface {
	Reader
	Writer

	// Commit applies all buffered writes to the parent store.
	Commit() error

	// Release discards the snapshot, leaving the parent store untouched by
	// any writes still buffered.
	Release() error
}
