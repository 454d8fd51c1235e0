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

// NewSnapshot creates a snapshot buffering writes on top of the given live
// parent. Backends provide the apply callback, which is invoked on Commit
// with the complete write set and must apply it to the parent as one atomic
// unit, or fail without applying anything.
func NewSnapshot(parent Reader, apply func(*WriteSet) error) Snapshot {
	return &snapshot{
		parent: parent,
		writes: NewWriteSet(),
		apply:  apply,
	}
}

type snapshot struct {
	parent Reader
	writes *WriteSet
	apply  func(*WriteSet) error

	stateMu sync.Mutex
	state   snapshotState
}

type snapshotState int

const (
	snapshotLive snapshotState = iota
	snapshotCommitted
	snapshotReleased
)

// usable reports the contract violation matching the snapshot's state, if
// its lifetime has ended already.
func (s *snapshot) usable() error {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	switch s.state {
	case snapshotCommitted:
		return ErrCommitted
	case snapshotReleased:
		return ErrReleased
	}
	return nil
}

func (s *snapshot) Get(key []byte) ([]byte, bool, error) {
	if err := s.usable(); err != nil {
		return nil, false, err
	}
	if value, buffered := s.writes.Get(key); buffered {
		return value, value != nil, nil
	}
	return s.parent.Get(key)
}

func (s *snapshot) Has(key []byte) (bool, error) {
	if err := s.usable(); err != nil {
		return false, err
	}
	if value, buffered := s.writes.Get(key); buffered {
		return value != nil, nil
	}
	return s.parent.Has(key)
}

func (s *snapshot) Put(key []byte, value []byte) error {
	if err := s.usable(); err != nil {
		return err
	}
	return s.writes.Put(key, value)
}

func (s *snapshot) Delete(key []byte) error {
	if err := s.usable(); err != nil {
		return err
	}
	s.writes.Delete(key)
	return nil
}

func (s *snapshot) Commit() error {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	switch s.state {
	case snapshotCommitted:
		return ErrCommitted
	case snapshotReleased:
		return ErrReleased
	}
	if err := s.apply(s.writes); err != nil {
		return err // nothing was applied, the snapshot stays usable
	}
	s.state = snapshotCommitted
	return nil
}

func (s *snapshot) Release() error {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	if s.state == snapshotReleased {
		return ErrReleased
	}
	s.state = snapshotReleased
	s.writes.Clear()
	return nil
}
