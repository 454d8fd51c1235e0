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
	"bytes"
	"testing"
)

func TestStore_ContentSurvivesReopening(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenStore(dir)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := store.Put([]byte("key"), []byte("value")); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened, err := OpenStore(dir)
	if err != nil {
		t.Fatalf("failed to re-open store: %v", err)
	}
	defer reopened.Close()
	value, exists, err := reopened.Get([]byte("key"))
	if err != nil || !exists {
		t.Fatalf("persisted key not found: %t, %v", exists, err)
	}
	if !bytes.Equal(value, []byte("value")) {
		t.Errorf("unexpected value after reopening: %q", value)
	}
}

func TestStore_FlushSucceedsOnOpenStore(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()
	if err := store.Put([]byte("key"), []byte("value")); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := store.Flush(); err != nil {
		t.Errorf("flush failed: %v", err)
	}
}
