// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"bytes"
	"testing"
)

func TestHash_SetBytesRejectsWrongLength(t *testing.T) {
	var h Hash
	if h.SetBytes(make([]byte, 31)) || h.SetBytes(make([]byte, 33)) || h.SetBytes(nil) {
		t.Errorf("hash accepted input of wrong length")
	}
	data := bytes.Repeat([]byte{0xab}, 32)
	if !h.SetBytes(data) {
		t.Fatalf("hash rejected input of correct length")
	}
	if !bytes.Equal(h[:], data) {
		t.Errorf("hash content differs from input")
	}
}

func TestAddress_SetBytesRejectsWrongLength(t *testing.T) {
	var a Address
	if a.SetBytes(make([]byte, 19)) || a.SetBytes(make([]byte, 32)) {
		t.Errorf("address accepted input of wrong length")
	}
	data := bytes.Repeat([]byte{0xcd}, 20)
	if !a.SetBytes(data) {
		t.Fatalf("address rejected input of correct length")
	}
	if a.String() != "0xcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcd" {
		t.Errorf("unexpected address rendering: %s", a.String())
	}
}
