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

import "encoding/hex"

// Hash is a 32-byte cryptographic hash value, used for block hashes, state
// roots and derived cache keys.
type Hash [32]byte

// Address is a 20-byte account or contract address.
type Address [20]byte

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// SetBytes sets the hash to the given byte sequence. It reports whether the
// input had the expected length; the hash is left untouched otherwise.
func (h *Hash) SetBytes(data []byte) bool {
	if len(data) != len(h) {
		return false
	}
	copy(h[:], data)
	return true
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// SetBytes sets the address to the given byte sequence. It reports whether
// the input had the expected length; the address is left untouched otherwise.
func (a *Address) SetBytes(data []byte) bool {
	if len(data) != len(a) {
		return false
	}
	copy(a[:], data)
	return true
}
