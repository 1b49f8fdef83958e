// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"bytes"
	"encoding/hex"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/sha3"
)

// HashLength is the byte length of a Hash.
const HashLength = 32

// Hash is a fixed-size cryptographic digest summarizing some content.
type Hash [HashLength]byte

// Sha256 computes the SHA-256 digest of the given data. This is the hash
// function defining the authentication properties of all structures in this
// repository; all participants exchanging root hashes must agree on it.
func Sha256(data []byte) Hash {
	return Hash(sha256.Sum256(data))
}

// Keccak256 computes the Keccak-256 digest of the given data. It is used to
// derive uniformly distributed fixed-length keys from arbitrary content in
// tests and tooling, keeping the key-derivation domain separated from the
// Sha256-based node digests.
func Keccak256(data []byte) Hash {
	var res Hash
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	hasher.Sum(res[:0])
	return res
}

// String returns the lowercase hexadecimal rendering of the hash, the display
// form used throughout tests and tooling.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Compare returns a negative number, zero, or a positive number if this hash
// is smaller, equal, or larger than the given hash, imposing a total order.
func (h *Hash) Compare(other *Hash) int {
	return bytes.Compare(h[:], other[:])
}
