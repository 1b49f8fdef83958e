// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package trie

import (
	"bytes"

	"github.com/0xsoniclabs/hashdex/common"
)

// KeyLength is the byte length of all keys addressing values in a trie.
const KeyLength = 32

// Key is a fixed-size byte array used to address values in the trie. Keys
// are expected to be hashes of the addressed content, making the trie the
// index of a content-addressed store. The fixed size guarantees that no key
// is a strict prefix of another.
type Key [KeyLength]byte

// Trie is an in-memory Merkle radix trie mapping fixed-length keys to
// byte-string values. It branches on individual bytes of the key, and every
// subtree carries a hash of its canonical encoding, so the root hash changes
// if and only if the stored content changes. Inner nodes are encoded over the
// hashes of their children, not their raw bytes, making the structure a
// proper hash tree: a modification changes the hashes along the path from the
// affected leaf to the root, and nowhere else.
//
// This implementation is not safe for concurrent use. Access from multiple
// goroutines must be externally synchronized.
type Trie struct {
	root node
}

// NewTrie creates an empty trie. The zero value of Trie is an empty trie as
// well and is ready for use.
func NewTrie() *Trie {
	return &Trie{}
}

// IsEmpty returns true if and only if no value has ever been set.
func (t *Trie) IsEmpty() bool {
	return t.root == nil
}

// Set associates the given key with the given value. If the key is already
// present, its value is replaced. The value is copied; the caller retains
// ownership of the passed slice.
func (t *Trie) Set(key Key, value []byte) {
	if t.root == nil {
		t.root = newLeaf(key[:], value)
		return
	}
	t.root = t.root.set(key[:], value)
}

// Get retrieves the value associated with the given key, reporting whether
// the key is present. A miss is a regular outcome, not an error. The returned
// slice is owned by the trie and must not be modified.
func (t *Trie) Get(key Key) ([]byte, bool) {
	if t.root == nil {
		return nil, false
	}
	return t.root.get(key[:])
}

// RootHash returns the hash authenticating the full content of the trie. The
// hash of an empty trie is the hash of its canonical encoding, a single zero
// byte. Stale hashes of subtrees modified since the last call are recomputed
// bottom-up on demand.
func (t *Trie) RootHash() common.Hash {
	if t.root == nil {
		return common.Sha256(emptyEncoding)
	}
	return t.root.hash()
}

// Encode returns the canonical binary encoding of the trie, a single zero
// byte for an empty trie or the encoding of its root node otherwise. The
// result is the preimage of RootHash.
func (t *Trie) Encode() []byte {
	if t.root == nil {
		return bytes.Clone(emptyEncoding)
	}
	return t.root.encode()
}
