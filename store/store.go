// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package store

import (
	"github.com/0xsoniclabs/hashdex/common"
	"github.com/0xsoniclabs/hashdex/trie"
)

//go:generate mockgen -source store.go -destination index_mocks.go -package store

// Index is an authenticated key-value index over fixed-length keys. It is
// the surface a Store requires from its backing structure; *trie.Trie is the
// canonical implementation.
type Index interface {
	// Set associates the given key with the given value, replacing any
	// previous association.
	Set(key trie.Key, value []byte)

	// Get retrieves the value associated with the given key, reporting
	// whether the key is present.
	Get(key trie.Key) ([]byte, bool)

	// IsEmpty returns true if and only if the index holds no associations.
	IsEmpty() bool

	// RootHash returns the hash authenticating the full content of the index.
	RootHash() common.Hash
}

// Store is an in-memory content-addressed value store: every value is filed
// under the SHA-256 hash of its own bytes. Identical content maps to an
// identical key, and the root hash authenticates the full set of stored
// values.
//
// Like the underlying index, a Store is not safe for concurrent use.
type Store struct {
	index Index
}

// New creates an empty store backed by a fresh trie.
func New() *Store {
	return NewWithIndex(trie.NewTrie())
}

// NewWithIndex creates an empty store backed by the given index.
func NewWithIndex(index Index) *Store {
	return &Store{index: index}
}

// Put stores the given value under the hash of its content and returns the
// resulting key. Storing the same content twice yields the same key and
// leaves the root hash unchanged.
func (s *Store) Put(value []byte) trie.Key {
	key := trie.Key(common.Sha256(value))
	s.index.Set(key, value)
	return key
}

// Get retrieves the value stored under the given key, reporting whether it
// is present.
func (s *Store) Get(key trie.Key) ([]byte, bool) {
	return s.index.Get(key)
}

// Has returns true if a value is stored under the given key.
func (s *Store) Has(key trie.Key) bool {
	_, found := s.index.Get(key)
	return found
}

// IsEmpty returns true if and only if the store holds no values.
func (s *Store) IsEmpty() bool {
	return s.index.IsEmpty()
}

// RootHash returns the hash authenticating the full content of the store.
func (s *Store) RootHash() common.Hash {
	return s.index.RootHash()
}
