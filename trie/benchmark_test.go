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
	"encoding/binary"
	"fmt"
	"math/rand"
	"testing"

	"github.com/0xsoniclabs/hashdex/common"
)

func BenchmarkTrie_InsertRandomKeys(b *testing.B) {
	trie := NewTrie()
	rng := rand.New(rand.NewSource(42))

	key := Key{}
	value := [8]byte{}
	for i := 0; i < b.N; i++ {
		rng.Read(key[:])
		rng.Read(value[:])
		trie.Set(key, value[:])
	}
}

func BenchmarkTrie_RootHashAfterSingleUpdate(b *testing.B) {
	toKey := func(i int) Key {
		return Key(common.Keccak256(binary.BigEndian.AppendUint64(nil, uint64(i))))
	}

	for _, numKeys := range []int{1 << 10, 1 << 14} {
		b.Run(fmt.Sprintf("keys=%d", numKeys), func(b *testing.B) {
			trie := NewTrie()
			for i := range numKeys {
				key := toKey(i)
				trie.Set(key, key[:8])
			}
			trie.RootHash()

			// Each iteration updates one leaf and recomputes the hashes on
			// the path from that leaf to the root.
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				trie.Set(toKey(i%numKeys), []byte{byte(i), byte(i >> 8)})
				trie.RootHash()
			}
		})
	}
}

func BenchmarkTrie_Lookup(b *testing.B) {
	const numKeys = 1 << 14

	toKey := func(i int) Key {
		return Key(common.Keccak256(binary.BigEndian.AppendUint64(nil, uint64(i))))
	}

	trie := NewTrie()
	for i := range numKeys {
		key := toKey(i)
		trie.Set(key, key[:8])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := trie.Get(toKey(i % numKeys)); !found {
			b.Fatal("missing key")
		}
	}
}
